package okcolor

import (
	"math"
	"testing"
)

func TestFromRGBExtremes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, g, b uint8
		wantL   float64
	}{
		{name: "black", r: 0, g: 0, b: 0, wantL: 0},
		{name: "white", r: 255, g: 255, b: 255, wantL: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lc := FromRGB(tc.r, tc.g, tc.b)
			if math.Abs(lc.L-tc.wantL) > 1e-3 {
				t.Fatalf("L = %f, want %f", lc.L, tc.wantL)
			}
			if math.Abs(lc.A) > 1e-3 || math.Abs(lc.B) > 1e-3 {
				t.Fatalf("achromatic color has chroma: a=%f b=%f", lc.A, lc.B)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	red := FromRGB(255, 0, 0)
	if d := red.Distance(red); d != 0 {
		t.Fatalf("Distance(self) = %f, want 0", d)
	}

	black := FromRGB(0, 0, 0)
	white := FromRGB(255, 255, 255)
	if d := black.Distance(white); math.Abs(d-1) > 1e-3 {
		t.Fatalf("Distance(black, white) = %f, want 1", d)
	}
	if d1, d2 := black.Distance(red), red.Distance(black); d1 != d2 {
		t.Fatalf("Distance not symmetric: %f != %f", d1, d2)
	}
}
