package pack

import (
	"bytes"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	data := make([]byte, 4+11*500)
	for i := range data {
		data[i] = byte((i*31 + 7) % 11)
	}

	for _, k := range []Kind{None, Zstd, LZ4} {
		t.Run(string(k), func(t *testing.T) {
			t.Parallel()

			packed, err := Compress(data, k)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if k != None && len(packed) >= len(data) {
				t.Fatalf("%s did not shrink repetitive data: %d >= %d", k, len(packed), len(data))
			}

			out, err := Decompress(packed, k)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(out, data) {
				t.Fatalf("round-trip mismatch")
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Kind
	}{
		{path: "out.cdr", want: None},
		{path: "out.cdr.zst", want: Zstd},
		{path: "dir/out.cdr.LZ4", want: LZ4},
		{path: "noext", want: None},
	}

	for _, tc := range tests {
		if got := FromPath(tc.path); got != tc.want {
			t.Fatalf("FromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
		if got := tc.want.Ext(); FromPath("x.cdr"+got) != tc.want {
			t.Fatalf("Ext(%q) = %q does not map back", tc.want, got)
		}
	}
}

func TestUnknownKind(t *testing.T) {
	t.Parallel()

	if _, err := Compress(nil, Kind("brotli")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := Decompress(nil, Kind("brotli")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
