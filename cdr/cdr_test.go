package cdr

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

// gridImage builds an NRGBA image from rows of colors.
func gridImage(rows [][]RGB) *image.NRGBA {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return img
}

func solidImage(w, h int, c RGB) *image.NRGBA {
	rows := make([][]RGB, h)
	for y := range rows {
		rows[y] = make([]RGB, w)
		for x := range rows[y] {
			rows[y][x] = c
		}
	}
	return gridImage(rows)
}

// randomImage draws pixels from a small palette so that runs form.
func randomImage(rng *rand.Rand, w, h int) *image.NRGBA {
	palette := []RGB{{0, 0, 0}, {200, 10, 10}, {205, 12, 8}, {10, 10, 250}}
	rows := make([][]RGB, h)
	for y := range rows {
		rows[y] = make([]RGB, w)
		for x := range rows[y] {
			rows[y][x] = palette[rng.IntN(len(palette))]
		}
	}
	return gridImage(rows)
}

// stripesImage has four columns whose red channel steps by 10.
func stripesImage() *image.NRGBA {
	row := []RGB{{0, 0, 0}, {10, 0, 0}, {20, 0, 0}, {30, 0, 0}}
	return gridImage([][]RGB{row, row, row, row})
}

func coverage(t *testing.T, w, h int, records []Record) []int {
	t.Helper()

	counts := make([]int, w*h)
	for _, r := range records {
		b := r.Bounds()
		if !b.In(image.Rect(0, 0, w, h)) {
			t.Fatalf("record %+v outside %dx%d", r, w, h)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				counts[y*w+x]++
			}
		}
	}
	return counts
}

func samePixels(t *testing.T, want image.Image, got *image.RGBA) {
	t.Helper()

	if want.Bounds().Size() != got.Bounds().Size() {
		t.Fatalf("size mismatch: got %v want %v", got.Bounds().Size(), want.Bounds().Size())
	}
	b := want.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			w := color.NRGBAModel.Convert(want.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			g := got.RGBAAt(x, y)
			if w.R != g.R || w.G != g.G || w.B != g.B {
				t.Fatalf("pixel (%d,%d): got %v want %v", x, y, g, w)
			}
		}
	}
}
