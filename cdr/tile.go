package cdr

import (
	"fmt"
	"image"
)

// Options configures a tiling run. The zero value tiles at threshold 0 with
// the RGB metric and mixed growth.
type Options struct {
	// Threshold is the largest distance from the seed color a pixel may
	// have to join a rectangle.
	Threshold int
	// Metric measures color distance.
	Metric Metric
	// Symmetric applies the threshold test to whole rows during vertical
	// growth. Without it, a row wider than one pixel must match the seed
	// color exactly.
	Symmetric bool
	// Legacy reproduces the historical visited bookkeeping: rows are
	// flagged one row late and the rightmost column is never checked
	// while growing downwards. Records may then overlap.
	Legacy bool
}

// Encode tiles img and returns the resulting stream.
func Encode(img image.Image, opts Options) (*Stream, error) {
	b := img.Bounds()
	if b.Dx() > maxDimension || b.Dy() > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, b.Dx(), b.Dy())
	}

	p := NewPixels(img)
	return &Stream{
		Width:   uint16(b.Dx()),
		Height:  uint16(b.Dy()),
		Records: Tile(p, opts),
	}, nil
}

// Tile scans p column by column, top to bottom, and emits one record per
// pixel not yet claimed by an earlier record.
func Tile(p *Pixels, opts Options) []Record {
	t := &tiler{
		p:       p,
		opts:    opts,
		thr:     float64(opts.Threshold),
		visited: make([]bool, p.width*p.height),
	}

	var records []Record
	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			if t.isVisited(x, y) {
				continue
			}
			records = append(records, t.grow(x, y))
		}
	}
	return records
}

type tiler struct {
	p       *Pixels
	opts    Options
	thr     float64
	visited []bool
}

func (t *tiler) isVisited(x, y int) bool {
	return t.visited[y*t.p.width+x]
}

func (t *tiler) visit(x, y int) {
	t.visited[y*t.p.width+x] = true
}

func (t *tiler) within(s, seed Sample) bool {
	return t.opts.Metric.Distance(s, seed) <= t.thr
}

func (t *tiler) grow(x, y int) Record {
	seed := t.p.Get(x, y)

	var h, v int
	if t.opts.Legacy {
		h, v = t.growLegacy(x, y, seed)
	} else {
		h, v = t.growClaimed(x, y, seed)
	}

	return Record{
		X:       uint16(x),
		Y:       uint16(y),
		HExtent: uint16(h),
		VExtent: uint16(v),
		Color:   seed.Color,
	}
}

// growClaimed claims every pixel it covers, so records never overlap.
func (t *tiler) growClaimed(x, y int, seed Sample) (h, v int) {
	t.visit(x, y)

	for {
		nx := x + h + 1
		next := t.p.Get(nx, y)
		if !next.Valid || t.isVisited(nx, y) || !t.within(next, seed) {
			break
		}
		t.visit(nx, y)
		h++
	}

	for {
		ny := y + v + 1
		if !t.rowMatches(x, ny, h, seed) {
			break
		}
		for i := 0; i <= h; i++ {
			t.visit(x+i, ny)
		}
		v++
	}

	return h, v
}

// rowMatches reports whether row ny can extend a rectangle anchored at
// column x with horizontal extent h.
func (t *tiler) rowMatches(x, ny, h int, seed Sample) bool {
	probe := t.p.Get(x, ny)
	if !probe.Valid || !t.within(probe, seed) {
		return false
	}

	for i := 0; i <= h; i++ {
		s := t.p.Get(x+i, ny)
		if !s.Valid || t.isVisited(x+i, ny) {
			return false
		}
		if h == 0 {
			continue
		}
		if t.opts.Symmetric {
			if !t.within(s, seed) {
				return false
			}
		} else if s != seed {
			return false
		}
	}
	return true
}

func (t *tiler) growLegacy(x, y int, seed Sample) (h, v int) {
	for {
		next := t.p.Get(x+h+1, y)
		if !next.Valid || !t.within(next, seed) {
			break
		}
		t.visit(x+h+1, y)
		h++
	}

	for {
		ny := y + v + 1
		probe := t.p.Get(x, ny)
		if !probe.Valid || !t.within(probe, seed) {
			break
		}

		same := true
		for i := 0; i < h; i++ {
			s := t.p.Get(x+i, ny)
			if (t.opts.Symmetric && !t.within(s, seed)) || (!t.opts.Symmetric && s != seed) {
				same = false
				break
			}
			// flags the row above the one just tested
			t.visit(x+i, ny-1)
		}
		if !same {
			break
		}
		v++
	}

	return h, v
}
