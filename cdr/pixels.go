package cdr

import (
	"image"
	"image/color"
)

// RGB is an 8-bit per channel color without alpha.
type RGB struct {
	R, G, B uint8
}

// RGBA returns the color as an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Sample is the result of a pixel read. Reads outside the image yield NoPixel.
type Sample struct {
	Color RGB
	Valid bool
}

// NoPixel is returned for coordinates outside the image.
var NoPixel = Sample{}

// Pixels gives bounds-safe access to the RGB values of an image.
// Coordinates are relative to the image's bounds minimum.
type Pixels struct {
	width  int
	height int
	pix    []RGB
}

// NewPixels copies the RGB channels of img. Alpha is dropped and
// premultiplied sources are converted back to straight color first.
func NewPixels(img image.Image) *Pixels {
	b := img.Bounds()
	p := &Pixels{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    make([]RGB, b.Dx()*b.Dy()),
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < p.height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < p.width; x++ {
				s := row[x*4 : x*4+3]
				p.pix[y*p.width+x] = RGB{R: s[0], G: s[1], B: s[2]}
			}
		}
	default:
		for y := 0; y < p.height; y++ {
			for x := 0; x < p.width; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				p.pix[y*p.width+x] = RGB{R: c.R, G: c.G, B: c.B}
			}
		}
	}

	return p
}

// Width returns the number of columns.
func (p *Pixels) Width() int { return p.width }

// Height returns the number of rows.
func (p *Pixels) Height() int { return p.height }

// Get returns the pixel at (x, y), or NoPixel when it lies outside the image.
func (p *Pixels) Get(x, y int) Sample {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return NoPixel
	}
	return Sample{Color: p.pix[y*p.width+x], Valid: true}
}
