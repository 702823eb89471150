package cdr

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Background fills pixels no record covers.
var Background = color.RGBA{A: 0xff}

// Paint reconstructs the image of s. Records are painted in stream order
// and later records overwrite earlier ones where they overlap.
func Paint(s *Stream) (*image.RGBA, error) {
	bounds := image.Rect(0, 0, int(s.Width), int(s.Height))
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(Background), image.Point{}, draw.Src)

	for i, r := range s.Records {
		rb := r.Bounds()
		if !rb.In(bounds) {
			return nil, fmt.Errorf("%w: record %d covers %v, image is %dx%d", ErrRecordOutOfBounds, i, rb, s.Width, s.Height)
		}
		draw.Draw(img, rb, image.NewUniform(r.Color.RGBA()), image.Point{}, draw.Src)
	}

	return img, nil
}

// Decode parses an encoded stream and paints it.
func Decode(data []byte) (*image.RGBA, error) {
	s := &Stream{}
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return Paint(s)
}
