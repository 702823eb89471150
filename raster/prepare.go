package raster

import (
	"image"
	"log/slog"
	"math"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"
)

// PrepOptions controls the optional processing applied before tiling.
type PrepOptions struct {
	MaxWidth  int `help:"Scale the image down to at most this width before encoding" group:"prepare"`
	MaxHeight int `help:"Scale the image down to at most this height before encoding" group:"prepare"`
	Denoise   int `help:"Median filter size applied before encoding, 0 disables it" group:"prepare"`
}

// Prepare applies opts to img. With zero options img is returned unchanged.
func Prepare(logger *slog.Logger, img image.Image, opts PrepOptions) image.Image {
	img = Fit(logger, img, opts.MaxWidth, opts.MaxHeight)
	return Denoise(logger, img, opts.Denoise)
}

// Fit scales img down, preserving its aspect ratio, so it fits within
// maxWidth x maxHeight. A zero limit leaves that axis unconstrained and
// images are never enlarged.
func Fit(logger *slog.Logger, img image.Image, maxWidth, maxHeight int) image.Image {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())
	if srcWidth == 0 || srcHeight == 0 {
		return img
	}

	scale := 1.0
	if maxWidth > 0 && srcWidth > float64(maxWidth) {
		scale = float64(maxWidth) / srcWidth
	}
	if maxHeight > 0 && srcHeight*scale > float64(maxHeight) {
		scale = float64(maxHeight) / srcHeight
	}
	if scale == 1 {
		return img
	}

	destWidth := max(1, int(math.Round(srcWidth*scale)))
	destHeight := max(1, int(math.Round(srcHeight*scale)))
	destBounds := image.Rect(0, 0, destWidth, destHeight)

	logger.Info("resizing", "width", destWidth, "height", destHeight)
	dest := image.NewNRGBA(destBounds)
	draw.CatmullRom.Scale(dest, destBounds, img, srcBounds, draw.Src, nil)

	return dest
}

// Denoise runs a median filter of the given size over img. Flattening
// noise lets the tiler grow larger rectangles.
func Denoise(logger *slog.Logger, img image.Image, size int) image.Image {
	if size < 2 {
		return img
	}

	logger.Info("denoising", "size", size)
	g := gift.New(gift.Median(size, false))
	dest := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dest, img)

	return dest
}
