package decode

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cdrimg/cdr"
	"cdrimg/pack"
	"cdrimg/raster"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Input  string `arg:"" help:"CDR stream to decode (.cdr, .cdr.zst or .cdr.lz4)" type:"existingfile"`
	Output string `arg:"" help:"Output base path, the format extension is appended"`
	Format string `help:"Output image format" enum:"png,bmp,tiff,gif,jpeg,qoi" default:"png"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Input, err = filepath.Abs(c.Input); err != nil {
		return fmt.Errorf("invalid input path %q: %w", c.Input, err)
	}
	if c.Output == "" {
		return fmt.Errorf("no output file specified")
	}
	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.Input)
	dest := fmt.Sprintf("%s.%s", c.Output, c.Format)
	if err := File(logger, c.Input, dest, c.Format); err != nil {
		return fmt.Errorf("could not decode %q: %w", c.Input, err)
	}
	return nil
}

// ReadStream reads a possibly packed stream file.
func ReadStream(src string) (*cdr.Stream, int, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, 0, fmt.Errorf("could not read %q: %w", src, err)
	}
	packed := len(data)

	data, err = pack.Decompress(data, pack.FromPath(src))
	if err != nil {
		return nil, 0, err
	}

	s := &cdr.Stream{}
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, 0, err
	}
	return s, packed, nil
}

// File decodes the stream at src and saves the painted image as dest.
func File(logger *slog.Logger, src, dest, format string) error {
	s, _, err := ReadStream(src)
	if err != nil {
		return err
	}

	img, err := cdr.Paint(s)
	if err != nil {
		return err
	}

	if err := raster.Save(img, format, dest); err != nil {
		return err
	}

	logger.Info("decoded", "output", dest, "width", s.Width, "height", s.Height, "records", len(s.Records))
	return nil
}
