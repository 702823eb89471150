package encode

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

// Settings are the tiling and output flags shared by encode and batch.
type Settings struct {
	Metric    string `help:"Color distance metric" enum:"rgb,oklab" default:"rgb" group:"tiling"`
	Symmetric bool   `help:"Use the threshold for whole rows during vertical growth instead of exact matching" default:"false" group:"tiling"`
	Legacy    bool   `help:"Reproduce the historical tiling, including overlapping records" default:"false" group:"tiling"`
	Pack      string `help:"Outer compression applied to the stream" enum:"none,zstd,lz4" default:"none" group:"output"`

	raster.PrepOptions

	Options cdr.Options `kong:"-"`
}

// Resolve turns the flags and a compression level into tiling options. An
// out of range level is logged and kept.
func (s *Settings) Resolve(level string) error {
	lvl, err := cdr.ParseLevel(level)
	if err != nil {
		return err
	}
	if lvl.Warning != nil {
		slog.Warn("compression level should be an integer in [-1, 442], encoding anyway", "level", lvl.Threshold, "warning", lvl.Warning)
	}

	metric, err := cdr.ParseMetric(s.Metric)
	if err != nil {
		return err
	}

	s.Options = cdr.Options{
		Threshold: lvl.Threshold,
		Metric:    metric,
		Symmetric: s.Symmetric,
		Legacy:    s.Legacy,
	}
	return nil
}

// OutputPath returns the file name written for base.
func (s *Settings) OutputPath(base string) string {
	return base + ".cdr" + pack.Kind(s.Pack).Ext()
}

// Result describes one encoded file.
type Result struct {
	Output  string
	Width   int
	Height  int
	Records int
	Bytes   int
}

// File encodes the image at src and writes the stream next to base. The
// output is only created once the whole stream has been assembled.
func File(logger *slog.Logger, src, base string, s *Settings) (Result, error) {
	img, err := raster.Load(src)
	if err != nil {
		return Result{}, err
	}
	img = raster.Prepare(logger, img, s.PrepOptions)

	stream, err := cdr.Encode(img, s.Options)
	if err != nil {
		return Result{}, fmt.Errorf("could not encode %q: %w", src, err)
	}

	data, err := stream.MarshalBinary()
	if err != nil {
		return Result{}, fmt.Errorf("could not serialize %q: %w", src, err)
	}
	data, err = pack.Compress(data, pack.Kind(s.Pack))
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Output:  s.OutputPath(base),
		Width:   int(stream.Width),
		Height:  int(stream.Height),
		Records: len(stream.Records),
		Bytes:   len(data),
	}
	if err := raster.WriteFile(res.Output, data); err != nil {
		return Result{}, err
	}

	logger.Info("encoded", "output", res.Output, "width", res.Width, "height", res.Height,
		"records", res.Records, "bytes", res.Bytes, "threshold", s.Options.Threshold)
	return res, nil
}

type CLICmd struct {
	Input  string `arg:"" help:"Image to compress" type:"existingfile"`
	Level  string `arg:"" help:"Compression level, an integer in [-1, 442]"`
	Output string `arg:"" help:"Output base path, .cdr is appended"`

	Settings
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Input, err = filepath.Abs(c.Input); err != nil {
		return fmt.Errorf("invalid input path %q: %w", c.Input, err)
	}
	if c.Output == "" {
		return fmt.Errorf("no output file specified")
	}
	if info, err := os.Stat(filepath.Dir(c.OutputPath(c.Output))); err != nil || !info.IsDir() {
		return fmt.Errorf("output directory for %q does not exist", c.Output)
	}

	return c.Resolve(c.Level)
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.Input)
	if _, err := File(logger, c.Input, c.Output, &c.Settings); err != nil {
		return fmt.Errorf("could not encode %q: %w", c.Input, err)
	}
	return nil
}
