package batch

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"cdrimg/encode"
	"cdrimg/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan  string `help:"Source folder to scan" default:"."`
	Dest  string `help:"Destination folder for streams. Relative to scan dir if not absolute" default:"cdr"`
	Level string `help:"Compression level, an integer in [-1, 442]" default:"0"`

	encode.Settings
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	return c.Resolve(c.Level)
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var encodedCount, skippedCount, errCount atomic.Uint64
	var inBytes, outBytes atomic.Int64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				if !isImage(filePath) {
					skippedCount.Add(1)
					logger.Debug("skipping non-image file")
					return
				}

				base := filepath.Join(c.Dest, strings.TrimSuffix(fileName, filepath.Ext(fileName)))
				res, err := encode.File(logger, filePath, base, &c.Settings)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not encode image", "error", err)
					return
				}

				if info, err := os.Stat(filePath); err == nil {
					inBytes.Add(info.Size())
				}
				outBytes.Add(int64(res.Bytes))
				encodedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	encoded := encodedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "encoded", encoded, "skipped", skippedCount.Load(), "errors", errors,
		"total", encoded+errors, "in_bytes", inBytes.Load(), "out_bytes", outBytes.Load())

	if errors > 0 {
		return fmt.Errorf("error encoding %d files", errors)
	}
	return nil
}

// isImage reports whether path starts with a registered image signature.
func isImage(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	_, _, err = image.DecodeConfig(f)
	return err == nil
}
