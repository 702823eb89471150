package info

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cdrimg/cdr"
	"cdrimg/decode"
	"cdrimg/pack"
)

type CLICmd struct {
	Input string `arg:"" help:"CDR stream to inspect" type:"existingfile"`
}

func (c *CLICmd) Run() error {
	s, packed, err := decode.ReadStream(c.Input)
	if err != nil {
		return fmt.Errorf("could not inspect %q: %w", c.Input, err)
	}

	slog.Debug("inspected", "file", c.Input, "pack", pack.FromPath(c.Input))
	return Print(os.Stdout, s, packed)
}

// Print writes a summary of s. packed is the size of the file on disk.
func Print(w io.Writer, s *cdr.Stream, packed int) error {
	raw := 3 * int(s.Width) * int(s.Height)
	ratio := 0.0
	if raw > 0 {
		ratio = float64(packed) / float64(raw)
	}

	var covered int
	for _, r := range s.Records {
		b := r.Bounds()
		covered += b.Dx() * b.Dy()
	}

	_, err := fmt.Fprintf(w, "size:     %dx%d\nrecords:  %d\ncovered:  %d px\nstream:   %d bytes\nfile:     %d bytes\nratio:    %.3f\n",
		s.Width, s.Height, len(s.Records), covered, s.Size(), packed, ratio)
	return err
}
