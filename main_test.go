package main

import (
	"image"
	"path/filepath"
	"slices"
	"testing"

	"cdrimg/cdr"
	"cdrimg/raster"
)

func TestReorderArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "empty", args: nil, want: nil},
		{name: "legacy-encode", args: []string{"in.png", "encode", "10", "out"}, want: []string{"encode", "--", "in.png", "10", "out"}},
		{name: "legacy-negative-level", args: []string{"in.png", "encode", "-1", "out"}, want: []string{"encode", "--", "in.png", "-1", "out"}},
		{name: "legacy-decode", args: []string{"in.cdr", "decode", "out"}, want: []string{"decode", "in.cdr", "out"}},
		{name: "command-first", args: []string{"encode", "in.png", "-5", "out"}, want: []string{"encode", "--", "in.png", "-5", "out"}},
		{
			name: "flags-kept-before-separator",
			args: []string{"in.png", "encode", "-1", "out", "--metric", "oklab", "--symmetric", "--pack=zstd", "-v"},
			want: []string{"encode", "--metric", "oklab", "--symmetric", "--pack=zstd", "-v", "--", "in.png", "-1", "out"},
		},
		{name: "separator-given", args: []string{"encode", "--legacy", "--", "in.png", "-1", "out"}, want: []string{"encode", "--legacy", "--", "in.png", "-1", "out"}},
		{name: "help", args: []string{"encode", "--help"}, want: []string{"encode", "--help"}},
		{name: "file-named-like-mode", args: []string{"decode", "encode"}, want: []string{"decode", "encode"}},
		{name: "info", args: []string{"info", "in.cdr"}, want: []string{"info", "in.cdr"}},
		{name: "unknown-mode", args: []string{"in.png", "shrink", "out"}, want: []string{"in.png", "shrink", "out"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := reorderArgs(tc.args); !slices.Equal(got, tc.want) {
				t.Fatalf("reorderArgs(%q) = %q, want %q", tc.args, got, tc.want)
			}
		})
	}
}

func TestParseCommandLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	if err := raster.Save(image.NewNRGBA(image.Rect(0, 0, 2, 2)), "png", src); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := filepath.Join(dir, "out")
	missing := filepath.Join(dir, "missing.png")

	tests := []struct {
		name    string
		args    []string
		wantCmd string
		want    cdr.Options
		wantErr bool
	}{
		{name: "legacy-encode", args: []string{src, "encode", "12", out}, wantCmd: "encode <input> <level> <output>", want: cdr.Options{Threshold: 12}},
		{name: "legacy-min-level", args: []string{src, "encode", "-1", out}, wantCmd: "encode <input> <level> <output>", want: cdr.Options{Threshold: -1}},
		{name: "below-range-warns", args: []string{"encode", src, "-5", out}, wantCmd: "encode <input> <level> <output>", want: cdr.Options{Threshold: -5}},
		{name: "above-range-warns", args: []string{"encode", src, "500", out}, wantCmd: "encode <input> <level> <output>", want: cdr.Options{Threshold: 500}},
		{
			name:    "encode-flags",
			args:    []string{src, "encode", "-1", out, "--metric", "oklab", "--symmetric", "--legacy"},
			wantCmd: "encode <input> <level> <output>",
			want:    cdr.Options{Threshold: -1, Metric: cdr.MetricOklab, Symmetric: true, Legacy: true},
		},
		{name: "legacy-decode", args: []string{src, "decode", out}, wantCmd: "decode <input> <output>"},
		{name: "missing-output", args: []string{src, "encode", "10"}, wantErr: true},
		{name: "level-not-integer", args: []string{src, "encode", "ten", out}, wantErr: true},
		{name: "unknown-mode", args: []string{src, "shrink", out}, wantErr: true},
		{name: "nonexistent-input", args: []string{missing, "encode", "10", out}, wantErr: true},
		{name: "nonexistent-decode-input", args: []string{missing, "decode", out}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var cli CLI
			parser, err := newParser(&cli)
			if err != nil {
				t.Fatalf("newParser: %v", err)
			}

			kctx, err := parser.Parse(reorderArgs(tc.args))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.args, err)
			}
			if got := kctx.Command(); got != tc.wantCmd {
				t.Fatalf("Command() = %q, want %q", got, tc.wantCmd)
			}
			if tc.wantCmd == "encode <input> <level> <output>" && cli.Encode.Options != tc.want {
				t.Fatalf("Options = %+v, want %+v", cli.Encode.Options, tc.want)
			}
		})
	}
}
