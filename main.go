package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"cdrimg/batch"
	"cdrimg/decode"
	"cdrimg/encode"
	"cdrimg/info"
	"cdrimg/parallel"

	"github.com/alecthomas/kong"
)

//go:embed usage.txt
var usage string

type CLI struct {
	Verbose bool `help:"Enable debug logging" short:"v"`
	Workers int  `help:"Number of parallel workers for batch, 0 uses all CPUs" default:"0"`

	Encode encode.CLICmd `cmd:"" help:"Compress an image into a CDR stream"`
	Decode decode.CLICmd `cmd:"" help:"Reconstruct an image from a CDR stream"`
	Info   info.CLICmd   `cmd:"" help:"Describe a CDR stream"`
	Batch  batch.CLICmd  `cmd:"" help:"Compress every image in a folder"`
}

var modes = []string{"encode", "decode"}

// Flags of the encode command line that take a separate value.
var valueFlags = []string{"--metric", "--pack", "--max-width", "--max-height", "--denoise", "--workers"}

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// reorderArgs accepts the historical "<input> <mode> ..." form and moves
// the mode in front, where kong expects the command. Encode positionals
// are placed after "--" so a negative level is not read as a flag.
func reorderArgs(args []string) []string {
	if len(args) >= 2 && slices.Contains(modes, args[1]) && !slices.Contains(modes, args[0]) {
		out := make([]string, 0, len(args))
		out = append(out, args[1], args[0])
		args = append(out, args[2:]...)
	}

	if len(args) == 0 || args[0] != "encode" || slices.Contains(args, "--") {
		return args
	}

	var flags, positionals []string
	for i := 1; i < len(args); i++ {
		tok := args[i]
		if !strings.HasPrefix(tok, "-") || negativeNumber.MatchString(tok) {
			positionals = append(positionals, tok)
			continue
		}
		flags = append(flags, tok)
		if slices.Contains(valueFlags, tok) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	out := append([]string{"encode"}, flags...)
	if len(positionals) == 0 {
		return out
	}
	out = append(out, "--")
	return append(out, positionals...)
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("cdrimg"),
		kong.Description("Lossy rectangle image codec."),
		kong.WithHyphenPrefixedParameters(true),
	)
}

func usageError(err error) {
	slog.Error("invalid arguments", "error", err)
	fmt.Fprint(os.Stderr, usage)
	os.Exit(1)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	args := reorderArgs(os.Args[1:])
	if len(args) == 0 {
		usageError(fmt.Errorf("no command given"))
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		usageError(err)
	}

	if cli.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	pool := parallel.Start(cli.Workers)
	if err := kctx.Run(pool.Do, pool.Wait); err != nil {
		pool.Cancel()
		slog.Error("failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
