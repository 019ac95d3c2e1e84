package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("usage error")

// selfContainedFlag is the canonical name of the inlining flag.
const selfContainedFlag = "self_contained"

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	file          string
	output        string
	style         string
	selfContained bool
	config        string
	assetPath     string
	quiet         bool
	verbose       bool
	version       bool
	help          bool

	// changed records flags set explicitly, so they override env and config.
	changed map[string]bool
}

// normalizeArgs rewrites the two-letter short form -sc, which pflag would
// otherwise read as -s with value "c".
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		switch {
		case arg == "-sc":
			out = append(out, "--"+selfContainedFlag)
		case strings.HasPrefix(arg, "-sc="):
			out = append(out, "--"+selfContainedFlag+"="+strings.TrimPrefix(arg, "-sc="))
		default:
			out = append(out, arg)
		}
	}
	return out
}

// normalizeFlagName accepts --self-contained as an alias of --self_contained.
func normalizeFlagName(_ *flag.FlagSet, name string) flag.NormalizedName {
	if name == "self-contained" {
		name = selfContainedFlag
	}
	return flag.NormalizedName(name)
}

// parseFlags parses command-line flags (without the program name).
// Positional arguments are rejected: input and output are named flags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetNormalizeFunc(normalizeFlagName)
	f := &cliFlags{}

	fs.StringVarP(&f.file, "file", "f", "", "markdown file to convert")
	fs.StringVarP(&f.output, "output", "o", "", "HTML file to write")
	fs.StringVarP(&f.style, "style", "s", "", "theme: light or dark")
	fs.BoolVar(&f.selfContained, selfContainedFlag, false, "embed local images as data URIs")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print stage timings")
	fs.BoolVar(&f.version, "version", false, "print version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q (use -f <file> -o <output>)", ErrUsage, fs.Arg(0))
	}

	f.changed = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, nil
}

// checkRequired reports the first missing required flag.
func (f *cliFlags) checkRequired() error {
	if f.file == "" {
		return fmt.Errorf("%w: -f/--file is required", ErrUsage)
	}
	if f.output == "" {
		return fmt.Errorf("%w: -o/--output is required", ErrUsage)
	}
	return nil
}
