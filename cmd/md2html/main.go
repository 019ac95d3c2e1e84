// Command md2html converts a Markdown file to a standalone HTML page.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain parses args, runs one conversion and returns the exit code.
func runMain(args []string, env *Environment) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'md2html --help' for usage.")
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	}

	// Configure GOMAXPROCS with conditional logging
	if env.SetMaxProcs != nil {
		if flags.verbose {
			env.SetMaxProcs(func(format string, args ...interface{}) {
				fmt.Fprintf(env.Stderr, format+"\n", args...)
			})
		} else {
			env.SetMaxProcs(func(string, ...interface{}) {})
		}
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	s, err := resolveSettings(flags, env)
	if err == nil {
		err = run(ctx, s, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err, s))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// settings is the merged result of flags, environment and config file.
type settings struct {
	inv        md2html.Invocation
	assetPath  string
	configName string
	quiet      bool
	verbose    bool
}

// resolveSettings merges sources with precedence: flags > env > config > defaults.
func resolveSettings(f *cliFlags, env *Environment) (*settings, error) {
	if err := f.checkRequired(); err != nil {
		return nil, err
	}

	envCfg, err := loadEnvConfig(env.Getenv)
	if err != nil {
		return nil, err
	}

	s := &settings{verbose: f.verbose}

	s.configName = envCfg.ConfigPath
	if f.changed["config"] {
		s.configName = f.config
	}

	cfg := config.DefaultConfig()
	if s.configName != "" {
		if cfg, err = config.LoadConfig(s.configName); err != nil {
			return s, err
		}
	}

	applyEnvConfig(envCfg, cfg)

	if f.changed["style"] {
		cfg.Style = f.style
	}
	if f.changed[selfContainedFlag] {
		cfg.SelfContained = f.selfContained
	}
	if f.changed["asset-path"] {
		cfg.AssetPath = f.assetPath
	}
	if f.changed["quiet"] {
		cfg.Quiet = f.quiet
	}

	s.inv = md2html.Invocation{
		InputPath:     f.file,
		OutputPath:    f.output,
		Style:         md2html.Style(cfg.Style),
		SelfContained: cfg.SelfContained,
	}
	s.assetPath = cfg.AssetPath
	s.quiet = cfg.Quiet && !f.verbose

	if !s.quiet && env.Environ != nil {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	return s, nil
}

// run converts one file and reports the outcome.
func run(ctx context.Context, s *settings, env *Environment) error {
	start := env.Now()

	result, err := md2html.ConvertFile(ctx, s.inv, md2html.WithAssetPath(s.assetPath))
	if err != nil {
		return err
	}

	if !s.quiet {
		for _, w := range result.Warnings {
			fmt.Fprintln(env.Stderr, w)
			if s.verbose && errors.Is(w.Err, md2html.ErrImageNotFound) {
				fmt.Fprintln(env.Stderr, strings.TrimPrefix(hints.ForImageNotFound(w.Src), "\n"))
			}
		}
	}

	if s.verbose {
		for _, timing := range result.Timings {
			fmt.Fprintf(env.Stderr, "  %-10s %v\n", timing.Stage, timing.Duration.Round(time.Microsecond))
		}
		fmt.Fprintf(env.Stderr, "  %-10s %v\n", "total", env.Now().Sub(start).Round(time.Microsecond))
	}

	if !s.quiet {
		suffix := ""
		if s.inv.SelfContained {
			suffix = " (self-contained)"
		}
		fmt.Fprintf(env.Stdout, "Success: %s -> %s%s\n", s.inv.InputPath, s.inv.OutputPath, suffix)
	}
	return nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, s *settings) string {
	switch {
	case errors.Is(err, md2html.ErrInvalidStyle), errors.Is(err, config.ErrInvalidStyle):
		return hints.ForStyleNotFound(md2html.StyleNames())
	case errors.Is(err, md2html.ErrInvalidOutputExtension) && s != nil:
		return hints.ForOutputExtension(s.inv.OutputPath)
	case errors.Is(err, config.ErrConfigNotFound) && s != nil && !fileutil.IsFilePath(s.configName):
		return hints.ForConfigNotFound(config.SearchPaths(s.configName))
	case errors.Is(err, md2html.ErrInvalidAssetPath), errors.Is(err, md2html.ErrAssetNotFound):
		if s == nil {
			return hints.ForAssetPath("")
		}
		return hints.ForAssetPath(s.assetPath)
	case errors.Is(err, md2html.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
