package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// ErrInvalidEnvValue indicates an MD2HTML_* variable with an unparsable value.
var ErrInvalidEnvValue = errors.New("invalid environment variable value")

// envPrefix marks variables read by md2html.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath    string // MD2HTML_CONFIG: config file name or path
	Style         string // MD2HTML_STYLE: light or dark
	AssetPath     string // MD2HTML_ASSET_PATH: custom theme directory
	SelfContained *bool  // MD2HTML_SELF_CONTAINED: nil when unset
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":         true,
	"MD2HTML_STYLE":          true,
	"MD2HTML_ASSET_PATH":     true,
	"MD2HTML_SELF_CONTAINED": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath: getenv("MD2HTML_CONFIG"),
		Style:      getenv("MD2HTML_STYLE"),
		AssetPath:  getenv("MD2HTML_ASSET_PATH"),
	}

	if raw := getenv("MD2HTML_SELF_CONTAINED"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: MD2HTML_SELF_CONTAINED=%q (use true or false)", ErrInvalidEnvValue, raw)
		}
		cfg.SelfContained = &v
	}

	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_SELFCONTAINED.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Env values replace config file values; CLI flags are applied later,
// giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.AssetPath != "" {
		cfg.AssetPath = env.AssetPath
	}
	if env.SelfContained != nil {
		cfg.SelfContained = *env.SelfContained
	}
}
