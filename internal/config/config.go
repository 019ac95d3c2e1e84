// Package config loads md2html settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidStyle    = errors.New("invalid style")
)

// MaxAssetPathLength bounds assetPath; longer values are rejected before any
// filesystem access.
const MaxAssetPathLength = 4096

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-md2html"

// Config holds the settings a config file may provide. Zero values mean
// "not set": flags and environment variables override whatever is here.
type Config struct {
	Style         string `yaml:"style"`         // "", "light" or "dark"
	SelfContained bool   `yaml:"selfContained"` // inline local images
	AssetPath     string `yaml:"assetPath"`     // custom theme directory (empty = built-in)
	Quiet         bool   `yaml:"quiet"`         // only print errors
}

// Validate checks the style name and field lengths.
// Called automatically by LoadConfig, but available for library users who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Style != "" && !slices.Contains(assets.ThemeNames(), c.Style) {
		return fmt.Errorf("%w: style %q (must be one of %s)",
			ErrInvalidStyle, c.Style, strings.Join(assets.ThemeNames(), ", "))
	}
	return validateFieldLength("assetPath", c.AssetPath, MaxAssetPathLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// default theme, external images, built-in assets.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths order.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// name.yaml and name.yml in the working directory, then in the
// go-md2html directory under the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
