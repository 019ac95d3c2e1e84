package config

// Notes:
// - Tests that chdir or set HOME/XDG_CONFIG_HOME cannot run in parallel:
//   the working directory and environment are process-wide.
// - The unreadable-file case is skipped as root.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Style != "" {
		t.Errorf("Style = %q, want empty", cfg.Style)
	}
	if cfg.SelfContained {
		t.Error("SelfContained = true, want false")
	}
	if cfg.AssetPath != "" {
		t.Errorf("AssetPath = %q, want empty", cfg.AssetPath)
	}
	if cfg.Quiet {
		t.Error("Quiet = true, want false")
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit is invalid", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"zero config", Config{}, nil},
		{"light style", Config{Style: "light"}, nil},
		{"dark style", Config{Style: "dark"}, nil},
		{"unknown style", Config{Style: "solarized"}, ErrInvalidStyle},
		{"style is case-sensitive", Config{Style: "Dark"}, ErrInvalidStyle},
		{"asset path at limit", Config{AssetPath: strings.Repeat("a", MaxAssetPathLength)}, nil},
		{"asset path too long", Config{AssetPath: strings.Repeat("a", MaxAssetPathLength+1)}, ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File path loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "test.yaml", `style: dark
selfContained: true
assetPath: /opt/themes
quiet: true
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := Config{Style: "dark", SelfContained: true, AssetPath: "/opt/themes", Quiet: true}
		if *cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("partial config leaves other fields unset", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "partial.yml", "selfContained: true\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Style != "" || !cfg.SelfContained {
			t.Errorf("LoadConfig() = %+v", *cfg)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "invalid.yaml", "style: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "style: dark\nself_contained: true\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file returns ErrEmptyInput", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "empty.yaml", "")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) || !errors.Is(err, ErrEmptyInput) {
			t.Errorf("error = %v, want ErrConfigParse wrapping ErrEmptyInput", err)
		}
	})

	t.Run("invalid style returns ErrInvalidStyle", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "style.yaml", "style: sepia\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("error = %v, want ErrInvalidStyle", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}

		path := writeConfig(t, t.TempDir(), "unreadable.yaml", "style: dark\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}

		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("LoadConfig() expected error")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, should not be ErrConfigNotFound", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig_ByName - Search in working and user config directories
// ---------------------------------------------------------------------------

func TestLoadConfig_ByName(t *testing.T) {
	t.Run("found in working directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "work.yaml", "style: light\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("work")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Style != "light" {
			t.Errorf("Style = %q, want light", cfg.Style)
		}
	})

	t.Run("yml extension is tried", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "alt.yml", "quiet: true\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("alt")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Quiet {
			t.Error("Quiet = false, want true")
		}
	})

	t.Run("found in user config directory", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		appDir := filepath.Join(xdg, AppDirName)
		if err := os.MkdirAll(appDir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeConfig(t, appDir, "shared.yaml", "style: dark\n")

		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Style != "dark" {
			t.Errorf("Style = %q, want dark", cfg.Style)
		}
	})

	t.Run("not found lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nothing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nothing.yaml") || !strings.Contains(err.Error(), "nothing.yml") {
			t.Errorf("error = %v, want tried paths listed", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/me")

	paths := SearchPaths("work")

	if len(paths) < 2 || paths[0] != "work.yaml" || paths[1] != "work.yml" {
		t.Fatalf("SearchPaths() = %v, want working directory first", paths)
	}

	found := false
	for _, p := range paths[2:] {
		if strings.Contains(filepath.ToSlash(p), "/"+AppDirName+"/work.") {
			found = true
		}
	}
	if !found {
		t.Errorf("SearchPaths() = %v, want user config directory entries", paths)
	}
}
