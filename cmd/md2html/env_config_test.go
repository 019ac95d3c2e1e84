package main

// Notes:
// - Environment lookups are injected as maps, so these tests run in parallel
//   without touching the process environment.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/config"
)

func mapGetenv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadEnvConfig(mapGetenv(map[string]string{
			"MD2HTML_CONFIG":         "/etc/md2html.yaml",
			"MD2HTML_STYLE":          "dark",
			"MD2HTML_ASSET_PATH":     "/opt/themes",
			"MD2HTML_SELF_CONTAINED": "true",
		}))
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}

		if cfg.ConfigPath != "/etc/md2html.yaml" {
			t.Errorf("ConfigPath = %q", cfg.ConfigPath)
		}
		if cfg.Style != "dark" {
			t.Errorf("Style = %q, want dark", cfg.Style)
		}
		if cfg.AssetPath != "/opt/themes" {
			t.Errorf("AssetPath = %q", cfg.AssetPath)
		}
		if cfg.SelfContained == nil || !*cfg.SelfContained {
			t.Errorf("SelfContained = %v, want true", cfg.SelfContained)
		}
	})

	t.Run("unset variables", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadEnvConfig(mapGetenv(nil))
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}
		if cfg.SelfContained != nil {
			t.Errorf("SelfContained = %v, want nil", *cfg.SelfContained)
		}
	})

	t.Run("self-contained accepts strconv booleans", func(t *testing.T) {
		t.Parallel()

		for raw, want := range map[string]bool{"1": true, "0": false, "FALSE": false, "t": true} {
			cfg, err := loadEnvConfig(mapGetenv(map[string]string{"MD2HTML_SELF_CONTAINED": raw}))
			if err != nil {
				t.Fatalf("loadEnvConfig(%q) error = %v", raw, err)
			}
			if *cfg.SelfContained != want {
				t.Errorf("SelfContained(%q) = %v, want %v", raw, *cfg.SelfContained, want)
			}
		}
	})

	t.Run("invalid self-contained value", func(t *testing.T) {
		t.Parallel()

		_, err := loadEnvConfig(mapGetenv(map[string]string{"MD2HTML_SELF_CONTAINED": "yes please"}))
		if !errors.Is(err, ErrInvalidEnvValue) {
			t.Errorf("loadEnvConfig() error = %v, want ErrInvalidEnvValue", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"MD2HTML_STYLE=dark",
		"MD2HTML_SELFCONTAINED=1",
		"MD2HTML_THEME=x=y",
		"PATH=/usr/bin",
		"MD2PDF_STYLE=ignored",
	})

	out := buf.String()
	if !strings.Contains(out, "unknown environment variable MD2HTML_SELFCONTAINED") {
		t.Errorf("missing typo warning, got %q", out)
	}
	if !strings.Contains(out, "unknown environment variable MD2HTML_THEME (typo?)") {
		t.Errorf("missing warning for MD2HTML_THEME, got %q", out)
	}
	if strings.Contains(out, "MD2HTML_STYLE") || strings.Contains(out, "PATH") || strings.Contains(out, "MD2PDF") {
		t.Errorf("unexpected warning, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env overrides config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	off := false

	tests := []struct {
		name string
		env  envConfig
		cfg  config.Config
		want config.Config
	}{
		{
			name: "empty env keeps config",
			env:  envConfig{},
			cfg:  config.Config{Style: "light", SelfContained: true, AssetPath: "/a"},
			want: config.Config{Style: "light", SelfContained: true, AssetPath: "/a"},
		},
		{
			name: "env overrides config",
			env:  envConfig{Style: "dark", AssetPath: "/b", SelfContained: &off},
			cfg:  config.Config{Style: "light", SelfContained: true, AssetPath: "/a"},
			want: config.Config{Style: "dark", SelfContained: false, AssetPath: "/b"},
		},
		{
			name: "quiet is config only",
			env:  envConfig{Style: "dark"},
			cfg:  config.Config{Quiet: true},
			want: config.Config{Style: "dark", Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			env := tt.env
			applyEnvConfig(&env, &cfg)
			if cfg != tt.want {
				t.Errorf("applyEnvConfig() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
