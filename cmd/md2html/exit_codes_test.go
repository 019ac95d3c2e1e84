package main

// Notes:
// - exitCodeFor: we test sentinel errors from md2html, config and this
//   package, plus wrapped errors to verify errors.Is() chains.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Asset errors (exit 4)
		{"asset not found", md2html.ErrAssetNotFound, ExitAssets},
		{"wrapped asset not found", fmt.Errorf("loading: %w", md2html.ErrAssetNotFound), ExitAssets},

		// Usage errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid env value", ErrInvalidEnvValue, ExitUsage},
		{"invalid style", md2html.ErrInvalidStyle, ExitUsage},
		{"invalid output extension", md2html.ErrInvalidOutputExtension, ExitUsage},
		{"invalid asset path", md2html.ErrInvalidAssetPath, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config empty name", config.ErrEmptyConfigName, ExitUsage},
		{"config field too long", config.ErrFieldTooLong, ExitUsage},
		{"config invalid style", config.ErrInvalidStyle, ExitUsage},
		{"wrapped usage", fmt.Errorf("%w: -f/--file is required", ErrUsage), ExitUsage},

		// I/O errors (exit 3)
		{"file not found", md2html.ErrFileNotFound, ExitIO},
		{"read markdown", md2html.ErrReadMarkdown, ExitIO},
		{"write output", md2html.ErrWriteOutput, ExitIO},
		{"os not exist", os.ErrNotExist, ExitIO},
		{"os permission", fmt.Errorf("reading config file: %w", os.ErrPermission), ExitIO},

		// General errors (exit 1)
		{"html conversion", md2html.ErrHTMLConversion, ExitGeneral},
		{"unknown", errors.New("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Values(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitAssets}
	for i, code := range codes {
		if code != i {
			t.Errorf("exit code %d = %d, want %d", i, code, i)
		}
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved range", code)
		}
	}
}
