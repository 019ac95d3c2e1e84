// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForOutputExtension suggests a corrected output name.
func ForOutputExtension(output string) string {
	if output == "" {
		return format("output file must end with .html")
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return format("output file must end with .html, e.g. " + base + ".html")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForAssetPath describes the expected layout of a custom asset directory.
func ForAssetPath(dir string) string {
	if dir == "" {
		return format("built-in themes are missing; reinstall md2html")
	}
	return formatHints([]string{
		"body themes go in " + filepath.Join(dir, "styles", "<name>.css"),
		"code themes go in " + filepath.Join(dir, "highlight", "<name>.css"),
	})
}

// ForImageNotFound explains how image paths are resolved.
func ForImageNotFound(src string) string {
	hints := []string{"image paths resolve relative to the working directory"}
	if strings.Contains(src, "://") && !strings.HasPrefix(src, "file://") {
		hints = append(hints, "only http, https and file URLs are recognized")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
