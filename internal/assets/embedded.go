package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

//go:embed styles/*.css
var bodyStyles embed.FS

// HighlightFormatterOptions are the chroma formatter options shared by the
// code theme CSS and the renderer. Both sides must agree on class names.
var HighlightFormatterOptions = []chromahtml.Option{
	chromahtml.WithClasses(true),
}

// EmbeddedLoader loads body themes from the embedded filesystem and code
// themes from chroma's style registry.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a body theme from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := bodyStyles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadHighlight renders the chroma style registered under name as CSS rules
// scoped to the .chroma class.
func (e *EmbeddedLoader) LoadHighlight(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	// styles.Get falls back silently; a theme that is not registered is an
	// installation defect and must surface.
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrHighlightNotFound, name)
	}

	var buf strings.Builder
	formatter := chromahtml.New(HighlightFormatterOptions...)
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrAssetRead, name, err)
	}

	return buf.String(), nil
}

// EmbeddedStyleNames lists the embedded body themes, sorted.
func EmbeddedStyleNames() []string {
	entries, err := fs.ReadDir(bodyStyles, "styles")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".css"))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
