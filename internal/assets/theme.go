package assets

import (
	"fmt"
	"sort"
)

// ThemeFiles names the two stylesheets that make up a theme.
type ThemeFiles struct {
	Body string // Markdown body theme, e.g. "github-markdown-dark"
	Code string // code highlight theme, e.g. "github-dark"
}

// ThemeAssets holds the loaded stylesheets of a theme.
type ThemeAssets struct {
	BodyCSS string
	CodeCSS string
}

// themes maps style names to theme files. The empty name is the default
// theme, which follows the reader's color scheme.
var themes = map[string]ThemeFiles{
	"":      {Body: "github-markdown", Code: "github"},
	"light": {Body: "github-markdown-light", Code: "github"},
	"dark":  {Body: "github-markdown-dark", Code: "github-dark"},
}

// ThemeFilesFor returns the theme files for a style name.
// Returns ErrUnknownTheme for names outside the theme table.
func ThemeFilesFor(style string) (ThemeFiles, error) {
	files, ok := themes[style]
	if !ok {
		return ThemeFiles{}, fmt.Errorf("%w: %q", ErrUnknownTheme, style)
	}
	return files, nil
}

// ThemeNames lists the named styles accepted by ThemeFilesFor, sorted.
// The unnamed default style is not listed.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// LoadTheme loads both stylesheets of a style through loader.
func LoadTheme(loader AssetLoader, style string) (ThemeAssets, error) {
	files, err := ThemeFilesFor(style)
	if err != nil {
		return ThemeAssets{}, err
	}

	body, err := loader.LoadStyle(files.Body)
	if err != nil {
		return ThemeAssets{}, fmt.Errorf("loading body theme: %w", err)
	}

	code, err := loader.LoadHighlight(files.Code)
	if err != nil {
		return ThemeAssets{}, fmt.Errorf("loading code theme: %w", err)
	}

	return ThemeAssets{BodyCSS: body, CodeCSS: code}, nil
}
