package md2html

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Style selects the page theme.
type Style string

const (
	StyleDefault Style = ""      // follows prefers-color-scheme
	StyleLight   Style = "light" // always light
	StyleDark    Style = "dark"  // always dark
)

// Styles lists the named styles, as accepted on the command line.
func Styles() []Style {
	return []Style{StyleLight, StyleDark}
}

// ParseStyle converts a style name to a Style. The empty string is the
// default style. Matching is case-sensitive.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleDefault, StyleLight, StyleDark:
		return Style(s), nil
	}
	return "", fmt.Errorf("%w: %q (choose from %s)", ErrInvalidStyle, s, strings.Join(StyleNames(), ", "))
}

// StyleNames lists the named styles as strings.
func StyleNames() []string {
	styles := Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return names
}

// String returns the style name, "default" for StyleDefault.
func (s Style) String() string {
	if s == StyleDefault {
		return "default"
	}
	return string(s)
}

// themeFiles returns the body and code theme names for the style.
func (s Style) themeFiles() (assets.ThemeFiles, error) {
	files, err := assets.ThemeFilesFor(string(s))
	if err != nil {
		return assets.ThemeFiles{}, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	return files, nil
}

// Input contains the data for a single conversion.
type Input struct {
	Markdown      string // Markdown source (required)
	SourceDir     string // base directory for relative image paths (empty = working directory)
	SelfContained bool   // inline local images as data URIs
}

// ImageWarning reports an image left unchanged during inlining.
type ImageWarning struct {
	Src     string // src attribute as written in the document
	Path    string // local path the image was looked up at
	Message string // console text, e.g. "Error: image 'a.png' not found"
	Err     error  // wraps ErrImageNotFound when the file does not exist
}

// String returns the console text of the warning.
func (w ImageWarning) String() string {
	return w.Message
}

// Result contains the output of a conversion.
type Result struct {
	HTML     string         // complete HTML document
	Warnings []ImageWarning // non-fatal image problems, in document order
	Timings  []StageTiming  // per-stage wall time, in pipeline order
}

// toImageWarnings converts pipeline warnings to the public type.
func toImageWarnings(in []pipeline.ImageWarning) []ImageWarning {
	if len(in) == 0 {
		return nil
	}
	out := make([]ImageWarning, len(in))
	for i, w := range in {
		err := w.Err
		if errors.Is(err, pipeline.ErrImageNotFound) {
			err = fmt.Errorf("%w: %s", ErrImageNotFound, w.Path)
		}
		out[i] = ImageWarning{Src: w.Src, Path: w.Path, Message: w.String(), Err: err}
	}
	return out
}

// Invocation is one validated conversion request from the command line.
type Invocation struct {
	InputPath     string
	OutputPath    string
	Style         Style
	SelfContained bool
}

// Validate checks the invocation before any file is read, in order: the
// input file exists and is readable, the output ends with ".html", and the
// style is known.
func (inv *Invocation) Validate() error {
	if inv.InputPath == "" {
		return fmt.Errorf("%w: no input file given", ErrFileNotFound)
	}
	if err := fileutil.CheckReadable(inv.InputPath); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, inv.InputPath, err)
	}
	if !fileutil.HasExtension(inv.OutputPath, "html") {
		return fmt.Errorf("%w: %q", ErrInvalidOutputExtension, inv.OutputPath)
	}
	if _, err := ParseStyle(string(inv.Style)); err != nil {
		return err
	}
	return nil
}
