package md2html

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourceNormalizer)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.ImageInliner         = (*pipeline.DataURIInliner)(nil)
	_ pipeline.DocumentAssembler    = (*pipeline.PageAssembly)(nil)
	_ assets.AssetLoader            = (*assets.AssetResolver)(nil)
)

// Stage names reported in Result.Timings.
const (
	StagePreprocess = "preprocess"
	StageRender     = "render"
	StageInline     = "inline"
	StageAssemble   = "assemble"
)

// StageTiming is the wall time spent in one pipeline stage.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// Converter orchestrates the markdown-to-HTML pipeline.
// Theme assets are loaded once by NewConverter; Convert is safe for
// concurrent use.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	theme         assets.ThemeAssets
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	imageInliner  pipeline.ImageInliner
	assembler     pipeline.DocumentAssembler
}

// NewConverter creates a Converter and loads its theme.
// Returns ErrInvalidStyle for an unknown style, ErrInvalidAssetPath when the
// asset directory is unusable, and ErrAssetNotFound when a theme file is
// missing everywhere.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		preprocessor:  &pipeline.SourceNormalizer{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		imageInliner:  &pipeline.DataURIInliner{},
		assembler:     &pipeline.PageAssembly{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if _, err := c.cfg.style.themeFiles(); err != nil {
		return nil, err
	}

	// Tests may inject a loader; otherwise resolve custom-first, embedded fallback
	if c.assetLoader == nil {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	theme, err := assets.LoadTheme(c.assetLoader, string(c.cfg.style))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	}
	c.theme = theme

	return c, nil
}

// Style returns the style the converter was built with.
func (c *Converter) Style() Style {
	return c.cfg.style
}

// Convert runs the pipeline and returns the complete HTML document.
// Missing images in self-contained mode are reported in Result.Warnings.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	result = &Result{}
	stage := func(name string, start time.Time) {
		result.Timings = append(result.Timings, StageTiming{Stage: name, Duration: time.Since(start)})
	}

	start := time.Now()
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	stage(StagePreprocess, start)

	start = time.Now()
	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !errors.Is(err, ErrHTMLConversion) {
			err = fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return nil, err
	}
	stage(StageRender, start)

	// Inlining runs on the fragment: every <img> in the page comes from it,
	// and the page shell stays byte-identical to the non-inlined output.
	if input.SelfContained {
		start = time.Now()
		var warnings []pipeline.ImageWarning
		fragment, warnings, err = c.imageInliner.InlineImages(ctx, fragment, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("inlining images: %w", err)
		}
		result.Warnings = toImageWarnings(warnings)
		stage(StageInline, start)
	}

	start = time.Now()
	document, err := c.assembler.Assemble(ctx, c.theme, fragment)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}
	stage(StageAssemble, start)

	result.HTML = document
	return result, nil
}
