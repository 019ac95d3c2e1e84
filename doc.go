// Package md2html converts Markdown documents to standalone HTML pages styled
// with GitHub's stylesheet.
//
// # Quick Start
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	md2html.WriteHTML("hello.html", result.HTML)
//
// # Conversion Pipeline
//
//  1. Source normalization (BOM, line endings)
//  2. Markdown to HTML via goldmark (CommonMark + GFM, chroma highlighting)
//  3. Optional image inlining (local images become base64 data URIs)
//  4. Page assembly (code theme, body theme, layout rules, one article)
//
// # Styles
//
// StyleDefault follows the reader's color scheme. StyleLight and StyleDark
// pin the page to one palette:
//
//	conv, err := md2html.NewConverter(md2html.WithStyle(md2html.StyleDark))
//
// # Custom Assets
//
// WithAssetPath overrides individual theme files; anything missing falls
// back to the built-in themes:
//
//	assets/
//	├── styles/
//	│   └── github-markdown-dark.css
//	└── highlight/
//	    └── github-dark.css
//
// # Self-Contained Output
//
// Input.SelfContained replaces every local <img> source with a data URI.
// Remote and data URLs are left alone; missing files are reported in
// Result.Warnings and never fail the conversion.
package md2html
