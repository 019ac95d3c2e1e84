package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2html/internal/assets"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// CodeClassPrefix precedes the fence language in the class of <code>.
const CodeClassPrefix = "hljs language-"

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// chroma highlighting of fenced code blocks.
//
// Soft line breaks stay soft, raw HTML is passed through unsanitized (the
// author invoking the tool is trusted), and typographic substitutions are off.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(codeFormatOptions()...),
				highlighting.WithWrapperRenderer(renderCodeWrapper),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// codeFormatOptions returns the chroma options for code blocks: the class
// names shared with the code theme CSS, without chroma's own <pre> wrapper.
func codeFormatOptions() []chromahtml.Option {
	opts := make([]chromahtml.Option, 0, len(assets.HighlightFormatterOptions)+1)
	opts = append(opts, assets.HighlightFormatterOptions...)
	return append(opts, chromahtml.PreventSurroundingPre(true))
}

// renderCodeWrapper writes the <pre><code> pair around every fenced block,
// highlighted or not, so the theme CSS matches both.
func renderCodeWrapper(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return
	}

	_, _ = w.WriteString(`<pre class="chroma"><code`)
	if lang, ok := c.Language(); ok && len(lang) > 0 {
		_, _ = w.WriteString(` class="` + CodeClassPrefix)
		_, _ = w.Write(util.EscapeHTML(lang))
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('>')
}
