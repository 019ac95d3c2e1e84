package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// utf8BOM is stripped from the start of Markdown sources.
const utf8BOM = "\uFEFF"

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourceNormalizer makes rendering independent of the platform the source
// was authored on. It never changes Markdown semantics.
type SourceNormalizer struct{}

// PreprocessMarkdown strips a leading BOM and converts line endings to \n.
func (p *SourceNormalizer) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, utf8BOM)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
