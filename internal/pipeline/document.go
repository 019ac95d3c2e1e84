package pipeline

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2html/internal/assets"
)

// PageBackground is the page color behind the article.
const PageBackground = "#0d1117"

// documentTemplate wraps a fragment in a standalone page. Arguments: code
// theme CSS, body theme CSS, fragment. Nothing is escaped.
const documentTemplate = `<!DOCTYPE html>
<head>
    <meta charset="utf-8">
    <style>
        html {
            background-color: ` + PageBackground + `;
        }
        %s
        %s
        .markdown-body {
            box-sizing: border-box;
            min-width: 200px;
            max-width: 980px;
            margin: 0 auto;
            padding: 45px;
        }

        @media (max-width: 767px) {
            .markdown-body {
                padding: 15px;
            }
        }
    </style>
</head>
<article class="markdown-body">
%s
</article>
`

// DocumentAssembler defines the contract for wrapping a fragment in a page.
type DocumentAssembler interface {
	Assemble(ctx context.Context, theme assets.ThemeAssets, fragment string) (string, error)
}

// PageAssembly assembles the fixed GitHub-styled page.
type PageAssembly struct{}

// Assemble returns a complete HTML document: the code theme, then the body
// theme, then the layout rules, followed by one article holding the fragment
// verbatim.
func (a *PageAssembly) Assemble(ctx context.Context, theme assets.ThemeAssets, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf(documentTemplate, theme.CodeCSS, theme.BodyCSS, fragment), nil
}
