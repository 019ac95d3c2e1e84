package md2html

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// OutputFileMode is the permission of written HTML files.
const OutputFileMode os.FileMode = 0o644

// ReadMarkdown reads a Markdown file. Content is decoded as UTF-8 by the
// renderer; invalid sequences are passed through.
func ReadMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's input file
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// WriteHTML writes a document to path, replacing any existing file.
func WriteHTML(path, document string) error {
	if err := fileutil.WriteFileAtomic(path, document, OutputFileMode); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// ConvertFile validates inv, converts its input file and writes the output
// file. Relative image paths resolve against the working directory. Extra
// options are applied after WithStyle(inv.Style).
func ConvertFile(ctx context.Context, inv Invocation, opts ...Option) (*Result, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	conv, err := NewConverter(append([]Option{WithStyle(inv.Style)}, opts...)...)
	if err != nil {
		return nil, err
	}

	markdown, err := ReadMarkdown(inv.InputPath)
	if err != nil {
		return nil, err
	}

	result, err := conv.Convert(ctx, Input{Markdown: markdown, SelfContained: inv.SelfContained})
	if err != nil {
		return nil, err
	}

	if err := WriteHTML(inv.OutputPath, result.HTML); err != nil {
		return nil, err
	}
	return result, nil
}
