// Package pdf extracts plain text from agenda PDFs.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/newsroom"
	"github.com/ledongthuc/pdf"
)

// Compile-time interface verification.
var _ newsroom.TextExtractor = (*TextExtractor)(nil)

// TextExtractor implements newsroom.TextExtractor using ledongthuc/pdf.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText reads the file at path and returns its text with pages
// separated by newlines.
func (e *TextExtractor) ExtractText(ctx context.Context, path string) (*newsroom.ExtractedText, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, newsroom.Errorf(newsroom.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	return extract(ctx, content)
}

func extract(ctx context.Context, content []byte) (result *newsroom.ExtractedText, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, newsroom.Errorf(newsroom.EINVALID, "malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, newsroom.Errorf(newsroom.EINVALID, "open PDF: %v", err)
	}

	var buf bytes.Buffer
	numPages := r.NumPage()
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i + 1)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i+1, err)
		}
		buf.WriteString(text)
		if i < numPages-1 {
			buf.WriteByte('\n')
		}
	}
	return &newsroom.ExtractedText{Text: buf.String(), Pages: numPages}, nil
}
