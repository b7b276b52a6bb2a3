// Package trafilatura isolates the readable article of a page with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/newsroom"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements newsroom.ArticleExtractor at compile time.
var _ newsroom.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura. Its fallback mode also runs readability
// and DOM distiller and keeps the best candidate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle returns the page's main content as HTML.
func (e *Extractor) ExtractArticle(rawHTML string) (*newsroom.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsroom.Errorf(newsroom.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, newsroom.Errorf(newsroom.EINVALID, "no readable content: %v", err)
	}

	article := &newsroom.Article{Title: result.Metadata.Title}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		article.ContentHTML = buf.String()
	}
	return article, nil
}
