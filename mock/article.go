package mock

import "github.com/fwojciec/newsroom"

var _ newsroom.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of newsroom.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(rawHTML string) (*newsroom.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(rawHTML string) (*newsroom.Article, error) {
	return e.ExtractArticleFn(rawHTML)
}

var _ newsroom.Converter = (*Converter)(nil)

// Converter is a mock implementation of newsroom.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
