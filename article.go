package newsroom

// Article is the main readable region of a page, as HTML.
type Article struct {
	Title       string
	ContentHTML string
}

// ArticleExtractor isolates the main readable region of a page, dropping
// navigation, sidebars, and footers.
type ArticleExtractor interface {
	ExtractArticle(rawHTML string) (*Article, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an ArticleExtractor).
	Convert(html string) (string, error)
}
