package newsroom

// ExtractResult holds the structured content extracted from an HTML page.
type ExtractResult struct {
	// Title is the text of the page's <title> element.
	Title string

	// Content is everything extracted from the page body.
	Content PageContent
}

// Extractor turns raw page markup into structured content.
type Extractor interface {
	// Extract parses rawHTML and returns its structured content.
	// The pageURL is used to resolve relative links and image sources.
	// Extraction is best-effort: missing elements yield empty collections.
	Extract(rawHTML string, pageURL string) (*ExtractResult, error)
}
