package newsroom

// Link sources reported by a LinkSelector.
const (
	LinkSourceNavigation = "nav"
	LinkSourceContent    = "content"
)

// DiscoveredLink represents an anchor found during discovery.
type DiscoveredLink struct {
	URL    string
	Text   string
	Source string // "nav" or "content"
}

// LinkSelector extracts candidate crawl links from HTML.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns the raw hrefs of links found in
	// navigation and main-content regions, in document order, navigation
	// first. Hrefs are returned as written; callers normalize them.
	ExtractLinks(html string) ([]DiscoveredLink, error)

	// Name returns the selector's identifier.
	Name() string
}
