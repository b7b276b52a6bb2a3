package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsroom"
)

var _ newsroom.LinkSelector = (*LinkSelector)(nil)

// discoveryNavigationSelector widens the navigation region with the page
// header and footer, which carry most section links on municipal sites.
const discoveryNavigationSelector = navigationSelector + ", header a, footer a"

// LinkSelector finds crawl candidates in a page's navigation and
// main-content regions.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// Name returns the selector's identifier.
func (s *LinkSelector) Name() string {
	return "navigation"
}

// ExtractLinks returns every anchor with a non-empty href, navigation
// regions first, each group in document order. Hrefs are returned as
// written; deduplication and validation are left to the caller.
func (s *LinkSelector) ExtractLinks(html string) ([]newsroom.DiscoveredLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsroom.Errorf(newsroom.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []newsroom.DiscoveredLink
	collect := func(selector, source string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || strings.TrimSpace(href) == "" {
				return
			}
			links = append(links, newsroom.DiscoveredLink{
				URL:    href,
				Text:   strings.TrimSpace(sel.Text()),
				Source: source,
			})
		})
	}

	collect(discoveryNavigationSelector, newsroom.LinkSourceNavigation)
	collect(contentSelector, newsroom.LinkSourceContent)

	return links, nil
}
