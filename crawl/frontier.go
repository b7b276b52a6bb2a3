package crawl

import (
	"strings"

	"github.com/fwojciec/newsroom/bloom"
)

// Frontier sizing for the Bloom prefilter.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Frontier is an insertion-ordered set of URLs awaiting a crawl.
// URLs differing only by fragment are duplicates.
// It is not safe for concurrent use; a crawl owns its frontier.
type Frontier struct {
	seen *bloom.Set
	urls []string
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: bloom.NewSet(frontierExpectedURLs, frontierFalsePositiveRate)}
}

// Push adds a URL to the frontier with its fragment stripped.
// Returns false if the URL is already present.
func (f *Frontier) Push(rawURL string) bool {
	u := stripFragment(rawURL)
	if !f.seen.Add(u) {
		return false
	}
	f.urls = append(f.urls, u)
	return true
}

// Contains reports whether the URL, ignoring its fragment, is present.
func (f *Frontier) Contains(rawURL string) bool {
	return f.seen.Contains(stripFragment(rawURL))
}

// URLs returns the URLs in the order they were first pushed.
func (f *Frontier) URLs() []string {
	return f.urls
}

// Len returns the number of URLs in the frontier.
func (f *Frontier) Len() int {
	return len(f.urls)
}

func stripFragment(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		return rawURL[:idx]
	}
	return rawURL
}
