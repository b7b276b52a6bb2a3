package crawl

import (
	"time"

	"github.com/fwojciec/newsroom/bloom"
)

// State tracks one crawl run: the URLs discovered so far, those already
// fetched, and the run's limits. Visited is always a subset of Discovered.
type State struct {
	Discovered *Frontier
	MaxPages   int
	Delay      time.Duration

	visited *bloom.Set
}

// NewState creates an empty crawl state.
func NewState(maxPages int, delay time.Duration) *State {
	return &State{
		Discovered: NewFrontier(),
		MaxPages:   maxPages,
		Delay:      delay,
		visited:    bloom.NewSet(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Discover adds a URL to the discovered set.
func (s *State) Discover(rawURL string) bool {
	return s.Discovered.Push(rawURL)
}

// MarkVisited records that a discovered URL has been fetched.
// URLs that were never discovered are ignored.
func (s *State) MarkVisited(rawURL string) {
	if !s.Discovered.Contains(rawURL) {
		return
	}
	s.visited.Add(stripFragment(rawURL))
}

// Visited reports whether the URL has been fetched.
func (s *State) Visited(rawURL string) bool {
	return s.visited.Contains(stripFragment(rawURL))
}

// VisitedCount returns the number of fetched URLs.
func (s *State) VisitedCount() int {
	return s.visited.Len()
}

// Target returns how many pages the crawl will fetch: the smaller of the
// discovered count and MaxPages. A non-positive MaxPages means no limit.
func (s *State) Target() int {
	if s.MaxPages <= 0 {
		return s.Discovered.Len()
	}
	return min(s.Discovered.Len(), s.MaxPages)
}

// Done reports whether the crawl has fetched every page it will fetch.
func (s *State) Done() bool {
	return s.VisitedCount() >= s.Target()
}
