package mock

import "github.com/fwojciec/newsroom"

var _ newsroom.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of newsroom.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string) ([]newsroom.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string) ([]newsroom.DiscoveredLink, error) {
	return s.ExtractLinksFn(html)
}

func (s *LinkSelector) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
