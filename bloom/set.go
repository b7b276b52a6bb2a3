// Package bloom provides string sets backed by Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Set is an exact string set that consults a Bloom filter before its map.
// Negative lookups, the common case while crawling, never touch the map.
// Set is not safe for concurrent use.
type Set struct {
	filter *bloom.BloomFilter
	items  map[string]struct{}
}

// NewSet creates a Set sized for n expected items with the given false
// positive rate for the prefilter.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		filter: bloom.NewWithEstimates(n, fpRate),
		items:  make(map[string]struct{}, n),
	}
}

// Add inserts item and reports whether it was not already present.
func (s *Set) Add(item string) bool {
	if s.Contains(item) {
		return false
	}
	s.filter.AddString(item)
	s.items[item] = struct{}{}
	return true
}

// Contains reports whether item is in the set. Unlike a bare Bloom filter
// it never reports false positives.
func (s *Set) Contains(item string) bool {
	if !s.filter.TestString(item) {
		return false
	}
	_, ok := s.items[item]
	return ok
}

// Len returns the number of items in the set.
func (s *Set) Len() int {
	return len(s.items)
}

// EstimatedCount returns the prefilter's approximation of the item count.
func (s *Set) EstimatedCount() uint {
	return uint(s.filter.ApproximatedSize())
}
