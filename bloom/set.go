// Package bloom provides URL sets backed by Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Set is an exact set of URLs. A Bloom filter answers most negative
// lookups without touching the map; positives are confirmed against the
// map, so Set never reports a URL it was not given.
//
// Set is not safe for concurrent use.
type Set struct {
	filter *bloom.BloomFilter
	items  map[string]struct{}
}

// NewSet creates a Set sized for n expected URLs with the given
// false positive rate for the filter fast path.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		filter: bloom.NewWithEstimates(n, fpRate),
		items:  make(map[string]struct{}),
	}
}

// Add adds a URL to the set.
// Returns false if the URL was already present.
func (s *Set) Add(url string) bool {
	if s.Has(url) {
		return false
	}
	s.filter.AddString(url)
	s.items[url] = struct{}{}
	return true
}

// Has reports whether the URL is in the set.
func (s *Set) Has(url string) bool {
	if !s.filter.TestString(url) {
		return false
	}
	_, ok := s.items[url]
	return ok
}

// Len returns the number of URLs in the set.
func (s *Set) Len() int {
	return len(s.items)
}

// EstimatedCount returns the filter's approximation of the set size.
func (s *Set) EstimatedCount() uint {
	return uint(s.filter.ApproximatedSize())
}
