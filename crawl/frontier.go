package crawl

import (
	"sync"

	"github.com/fwojciec/docbundle"
	"github.com/fwojciec/docbundle/bloom"
)

// Compile-time interface verification.
var _ docbundle.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory breadth-first URL frontier.
// URLs are handed out in the order they were pushed. A URL is accepted at
// most once, so it can never be queued while already queued or visited.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu      sync.Mutex
	seen    *bloom.Set // queued or visited
	visited *bloom.Set
	queue   []string
	head    int
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for the set fast paths.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen:    bloom.NewSet(n, fpRate),
		visited: bloom.NewSet(n, fpRate),
	}
}

// Push appends a URL to the queue.
// Returns false if the URL is invalid or was already queued or visited.
// URLs are normalized first, so URLs differing only by query or fragment
// are duplicates.
func (f *Frontier) Push(rawURL string) bool {
	url, err := docbundle.NormalizeURL(rawURL)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.seen.Add(url) {
		return false
	}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the earliest queued URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.head == len(f.queue) {
		return "", false
	}
	url := f.queue[f.head]
	f.queue[f.head] = ""
	f.head++

	// Reclaim the consumed prefix once it dominates the slice.
	if f.head > 1024 && f.head*2 > len(f.queue) {
		f.queue = append([]string(nil), f.queue[f.head:]...)
		f.head = 0
	}
	return url, true
}

// Visit marks a URL as visited.
// Returns false if it had already been visited.
func (f *Frontier) Visit(rawURL string) bool {
	url, err := docbundle.NormalizeURL(rawURL)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.seen.Add(url)
	return f.visited.Add(url)
}

// Visited returns true if the URL has been visited.
func (f *Frontier) Visited(rawURL string) bool {
	url, err := docbundle.NormalizeURL(rawURL)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited.Has(url)
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue) - f.head
}

// EstimatedSeen returns the filter's estimate of how many distinct URLs
// were queued or visited.
func (f *Frontier) EstimatedSeen() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.EstimatedCount()
}
