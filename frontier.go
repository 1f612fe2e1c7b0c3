package docbundle

import "context"

// URLFrontier manages the breadth-first crawl queue and the visited set.
// All URLs are normalized with NormalizeURL before use.
type URLFrontier interface {
	// Push appends a URL to the queue.
	// Returns false if the URL was already queued or visited.
	Push(url string) bool

	// Pop removes and returns the earliest queued URL.
	// Returns false if the queue is empty.
	Pop() (string, bool)

	// Visit marks a URL as visited.
	// Returns false if the URL had already been visited.
	Visit(url string) bool

	// Visited returns true if the URL has been visited.
	Visited(url string) bool

	// Len returns the number of URLs in the queue.
	Len() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
