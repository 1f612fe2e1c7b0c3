package docbundle

// LinkSelector extracts hyperlink targets from HTML.
type LinkSelector interface {
	// ExtractLinks parses html and returns the absolute, normalized URL of
	// every anchor, resolved against pageURL, in document order.
	// Duplicates are removed; no scope filtering is applied.
	ExtractLinks(html string, pageURL string) ([]string, error)
}
