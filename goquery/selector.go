// Package goquery extracts hyperlinks from documentation pages using
// PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docbundle"
)

// Ensure AnchorSelector implements docbundle.LinkSelector at compile time.
var _ docbundle.LinkSelector = (*AnchorSelector)(nil)

// AnchorSelector returns the target of every anchor on a page.
// Scope filtering is left to the caller.
type AnchorSelector struct{}

// NewAnchorSelector creates a new AnchorSelector.
func NewAnchorSelector() *AnchorSelector {
	return &AnchorSelector{}
}

// ExtractLinks parses HTML and returns the normalized absolute URL of every
// a[href], in document order, without duplicates.
// Non-HTTP links (javascript:, mailto:, tel:, data:) are skipped.
func (s *AnchorSelector) ExtractLinks(html string, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docbundle.Errorf(docbundle.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docbundle.Errorf(docbundle.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}

		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		normalized, err := docbundle.NormalizeURL(resolved)
		if err != nil || seen[normalized] {
			return
		}
		seen[normalized] = true
		links = append(links, normalized)
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink reports whether href uses a scheme that cannot be fetched.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
