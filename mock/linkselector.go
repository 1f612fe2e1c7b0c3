package mock

import "github.com/fwojciec/docbundle"

var _ docbundle.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of docbundle.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, pageURL string) ([]string, error)
}

func (s *LinkSelector) ExtractLinks(html string, pageURL string) ([]string, error) {
	return s.ExtractLinksFn(html, pageURL)
}
