package mock

import "github.com/fwojciec/docbundle"

var _ docbundle.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docbundle.Extractor.
type Extractor struct {
	ExtractFn func(html string, crate string) (string, error)
}

func (e *Extractor) Extract(html string, crate string) (string, error) {
	return e.ExtractFn(html, crate)
}
