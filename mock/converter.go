package mock

import "github.com/fwojciec/docbundle"

var _ docbundle.Converter = (*Converter)(nil)

// Converter is a mock implementation of docbundle.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
