package htmltomarkdown

import (
	"fmt"

	"github.com/fwojciec/docbundle"
)

// Ensure Extractor implements docbundle.Extractor at compile time.
var _ docbundle.Extractor = (*Extractor)(nil)

// Extractor converts a whole page to Markdown and keeps only the section
// documenting the crate.
type Extractor struct {
	conv docbundle.Converter
}

// NewExtractor creates an Extractor backed by conv.
// A nil conv uses NewConverter.
func NewExtractor(conv docbundle.Converter) *Extractor {
	if conv == nil {
		conv = NewConverter()
	}
	return &Extractor{conv: conv}
}

// Extract converts html and trims the result with docbundle.TrimSection.
func (e *Extractor) Extract(html string, crate string) (string, error) {
	markdown, err := e.conv.Convert(html)
	if err != nil {
		return "", fmt.Errorf("converting html: %w", err)
	}
	return docbundle.TrimSection(markdown, crate), nil
}
