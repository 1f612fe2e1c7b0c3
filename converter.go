package docbundle

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML document into Markdown.
	// Headings are rendered in ATX style ("#" repeated per level).
	Convert(html string) (string, error)
}
