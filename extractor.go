package docbundle

// Extractor turns a raw documentation page into the Markdown fragment
// worth keeping for a crate.
type Extractor interface {
	// Extract converts html to Markdown and trims it to the crate's
	// content section. See TrimSection for the trimming rules.
	Extract(html string, crate string) (string, error)
}
