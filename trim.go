package docbundle

import "strings"

// Markers used to cut a converted docs.rs page down to its content.
const (
	// EndMarker starts the trait implementation listings that follow the
	// hand-written documentation of an item.
	EndMarker = "## Auto Trait Implementations"

	// CopyPathLabel is the text of the copy-to-clipboard button rendered
	// next to every item path.
	CopyPathLabel = "Copy item path"
)

// EscapeCrateName renders a crate name the way it appears in converted
// Markdown: hyphens become underscores and every underscore is escaped.
func EscapeCrateName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	return strings.ReplaceAll(name, "_", `\_`)
}

// TrimSection cuts markdown down to the section that documents crate.
//
// The section starts at the first "## [<crate>" heading and stops before
// the first EndMarker heading. A missing start keeps the document from the
// first line and a missing end keeps it through the last line. Every
// CopyPathLabel is removed from the kept lines.
func TrimSection(markdown, crate string) string {
	lines := strings.Split(markdown, "\n")

	escaped := "## [" + EscapeCrateName(crate)
	plain := "## [" + strings.ReplaceAll(crate, "-", "_")

	start := 0
	for i, line := range lines {
		if strings.HasPrefix(line, escaped) || strings.HasPrefix(line, plain) {
			start = i
			break
		}
	}

	end := len(lines)
	for i, line := range lines {
		if strings.HasPrefix(line, EndMarker) {
			end = i
			break
		}
	}

	if end < start {
		return ""
	}

	kept := lines[start:end]
	for i, line := range kept {
		kept[i] = strings.ReplaceAll(line, CopyPathLabel, "")
	}
	return strings.Join(kept, "\n")
}
