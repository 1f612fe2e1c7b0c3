package crawl

import "fmt"

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatResult summarizes a finished crawl in one line.
func FormatResult(r *Result) string {
	return fmt.Sprintf("Saved %d pages (%s), %d failed, %d visited",
		r.Saved, FormatBytes(r.Bytes), r.Failed, r.Visited)
}
