package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docbundle"
)

// Ensure LoggingExtractor implements docbundle.Extractor.
var _ docbundle.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   docbundle.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docbundle.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs input and output sizes.
func (e *LoggingExtractor) Extract(html, crate string) (markdown string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"crate", crate,
			"html_bytes", len(html),
			"markdown_bytes", len(markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, crate)
}
