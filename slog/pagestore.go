package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docbundle"
)

// Ensure LoggingPageStore implements docbundle.PageStore.
var _ docbundle.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with logging.
type LoggingPageStore struct {
	next   docbundle.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next docbundle.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

// Save delegates to the wrapped store. Failures are logged at error level.
func (s *LoggingPageStore) Save(ctx context.Context, page *docbundle.Page) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "save",
			"url", page.URL,
			"path", page.Path,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, page)
}
