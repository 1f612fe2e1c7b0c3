package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docbundle"
)

var _ docbundle.Manifest = (*LoggingManifest)(nil)

// LoggingManifest wraps a Manifest, logging writes. Reads pass through.
type LoggingManifest struct {
	next   docbundle.Manifest
	logger *slog.Logger
}

func NewLoggingManifest(next docbundle.Manifest, logger *slog.Logger) *LoggingManifest {
	return &LoggingManifest{next: next, logger: logger}
}

func (m *LoggingManifest) CreateRun(ctx context.Context, run *docbundle.Run) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("manifest run started",
			"run", run.ID,
			"crate", run.Crate,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.CreateRun(ctx, run)
}

func (m *LoggingManifest) FinishRun(ctx context.Context, id string, saved, failed int) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("manifest run finished",
			"run", id,
			"saved", saved,
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.FinishRun(ctx, id, saved, failed)
}

func (m *LoggingManifest) FindRunByID(ctx context.Context, id string) (*docbundle.Run, error) {
	return m.next.FindRunByID(ctx, id)
}

func (m *LoggingManifest) RecordEntry(ctx context.Context, entry *docbundle.Entry, content string) (err error) {
	defer func(begin time.Time) {
		m.logger.Debug("manifest entry",
			"url", entry.URL,
			"hash", entry.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.RecordEntry(ctx, entry, content)
}

func (m *LoggingManifest) FindEntries(ctx context.Context, runID string) ([]*docbundle.Entry, error) {
	return m.next.FindEntries(ctx, runID)
}
