package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docbundle"
)

var _ docbundle.Unifier = (*LoggingUnifier)(nil)

// LoggingUnifier wraps a Unifier with logging.
type LoggingUnifier struct {
	next   docbundle.Unifier
	logger *slog.Logger
}

func NewLoggingUnifier(next docbundle.Unifier, logger *slog.Logger) *LoggingUnifier {
	return &LoggingUnifier{next: next, logger: logger}
}

func (u *LoggingUnifier) Unify(ctx context.Context, root string) (count int, err error) {
	defer func(begin time.Time) {
		u.logger.Info("unify",
			"root", root,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return u.next.Unify(ctx, root)
}
