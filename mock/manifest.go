package mock

import (
	"context"

	"github.com/fwojciec/docbundle"
)

var _ docbundle.Manifest = (*Manifest)(nil)

// Manifest is a mock implementation of docbundle.Manifest.
type Manifest struct {
	CreateRunFn   func(ctx context.Context, run *docbundle.Run) error
	FinishRunFn   func(ctx context.Context, id string, saved, failed int) error
	FindRunByIDFn func(ctx context.Context, id string) (*docbundle.Run, error)
	RecordEntryFn func(ctx context.Context, entry *docbundle.Entry, content string) error
	FindEntriesFn func(ctx context.Context, runID string) ([]*docbundle.Entry, error)
}

func (m *Manifest) CreateRun(ctx context.Context, run *docbundle.Run) error {
	return m.CreateRunFn(ctx, run)
}

func (m *Manifest) FinishRun(ctx context.Context, id string, saved, failed int) error {
	return m.FinishRunFn(ctx, id, saved, failed)
}

func (m *Manifest) FindRunByID(ctx context.Context, id string) (*docbundle.Run, error) {
	return m.FindRunByIDFn(ctx, id)
}

func (m *Manifest) RecordEntry(ctx context.Context, entry *docbundle.Entry, content string) error {
	return m.RecordEntryFn(ctx, entry, content)
}

func (m *Manifest) FindEntries(ctx context.Context, runID string) ([]*docbundle.Entry, error) {
	return m.FindEntriesFn(ctx, runID)
}
