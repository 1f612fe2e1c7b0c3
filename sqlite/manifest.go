package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/docbundle"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docbundle.Manifest = (*Manifest)(nil)

// Manifest implements docbundle.Manifest using SQLite.
type Manifest struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewManifest creates a new Manifest.
func NewManifest(db *DB) *Manifest {
	return &Manifest{db: db, Now: time.Now}
}

func (m *Manifest) now() time.Time {
	return m.Now().UTC().Truncate(time.Second)
}

// CreateRun creates a new run.
func (m *Manifest) CreateRun(ctx context.Context, run *docbundle.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = m.now()
	run.FinishedAt = time.Time{}
	run.Saved, run.Failed = 0, 0

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO runs (id, crate, base_url, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Crate, run.BaseURL, formatTime(run.StartedAt))

	return err
}

// FinishRun records the final counters of a run.
func (m *Manifest) FinishRun(ctx context.Context, id string, saved, failed int) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, saved = ?, failed = ?
		WHERE id = ?
	`, formatTime(m.now()), saved, failed, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return docbundle.Errorf(docbundle.ENOTFOUND, "run not found")
	}
	return nil
}

// FindRunByID retrieves a run by ID.
func (m *Manifest) FindRunByID(ctx context.Context, id string) (*docbundle.Run, error) {
	var run docbundle.Run
	var startedAt, finishedAt string

	err := m.db.QueryRowContext(ctx, `
		SELECT id, crate, base_url, started_at, finished_at, saved, failed
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Crate, &run.BaseURL, &startedAt, &finishedAt, &run.Saved, &run.Failed)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, docbundle.Errorf(docbundle.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseOptionalRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}
	return &run, nil
}

// RecordEntry stores a page entry. The content itself is not stored,
// only its hash and size.
func (m *Manifest) RecordEntry(ctx context.Context, entry *docbundle.Entry, content string) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.ContentHash = hashContent(content)
	entry.Bytes = len(content)
	entry.FetchedAt = m.now()

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO entries (id, run_id, url, path, content_hash, bytes, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.RunID, entry.URL, entry.Path, entry.ContentHash, entry.Bytes,
		entry.Position, formatTime(entry.FetchedAt))

	return err
}

// FindEntries retrieves the entries of a run ordered by position.
func (m *Manifest) FindEntries(ctx context.Context, runID string) ([]*docbundle.Entry, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, run_id, url, path, content_hash, bytes, position, fetched_at
		FROM entries
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docbundle.Entry
	for rows.Next() {
		var entry docbundle.Entry
		var fetchedAt string

		if err := rows.Scan(&entry.ID, &entry.RunID, &entry.URL, &entry.Path, &entry.ContentHash,
			&entry.Bytes, &entry.Position, &fetchedAt); err != nil {
			return nil, err
		}

		if entry.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
