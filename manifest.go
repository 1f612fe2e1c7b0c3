package docbundle

import (
	"context"
	"time"
)

// Run represents one invocation of the crawler for a crate.
type Run struct {
	ID         string    `json:"id"`
	Crate      string    `json:"crate"`
	BaseURL    string    `json:"baseUrl"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Saved      int       `json:"saved"`
	Failed     int       `json:"failed"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Crate == "" {
		return Errorf(EINVALID, "run crate required")
	}
	if r.BaseURL == "" {
		return Errorf(EINVALID, "run base URL required")
	}
	return nil
}

// Entry records a page written during a run.
type Entry struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	URL         string    `json:"url"`
	Path        string    `json:"path"`
	ContentHash string    `json:"contentHash"`
	Bytes       int       `json:"bytes"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.RunID == "" {
		return Errorf(EINVALID, "entry run ID required")
	}
	if e.URL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	return nil
}

// Manifest records what each crawl run fetched and where it was written.
// It is informational only; a new run never resumes from a previous one.
type Manifest interface {
	// CreateRun stores a new run and assigns its ID and start time.
	CreateRun(ctx context.Context, run *Run) error

	// FinishRun stamps the finish time and final counters on a run.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, id string, saved, failed int) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// RecordEntry stores an entry and assigns its ID, hash and fetch time.
	RecordEntry(ctx context.Context, entry *Entry, content string) error

	// FindEntries returns the entries of a run in crawl order.
	FindEntries(ctx context.Context, runID string) ([]*Entry, error)
}
