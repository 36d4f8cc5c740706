// Package store persists solve runs and their cost traces on the
// filesystem.
package store

import "github.com/google/uuid"

// Store defines the interface for run persistence.
// Implementations must be safe for concurrent use.
//
// Error handling conventions:
//   - Return nil error on success
//   - Return ErrNotFound if a run doesn't exist (for Load/Delete)
//   - Wrap underlying errors with context using fmt.Errorf("context: %w", err)
type Store interface {
	// SaveRun atomically saves a run. If a run already exists for this ID it
	// is overwritten. Implementations should use atomic write strategies
	// (temp file + rename) to prevent corruption.
	SaveRun(run *Run) error

	// LoadRun retrieves the run with the given ID.
	// Returns ErrNotFound if no such run exists.
	LoadRun(id string) (*Run, error)

	// ListRuns returns metadata for all stored runs. The returned slice may
	// be empty if no runs exist.
	ListRuns() ([]RunInfo, error)

	// DeleteRun removes the run and all associated artifacts (run.json,
	// trace.jsonl). Returns ErrNotFound if no such run exists.
	DeleteRun(id string) error
}

// NewRunID returns a fresh unique run identifier.
func NewRunID() string { return uuid.NewString() }

// ErrNotFound is returned when a requested run does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing run error.
type NotFoundError struct {
	RunID string
}

func (e *NotFoundError) Error() string {
	if e.RunID != "" {
		return "run not found: " + e.RunID
	}
	return "run not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
