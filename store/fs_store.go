package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// FSStore implements Store using filesystem persistence. Runs are stored
// under <baseDir>/runs/<id>/run.json.
//
// Thread-safety: atomic file operations (temp file + rename) are used
// throughout; no locks are required and concurrent calls are safe.
type FSStore struct {
	baseDir string
}

// NewFSStore creates a filesystem store rooted at baseDir, creating the
// directory if needed.
func NewFSStore(baseDir string) (*FSStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &FSStore{baseDir: baseDir}, nil
}

func (fs *FSStore) runDir(id string) string {
	return filepath.Join(fs.baseDir, "runs", id)
}

func (fs *FSStore) runPath(id string) string {
	return filepath.Join(fs.runDir(id), "run.json")
}

// SaveRun atomically saves a run via the temp file + rename pattern.
func (fs *FSStore) SaveRun(run *Run) error {
	if run == nil {
		return fmt.Errorf("run cannot be nil")
	}
	if err := run.Validate(); err != nil {
		return fmt.Errorf("invalid run: %w", err)
	}

	if err := os.MkdirAll(fs.runDir(run.ID), 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize run: %w", err)
	}

	tempPath := fs.runPath(run.ID) + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp run file: %w", err)
	}

	finalPath := fs.runPath(run.ID)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename run file: %w", err)
	}

	slog.Debug("Run saved", "run_id", run.ID, "path", finalPath)
	return nil
}

// LoadRun retrieves the run with the given ID.
func (fs *FSStore) LoadRun(id string) (*Run, error) {
	if id == "" {
		return nil, fmt.Errorf("run ID cannot be empty")
	}

	path := fs.runPath(id)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{RunID: id}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat run file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to deserialize run: %w", err)
	}

	slog.Debug("Run loaded", "run_id", id, "path", path)
	return &run, nil
}

// ListRuns returns metadata for all stored runs.
func (fs *FSStore) ListRuns() ([]RunInfo, error) {
	runsDir := filepath.Join(fs.baseDir, "runs")

	if _, err := os.Stat(runsDir); os.IsNotExist(err) {
		return []RunInfo{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat runs directory: %w", err)
	}

	entries, err := os.ReadDir(runsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read runs directory: %w", err)
	}

	var infos []RunInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		if _, err := os.Stat(fs.runPath(id)); os.IsNotExist(err) {
			continue
		}
		run, err := fs.LoadRun(id)
		if err != nil {
			slog.Warn("Skipping unreadable run", "run_id", id, "error", err)
			continue
		}
		infos = append(infos, run.ToInfo())
	}
	if infos == nil {
		infos = []RunInfo{}
	}
	return infos, nil
}

// DeleteRun removes the run and all associated artifacts.
func (fs *FSStore) DeleteRun(id string) error {
	if id == "" {
		return fmt.Errorf("run ID cannot be empty")
	}

	dir := fs.runDir(id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return &NotFoundError{RunID: id}
	} else if err != nil {
		return fmt.Errorf("failed to stat run directory: %w", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete run directory: %w", err)
	}

	slog.Debug("Run deleted", "run_id", id)
	return nil
}
