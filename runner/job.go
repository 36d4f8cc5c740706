package runner

import (
	"sync"
	"time"
)

// State is a job lifecycle state.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateDone      State = "done"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

// Progress is a point-in-time snapshot of a running solve.
type Progress struct {
	// StartsDone is the number of finished multistart runs.
	StartsDone int
	// BestCost is the lowest cost seen so far.
	BestCost float64
	// Elapsed is the wall time since the job was created.
	Elapsed time.Duration
}

// Job tracks one long-running solve. All methods are safe for concurrent
// use; a nil *Job is a valid no-op tracker.
type Job struct {
	// ID identifies the job, typically a store run ID.
	ID string

	mu       sync.RWMutex
	state    State
	err      error
	started  time.Time
	progress Progress
}

// NewJob creates a pending job.
func NewJob(id string) *Job {
	return &Job{
		ID:      id,
		state:   StatePending,
		started: time.Now(),
	}
}

// State returns the current lifecycle state.
func (j *Job) State() State {
	if j == nil {
		return ""
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.state
}

// Err returns the failure cause, or nil.
func (j *Job) Err() error {
	if j == nil {
		return nil
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.err
}

// Snapshot returns the latest progress.
func (j *Job) Snapshot() Progress {
	if j == nil {
		return Progress{}
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	p := j.progress
	p.Elapsed = time.Since(j.started)
	return p
}

func (j *Job) transition(s State) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state = s
}

func (j *Job) fail(err error, s State) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state = s
	j.err = err
}

func (j *Job) progressUpdate(done int, bestCost float64) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.progress.StartsDone = done
	j.progress.BestCost = bestCost
}
