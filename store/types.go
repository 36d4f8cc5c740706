package store

import (
	"time"
)

// RunConfig holds the settings a run was produced with, enough to reproduce
// it: the problem source plus optimizer parameters.
type RunConfig struct {
	// Source names the problem definition, e.g. a config file path.
	Source string `json:"source"`
	// Vars are the path expressions that were optimized, in order.
	Vars []string `json:"vars"`
	// Iters is the per-start iteration budget.
	Iters int `json:"iters"`
	// PopSize is the optimizer population size.
	PopSize int `json:"popSize"`
	// Seed is the base random seed.
	Seed int64 `json:"seed"`
	// Starts is the multistart count.
	Starts int `json:"starts"`
}

// Run is a persisted solve outcome. The structured solution is not stored;
// it can always be reconstructed from BestVector and the problem spec.
type Run struct {
	// ID is the unique identifier for this run.
	ID string `json:"id"`
	// BestVector is the flat solution vector, in spec declaration order.
	BestVector []float64 `json:"bestVector"`
	// BestCost is the objective value at BestVector.
	BestCost float64 `json:"bestCost"`
	// InitialCost is the objective value at the initial vector.
	InitialCost float64 `json:"initialCost"`
	// Iterations is the iteration count reported by the optimizer.
	Iterations int `json:"iterations"`
	// CreatedAt records when the run finished.
	CreatedAt time.Time `json:"createdAt"`
	// Config holds the settings the run was produced with.
	Config RunConfig `json:"config"`
}

// NewRun assembles a persistable run from solve results.
func NewRun(id string, bestVector []float64, bestCost, initialCost float64, iterations int, config RunConfig) *Run {
	return &Run{
		ID:          id,
		BestVector:  bestVector,
		BestCost:    bestCost,
		InitialCost: initialCost,
		Iterations:  iterations,
		CreatedAt:   time.Now(),
		Config:      config,
	}
}

// Validate checks that the run has persistable data.
func (r *Run) Validate() error {
	if r.ID == "" {
		return &ValidationError{Field: "ID", Reason: "cannot be empty"}
	}
	if len(r.BestVector) == 0 {
		return &ValidationError{Field: "BestVector", Reason: "cannot be empty"}
	}
	if r.CreatedAt.IsZero() {
		return &ValidationError{Field: "CreatedAt", Reason: "cannot be zero"}
	}
	return nil
}

// ValidationError represents an invalid run field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}

// RunInfo contains run metadata without the vector payload, for listing.
type RunInfo struct {
	ID        string    `json:"id"`
	BestCost  float64   `json:"bestCost"`
	Dim       int       `json:"dim"`
	CreatedAt time.Time `json:"createdAt"`
	Source    string    `json:"source"`
}

// ToInfo converts a full Run to its metadata.
func (r *Run) ToInfo() RunInfo {
	return RunInfo{
		ID:        r.ID,
		BestCost:  r.BestCost,
		Dim:       len(r.BestVector),
		CreatedAt: r.CreatedAt,
		Source:    r.Config.Source,
	}
}
