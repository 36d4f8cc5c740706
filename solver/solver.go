// Package solver defines the boundary to external vector optimizers and the
// adapter for the Mayfly evolutionary optimizer.
package solver

import "errors"

var (
	// ErrNoObjective indicates a problem without an objective function.
	ErrNoObjective = errors.New("solver: problem has no objective")
	// ErrNoInitial indicates a problem without an initial vector.
	ErrNoInitial = errors.New("solver: problem has no initial vector")
	// ErrBoundShape indicates bound vectors whose length differs from the
	// problem dimension.
	ErrBoundShape = errors.New("solver: bound length does not match dimension")
	// ErrConsShape indicates constraint bound vectors of differing lengths.
	ErrConsShape = errors.New("solver: constraint bound lengths differ")
)

// Problem is the vector-only description handed to an optimizer: a raw
// objective, a starting point, optional box bounds, and optional nonlinear
// constraints evaluated positionally against [LCons, UCons].
//
// The objective and constraint functions may be invoked concurrently from
// multiple workers; they must be safe for re-entrant use.
type Problem struct {
	// Objective maps a candidate vector to the cost to minimize.
	Objective func(x []float64) float64

	// Initial is the starting vector; its length fixes the dimension.
	Initial []float64

	// Lower and Upper are per-dimension box bounds. Both nil means the
	// problem is unbounded.
	Lower []float64
	Upper []float64

	// Constraints writes each constraint value positionally into out.
	// Nil means the problem is unconstrained.
	Constraints func(out, x []float64)

	// LCons and UCons bound each constraint entry.
	LCons []float64
	UCons []float64
}

// Dim returns the problem dimension.
func (p Problem) Dim() int { return len(p.Initial) }

// Bounded reports whether box bounds are present.
func (p Problem) Bounded() bool { return len(p.Lower) > 0 || len(p.Upper) > 0 }

// Validate checks the problem shape before any solver invocation.
func (p Problem) Validate() error {
	if p.Objective == nil {
		return ErrNoObjective
	}
	if len(p.Initial) == 0 {
		return ErrNoInitial
	}
	if p.Bounded() && (len(p.Lower) != p.Dim() || len(p.Upper) != p.Dim()) {
		return ErrBoundShape
	}
	if p.Constraints != nil && len(p.LCons) != len(p.UCons) {
		return ErrConsShape
	}
	return nil
}

// Result is an optimizer's native outcome.
type Result struct {
	// Position is the best vector found.
	Position []float64
	// Cost is the objective value at Position.
	Cost float64
	// Iterations is the number of iterations the optimizer performed.
	Iterations int
}

// Optimizer runs a vector optimization to completion.
type Optimizer interface {
	Run(p Problem) (Result, error)
}
