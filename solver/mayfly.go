package solver

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// Mayfly adapts the external Mayfly library to the Optimizer interface.
//
// The library accepts only scalar box bounds, so the adapter feeds it the
// min/max envelope of the per-dimension bounds and clamps each dimension
// inside the objective wrapper. Constraint violation is folded into the
// objective as a quadratic penalty; the library itself has no constraint
// support.
type Mayfly struct {
	maxIters int
	popSize  int
	seed     int64
	penalty  float64
}

// Penalty weight for constraint violation. Large enough to dominate typical
// objective scales without overflowing.
const defaultPenalty = 1e6

// NewMayfly creates a Mayfly optimizer with deterministic seeding.
func NewMayfly(maxIters, popSize int, seed int64) *Mayfly {
	return &Mayfly{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
		penalty:  defaultPenalty,
	}
}

// Run executes the optimization and returns the best vector found.
func (m *Mayfly) Run(p Problem) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	dim := p.Dim()
	lower, upper := m.box(p)
	eval := m.wrap(p, lower, upper)

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = eval
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = floats(lower).min()
	config.UpperBound = floats(upper).max()
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return Result{}, fmt.Errorf("solver: mayfly optimization failed: %w", err)
	}

	best := clampVec(result.GlobalBest.Position, lower, upper)
	return Result{
		Position:   best,
		Cost:       result.GlobalBest.Cost,
		Iterations: m.maxIters,
	}, nil
}

// box returns per-dimension bounds, falling back to a wide box around the
// initial point for unbounded problems (the library cannot search an
// unbounded space).
func (m *Mayfly) box(p Problem) (lower, upper []float64) {
	if p.Bounded() {
		return p.Lower, p.Upper
	}
	lower = make([]float64, p.Dim())
	upper = make([]float64, p.Dim())
	for i, x := range p.Initial {
		span := 10 * (math.Abs(x) + 1)
		lower[i] = x - span
		upper[i] = x + span
	}
	return lower, upper
}

// wrap builds the raw evaluation function handed to the library: clamp the
// candidate into the per-dimension box, evaluate the objective, and add the
// constraint penalty.
func (m *Mayfly) wrap(p Problem, lower, upper []float64) func([]float64) float64 {
	return func(x []float64) float64 {
		y := clampVec(x, lower, upper)
		cost := p.Objective(y)
		if p.Constraints == nil {
			return cost
		}
		out := make([]float64, len(p.LCons))
		p.Constraints(out, y)
		for i, v := range out {
			if d := p.LCons[i] - v; d > 0 {
				cost += m.penalty * d * d
			}
			if d := v - p.UCons[i]; d > 0 {
				cost += m.penalty * d * d
			}
		}
		return cost
	}
}

func clampVec(x, lower, upper []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Max(lower[i], math.Min(upper[i], v))
	}
	return y
}

type floats []float64

func (f floats) min() float64 {
	out := f[0]
	for _, v := range f[1:] {
		out = math.Min(out, v)
	}
	return out
}

func (f floats) max() float64 {
	out := f[0]
	for _, v := range f[1:] {
		out = math.Max(out, v)
	}
	return out
}
