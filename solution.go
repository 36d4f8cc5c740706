package structfit

import (
	"github.com/cwbudde/structfit/solver"
	"github.com/cwbudde/structfit/vector"
)

// Solution wraps the solver's native result together with the problem that
// produced it. It is created once per solve and read-only thereafter.
type Solution struct {
	// Raw is the optimizer's native result.
	Raw solver.Result

	problem *Problem
}

// Cost returns the objective value at the best vector.
func (s *Solution) Cost() float64 { return s.Raw.Cost }

// RawVector returns the best vector in the problem's declared container kind.
func (s *Solution) RawVector() vector.Vector {
	return vector.MustOf(s.problem.kind)(s.Raw.Position)
}

// Object reconstructs the structured solution from the best vector. A fresh
// object is built on every call; nothing is cached or shared.
func (s *Solution) Object() (any, error) {
	return Unflatten(s.problem.seed, s.problem.args, s.Raw.Position)
}
