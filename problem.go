package structfit

import (
	"fmt"

	"github.com/cwbudde/structfit/solver"
	"github.com/cwbudde/structfit/vector"
)

// ObjectiveFunc is the caller's structured objective: it scores a
// reconstructed object against the problem's external params.
type ObjectiveFunc func(obj, params any) float64

// Problem is an immutable bundle of everything a solve needs: objective,
// external params, output container kind, seed (instance or optic.Target),
// variable spec, and optional constraint spec. Build it once with NewProblem.
type Problem struct {
	objective ObjectiveFunc
	params    any
	kind      vector.Kind
	seed      any
	args      *Args
	cons      *Cons
}

// Option configures optional parts of a Problem.
type Option func(*Problem)

// WithParams attaches external data passed through to the objective and
// constraint functions.
func WithParams(params any) Option {
	return func(p *Problem) { p.params = params }
}

// WithConstraints attaches a nonlinear constraint spec.
func WithConstraints(c *Cons) Option {
	return func(p *Problem) { p.cons = c }
}

// WithVectorKind selects the container kind for RawVector and Bounds output.
// The default is vector.Dense.
func WithVectorKind(k vector.Kind) Option {
	return func(p *Problem) { p.kind = k }
}

// NewProblem builds an immutable problem description.
func NewProblem(objective ObjectiveFunc, seed any, args *Args, opts ...Option) (*Problem, error) {
	if objective == nil {
		return nil, ErrNilObjective
	}
	if args == nil {
		return nil, ErrNilArgs
	}
	p := &Problem{
		objective: objective,
		seed:      seed,
		args:      args,
		kind:      vector.Dense,
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.kind.Valid() {
		return nil, fmt.Errorf("%w: %d", vector.ErrKind, int(p.kind))
	}
	return p, nil
}

// Seed returns the seed instance or type token.
func (p *Problem) Seed() any { return p.seed }

// Args returns the variable spec.
func (p *Problem) Args() *Args { return p.args }

// Constraints returns the constraint spec, or nil.
func (p *Problem) Constraints() *Cons { return p.cons }

// Kind returns the declared output container kind.
func (p *Problem) Kind() vector.Kind { return p.kind }

// RawObjective wraps the structured objective into the vector-only function
// the solver iterates on. Each call unflattens the candidate into a fresh
// object; user failures propagate unmodified.
func (p *Problem) RawObjective() func(x []float64) float64 {
	return func(x []float64) float64 {
		obj, err := Unflatten(p.seed, p.args, x)
		if err != nil {
			// Candidate shape is fixed by BuildProblem before the solver
			// ever runs; a mismatch here is a wiring defect.
			panic(err)
		}
		return p.objective(obj, p.params)
	}
}

// BuildProblem assembles the vector-only package handed to the solver:
// raw objective, initial vector, box bounds, and the constraint triple when
// constraints are present. All validation failures (mixed boundedness,
// construction arity, path resolution) surface here, before any solver
// invocation.
func BuildProblem(p *Problem) (solver.Problem, error) {
	initial, err := Flatten(p.seed, p.args)
	if err != nil {
		return solver.Problem{}, err
	}
	lower, upper, err := boundsRaw(p.seed, p.args)
	if err != nil {
		return solver.Problem{}, err
	}

	sp := solver.Problem{
		Objective: p.RawObjective(),
		Initial:   initial,
		Lower:     lower,
		Upper:     upper,
	}
	if p.cons != nil {
		lcons, ucons := p.cons.boundsRaw()
		consFn := p.cons.Func(p.seed, p.args)
		sp.Constraints = func(out, x []float64) { consFn(out, x, p.params) }
		sp.LCons = lcons
		sp.UCons = ucons
	}
	return sp, nil
}

// Solve delegates the assembled problem to the optimizer and wraps its
// native result. The pipeline is stateless and one-shot; nothing is retained
// between calls.
func Solve(p *Problem, o solver.Optimizer) (*Solution, error) {
	sp, err := BuildProblem(p)
	if err != nil {
		return nil, err
	}
	res, err := o.Run(sp)
	if err != nil {
		return nil, err
	}
	return &Solution{Raw: res, problem: p}, nil
}
