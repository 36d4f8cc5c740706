package structfit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/structfit"
	"github.com/cwbudde/structfit/optic"
	"github.com/cwbudde/structfit/solver"
	"github.com/cwbudde/structfit/vector"
)

// fixedOptimizer returns a predetermined vector without iterating; it lets
// the wrapper pipeline be exercised without a real solver in the loop.
type fixedOptimizer struct {
	position []float64
}

func (f fixedOptimizer) Run(p solver.Problem) (solver.Result, error) {
	if err := p.Validate(); err != nil {
		return solver.Result{}, err
	}
	return solver.Result{
		Position:   f.position,
		Cost:       p.Objective(f.position),
		Iterations: 1,
	}, nil
}

func sumObjective(obj, params any) float64 {
	var sum float64
	for _, c := range obj.(model).Components {
		sum += c.Shift
	}
	return sum
}

func TestBuildProblemAssemblesEverything(t *testing.T) {
	p, err := structfit.NewProblem(sumObjective, seedModel(), shiftArgs(),
		structfit.WithConstraints(structfit.MustCons(vector.Dense, meanShiftCon())),
	)
	require.NoError(t, err)

	sp, err := structfit.BuildProblem(p)
	require.NoError(t, err)

	require.Equal(t, []float64{0.1, 0.2, 0.3}, sp.Initial)
	require.Equal(t, []float64{0, 0, 0}, sp.Lower)
	require.Equal(t, []float64{10, 10, 10}, sp.Upper)
	require.Equal(t, []float64{0.5}, sp.LCons)
	require.Equal(t, []float64{4}, sp.UCons)
	require.NotNil(t, sp.Constraints)

	// Raw objective evaluates against the reconstructed object.
	require.InDelta(t, 15.0, sp.Objective([]float64{2, 5, 8}), 1e-12)

	out := make([]float64, 1)
	sp.Constraints(out, []float64{2, 5, 8})
	require.Equal(t, 5.0, out[0])
}

func TestBuildProblemUnbounded(t *testing.T) {
	p, err := structfit.NewProblem(sumObjective, seedModel(), freeShiftArgs())
	require.NoError(t, err)

	sp, err := structfit.BuildProblem(p)
	require.NoError(t, err)
	require.False(t, sp.Bounded())
	require.Nil(t, sp.Constraints)
}

func TestBuildProblemFailsBeforeSolver(t *testing.T) {
	args := structfit.MustArgs(structfit.In("Components[*].Shift", 0, 10))

	type fixedModel struct {
		Components [3]component
	}
	p, err := structfit.NewProblem(sumObjective, optic.TypeOf[fixedModel](), args)
	require.NoError(t, err)

	_, err = structfit.BuildProblem(p)
	require.ErrorIs(t, err, structfit.ErrConstructionArity)
}

func TestNewProblemValidation(t *testing.T) {
	_, err := structfit.NewProblem(nil, seedModel(), shiftArgs())
	require.ErrorIs(t, err, structfit.ErrNilObjective)

	_, err = structfit.NewProblem(sumObjective, seedModel(), nil)
	require.ErrorIs(t, err, structfit.ErrNilArgs)

	_, err = structfit.NewProblem(sumObjective, seedModel(), shiftArgs(),
		structfit.WithVectorKind(vector.Kind(42)))
	require.ErrorIs(t, err, vector.ErrKind)
}

func TestRawObjectiveUsesParams(t *testing.T) {
	objective := func(obj, params any) float64 {
		return meanShift(obj.(model)) * params.(float64)
	}
	p, err := structfit.NewProblem(objective, seedModel(), shiftArgs(),
		structfit.WithParams(3.0))
	require.NoError(t, err)

	raw := p.RawObjective()
	require.InDelta(t, 6.0, raw([]float64{1, 2, 3}), 1e-12)
}

func TestSolveReconstructsObject(t *testing.T) {
	p, err := structfit.NewProblem(sumObjective, seedModel(), shiftArgs())
	require.NoError(t, err)

	sol, err := structfit.Solve(p, fixedOptimizer{position: []float64{2, 5, 8}})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 8}, sol.RawVector().Slice())
	require.InDelta(t, 15.0, sol.Cost(), 1e-12)

	obj, err := sol.Object()
	require.NoError(t, err)
	got := obj.(model)
	require.Equal(t, 2.0, got.Components[0].Shift)
	require.Equal(t, 5.0, got.Components[1].Shift)
	require.Equal(t, 8.0, got.Components[2].Shift)
	require.Equal(t, 1.0, got.Components[0].Scale)
}

func TestSolutionObjectFreshPerCall(t *testing.T) {
	p, err := structfit.NewProblem(sumObjective, seedModel(), shiftArgs())
	require.NoError(t, err)
	sol, err := structfit.Solve(p, fixedOptimizer{position: []float64{1, 1, 1}})
	require.NoError(t, err)

	first, err := sol.Object()
	require.NoError(t, err)
	second, err := sol.Object()
	require.NoError(t, err)

	m1 := first.(model)
	m2 := second.(model)
	require.Empty(t, cmp.Diff(m1, m2))
	// Distinct allocations: writing one must not touch the other.
	m1.Components[0].Shift = 99
	require.Equal(t, 1.0, m2.Components[0].Shift)
}

func TestSolveConstructionMode(t *testing.T) {
	objective := func(obj, params any) float64 {
		k := obj.(knob)
		return k.Scale + k.Shift
	}
	args := structfit.MustArgs(
		structfit.In("Scale", 0.3, 10),
		structfit.In("Shift", 0, 10),
	)
	p, err := structfit.NewProblem(objective, optic.TypeOf[knob](), args,
		structfit.WithVectorKind(vector.Tuple))
	require.NoError(t, err)

	sol, err := structfit.Solve(p, fixedOptimizer{position: []float64{2, 5}})
	require.NoError(t, err)

	obj, err := sol.Object()
	require.NoError(t, err)
	require.Equal(t, knob{Scale: 2, Shift: 5}, obj)

	_, ok := sol.RawVector().(vector.TupleVec)
	require.True(t, ok)
}
