package structfit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/structfit"
	"github.com/cwbudde/structfit/solver"
)

// End-to-end: mayfly drives the full flatten/bounds/objective/unflatten
// pipeline on the three-component model.
func TestEndToEndMayfly(t *testing.T) {
	targets := []float64{2, 5, 8}
	objective := func(obj, params any) float64 {
		m := obj.(model)
		want := params.([]float64)
		var sum float64
		for i, c := range m.Components {
			d := c.Shift - want[i]
			sum += d * d
		}
		return sum
	}

	p, err := structfit.NewProblem(objective, seedModel(), shiftArgs(),
		structfit.WithParams(targets))
	require.NoError(t, err)

	raw, err := structfit.BuildProblem(p)
	require.NoError(t, err)
	initialCost := raw.Objective(raw.Initial)

	sol, err := structfit.Solve(p, solver.NewMayfly(150, 20, 42))
	require.NoError(t, err)
	require.Less(t, sol.Cost(), initialCost)

	obj, err := sol.Object()
	require.NoError(t, err)
	got := obj.(model)
	for i, c := range got.Components {
		require.GreaterOrEqual(t, c.Shift, 0.0, "component %d below lower bound", i)
		require.LessOrEqual(t, c.Shift, 10.0, "component %d above upper bound", i)
		// Scale fields are not part of the spec and stay at their seed values.
		require.Equal(t, seedModel().Components[i].Scale, c.Scale)
	}
}
