package structfit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/structfit"
	"github.com/cwbudde/structfit/optic"
)

func TestFlattenComponentOrder(t *testing.T) {
	vals, err := structfit.Flatten(seedModel(), shiftArgs())
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, vals)
}

func TestFlattenDeterministic(t *testing.T) {
	seed := seedModel()
	args := shiftArgs()

	first, err := structfit.Flatten(seed, args)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := structfit.Flatten(seed, args)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestUnflattenReplacesShifts(t *testing.T) {
	seed := seedModel()

	out, err := structfit.Unflatten(seed, shiftArgs(), []float64{2, 5, 8})
	require.NoError(t, err)

	got := out.(model)
	require.Equal(t, 2.0, got.Components[0].Shift)
	require.Equal(t, 5.0, got.Components[1].Shift)
	require.Equal(t, 8.0, got.Components[2].Shift)
	// Scale fields untouched.
	require.Equal(t, 1.0, got.Components[0].Scale)
	require.Equal(t, 2.0, got.Components[1].Scale)
	require.Equal(t, 3.0, got.Components[2].Scale)
	// Seed itself never mutated.
	require.Empty(t, cmp.Diff(seedModel(), seed))
}

func TestRoundTrip(t *testing.T) {
	seed := seedModel()
	args := freeShiftArgs()

	vals, err := structfit.Flatten(seed, args)
	require.NoError(t, err)
	out, err := structfit.Unflatten(seed, args, vals)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(seed, out.(model)))
}

func TestUnflattenLengthMismatch(t *testing.T) {
	_, err := structfit.Unflatten(seedModel(), shiftArgs(), []float64{1, 2})
	require.ErrorIs(t, err, structfit.ErrLength)
}

func TestFlattenPathResolutionError(t *testing.T) {
	args := structfit.MustArgs(structfit.Free("Missing.Field"))
	_, err := structfit.Flatten(seedModel(), args)
	require.ErrorIs(t, err, optic.ErrNoMatch)
}

func TestConstructionFlattenMidpoints(t *testing.T) {
	args := structfit.MustArgs(
		structfit.In("Scale", 0.3, 10),
		structfit.In("Shift", 0, 10),
	)
	vals, err := structfit.Flatten(optic.TypeOf[knob](), args)
	require.NoError(t, err)
	require.Equal(t, []float64{5.15, 5.0}, vals)
}

func TestConstructionUnflattenBuildsInstance(t *testing.T) {
	args := structfit.MustArgs(
		structfit.In("Scale", 0.3, 10),
		structfit.In("Shift", 0, 10),
	)
	out, err := structfit.Unflatten(optic.TypeOf[knob](), args, []float64{2, 5})
	require.NoError(t, err)
	require.Equal(t, knob{Scale: 2, Shift: 5}, out)
}

func TestConstructionRequiresBounds(t *testing.T) {
	args := structfit.MustArgs(structfit.Free("Scale"), structfit.Free("Shift"))
	_, err := structfit.Flatten(optic.TypeOf[knob](), args)
	require.ErrorIs(t, err, structfit.ErrUnboundedConstruction)
}

func TestConstructionRejectsMultiMatch(t *testing.T) {
	args := structfit.MustArgs(structfit.In("Components[*].Shift", 0, 10))

	type fixedModel struct {
		Components [3]component
	}
	_, err := structfit.Flatten(optic.TypeOf[fixedModel](), args)
	require.ErrorIs(t, err, structfit.ErrConstructionArity)

	_, err = structfit.Unflatten(optic.TypeOf[fixedModel](), args, []float64{1})
	require.ErrorIs(t, err, structfit.ErrConstructionArity)
}

func TestConstructionUnflattenLengthMismatch(t *testing.T) {
	args := structfit.MustArgs(structfit.In("Scale", 0, 1), structfit.In("Shift", 0, 1))
	_, err := structfit.Unflatten(optic.TypeOf[knob](), args, []float64{1})
	require.ErrorIs(t, err, structfit.ErrLength)
}
