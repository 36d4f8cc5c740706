package structfit_test

import (
	"github.com/cwbudde/structfit"
)

// Fixtures shared across the package tests: a model of three components,
// each with a Scale and a Shift.

type component struct {
	Scale float64
	Shift float64
}

type model struct {
	Components []component
}

type knob struct {
	Scale float64
	Shift float64
}

func seedModel() model {
	return model{Components: []component{
		{Scale: 1.0, Shift: 0.1},
		{Scale: 2.0, Shift: 0.2},
		{Scale: 3.0, Shift: 0.3},
	}}
}

func shiftArgs() *structfit.Args {
	return structfit.MustArgs(structfit.In("Components[*].Shift", 0, 10))
}

func freeShiftArgs() *structfit.Args {
	return structfit.MustArgs(structfit.Free("Components[*].Shift"))
}

func meanShift(m model) float64 {
	var sum float64
	for _, c := range m.Components {
		sum += c.Shift
	}
	return sum / float64(len(m.Components))
}
