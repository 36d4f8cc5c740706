package main

import "math"

// Component is one Gaussian bump of the demo model.
type Component struct {
	Scale float64
	Shift float64
}

// Model is the structured object the demo run optimizes: a sum of Gaussian
// bumps fitted to a dataset.
type Model struct {
	Components []Component
}

// Eval returns the model value at x.
func (m Model) Eval(x float64) float64 {
	var sum float64
	for _, c := range m.Components {
		d := x - c.Shift
		sum += c.Scale * math.Exp(-d*d)
	}
	return sum
}

// Dataset holds the points the model is fitted to.
type Dataset struct {
	X []float64
	Y []float64
}

// mseObjective scores a trial model against the dataset by mean squared
// error. It is the structured objective handed to structfit.
func mseObjective(obj, params any) float64 {
	m := obj.(Model)
	d := params.(Dataset)

	var sum float64
	for i, x := range d.X {
		r := m.Eval(x) - d.Y[i]
		sum += r * r
	}
	return sum / float64(len(d.X))
}
