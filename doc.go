// Package structfit lets a generic numeric optimizer operate on arbitrary
// structured Go values instead of raw vectors.
//
// A caller names the sub-values to optimize by path expressions (resolved by
// package optic), optionally with bound intervals and nonlinear constraints.
// structfit flattens the named positions into the flat []float64 the solver
// needs, assembles bound and constraint vectors, wraps the caller's
// structured objective so it accepts vectors, and reconstructs a structured
// result from the solver's output.
//
// Two operating modes exist. In mutation mode the seed is a concrete
// instance: trial objects are fresh copies of the seed with the matched
// positions replaced. In construction mode the seed is a type token
// (optic.TypeOf); every var must be bounded and match exactly one field, the
// starting point is the bound midpoints, and trial objects are built from
// scratch.
//
// Every operation is a pure function: seeds are never mutated, every trial
// object is freshly allocated, and nothing is cached between calls, so the
// produced objective and constraint functions are safe for concurrent
// invocation by population-based solvers.
package structfit
