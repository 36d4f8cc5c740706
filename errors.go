package structfit

import "errors"

var (
	// ErrNoVars indicates an empty variable spec.
	ErrNoVars = errors.New("structfit: spec needs at least one var")
	// ErrMixedBounds indicates a spec mixing bounded and unbounded vars.
	// Either every var carries bounds or none does.
	ErrMixedBounds = errors.New("structfit: bounded and unbounded vars mixed in one spec")
	// ErrUnboundedConstruction indicates construction mode without bounds;
	// there is no way to pick a starting point.
	ErrUnboundedConstruction = errors.New("structfit: construction mode requires bounds on every var")
	// ErrConstructionArity indicates a construction-mode var whose path does
	// not match exactly one field of the target type.
	ErrConstructionArity = errors.New("structfit: construction-mode var must match exactly one field")
	// ErrLength indicates a vector whose length differs from the spec's
	// total match count.
	ErrLength = errors.New("structfit: vector length does not match spec match count")
	// ErrNilObjective indicates a problem built without an objective.
	ErrNilObjective = errors.New("structfit: objective must not be nil")
	// ErrNilArgs indicates a problem built without a variable spec.
	ErrNilArgs = errors.New("structfit: variable spec must not be nil")
	// ErrNoCons indicates an empty constraint spec.
	ErrNoCons = errors.New("structfit: constraint spec needs at least one constraint")
	// ErrNilConFn indicates a constraint without a function.
	ErrNilConFn = errors.New("structfit: constraint function must not be nil")
)
