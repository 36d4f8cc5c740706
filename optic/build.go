package optic

import (
	"fmt"
	"reflect"
)

// Target is a type token used when no seed instance exists and a new value
// must be synthesized from (path, value) pairs.
type Target struct {
	t reflect.Type
}

// TypeOf returns the construction target for T.
func TypeOf[T any]() Target {
	return Target{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// TargetOf returns the construction target for the dynamic type of v.
func TargetOf(v any) Target {
	return Target{t: reflect.TypeOf(v)}
}

// Type returns the underlying type, or nil for the zero Target.
func (t Target) Type() reflect.Type { return t.t }

// Zero returns a zero instance of the target type.
func (t Target) Zero() any { return reflect.New(t.t).Elem().Interface() }

func (t Target) String() string {
	if t.t == nil {
		return "optic.Target(<nil>)"
	}
	return "optic.Target(" + t.t.String() + ")"
}

// FieldValue pairs a path with the value to place at its single match.
type FieldValue struct {
	Path  Path
	Value float64
}

// Build constructs a new instance of the target type from field values.
// Every path must match exactly one position in the zero instance of the
// type; multi-match or non-resolving paths fail with ErrArity.
func Build(target Target, pairs []FieldValue) (any, error) {
	if target.t == nil {
		return nil, fmt.Errorf("%w: nil target type", ErrNoMatch)
	}
	root := reflect.New(target.t)

	for _, fv := range pairs {
		n := 0
		err := fv.Path.visit(root.Elem(), func(leaf reflect.Value) error {
			n++
			if n > 1 {
				return fmt.Errorf("%w: %q matches multiple positions in %s", ErrArity, fv.Path, target.t)
			}
			return setNum(leaf, fv.Value)
		})
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: %q matches nothing in %s", ErrArity, fv.Path, target.t)
		}
	}
	return root.Elem().Interface(), nil
}
