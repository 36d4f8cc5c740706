package optic

import "errors"

var (
	// ErrSyntax indicates a path expression that does not parse.
	ErrSyntax = errors.New("optic: invalid path expression")
	// ErrNoMatch indicates a path that does not resolve against the given value.
	ErrNoMatch = errors.New("optic: path does not resolve")
	// ErrNotNumeric indicates a matched leaf that is not a numeric kind.
	ErrNotNumeric = errors.New("optic: matched value is not numeric")
	// ErrUnsettable indicates a matched leaf that cannot be written
	// (typically an unexported struct field).
	ErrUnsettable = errors.New("optic: matched value cannot be set")
	// ErrValueCount indicates a value slice whose length differs from the
	// path's match count.
	ErrValueCount = errors.New("optic: value count does not match path match count")
	// ErrArity indicates a construction-mode path that does not match exactly
	// one field of the target type.
	ErrArity = errors.New("optic: path must match exactly one field")
)
