// Package vector converts flat float64 sequences into one of three container
// representations: an immutable tuple, a growable dense vector, or a
// fixed-size vector. The representation is chosen by Kind when a problem
// spec is built, never inferred from the contents of a vector at run time.
package vector

import (
	"errors"
	"fmt"
)

// ErrKind indicates an unknown container kind.
var ErrKind = errors.New("vector: unknown container kind")

// Kind selects the container representation for assembled vectors.
type Kind int

const (
	// Tuple is an immutable fixed-arity container.
	Tuple Kind = iota
	// Dense is a dynamically sized container.
	Dense
	// Fixed is a fixed-size container whose elements may be rewritten but
	// whose length never changes.
	Fixed
)

func (k Kind) String() string {
	switch k {
	case Tuple:
		return "tuple"
	case Dense:
		return "dense"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("vector.Kind(%d)", int(k))
	}
}

// Valid reports whether k names a supported container kind.
func (k Kind) Valid() bool { return k == Tuple || k == Dense || k == Fixed }

// Vector is the read surface shared by all container kinds. Slice always
// returns a fresh copy in element order, so converting to a container and
// back is lossless for every kind.
type Vector interface {
	Len() int
	At(i int) float64
	Slice() []float64
}

// Converter builds a container of a fixed kind from a flat sequence.
// The input is copied, never aliased.
type Converter func(vals []float64) Vector

// Of returns the converter for k. The kind switch happens here, once per
// spec, so conversion itself carries no per-call dispatch.
func Of(k Kind) (Converter, error) {
	switch k {
	case Tuple:
		return func(vals []float64) Vector { return TupleVec{elems: clone(vals)} }, nil
	case Dense:
		return func(vals []float64) Vector { return &DenseVec{elems: clone(vals)} }, nil
	case Fixed:
		return func(vals []float64) Vector { return &FixedVec{elems: clone(vals)} }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrKind, int(k))
	}
}

// MustOf is Of for kinds known valid at compile time. It panics on an
// unknown kind.
func MustOf(k Kind) Converter {
	c, err := Of(k)
	if err != nil {
		panic(err)
	}
	return c
}

// TupleVec is an immutable fixed-arity container with value semantics.
type TupleVec struct {
	elems []float64
}

func (t TupleVec) Len() int         { return len(t.elems) }
func (t TupleVec) At(i int) float64 { return t.elems[i] }
func (t TupleVec) Slice() []float64 { return clone(t.elems) }

// DenseVec is a dynamically sized container.
type DenseVec struct {
	elems []float64
}

func (d *DenseVec) Len() int         { return len(d.elems) }
func (d *DenseVec) At(i int) float64 { return d.elems[i] }
func (d *DenseVec) Slice() []float64 { return clone(d.elems) }

// Set rewrites element i.
func (d *DenseVec) Set(i int, v float64) { d.elems[i] = v }

// Append grows the vector by the given values.
func (d *DenseVec) Append(vals ...float64) { d.elems = append(d.elems, vals...) }

// FixedVec is a fixed-size container: elements may be rewritten, the length
// never changes.
type FixedVec struct {
	elems []float64
}

func (f *FixedVec) Len() int         { return len(f.elems) }
func (f *FixedVec) At(i int) float64 { return f.elems[i] }
func (f *FixedVec) Slice() []float64 { return clone(f.elems) }

// Set rewrites element i.
func (f *FixedVec) Set(i int, v float64) { f.elems[i] = v }

func clone(vals []float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}
