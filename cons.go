package structfit

import (
	"fmt"

	"github.com/cwbudde/structfit/vector"
)

// ConFunc evaluates one scalar constraint against a reconstructed object and
// the problem's external params.
type ConFunc func(obj, params any) float64

// Con pairs a constraint function with the interval its value must stay in.
type Con struct {
	Fn     ConFunc
	Bounds Interval
}

// Cons is a validated, ordered constraint spec plus the container kind used
// when assembling constraint bound vectors.
type Cons struct {
	cons []Con
	conv vector.Converter
	kind vector.Kind
}

// NewCons validates a constraint spec. The kind selects the container for
// BoundVectors and is fixed here, once, per spec.
func NewCons(kind vector.Kind, cons ...Con) (*Cons, error) {
	if len(cons) == 0 {
		return nil, ErrNoCons
	}
	conv, err := vector.Of(kind)
	if err != nil {
		return nil, err
	}
	for i, c := range cons {
		if c.Fn == nil {
			return nil, fmt.Errorf("%w: constraint %d", ErrNilConFn, i)
		}
	}
	out := &Cons{cons: make([]Con, len(cons)), conv: conv, kind: kind}
	copy(out.cons, cons)
	return out, nil
}

// MustCons is NewCons for specs known valid at compile time.
func MustCons(kind vector.Kind, cons ...Con) *Cons {
	c, err := NewCons(kind, cons...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of constraints.
func (c *Cons) Len() int { return len(c.cons) }

// Kind returns the declared container kind.
func (c *Cons) Kind() vector.Kind { return c.kind }

// BoundVectors extracts each constraint's lo/hi in declaration order,
// converted to the declared container kind.
func (c *Cons) BoundVectors() (lcons, ucons vector.Vector) {
	lo, hi := c.boundsRaw()
	return c.conv(lo), c.conv(hi)
}

func (c *Cons) boundsRaw() (lo, hi []float64) {
	lo = make([]float64, len(c.cons))
	hi = make([]float64, len(c.cons))
	for i, con := range c.cons {
		lo[i] = con.Bounds.Lo
		hi[i] = con.Bounds.Hi
	}
	return lo, hi
}

// Func returns the raw constraint evaluator handed to the solver: it
// unflattens x against the fixed seed and spec, evaluates every constraint
// against (object, params), and writes results positionally into out. The
// evaluator allocates a fresh object per call and is safe for concurrent
// invocation. Failures inside user constraint functions are not intercepted.
func (c *Cons) Func(seed any, args *Args) func(out, x []float64, params any) {
	cons := c.cons
	return func(out, x []float64, params any) {
		obj, err := Unflatten(seed, args, x)
		if err != nil {
			// The solver owns the vector shape; reaching this is a wiring
			// defect, not a recoverable condition.
			panic(err)
		}
		for i, con := range cons {
			out[i] = con.Fn(obj, params)
		}
	}
}
