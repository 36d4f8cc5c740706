package structfit

import (
	"fmt"

	"github.com/cwbudde/structfit/optic"
)

// Interval is an inclusive [Lo, Hi] bound pair.
type Interval struct {
	Lo float64
	Hi float64
}

// Mid returns the interval midpoint, the construction-mode starting value.
func (iv Interval) Mid() float64 { return (iv.Lo + iv.Hi) / 2 }

func (iv Interval) String() string { return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi) }

// Var names one set of positions to optimize: a path expression plus an
// optional bound interval. If Bounds is present it is replicated once per
// matched position.
type Var struct {
	Expr   string
	Bounds *Interval
}

// Free declares an unbounded var.
func Free(expr string) Var { return Var{Expr: expr} }

// In declares a var bounded to [lo, hi].
func In(expr string, lo, hi float64) Var {
	return Var{Expr: expr, Bounds: &Interval{Lo: lo, Hi: hi}}
}

// Args is a validated, ordered variable spec. Build it once with NewArgs and
// never mutate it; Args values are safe to share across solves.
type Args struct {
	vars     []Var
	paths    []optic.Path
	combined optic.CombinedPath
	bounded  bool
}

// NewArgs validates and resolves a variable spec. Mixing bounded and
// unbounded vars fails fast with ErrMixedBounds; a malformed path expression
// surfaces the optic parse error.
func NewArgs(vars ...Var) (*Args, error) {
	if len(vars) == 0 {
		return nil, ErrNoVars
	}

	bounded := 0
	for _, v := range vars {
		if v.Bounds != nil {
			bounded++
		}
	}
	if bounded != 0 && bounded != len(vars) {
		return nil, fmt.Errorf("%w: %d of %d vars bounded", ErrMixedBounds, bounded, len(vars))
	}

	a := &Args{
		vars:    make([]Var, len(vars)),
		paths:   make([]optic.Path, len(vars)),
		bounded: bounded == len(vars),
	}
	copy(a.vars, vars)
	for i, v := range vars {
		p, err := optic.Resolve(v.Expr)
		if err != nil {
			return nil, err
		}
		a.paths[i] = p
	}
	a.combined = optic.Combine(a.paths...)
	return a, nil
}

// MustArgs is NewArgs for specs known valid at compile time.
func MustArgs(vars ...Var) *Args {
	a, err := NewArgs(vars...)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of vars.
func (a *Args) Len() int { return len(a.vars) }

// Bounded reports whether the spec carries bounds (all vars do, or none).
func (a *Args) Bounded() bool { return a.bounded }

// Vars returns the vars in declaration order.
func (a *Args) Vars() []Var {
	out := make([]Var, len(a.vars))
	copy(out, a.vars)
	return out
}

// Combined returns the order-preserving concatenation of all var paths.
func (a *Args) Combined() optic.CombinedPath { return a.combined }
