package structfit

import (
	"fmt"

	"github.com/cwbudde/structfit/optic"
)

// Flatten extracts the spec's matched positions from seed into a flat vector,
// in declaration order.
//
// Mutation mode (seed is an instance): the current values at every matched
// position. Construction mode (seed is an optic.Target): one bound midpoint
// per var; requires every var bounded and every path to match exactly one
// field of the target type.
func Flatten(seed any, args *Args) ([]float64, error) {
	if tgt, ok := seed.(optic.Target); ok {
		return constructionStart(tgt, args)
	}
	return args.combined.GetAll(seed)
}

// Unflatten produces a structured object from a flat vector. The seed is
// never mutated; the result is freshly allocated on every call.
//
// Mutation mode: a copy of seed with each matched position replaced by the
// corresponding vector entry, unmatched positions copied unchanged.
// Construction mode: a brand-new instance of the target type with each var's
// single field set to its vector entry.
func Unflatten(seed any, args *Args, vals []float64) (any, error) {
	if tgt, ok := seed.(optic.Target); ok {
		return construct(tgt, args, vals)
	}

	n, err := args.combined.Count(seed)
	if err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, fmt.Errorf("%w: got %d values for %d positions", ErrLength, len(vals), n)
	}
	return args.combined.SetAll(seed, vals)
}

func constructionStart(tgt optic.Target, args *Args) ([]float64, error) {
	if !args.bounded {
		return nil, ErrUnboundedConstruction
	}
	if err := checkArity(tgt, args); err != nil {
		return nil, err
	}
	out := make([]float64, args.Len())
	for i, v := range args.vars {
		out[i] = v.Bounds.Mid()
	}
	return out, nil
}

func construct(tgt optic.Target, args *Args, vals []float64) (any, error) {
	if err := checkArity(tgt, args); err != nil {
		return nil, err
	}
	if len(vals) != args.Len() {
		return nil, fmt.Errorf("%w: got %d values for %d vars", ErrLength, len(vals), args.Len())
	}
	pairs := make([]optic.FieldValue, args.Len())
	for i, p := range args.paths {
		pairs[i] = optic.FieldValue{Path: p, Value: vals[i]}
	}
	return optic.Build(tgt, pairs)
}

// checkArity verifies that every var path matches exactly one field of the
// target type's zero instance.
func checkArity(tgt optic.Target, args *Args) error {
	zero := tgt.Zero()
	for i, p := range args.paths {
		n, err := p.Count(zero)
		if err != nil {
			return err
		}
		if n != 1 {
			return fmt.Errorf("%w: var %d (%q) matches %d positions in %s",
				ErrConstructionArity, i, p, n, tgt.Type())
		}
	}
	return nil
}
