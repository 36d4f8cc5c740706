package structfit

import (
	"github.com/cwbudde/structfit/optic"
	"github.com/cwbudde/structfit/vector"
)

// Bounds assembles the lower and upper bound vectors for the spec, converted
// to the requested container kind.
//
// An unbounded spec yields an empty pair: no box constraints are passed
// downstream. Otherwise each var's interval is replicated once per matched
// position (construction mode: once per var) and concatenated in the same
// order Flatten uses.
func Bounds(seed any, args *Args, kind vector.Kind) (lower, upper vector.Vector, err error) {
	conv, err := vector.Of(kind)
	if err != nil {
		return nil, nil, err
	}
	lo, hi, err := boundsRaw(seed, args)
	if err != nil {
		return nil, nil, err
	}
	return conv(lo), conv(hi), nil
}

// boundsRaw assembles the bound slices handed to the solver boundary.
func boundsRaw(seed any, args *Args) (lower, upper []float64, err error) {
	if !args.bounded {
		return nil, nil, nil
	}

	counts, err := matchCounts(seed, args)
	if err != nil {
		return nil, nil, err
	}
	for i, v := range args.vars {
		for n := 0; n < counts[i]; n++ {
			lower = append(lower, v.Bounds.Lo)
			upper = append(upper, v.Bounds.Hi)
		}
	}
	return lower, upper, nil
}

// matchCounts returns each var's match count: positions matched in the seed
// instance, or exactly one per var in construction mode.
func matchCounts(seed any, args *Args) ([]int, error) {
	counts := make([]int, args.Len())

	if tgt, ok := seed.(optic.Target); ok {
		if err := checkArity(tgt, args); err != nil {
			return nil, err
		}
		for i := range counts {
			counts[i] = 1
		}
		return counts, nil
	}

	for i, p := range args.paths {
		n, err := p.Count(seed)
		if err != nil {
			return nil, err
		}
		counts[i] = n
	}
	return counts, nil
}
