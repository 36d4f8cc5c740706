package optic

import (
	"fmt"
	"math"
	"reflect"
)

// GetAll extracts every value matched by the combined path, in match order,
// converted to float64. Matched leaves must be numeric kinds.
func (cp CombinedPath) GetAll(obj any) ([]float64, error) {
	var out []float64
	for _, p := range cp.paths {
		err := p.visit(reflect.ValueOf(obj), func(leaf reflect.Value) error {
			v, err := numValue(leaf)
			if err != nil {
				return err
			}
			out = append(out, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SetAll returns a fresh deep copy of obj in which the matched positions are
// replaced positionally by vals. The input is never mutated. The length of
// vals must equal the combined path's match count.
func (cp CombinedPath) SetAll(obj any, vals []float64) (any, error) {
	rv := reflect.ValueOf(obj)
	root := reflect.New(rv.Type())
	root.Elem().Set(deepCopy(rv))

	i := 0
	for _, p := range cp.paths {
		err := p.visit(root.Elem(), func(leaf reflect.Value) error {
			if i >= len(vals) {
				return fmt.Errorf("%w: got %d values", ErrValueCount, len(vals))
			}
			if err := setNum(leaf, vals[i]); err != nil {
				return err
			}
			i++
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if i != len(vals) {
		return nil, fmt.Errorf("%w: %d values for %d matches", ErrValueCount, len(vals), i)
	}
	return root.Elem().Interface(), nil
}

// Count returns the combined path's total match count against obj.
func (cp CombinedPath) Count(obj any) (int, error) {
	total := 0
	for _, p := range cp.paths {
		n, err := p.Count(obj)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Count returns the number of positions the path matches in obj.
func (p Path) Count(obj any) (int, error) {
	n := 0
	err := p.visit(reflect.ValueOf(obj), func(reflect.Value) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// visit walks v along the path segments and calls fn once per matched leaf,
// in stable order. Pointers and interfaces are dereferenced at every step.
func (p Path) visit(v reflect.Value, fn func(leaf reflect.Value) error) error {
	return p.walk(v, 0, fn)
}

func (p Path) walk(v reflect.Value, depth int, fn func(reflect.Value) error) error {
	v = deref(v)
	if depth == len(p.segs) {
		return fn(v)
	}
	if !v.IsValid() {
		return fmt.Errorf("%w: %q: nil value at %q", ErrNoMatch, p.expr, p.prefix(depth))
	}

	seg := p.segs[depth]
	switch {
	case seg.isField():
		if v.Kind() != reflect.Struct {
			return fmt.Errorf("%w: %q: %q is not a struct", ErrNoMatch, p.expr, p.prefix(depth))
		}
		f := v.FieldByName(seg.field)
		if !f.IsValid() {
			return fmt.Errorf("%w: %q: no field %q in %s", ErrNoMatch, p.expr, seg.field, v.Type())
		}
		return p.walk(f, depth+1, fn)
	case seg.wild:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return fmt.Errorf("%w: %q: %q is not indexable", ErrNoMatch, p.expr, p.prefix(depth))
		}
		for i := 0; i < v.Len(); i++ {
			if err := p.walk(v.Index(i), depth+1, fn); err != nil {
				return err
			}
		}
		return nil
	default:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return fmt.Errorf("%w: %q: %q is not indexable", ErrNoMatch, p.expr, p.prefix(depth))
		}
		if seg.index >= v.Len() {
			return fmt.Errorf("%w: %q: index %d out of range (len %d)", ErrNoMatch, p.expr, seg.index, v.Len())
		}
		return p.walk(v.Index(seg.index), depth+1, fn)
	}
}

// prefix renders the expression up to (not including) segment depth,
// for error messages.
func (p Path) prefix(depth int) string {
	s := ""
	for i := 0; i < depth && i < len(p.segs); i++ {
		seg := p.segs[i]
		switch {
		case seg.isField():
			if s != "" {
				s += "."
			}
			s += seg.field
		case seg.wild:
			s += "[*]"
		default:
			s += fmt.Sprintf("[%d]", seg.index)
		}
	}
	if s == "" {
		return "<root>"
	}
	return s
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func numValue(v reflect.Value) (float64, error) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	default:
		return 0, fmt.Errorf("%w: kind %s", ErrNotNumeric, v.Kind())
	}
}

func setNum(v reflect.Value, f float64) error {
	if !v.CanSet() {
		return fmt.Errorf("%w: kind %s", ErrUnsettable, v.Kind())
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(math.Round(f)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(math.Round(math.Max(f, 0))))
	default:
		return fmt.Errorf("%w: kind %s", ErrNotNumeric, v.Kind())
	}
	return nil
}

// deepCopy clones v so that no reference-typed sub-value is shared with the
// original. Unexported struct fields are carried over by whole-struct
// assignment; they are copied shallowly.
func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(deepCopy(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		// Whole-struct assignment first so unexported fields survive.
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if out.Field(i).CanSet() {
				out.Field(i).Set(deepCopy(v.Field(i)))
			}
		}
		return out
	default:
		return v
	}
}
