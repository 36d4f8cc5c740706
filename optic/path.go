package optic

import (
	"fmt"
	"strconv"
	"strings"
)

// segment is a single step of a path: a struct field access, a concrete
// slice/array index, or a wildcard over all elements.
type segment struct {
	field string
	index int
	wild  bool
}

func (s segment) isField() bool { return s.field != "" }

// Path is a parsed path expression. The zero value is invalid; obtain paths
// via Resolve or MustResolve. Paths are immutable and safe to share.
type Path struct {
	expr string
	segs []segment
}

// Resolve parses a path expression. The grammar is
//
//	path    = ident { "." ident | "[" index "]" }
//	index   = integer | "*"
//
// where ident is a Go identifier naming an exported struct field.
func Resolve(expr string) (Path, error) {
	p := parser{src: expr}
	segs, err := p.parse()
	if err != nil {
		return Path{}, fmt.Errorf("%w: %q: %v", ErrSyntax, expr, err)
	}
	return Path{expr: expr, segs: segs}, nil
}

// MustResolve is Resolve for expressions known valid at compile time.
// It panics on a parse error.
func MustResolve(expr string) Path {
	p, err := Resolve(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the original expression.
func (p Path) String() string { return p.expr }

// CombinedPath is an order-preserving concatenation of paths. Operations on a
// combined path visit every match of the first path, then every match of the
// second, and so on.
type CombinedPath struct {
	paths []Path
}

// Combine concatenates paths in declaration order.
func Combine(paths ...Path) CombinedPath {
	cp := CombinedPath{paths: make([]Path, len(paths))}
	copy(cp.paths, paths)
	return cp
}

// Paths returns the constituent paths in order.
func (cp CombinedPath) Paths() []Path {
	out := make([]Path, len(cp.paths))
	copy(out, cp.paths)
	return out
}

type parser struct {
	src string
	pos int
}

func (p *parser) parse() ([]segment, error) {
	var segs []segment

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	segs = append(segs, segment{field: name})

	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '.':
			p.pos++
			name, err := p.ident()
			if err != nil {
				return nil, err
			}
			segs = append(segs, segment{field: name})
		case '[':
			p.pos++
			seg, err := p.index()
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		default:
			return nil, fmt.Errorf("unexpected %q at position %d", p.src[p.pos], p.pos)
		}
	}
	return segs, nil
}

func (p *parser) ident() (string, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos], p.pos == start) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("expected identifier at position %d", start)
	}
	return p.src[start:p.pos], nil
}

func (p *parser) index() (segment, error) {
	end := strings.IndexByte(p.src[p.pos:], ']')
	if end < 0 {
		return segment{}, fmt.Errorf("unterminated index at position %d", p.pos)
	}
	inner := p.src[p.pos : p.pos+end]
	p.pos += end + 1

	if inner == "*" {
		return segment{index: -1, wild: true}, nil
	}
	i, err := strconv.Atoi(inner)
	if err != nil || i < 0 {
		return segment{}, fmt.Errorf("invalid index %q", inner)
	}
	return segment{index: i}, nil
}

func isIdentChar(c byte, first bool) bool {
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return !first && c >= '0' && c <= '9'
}
