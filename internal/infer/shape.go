package infer

import (
	"math"

	"github.com/strictnum/floatgen/internal/ir"
)

// shape describes a computed result set before constraint selection: an
// interval, a zero exclusion, and the sign algebra's verdict. nil bounds
// are unbounded sides.
type shape struct {
	sign         ir.Sign
	excludesZero bool
	lower        *float64
	upper        *float64
}

// shapeOf reads a constraint's admissible set as a shape.
func shapeOf(c *ir.Constraint) shape {
	return shape{
		sign:         c.Sign,
		excludesZero: c.ExcludesZero,
		lower:        c.Lower,
		upper:        c.Upper,
	}
}

// normalize drops non-finite bounds and materialises the bound each
// half-line sign implies, so containment tests see explicit intervals.
func (s shape) normalize() shape {
	if s.lower != nil && !isFinite(*s.lower) {
		s.lower = nil
	}
	if s.upper != nil && !isFinite(*s.upper) {
		s.upper = nil
	}
	if s.sign == ir.SignPositive && s.lower == nil {
		s.lower = ir.Bound(0)
	}
	if s.sign == ir.SignNegative && s.upper == nil {
		s.upper = ir.Bound(0)
	}
	return s
}

// negated mirrors the shape across zero.
func (s shape) negated() shape {
	out := shape{
		excludesZero: s.excludesZero,
		lower:        negBound(s.upper),
		upper:        negBound(s.lower),
	}
	switch s.sign {
	case ir.SignPositive:
		out.sign = ir.SignNegative
	case ir.SignNegative:
		out.sign = ir.SignPositive
	default:
		out.sign = ir.SignAny
	}
	return out
}

// bounded reports whether the shape has both bounds.
func (s shape) bounded() bool {
	return s.lower != nil && s.upper != nil
}

// setContains reports whether c's admissible set contains every value
// the normalized shape can take. A zero exclusion on c is only sound
// when the shape excludes zero too.
func setContains(c *ir.Constraint, s shape) bool {
	if c.Lower != nil && (s.lower == nil || *s.lower < *c.Lower) {
		return false
	}
	if c.Upper != nil && (s.upper == nil || *s.upper > *c.Upper) {
		return false
	}
	if c.ExcludesZero && !s.excludesZero {
		return false
	}
	return true
}

// boundsMatch reports whether c's interval equals the shape's exactly.
func boundsMatch(c *ir.Constraint, s shape) bool {
	return pointerBoundEqual(c.Lower, s.lower) && pointerBoundEqual(c.Upper, s.upper)
}

// subsetOf reports whether c's admissible set is contained in d's. This
// is also the same-width conversion rule: S -> T needs no check iff
// subsetOf(S, T).
func subsetOf(c, d *ir.Constraint) bool {
	if d.Lower != nil && (c.Lower == nil || *c.Lower < *d.Lower) {
		return false
	}
	if d.Upper != nil && (c.Upper == nil || *c.Upper > *d.Upper) {
		return false
	}
	if d.ExcludesZero && !c.ExcludesZero {
		return false
	}
	return true
}

// strictSubsetOf reports proper containment of c's set in d's.
func strictSubsetOf(c, d *ir.Constraint) bool {
	return subsetOf(c, d) && !subsetOf(d, c)
}

func pointerBoundEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// finiteBound wraps a computed bound, collapsing -0 and dropping
// overflowed values to unbounded.
func finiteBound(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	if v == 0 {
		return ir.Bound(0)
	}
	return ir.Bound(v)
}

func negBound(p *float64) *float64 {
	if p == nil {
		return nil
	}
	if *p == 0 {
		return ir.Bound(0)
	}
	return ir.Bound(-*p)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
