package infer

import (
	"math"

	"github.com/strictnum/floatgen/internal/ir"
)

// Unary computes the table entry for a unary operation on a configured
// constraint. ok is false when the operation has no target type: a
// constraint without a negation counterpart gets no Neg, and a pool
// without a wide-enough constraint gets no trigonometry.
func Unary(cfg *ir.Config, op ir.UnaryOp, input string) (ir.UnaryResult, bool) {
	c := cfg.Constraint(input)
	if c == nil {
		return ir.UnaryResult{}, false
	}
	switch op {
	case ir.OpNeg:
		if c.NegateTo == "" {
			return ir.UnaryResult{}, false
		}
		return ir.UnaryResult{Output: c.NegateTo, Safe: true}, true
	case ir.OpAbs:
		name, _, ok := findMatching(cfg, absShape(c), true)
		return ir.UnaryResult{Output: name, Safe: true}, ok
	case ir.OpSignum:
		name, _, ok := findMatching(cfg, signumShape(c), true)
		return ir.UnaryResult{Output: name, Safe: true}, ok
	case ir.OpSin, ir.OpCos:
		// sin/cos of any finite input lies in [-1, 1].
		s := shape{sign: ir.SignAny, lower: ir.Bound(-1), upper: ir.Bound(1)}
		name, _, ok := findMatching(cfg, s, true)
		return ir.UnaryResult{Output: name, Safe: true}, ok
	case ir.OpTan:
		// tan is unbounded near odd multiples of pi/2; overflow surfaces
		// as an error.
		name, _, ok := findMatching(cfg, shape{sign: ir.SignAny}, false)
		return ir.UnaryResult{Output: name, Safe: false}, ok
	}
	return ir.UnaryResult{}, false
}

// absShape computes {|x| : x in c}.
func absShape(c *ir.Constraint) shape {
	s := shapeOf(c).normalize()
	out := shape{sign: ir.SignPositive, excludesZero: c.ExcludesZero, lower: ir.Bound(0)}
	switch c.Sign {
	case ir.SignPositive:
		out.lower, out.upper = s.lower, s.upper
	case ir.SignNegative:
		out.lower, out.upper = negBound(s.upper), negBound(s.lower)
	default:
		if s.bounded() {
			out.upper = ir.Bound(math.Max(-*s.lower, *s.upper))
		}
	}
	return out
}

// signumShape is the sign-indexed target set for signum. The zero
// exclusion is deliberately dropped: {-1, 1} and {-1, 0, 1} share one
// target so every signum lands in a unit-interval type.
func signumShape(c *ir.Constraint) shape {
	switch c.Sign {
	case ir.SignPositive:
		return shape{sign: ir.SignPositive, lower: ir.Bound(0), upper: ir.Bound(1)}
	case ir.SignNegative:
		return shape{sign: ir.SignNegative, lower: ir.Bound(-1), upper: ir.Bound(0)}
	}
	return shape{sign: ir.SignAny, lower: ir.Bound(-1), upper: ir.Bound(1)}
}
