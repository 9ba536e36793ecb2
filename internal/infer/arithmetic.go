package infer

import (
	"math"

	"github.com/strictnum/floatgen/internal/ir"
)

// Arithmetic computes the table entry for op over two configured
// constraints. ok is false when no configured constraint can hold the
// result, in which case the operation is not emitted.
func Arithmetic(cfg *ir.Config, op ir.ArithmeticOp, lhs, rhs string) (ir.ArithmeticResult, bool) {
	L, R := cfg.Constraint(lhs), cfg.Constraint(rhs)
	if L == nil || R == nil {
		return ir.ArithmeticResult{}, false
	}
	switch op {
	case ir.OpAdd:
		return addResult(cfg, shapeOf(L), shapeOf(R))
	case ir.OpSub:
		// L - R = L + (-R)
		return addResult(cfg, shapeOf(L), shapeOf(R).negated())
	case ir.OpMul:
		return mulResult(cfg, L, R)
	case ir.OpDiv:
		return divResult(cfg, L, R)
	}
	return ir.ArithmeticResult{}, false
}

// addResult infers a sum. Opposite-signed operands cannot overflow
// (the magnitude never exceeds the larger operand), so those sums are
// safe; same-signed sums can reach infinity and are not. The zero
// exclusion survives only when both operands sit strictly on the same
// half-line, and bounds are the interval sum when both operands carry
// them.
func addResult(cfg *ir.Config, L, R shape) (ir.ArithmeticResult, bool) {
	L, R = L.normalize(), R.normalize()

	opposite := (L.sign == ir.SignPositive && R.sign == ir.SignNegative) ||
		(L.sign == ir.SignNegative && R.sign == ir.SignPositive)

	out := shape{sign: ir.SignAny}
	switch {
	case L.sign == ir.SignPositive && R.sign == ir.SignPositive:
		out.sign = ir.SignPositive
	case L.sign == ir.SignNegative && R.sign == ir.SignNegative:
		out.sign = ir.SignNegative
	}
	if L.sign == R.sign && L.sign != ir.SignAny {
		out.excludesZero = L.excludesZero && R.excludesZero
	}
	if L.bounded() && R.bounded() {
		out.lower = finiteBound(*L.lower + *R.lower)
		out.upper = finiteBound(*L.upper + *R.upper)
	}

	name, _, ok := findMatching(cfg, out, false)
	return ir.ArithmeticResult{Output: name, Safe: opposite}, ok
}

// mulResult infers a product. With both operands bounded and all corner
// products finite, an interval-equal constraint match makes the product
// safe; otherwise the sign/zero-compatible unbounded target is chosen
// and overflow must surface as an error.
func mulResult(cfg *ir.Config, L, R *ir.Constraint) (ir.ArithmeticResult, bool) {
	sign := mulSign(L.Sign, R.Sign)
	excludesZero := L.ExcludesZero && R.ExcludesZero

	if L.IsBounded() && R.IsBounded() {
		lo, hi, finite := cornerProducts(L, R)
		if finite {
			s := shape{sign: sign, excludesZero: excludesZero, lower: finiteBound(lo), upper: finiteBound(hi)}
			if name, exact, ok := findMatching(cfg, s, true); ok && exact {
				return ir.ArithmeticResult{Output: name, Safe: true}, true
			}
		}
	}

	name, _, ok := findMatching(cfg, shape{sign: sign, excludesZero: excludesZero}, false)
	return ir.ArithmeticResult{Output: name, Safe: false}, ok
}

// divResult infers a quotient. Division is unsafe except the narrowing
// case: dividend within [-1, 1], divisor bounded away from zero on one
// half-line, and all corner quotients finite with the smallest positive
// value standing in for a zero divisor bound. The quotient keeps the
// dividend's zero exclusion (x/y = 0 iff x = 0).
func divResult(cfg *ir.Config, L, R *ir.Constraint) (ir.ArithmeticResult, bool) {
	sign := mulSign(L.Sign, R.Sign)
	excludesZero := L.ExcludesZero

	if narrowDividend(L) && divisorExcludesZero(R) && R.Sign != ir.SignAny {
		lo, hi, finite := cornerQuotients(L, R)
		if finite {
			s := shape{sign: sign, excludesZero: excludesZero, lower: finiteBound(lo), upper: finiteBound(hi)}
			if name, exact, ok := findMatching(cfg, s, true); ok && exact {
				return ir.ArithmeticResult{Output: name, Safe: true}, true
			}
		}
	}

	name, _, ok := findMatching(cfg, shape{sign: sign, excludesZero: excludesZero}, false)
	return ir.ArithmeticResult{Output: name, Safe: false}, ok
}

// mulSign is the sign algebra shared by multiplication and division.
func mulSign(a, b ir.Sign) ir.Sign {
	if a == ir.SignAny || b == ir.SignAny {
		return ir.SignAny
	}
	if a == b {
		return ir.SignPositive
	}
	return ir.SignNegative
}

func cornerProducts(L, R *ir.Constraint) (lo, hi float64, finite bool) {
	corners := [4]float64{
		*L.Lower * *R.Lower,
		*L.Lower * *R.Upper,
		*L.Upper * *R.Lower,
		*L.Upper * *R.Upper,
	}
	return cornerRange(corners)
}

// narrowDividend reports whether the dividend's set lies within [-1, 1],
// so quotients stay bounded by the divisor's corners.
func narrowDividend(c *ir.Constraint) bool {
	return c.Lower != nil && *c.Lower >= -1 && c.Upper != nil && *c.Upper <= 1
}

// divisorExcludesZero reports whether the divisor's set cannot contain
// zero, by flag or by bounds.
func divisorExcludesZero(c *ir.Constraint) bool {
	if c.ExcludesZero {
		return true
	}
	if c.Lower != nil && *c.Lower > 0 {
		return true
	}
	return c.Upper != nil && *c.Upper < 0
}

func cornerQuotients(L, R *ir.Constraint) (lo, hi float64, finite bool) {
	s := shapeOf(R).normalize()
	rl := math.Inf(-1)
	if s.lower != nil {
		rl = *s.lower
		if rl == 0 {
			rl = math.SmallestNonzeroFloat64
		}
	}
	ru := math.Inf(1)
	if s.upper != nil {
		ru = *s.upper
		if ru == 0 {
			ru = -math.SmallestNonzeroFloat64
		}
	}
	corners := [4]float64{
		*L.Lower / rl,
		*L.Lower / ru,
		*L.Upper / rl,
		*L.Upper / ru,
	}
	return cornerRange(corners)
}

func cornerRange(corners [4]float64) (lo, hi float64, finite bool) {
	lo, hi = corners[0], corners[0]
	for _, v := range corners {
		if !isFinite(v) {
			return 0, 0, false
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, true
}
