package infer

import "github.com/strictnum/floatgen/internal/ir"

// Tables holds every inference verdict for one configuration. Build
// once, look up everywhere. Absent arithmetic or unary entries mean the
// operation is not emitted for that operand pair.
type Tables struct {
	Config *ir.Config

	Arithmetic  map[ir.ArithKey]ir.ArithmeticResult
	Unary       map[ir.UnaryKey]ir.UnaryResult
	Conversions map[ir.ConvKey]ir.ConversionVerdict
	Constants   map[ir.ConstKey]bool
}

// Build materialises all inference tables for a resolved configuration.
func Build(cfg *ir.Config) *Tables {
	t := &Tables{
		Config:      cfg,
		Arithmetic:  make(map[ir.ArithKey]ir.ArithmeticResult),
		Unary:       make(map[ir.UnaryKey]ir.UnaryResult),
		Conversions: make(map[ir.ConvKey]ir.ConversionVerdict),
		Constants:   make(map[ir.ConstKey]bool),
	}
	for i := range cfg.Constraints {
		lhs := &cfg.Constraints[i]
		for j := range cfg.Constraints {
			rhs := &cfg.Constraints[j]
			for _, op := range ir.AllArithmeticOps() {
				if res, ok := Arithmetic(cfg, op, lhs.Name, rhs.Name); ok {
					t.Arithmetic[ir.ArithKey{Op: op, Lhs: lhs.Name, Rhs: rhs.Name}] = res
				}
			}
			if i != j {
				t.Conversions[ir.ConvKey{Source: lhs.Name, Target: rhs.Name}] = SameWidth(lhs, rhs)
			}
		}
		for _, op := range ir.AllUnaryOps() {
			if res, ok := Unary(cfg, op, lhs.Name); ok {
				t.Unary[ir.UnaryKey{Op: op, Input: lhs.Name}] = res
			}
		}
		for _, k := range Catalogue() {
			t.Constants[ir.ConstKey{Constant: k.Name, Constraint: lhs.Name}] = Admissible(lhs, k)
		}
	}
	return t
}

// Arith looks up a binary verdict.
func (t *Tables) Arith(op ir.ArithmeticOp, lhs, rhs string) (ir.ArithmeticResult, bool) {
	res, ok := t.Arithmetic[ir.ArithKey{Op: op, Lhs: lhs, Rhs: rhs}]
	return res, ok
}

// UnaryFor looks up a unary verdict.
func (t *Tables) UnaryFor(op ir.UnaryOp, input string) (ir.UnaryResult, bool) {
	res, ok := t.Unary[ir.UnaryKey{Op: op, Input: input}]
	return res, ok
}

// Conversion looks up a same-width conversion verdict for an ordered
// pair of distinct constraints.
func (t *Tables) Conversion(source, target string) (ir.ConversionVerdict, bool) {
	v, ok := t.Conversions[ir.ConvKey{Source: source, Target: target}]
	return v, ok
}

// Admits reports whether the named constant is admissible for the named
// constraint.
func (t *Tables) Admits(constant, constraint string) bool {
	return t.Constants[ir.ConstKey{Constant: constant, Constraint: constraint}]
}

// FullSet returns the first configured constraint admitting every
// finite value. Primitive float operands are looked up through it;
// without one, wrapper-primitive arithmetic is not emitted.
func FullSet(cfg *ir.Config) (string, bool) {
	for i := range cfg.Constraints {
		c := &cfg.Constraints[i]
		if c.Lower == nil && c.Upper == nil && !c.ExcludesZero {
			return c.Name, true
		}
	}
	return "", false
}
