package gen

import (
	"github.com/strictnum/floatgen/internal/infer"
	"github.com/strictnum/floatgen/internal/ir"
)

// PairTuple is one resolved wrapper-by-wrapper arithmetic emission:
// both operand types, the method name on the left operand, and the
// kernel's verdict.
type PairTuple struct {
	Width  ir.Width
	Lhs    string
	Rhs    string
	Op     ir.ArithmeticOp
	Method string
	Result ir.ArithmeticResult
}

// PairTuples enumerates wrapper-by-wrapper arithmetic in emission
// order: width 32 before 64, left operand in declaration order, then
// operator, then right operand in declaration order. Operators
// disabled in the feature set and pairs without a table entry are
// skipped.
func PairTuples(t *infer.Tables) []PairTuple {
	cfg := t.Config
	var out []PairTuple
	for _, width := range ir.AllWidths() {
		for _, lhs := range cfg.WrappersAt(width) {
			for _, op := range ir.AllArithmeticOps() {
				if !cfg.Features.OpEnabled(op) {
					continue
				}
				for _, rhs := range cfg.WrappersAt(width) {
					res, ok := t.Arith(op, lhs.Constraint, rhs.Constraint)
					if !ok {
						continue
					}
					method := op.Method()
					if rhs.Constraint != lhs.Constraint {
						method += rhs.Constraint
					}
					out = append(out, PairTuple{
						Width:  width,
						Lhs:    lhs.Constraint,
						Rhs:    rhs.Constraint,
						Op:     op,
						Method: method,
						Result: res,
					})
				}
			}
		}
	}
	return out
}

// PrimTuple is one resolved wrapper-by-primitive arithmetic emission.
// With the primitive on the right the emission is a method on the
// wrapper; with the primitive on the left it is a package-level
// function.
type PrimTuple struct {
	Width         ir.Width
	Wrapper       string
	Op            ir.ArithmeticOp
	PrimitiveLeft bool
	Name          string
	Result        ir.ArithmeticResult
}

// PrimTuples enumerates wrapper-by-primitive arithmetic. The raw
// primitive is looked up as the configured full-set constraint; without
// one no tuples are produced. Every tuple is fallible at runtime
// regardless of the table's safety flag: the primitive is validated
// before the operation.
func PrimTuples(t *infer.Tables) []PrimTuple {
	cfg := t.Config
	full, ok := infer.FullSet(cfg)
	if !ok {
		return nil
	}
	var out []PrimTuple
	for _, width := range ir.AllWidths() {
		prim := "Float" + width.Tag()[1:]
		for _, w := range cfg.WrappersAt(width) {
			for _, op := range ir.AllArithmeticOps() {
				if !cfg.Features.OpEnabled(op) {
					continue
				}
				if res, ok := t.Arith(op, w.Constraint, full); ok {
					out = append(out, PrimTuple{
						Width:   width,
						Wrapper: w.Constraint,
						Op:      op,
						Name:    op.Method() + prim,
						Result:  res,
					})
				}
				if res, ok := t.Arith(op, full, w.Constraint); ok {
					out = append(out, PrimTuple{
						Width:         width,
						Wrapper:       w.Constraint,
						Op:            op,
						PrimitiveLeft: true,
						Name:          prim + op.Method() + w.TypeName(),
						Result:        res,
					})
				}
			}
		}
	}
	return out
}

// WrapperTuple is one resolved wrapper emission: the per-wrapper
// combinations (constructors, unary operations, constants, conversion
// endpoints, parse and format hooks) all key off it.
type WrapperTuple struct {
	Width      ir.Width
	Constraint string
	TypeName   string
}

// WrapperTuples enumerates configured wrappers, width 32 before 64,
// declaration order within a width.
func WrapperTuples(cfg *ir.Config) []WrapperTuple {
	var out []WrapperTuple
	for _, width := range ir.AllWidths() {
		for _, w := range cfg.WrappersAt(width) {
			out = append(out, WrapperTuple{
				Width:      width,
				Constraint: w.Constraint,
				TypeName:   w.TypeName(),
			})
		}
	}
	return out
}
