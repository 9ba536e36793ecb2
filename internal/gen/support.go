package gen

import (
	"fmt"
	"strings"

	"github.com/strictnum/floatgen/internal/ir"
)

// docBody is the package-doc comment for the generated package.
func (g *Generator) docBody() string {
	var w buf
	w.p("// Package %s provides constraint-checked floating point wrapper", g.cfg.Package)
	w.p("// types. Each type admits a fixed subset of the finite reals, checked")
	w.p("// at construction, so a held value never needs revalidation.")
	w.p("//")
	w.p("// Arithmetic between wrappers returns the narrowest configured type")
	w.p("// that encloses every possible result. Operations whose result can")
	w.p("// leave that type's admissible set return an error alongside the")
	w.p("// value; operations proven closed return the value alone.")
	return w.String()
}

// errorsBody emits the sentinel errors and the shared non-finite
// classifiers used by every constructor and checked operation.
func (g *Generator) errorsBody() string {
	pkg := g.cfg.Package
	var w buf
	w.p("// Sentinel errors reported by constructors, parsers, and checked")
	w.p("// operations. Match with errors.Is; checked operations may wrap them")
	w.p("// with context.")
	w.p("var (")
	w.p("\t// ErrNaN rejects NaN inputs and results.")
	w.p("\tErrNaN = errors.New(%q)", pkg+": value is NaN")
	w.nl()
	w.p("\t// ErrPosInf rejects positive infinity.")
	w.p("\tErrPosInf = errors.New(%q)", pkg+": value is +Inf")
	w.nl()
	w.p("\t// ErrNegInf rejects negative infinity.")
	w.p("\tErrNegInf = errors.New(%q)", pkg+": value is -Inf")
	w.nl()
	w.p("\t// ErrOutOfRange rejects finite values outside a type's admissible")
	w.p("\t// set.")
	w.p("\tErrOutOfRange = errors.New(%q)", pkg+": value out of range")
	w.nl()
	w.p("\t// ErrDivisionByZero rejects a zero divisor before the division")
	w.p("\t// happens.")
	w.p("\tErrDivisionByZero = errors.New(%q)", pkg+": division by zero")
	w.nl()
	w.p("\t// ErrNoneOperand rejects a nil operand of an optional-value")
	w.p("\t// operation.")
	w.p("\tErrNoneOperand = errors.New(%q)", pkg+": operand is none")
	w.nl()
	w.p("\t// ErrEmptyInput rejects an empty or all-whitespace parse input.")
	w.p("\tErrEmptyInput = errors.New(%q)", pkg+": empty input")
	w.nl()
	w.p("\t// ErrSyntax rejects a malformed numeric literal.")
	w.p("\tErrSyntax = errors.New(%q)", pkg+": invalid syntax")
	w.p(")")
	w.nl()
	w.p("// classify64 maps a non-finite value to its sentinel error. Finite")
	w.p("// values, zero and subnormals included, pass.")
	w.p("func classify64(v float64) error {")
	w.p("\tswitch {")
	w.p("\tcase math.IsNaN(v):")
	w.p("\t\treturn ErrNaN")
	w.p("\tcase math.IsInf(v, 1):")
	w.p("\t\treturn ErrPosInf")
	w.p("\tcase math.IsInf(v, -1):")
	w.p("\t\treturn ErrNegInf")
	w.p("\t}")
	w.p("\treturn nil")
	w.p("}")
	w.nl()
	w.p("// classify32 is classify64 at 32-bit width. Widening preserves the")
	w.p("// NaN and infinity classes exactly.")
	w.p("func classify32(v float32) error {")
	w.p("\treturn classify64(float64(v))")
	w.p("}")
	return w.String()
}

// aliasesBody emits the configured type aliases at every width the
// canonical family is generated for.
func (g *Generator) aliasesBody() string {
	var w buf
	first := true
	for _, a := range g.cfg.Aliases {
		td := g.cfg.TypeDefFor(a.Canonical)
		if td == nil {
			continue
		}
		for _, width := range ir.AllWidths() {
			canonical := g.typeNameAt(a.Canonical, width)
			if canonical == "" {
				continue
			}
			if !first {
				w.nl()
			}
			first = false
			alias := a.Alias + width.Tag()
			w.p("// %s is an alias for %s.", alias, canonical)
			w.p("type %s = %s", alias, canonical)
		}
	}
	return w.String()
}

// File is one generated source file.
type File struct {
	Name    string
	Content []byte
}

// wrapperFileName is the on-disk name for a wrapper's file:
// "NonZeroPositive" at 32-bit width becomes
// "non_zero_positive_f32_gen.go".
func wrapperFileName(wt WrapperTuple) string {
	return fmt.Sprintf("%s_%s_gen.go", snake(wt.Constraint), strings.ToLower(wt.Width.Tag()))
}
