package gen

import (
	"fmt"

	"github.com/strictnum/floatgen/internal/infer"
	"github.com/strictnum/floatgen/internal/ir"
	"github.com/strictnum/floatgen/internal/predicate"
)

// wrapperFileBody emits every declaration of one wrapper: type,
// constructors, accessor, format and compare hooks, parsing, serde,
// unary and binary arithmetic, conversions, constants, and the option
// carrier. Section order is fixed so regeneration is byte-stable.
func (g *Generator) wrapperFileBody(wt WrapperTuple) string {
	var w buf
	g.emitType(&w, wt)
	g.emitConstructors(&w, wt)
	g.emitAccessor(&w, wt)
	g.emitFormat(&w, wt)
	g.emitCompare(&w, wt)
	g.emitParse(&w, wt)
	g.emitSerde(&w, wt)
	g.emitUnary(&w, wt)
	g.emitPairArithmetic(&w, wt)
	g.emitPrimArithmetic(&w, wt)
	g.emitConversions(&w, wt)
	g.emitConstants(&w, wt)
	g.emitOption(&w, wt)
	return w.String()
}

func (g *Generator) constraint(name string) *ir.Constraint {
	return g.cfg.Constraint(name)
}

// classifyFn names the shared non-finite classifier for a width.
func classifyFn(width ir.Width) string {
	if width == ir.Width32 {
		return "classify32"
	}
	return "classify64"
}

// widen wraps an expression for use at float64 precision.
func widen(width ir.Width, expr string) string {
	if width == ir.Width32 {
		return "float64(" + expr + ")"
	}
	return expr
}

// narrow wraps a float64 expression back to the wrapper's width.
func narrow(width ir.Width, expr string) string {
	if width == ir.Width32 {
		return "float32(" + expr + ")"
	}
	return expr
}

// rangeGuard emits the admissibility check for a result value, when
// the target constraint has one.
func (g *Generator) rangeGuard(w *buf, target string, width ir.Width, varName, zero string) {
	expr := predicate.Build(g.constraint(target), width).RenderRange(varName)
	if expr == "" {
		return
	}
	w.p("\tif !(%s) {", expr)
	w.p("\t\treturn %s, ErrOutOfRange", zero)
	w.p("\t}")
}

func (g *Generator) emitType(w *buf, wt WrapperTuple) {
	doc := g.constraint(wt.Constraint).Doc
	if doc == "" {
		doc = fmt.Sprintf("a value satisfying the %s constraint", wt.Constraint)
	}
	w.p("// %s holds %s.", wt.TypeName, doc)
	w.p("type %s struct {", wt.TypeName)
	w.p("\tv %s", wt.Width.Primitive())
	w.p("}")
}

func (g *Generator) emitConstructors(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	prim := wt.Width.Primitive()
	cls := classifyFn(wt.Width)

	w.nl()
	w.p("// New%s returns v as a %s, or the taxonomy error describing", T, T)
	w.p("// why v is inadmissible.")
	w.p("func New%s(v %s) (%s, error) {", T, prim, T)
	w.p("\tif err := %s(v); err != nil {", cls)
	w.p("\t\treturn %s{}, err", T)
	w.p("\t}")
	g.rangeGuard(w, wt.Constraint, wt.Width, "v", T+"{}")
	w.p("\treturn %s{v}, nil", T)
	w.p("}")

	if g.cfg.Features.GenerateNewConst {
		w.nl()
		w.p("// Must%s is like New%s but panics on inadmissible input. Use", T, T)
		w.p("// for values known valid before the program runs.")
		w.p("func Must%s(v %s) %s {", T, prim, T)
		w.p("\tx, err := New%s(v)", T)
		w.p("\tif err != nil {")
		w.p("\t\tpanic(%q + strconv.FormatFloat(%s, 'g', -1, %d) + \"): \" + err.Error())",
			g.cfg.Package+": Must"+T+"(", widen(wt.Width, "v"), wt.Width.Bits())
		w.p("\t}")
		w.p("\treturn x")
		w.p("}")
	}

	w.nl()
	w.p("// Unchecked%s wraps v without validation. The caller must", T)
	w.p("// guarantee admissibility; operations on an inadmissible value are")
	w.p("// undefined.")
	w.p("func Unchecked%s(v %s) %s {", T, prim, T)
	w.p("\treturn %s{v}", T)
	w.p("}")
}

func (g *Generator) emitAccessor(w *buf, wt WrapperTuple) {
	w.nl()
	w.p("// Float%d returns the wrapped value.", wt.Width.Bits())
	w.p("func (x %s) Float%d() %s {", wt.TypeName, wt.Width.Bits(), wt.Width.Primitive())
	w.p("\treturn x.v")
	w.p("}")
}

func (g *Generator) emitFormat(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	if g.cfg.Features.Has(ir.TraitDisplay) {
		w.nl()
		w.p("// String formats the value as the shortest decimal that parses back")
		w.p("// to the same value.")
		w.p("func (x %s) String() string {", T)
		w.p("\treturn strconv.FormatFloat(%s, 'g', -1, %d)", widen(wt.Width, "x.v"), wt.Width.Bits())
		w.p("}")
	}
	if g.cfg.Features.Has(ir.TraitDebug) {
		ctor := "Unchecked"
		if g.cfg.Features.GenerateNewConst {
			ctor = "Must"
		}
		w.nl()
		w.p("// GoString formats the value as its %s constructor call.", ctor)
		w.p("func (x %s) GoString() string {", T)
		w.p("\treturn %q + x.String() + \")\"", ctor+T+"(")
		w.p("}")
	}
}

func (g *Generator) emitCompare(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	if g.cfg.Features.Has(ir.TraitEquality) {
		w.nl()
		w.p("// Equal reports IEEE equality of the wrapped values.")
		w.p("func (x %s) Equal(o %s) bool {", T, T)
		w.p("\treturn x.v == o.v")
		w.p("}")
	}
	if g.cfg.Features.Has(ir.TraitOrdering) {
		w.nl()
		w.p("// Cmp orders the values: -1 when x < o, +1 when x > o, else 0.")
		w.p("// The order is total because NaN is never admissible.")
		w.p("func (x %s) Cmp(o %s) int {", T, T)
		w.p("\tswitch {")
		w.p("\tcase x.v < o.v:")
		w.p("\t\treturn -1")
		w.p("\tcase x.v > o.v:")
		w.p("\t\treturn 1")
		w.p("\t}")
		w.p("\treturn 0")
		w.p("}")
	}
	if g.cfg.Features.Has(ir.TraitTotalOrdering) {
		w.nl()
		w.p("// CmpTotal is Cmp refined to order negative zero before positive")
		w.p("// zero.")
		w.p("func (x %s) CmpTotal(o %s) int {", T, T)
		w.p("\tif c := x.Cmp(o); c != 0 {")
		w.p("\t\treturn c")
		w.p("\t}")
		w.p("\txs, os := math.Signbit(%s), math.Signbit(%s)",
			widen(wt.Width, "x.v"), widen(wt.Width, "o.v"))
		w.p("\tswitch {")
		w.p("\tcase xs && !os:")
		w.p("\t\treturn -1")
		w.p("\tcase !xs && os:")
		w.p("\t\treturn 1")
		w.p("\t}")
		w.p("\treturn 0")
		w.p("}")
	}
}

func (g *Generator) emitParse(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	w.nl()
	w.p("// Parse%s parses a decimal or scientific-notation literal,", T)
	w.p("// trimming surrounding whitespace first.")
	w.p("func Parse%s(s string) (%s, error) {", T, T)
	w.p("\tt := strings.TrimSpace(s)")
	w.p("\tif t == \"\" {")
	w.p("\t\treturn %s{}, ErrEmptyInput", T)
	w.p("\t}")
	w.p("\tv, err := strconv.ParseFloat(t, %d)", wt.Width.Bits())
	w.p("\tif err != nil && !errors.Is(err, strconv.ErrRange) {")
	w.p("\t\treturn %s{}, fmt.Errorf(\"%%w: %%q\", ErrSyntax, s)", T)
	w.p("\t}")
	w.p("\treturn New%s(%s)", T, narrow(wt.Width, "v"))
	w.p("}")
}

// formatExpr renders x.v as the shortest round-trip decimal, through
// String when the display trait provides it and inline otherwise.
func (g *Generator) formatExpr(wt WrapperTuple) string {
	if g.cfg.Features.Has(ir.TraitDisplay) {
		return "x.String()"
	}
	return fmt.Sprintf("strconv.FormatFloat(%s, 'g', -1, %d)", widen(wt.Width, "x.v"), wt.Width.Bits())
}

func (g *Generator) emitSerde(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	pkg := g.cfg.Package

	w.nl()
	w.p("// MarshalJSON encodes the bare number.")
	w.p("func (x %s) MarshalJSON() ([]byte, error) {", T)
	w.p("\treturn []byte(%s), nil", g.formatExpr(wt))
	w.p("}")

	w.nl()
	w.p("// UnmarshalJSON parses a bare number and applies the checked")
	w.p("// constructor.")
	w.p("func (x *%s) UnmarshalJSON(data []byte) error {", T)
	w.p("\tv, err := Parse%s(string(data))", T)
	w.p("\tif err != nil {")
	w.p("\t\treturn fmt.Errorf(\"%s: cannot unmarshal %%s into %s: %%w\", data, err)", pkg, T)
	w.p("\t}")
	w.p("\t*x = v")
	w.p("\treturn nil")
	w.p("}")

	w.nl()
	w.p("// MarshalText implements encoding.TextMarshaler.")
	w.p("func (x %s) MarshalText() ([]byte, error) {", T)
	w.p("\treturn []byte(%s), nil", g.formatExpr(wt))
	w.p("}")

	w.nl()
	w.p("// UnmarshalText implements encoding.TextUnmarshaler.")
	w.p("func (x *%s) UnmarshalText(text []byte) error {", T)
	w.p("\tv, err := Parse%s(string(text))", T)
	w.p("\tif err != nil {")
	w.p("\t\treturn fmt.Errorf(\"%s: cannot unmarshal %%q into %s: %%w\", text, err)", pkg, T)
	w.p("\t}")
	w.p("\t*x = v")
	w.p("\treturn nil")
	w.p("}")
}

func (g *Generator) emitUnary(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	width := wt.Width
	for _, op := range ir.AllUnaryOps() {
		if op == ir.OpNeg && !g.cfg.Features.Has(ir.TraitNeg) {
			continue
		}
		res, ok := g.tables.UnaryFor(op, wt.Constraint)
		if !ok {
			continue
		}
		target := g.typeNameAt(res.Output, width)
		if target == "" {
			continue
		}
		switch op {
		case ir.OpNeg:
			w.nl()
			w.p("// Neg mirrors the value across zero.")
			w.p("func (x %s) Neg() %s {", T, target)
			w.p("\treturn %s{-x.v}", target)
			w.p("}")
		case ir.OpAbs:
			w.nl()
			w.p("// Abs returns the magnitude.")
			w.p("func (x %s) Abs() %s {", T, target)
			w.p("\treturn %s{%s}", target, narrow(width, "math.Abs("+widen(width, "x.v")+")"))
			w.p("}")
		case ir.OpSignum:
			w.nl()
			w.p("// Signum returns -1, 0, or 1 by the sign of the value.")
			w.p("func (x %s) Signum() %s {", T, target)
			w.p("\tswitch {")
			w.p("\tcase x.v > 0:")
			w.p("\t\treturn %s{1}", target)
			w.p("\tcase x.v < 0:")
			w.p("\t\treturn %s{-1}", target)
			w.p("\t}")
			w.p("\treturn %s{0}", target)
			w.p("}")
		case ir.OpSin:
			w.nl()
			w.p("// Sin returns the sine, always within [-1, 1].")
			w.p("func (x %s) Sin() %s {", T, target)
			w.p("\treturn %s{%s}", target, narrow(width, "math.Sin("+widen(width, "x.v")+")"))
			w.p("}")
		case ir.OpCos:
			w.nl()
			w.p("// Cos returns the cosine, always within [-1, 1].")
			w.p("func (x %s) Cos() %s {", T, target)
			w.p("\treturn %s{%s}", target, narrow(width, "math.Cos("+widen(width, "x.v")+")"))
			w.p("}")
		case ir.OpTan:
			w.nl()
			w.p("// Tan returns the tangent. Near odd multiples of pi/2 the result")
			w.p("// can overflow, which is reported as an error.")
			w.p("func (x %s) Tan() (%s, error) {", T, target)
			w.p("\tr := %s", narrow(width, "math.Tan("+widen(width, "x.v")+")"))
			w.p("\tif err := %s(r); err != nil {", classifyFn(width))
			w.p("\t\treturn %s{}, err", target)
			w.p("\t}")
			g.rangeGuard(w, res.Output, width, "r", target+"{}")
			w.p("\treturn %s{r}, nil", target)
			w.p("}")
		}
	}
}

func (g *Generator) emitPairArithmetic(w *buf, wt WrapperTuple) {
	for _, pt := range g.pairs {
		if pt.Width != wt.Width || pt.Lhs != wt.Constraint {
			continue
		}
		T := wt.TypeName
		rhs := g.typeNameAt(pt.Rhs, wt.Width)
		target := g.typeNameAt(pt.Result.Output, wt.Width)
		if rhs == "" || target == "" {
			continue
		}
		sym := pt.Op.Symbol()
		if pt.Result.Safe {
			w.nl()
			w.p("// %s returns x %s o as a %s; the result is always admissible.", pt.Method, sym, target)
			w.p("func (x %s) %s(o %s) %s {", T, pt.Method, rhs, target)
			w.p("\treturn %s{x.v %s o.v}", target, sym)
			w.p("}")
			continue
		}
		w.nl()
		if pt.Op == ir.OpDiv {
			w.p("// %s returns x / o as a %s. A zero divisor reports", pt.Method, target)
			w.p("// ErrDivisionByZero; other inadmissible results report the")
			w.p("// taxonomy error.")
		} else {
			w.p("// %s returns x %s o as a %s, reporting a result outside", pt.Method, sym, target)
			w.p("// its admissible set as an error.")
		}
		w.p("func (x %s) %s(o %s) (%s, error) {", T, pt.Method, rhs, target)
		if pt.Op == ir.OpDiv {
			w.p("\tif o.v == 0 {")
			w.p("\t\treturn %s{}, ErrDivisionByZero", target)
			w.p("\t}")
		}
		w.p("\tr := x.v %s o.v", sym)
		w.p("\tif err := %s(r); err != nil {", classifyFn(wt.Width))
		w.p("\t\treturn %s{}, err", target)
		w.p("\t}")
		g.rangeGuard(w, pt.Result.Output, wt.Width, "r", target+"{}")
		w.p("\treturn %s{r}, nil", target)
		w.p("}")
	}
}

func (g *Generator) emitPrimArithmetic(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	prim := wt.Width.Primitive()
	cls := classifyFn(wt.Width)
	for _, pt := range g.prims {
		if pt.Width != wt.Width || pt.Wrapper != wt.Constraint {
			continue
		}
		target := g.typeNameAt(pt.Result.Output, wt.Width)
		if target == "" {
			continue
		}
		sym := pt.Op.Symbol()
		w.nl()
		if pt.PrimitiveLeft {
			w.p("// %s returns v %s x as a %s, validating v first.", pt.Name, sym, target)
			w.p("func %s(v %s, x %s) (%s, error) {", pt.Name, prim, T, target)
		} else {
			w.p("// %s returns x %s v as a %s, validating v first.", pt.Name, sym, target)
			w.p("func (x %s) %s(v %s) (%s, error) {", T, pt.Name, prim, target)
		}
		w.p("\tif err := %s(v); err != nil {", cls)
		w.p("\t\treturn %s{}, err", target)
		w.p("\t}")
		if pt.Op == ir.OpDiv {
			den := "v"
			if pt.PrimitiveLeft {
				den = "x.v"
			}
			w.p("\tif %s == 0 {", den)
			w.p("\t\treturn %s{}, ErrDivisionByZero", target)
			w.p("\t}")
		}
		if pt.PrimitiveLeft {
			w.p("\tr := v %s x.v", sym)
		} else {
			w.p("\tr := x.v %s v", sym)
		}
		w.p("\tif err := %s(r); err != nil {", cls)
		w.p("\t\treturn %s{}, err", target)
		w.p("\t}")
		g.rangeGuard(w, pt.Result.Output, wt.Width, "r", target+"{}")
		w.p("\treturn %s{r}, nil", target)
		w.p("}")
	}
}

func (g *Generator) emitConversions(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	width := wt.Width
	for _, other := range g.cfg.WrappersAt(width) {
		if other.Constraint == wt.Constraint {
			continue
		}
		verdict, ok := g.tables.Conversion(wt.Constraint, other.Constraint)
		if !ok {
			continue
		}
		target := other.TypeName()
		if verdict == ir.ConversionInfallible {
			w.nl()
			w.p("// To%s reinterprets the value as a %s; every admissible", other.Constraint, target)
			w.p("// value is accepted.")
			w.p("func (x %s) To%s() %s {", T, other.Constraint, target)
			w.p("\treturn %s{x.v}", target)
			w.p("}")
			continue
		}
		w.nl()
		w.p("// To%s narrows to a %s, rejecting values outside its", other.Constraint, target)
		w.p("// admissible set.")
		w.p("func (x %s) To%s() (%s, error) {", T, other.Constraint, target)
		g.rangeGuard(w, other.Constraint, width, "x.v", target+"{}")
		w.p("\treturn %s{x.v}, nil", target)
		w.p("}")
	}

	if width == ir.Width32 {
		if wide := g.typeNameAt(wt.Constraint, ir.Width64); wide != "" {
			w.nl()
			w.p("// ToF64 widens to the 64-bit wrapper; the value is preserved")
			w.p("// exactly.")
			w.p("func (x %s) ToF64() %s {", T, wide)
			w.p("\treturn %s{float64(x.v)}", wide)
			w.p("}")
		}
		return
	}
	if narrowT := g.typeNameAt(wt.Constraint, ir.Width32); narrowT != "" {
		w.nl()
		w.p("// ToF32 narrows to the 32-bit wrapper. Overflow reports ErrPosInf")
		w.p("// or ErrNegInf; a value that does not survive the round trip")
		w.p("// reports ErrOutOfRange.")
		w.p("func (x %s) ToF32() (%s, error) {", T, narrowT)
		w.p("\tn := float32(x.v)")
		w.p("\tif err := classify32(n); err != nil {")
		w.p("\t\treturn %s{}, err", narrowT)
		w.p("\t}")
		w.p("\tif float64(n) != x.v {")
		w.p("\t\treturn %s{}, ErrOutOfRange", narrowT)
		w.p("\t}")
		w.p("\treturn %s{n}, nil", narrowT)
		w.p("}")
	}
}

func (g *Generator) emitConstants(w *buf, wt WrapperTuple) {
	T := wt.TypeName
	for _, k := range infer.Catalogue() {
		if !g.tables.Admits(k.Name, wt.Constraint) {
			continue
		}
		w.nl()
		w.p("// %s%s returns %s.", T, k.Name, k.Expr)
		w.p("func %s%s() %s {", T, k.Name, T)
		w.p("\treturn %s{%s}", T, k.Expr)
		w.p("}")
	}
}

func (g *Generator) emitOption(w *buf, wt WrapperTuple) {
	if !g.cfg.Features.GenerateOptionTypes {
		return
	}
	T := wt.TypeName
	w.nl()
	w.p("// Opt%s is an optional %s; nil means absent.", T, T)
	w.p("type Opt%s = *%s", T, T)

	for _, op := range ir.AllArithmeticOps() {
		if !g.cfg.Features.OpEnabled(op) {
			continue
		}
		res, ok := g.tables.Arith(op, wt.Constraint, wt.Constraint)
		if !ok {
			continue
		}
		target := g.typeNameAt(res.Output, wt.Width)
		if target == "" {
			continue
		}
		name := op.Method() + "Opt" + T
		w.nl()
		w.p("// %s applies %s to two optional values; a nil operand", name, op.Method())
		w.p("// reports ErrNoneOperand.")
		w.p("func %s(lhs, rhs Opt%s) (%s, error) {", name, T, target)
		w.p("\tif lhs == nil || rhs == nil {")
		w.p("\t\treturn %s{}, ErrNoneOperand", target)
		w.p("\t}")
		if res.Safe {
			w.p("\treturn lhs.%s(*rhs), nil", op.Method())
		} else {
			w.p("\treturn lhs.%s(*rhs)", op.Method())
		}
		w.p("}")
	}
}

// typeNameAt returns the generated type name for a constraint at a
// width, or "" when the family is not configured there.
func (g *Generator) typeNameAt(constraint string, width ir.Width) string {
	td := g.cfg.TypeDefFor(constraint)
	if td == nil {
		return ""
	}
	for _, wd := range td.Widths {
		if wd == width {
			return constraint + width.Tag()
		}
	}
	return ""
}
