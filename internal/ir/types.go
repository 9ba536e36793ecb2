package ir

import (
	"fmt"
	"math"
)

// Width selects a floating-point representation width in bits.
type Width int

// Supported widths.
const (
	Width32 Width = 32
	Width64 Width = 64
)

// AllWidths returns the supported widths in emission order.
func AllWidths() []Width {
	return []Width{Width32, Width64}
}

// Valid reports whether w is a supported width.
func (w Width) Valid() bool {
	return w == Width32 || w == Width64
}

// Tag returns the generated type-name suffix ("F32" or "F64").
func (w Width) Tag() string {
	if w == Width32 {
		return "F32"
	}
	return "F64"
}

// Primitive returns the Go primitive type name for the width.
func (w Width) Primitive() string {
	if w == Width32 {
		return "float32"
	}
	return "float64"
}

// Bits returns the width in bits, for strconv-style bit-size arguments.
func (w Width) Bits() int {
	return int(w)
}

// Sign classifies which half-line a constraint's set occupies.
type Sign string

// Sign values.
const (
	SignPositive Sign = "positive" // set lies in [0, +inf)
	SignNegative Sign = "negative" // set lies in (-inf, 0]
	SignAny      Sign = "any"      // set spans zero
)

// Valid reports whether s is a recognised sign.
func (s Sign) Valid() bool {
	return s == SignPositive || s == SignNegative || s == SignAny
}

// ArithmeticOp identifies a binary arithmetic operation.
type ArithmeticOp string

// Binary operations, in emission order.
const (
	OpAdd ArithmeticOp = "add"
	OpSub ArithmeticOp = "sub"
	OpMul ArithmeticOp = "mul"
	OpDiv ArithmeticOp = "div"
)

// AllArithmeticOps returns the binary operations in emission order.
func AllArithmeticOps() []ArithmeticOp {
	return []ArithmeticOp{OpAdd, OpSub, OpMul, OpDiv}
}

// Method returns the generated method-name stem for the operation.
func (op ArithmeticOp) Method() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	}
	return ""
}

// Symbol returns the Go operator token for the operation.
func (op ArithmeticOp) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return ""
}

// UnaryOp identifies a unary operation.
type UnaryOp string

// Unary operations, in emission order.
const (
	OpNeg    UnaryOp = "neg"
	OpAbs    UnaryOp = "abs"
	OpSignum UnaryOp = "signum"
	OpSin    UnaryOp = "sin"
	OpCos    UnaryOp = "cos"
	OpTan    UnaryOp = "tan"
)

// AllUnaryOps returns the unary operations in emission order.
func AllUnaryOps() []UnaryOp {
	return []UnaryOp{OpNeg, OpAbs, OpSignum, OpSin, OpCos, OpTan}
}

// Method returns the generated method name for the operation.
func (op UnaryOp) Method() string {
	switch op {
	case OpNeg:
		return "Neg"
	case OpAbs:
		return "Abs"
	case OpSignum:
		return "Signum"
	case OpSin:
		return "Sin"
	case OpCos:
		return "Cos"
	case OpTan:
		return "Tan"
	}
	return ""
}

// Constraint describes one admissible subset of the reals: an interval
// with optional finite bounds, an optional zero exclusion, and a sign
// classification. NaN and infinities are never admissible.
type Constraint struct {
	Name string `json:"name"`

	// Lower and Upper are the interval bounds. nil means unbounded on
	// that side. A non-nil bound is always finite.
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`

	// ExcludesZero removes 0 (and -0) from the set.
	ExcludesZero bool `json:"excludes_zero,omitempty"`

	// Sign is derived from the bounds when not declared in the
	// configuration.
	Sign Sign `json:"sign"`

	// NegateTo names the constraint describing {-x | x in this set}.
	// Empty when no configured constraint matches the mirrored set.
	// Reflexive constraints name themselves.
	NegateTo string `json:"negate_to,omitempty"`

	// Doc is optional doc-comment text for the generated types.
	Doc string `json:"doc,omitempty"`
}

// IsBounded reports whether both bounds are present (and hence finite).
func (c *Constraint) IsBounded() bool {
	return c.Lower != nil && c.Upper != nil
}

// LowerValue returns the lower bound and whether one is present.
func (c *Constraint) LowerValue() (float64, bool) {
	if c.Lower == nil {
		return math.Inf(-1), false
	}
	return *c.Lower, true
}

// UpperValue returns the upper bound and whether one is present.
func (c *Constraint) UpperValue() (float64, bool) {
	if c.Upper == nil {
		return math.Inf(1), false
	}
	return *c.Upper, true
}

// Contains reports whether the literal v lies in the admissible set.
// NaN and infinities are never admissible. The zero test also rejects
// negative zero (IEEE -0 == 0).
func (c *Constraint) Contains(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if c.Lower != nil && v < *c.Lower {
		return false
	}
	if c.Upper != nil && v > *c.Upper {
		return false
	}
	if c.ExcludesZero && v == 0 {
		return false
	}
	return true
}

// BoundsEqual reports whether c and o describe the same interval.
func (c *Constraint) BoundsEqual(o *Constraint) bool {
	return boundEqual(c.Lower, o.Lower) && boundEqual(c.Upper, o.Upper)
}

func boundEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Bound returns a pointer to v, for literal constraint construction.
func Bound(v float64) *float64 {
	return &v
}

// WrapperType identifies one generated wrapper: a constraint at a width.
type WrapperType struct {
	Constraint string `json:"constraint"`
	Width      Width  `json:"width"`
}

// TypeName returns the generated Go type name, e.g. "FinF64".
func (w WrapperType) TypeName() string {
	return w.Constraint + w.Width.Tag()
}

// ArithmeticResult is the inferred outcome of a binary operation on two
// constraints. Safe means the output constraint's set contains every
// representable result for admissible inputs; unsafe operations surface
// inadmissible results as errors.
type ArithmeticResult struct {
	Output string `json:"output"`
	Safe   bool   `json:"safe"`
}

// UnaryResult is the inferred outcome of a unary operation.
type UnaryResult struct {
	Output string `json:"output"`
	Safe   bool   `json:"safe"`
}

// ConversionVerdict classifies a same-width wrapper conversion.
type ConversionVerdict string

// Conversion verdicts.
const (
	// ConversionInfallible: the source set is a subset of the target set.
	ConversionInfallible ConversionVerdict = "infallible"
	// ConversionFallible: a runtime constraint check is required.
	ConversionFallible ConversionVerdict = "fallible"
)

// Constant is one entry of the generated-constants catalogue.
type Constant struct {
	Name string `json:"name"`

	// Value is the literal used for admissibility tests.
	Value float64 `json:"value"`

	// Expr is the Go expression source for the constant. It must be an
	// untyped constant expression so that conversion to float32 is exact
	// at that width.
	Expr string `json:"expr"`
}

// ArithKey indexes the arithmetic-result table.
type ArithKey struct {
	Op  ArithmeticOp `json:"op"`
	Lhs string       `json:"lhs"`
	Rhs string       `json:"rhs"`
}

// UnaryKey indexes the unary-result table.
type UnaryKey struct {
	Op    UnaryOp `json:"op"`
	Input string  `json:"input"`
}

// ConvKey indexes the same-width conversion table as an ordered pair.
type ConvKey struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ConstKey indexes the constant-admissibility table.
type ConstKey struct {
	Constant   string `json:"constant"`
	Constraint string `json:"constraint"`
}

// TypeDef declares one wrapper family: a named type generated at the
// listed widths, constrained by the intersection of the named component
// constraints. A single-component family wraps that constraint directly.
type TypeDef struct {
	Name        string   `json:"name"`
	Widths      []Width  `json:"widths"`
	Constraints []string `json:"constraints"`
}

// AliasDef declares a second name for an existing family, applied at
// every configured width.
type AliasDef struct {
	Canonical string `json:"canonical"`
	Alias     string `json:"alias"`
}

// Feature-gated emission names, mirroring the configuration's
// features.impl_traits entries.
const (
	TraitEquality      = "equality"
	TraitOrdering      = "ordering"
	TraitTotalOrdering = "total_ordering"
	TraitDisplay       = "display"
	TraitDebug         = "debug"
	TraitAdd           = "add"
	TraitSub           = "sub"
	TraitMul           = "mul"
	TraitDiv           = "div"
	TraitNeg           = "neg"
)

// AllTraits returns every recognised impl_traits entry.
func AllTraits() []string {
	return []string{
		TraitEquality, TraitOrdering, TraitTotalOrdering,
		TraitDisplay, TraitDebug,
		TraitAdd, TraitSub, TraitMul, TraitDiv, TraitNeg,
	}
}

// Features toggles optional emissions.
type Features struct {
	ImplTraits          []string `json:"impl_traits"`
	GenerateOptionTypes bool     `json:"generate_option_types"`
	GenerateNewConst    bool     `json:"generate_new_const"`
}

// Has reports whether the named trait emission is enabled.
func (f Features) Has(trait string) bool {
	for _, t := range f.ImplTraits {
		if t == trait {
			return true
		}
	}
	return false
}

// OpEnabled reports whether the binary operation's emission is enabled.
func (f Features) OpEnabled(op ArithmeticOp) bool {
	return f.Has(string(op))
}

// Config is a fully compiled generator configuration: constraints carry
// derived signs and negation targets, composite families have been
// resolved into constraints of their own, and every TypeDef references
// exactly one constraint.
type Config struct {
	Package     string       `json:"package"`
	Constraints []Constraint `json:"constraints"`
	Types       []TypeDef    `json:"types"`
	Aliases     []AliasDef   `json:"aliases,omitempty"`
	Features    Features     `json:"features"`
}

// Constraint returns the named constraint, or nil.
func (c *Config) Constraint(name string) *Constraint {
	for i := range c.Constraints {
		if c.Constraints[i].Name == name {
			return &c.Constraints[i]
		}
	}
	return nil
}

// TypeDefFor returns the family declaration for the named type, or nil.
func (c *Config) TypeDefFor(name string) *TypeDef {
	for i := range c.Types {
		if c.Types[i].Name == name {
			return &c.Types[i]
		}
	}
	return nil
}

// Wrappers enumerates every configured (constraint, width) pair in
// declaration order, width 32 before 64 within a family.
func (c *Config) Wrappers() []WrapperType {
	var out []WrapperType
	for _, td := range c.Types {
		for _, w := range td.Widths {
			out = append(out, WrapperType{Constraint: td.Name, Width: w})
		}
	}
	return out
}

// WrappersAt enumerates configured wrappers of one width in declaration
// order.
func (c *Config) WrappersAt(width Width) []WrapperType {
	var out []WrapperType
	for _, td := range c.Types {
		for _, w := range td.Widths {
			if w == width {
				out = append(out, WrapperType{Constraint: td.Name, Width: w})
			}
		}
	}
	return out
}

// Validate checks structural invariants that must hold for any compiled
// configuration. The compiler reports richer diagnostics; this is the
// last line of defence for hand-built configs in tests.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("config: package name is required")
	}
	seen := make(map[string]bool, len(c.Constraints))
	for i := range c.Constraints {
		con := &c.Constraints[i]
		if con.Name == "" {
			return fmt.Errorf("config: constraint %d has no name", i)
		}
		if seen[con.Name] {
			return fmt.Errorf("config: duplicate constraint %q", con.Name)
		}
		seen[con.Name] = true
		if con.Lower != nil && (math.IsNaN(*con.Lower) || math.IsInf(*con.Lower, 0)) {
			return fmt.Errorf("config: constraint %q has non-finite lower bound", con.Name)
		}
		if con.Upper != nil && (math.IsNaN(*con.Upper) || math.IsInf(*con.Upper, 0)) {
			return fmt.Errorf("config: constraint %q has non-finite upper bound", con.Name)
		}
		if con.Lower != nil && con.Upper != nil && *con.Lower > *con.Upper {
			return fmt.Errorf("config: constraint %q has inverted bounds", con.Name)
		}
		if !con.Sign.Valid() {
			return fmt.Errorf("config: constraint %q has invalid sign %q", con.Name, con.Sign)
		}
		if con.NegateTo != "" && c.Constraint(con.NegateTo) == nil {
			return fmt.Errorf("config: constraint %q negates to unknown %q", con.Name, con.NegateTo)
		}
	}
	for _, td := range c.Types {
		if c.Constraint(td.Name) == nil {
			return fmt.Errorf("config: type %q has no resolved constraint", td.Name)
		}
		for _, w := range td.Widths {
			if !w.Valid() {
				return fmt.Errorf("config: type %q has invalid width %d", td.Name, w)
			}
		}
	}
	for _, a := range c.Aliases {
		if c.TypeDefFor(a.Canonical) == nil {
			return fmt.Errorf("config: alias %q targets unknown type %q", a.Alias, a.Canonical)
		}
	}
	return nil
}
