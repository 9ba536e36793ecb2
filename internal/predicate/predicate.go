package predicate

import (
	"math"
	"strconv"
	"strings"

	"github.com/strictnum/floatgen/internal/ir"
)

// ClauseKind identifies one conjunct of a validation predicate.
type ClauseKind string

// Clause kinds, in evaluation order.
const (
	ClauseFinite  ClauseKind = "finite"
	ClauseLower   ClauseKind = "lower"
	ClauseUpper   ClauseKind = "upper"
	ClauseNonZero ClauseKind = "non_zero"
)

// Clause is one conjunct: a comparison of the value against a bound,
// the finiteness test, or the explicit zero exclusion.
type Clause struct {
	Kind   ClauseKind
	Bound  float64
	Strict bool
}

// Expression is the full validation predicate for one (constraint,
// width) pair. Clauses are conjoined in order; the finiteness clause is
// always first.
type Expression struct {
	Constraint string
	Width      ir.Width
	Clauses    []Clause
}

// Build produces the validation predicate for a constraint at a width.
// A bound of zero on a zero-excluding constraint becomes a strict
// comparison, so +0 and -0 are rejected uniformly; a zero exclusion not
// implied by a strict bound gets its own clause.
func Build(c *ir.Constraint, width ir.Width) Expression {
	e := Expression{Constraint: c.Name, Width: width}
	e.Clauses = append(e.Clauses, Clause{Kind: ClauseFinite})

	zeroAtBound := false
	if c.Lower != nil {
		strict := c.ExcludesZero && *c.Lower == 0
		zeroAtBound = zeroAtBound || strict
		e.Clauses = append(e.Clauses, Clause{Kind: ClauseLower, Bound: *c.Lower, Strict: strict})
	}
	if c.Upper != nil {
		strict := c.ExcludesZero && *c.Upper == 0
		zeroAtBound = zeroAtBound || strict
		e.Clauses = append(e.Clauses, Clause{Kind: ClauseUpper, Bound: *c.Upper, Strict: strict})
	}
	if c.ExcludesZero && !zeroAtBound {
		e.Clauses = append(e.Clauses, Clause{Kind: ClauseNonZero})
	}
	return e
}

// Eval applies the predicate to a value. For width 32 the caller passes
// the widened float64; widening is exact, so the comparisons agree with
// the generated 32-bit code.
func (e Expression) Eval(v float64) bool {
	for _, cl := range e.Clauses {
		switch cl.Kind {
		case ClauseFinite:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		case ClauseLower:
			if cl.Strict {
				if v <= cl.Bound {
					return false
				}
			} else if v < cl.Bound {
				return false
			}
		case ClauseUpper:
			if cl.Strict {
				if v >= cl.Bound {
					return false
				}
			} else if v > cl.Bound {
				return false
			}
		case ClauseNonZero:
			if v == 0 {
				return false
			}
		}
	}
	return true
}

// Render emits the full predicate as Go source over the named variable,
// finiteness included.
func (e Expression) Render(varName string) string {
	parts := []string{
		"!math.IsNaN(" + e.widened(varName) + ") && !math.IsInf(" + e.widened(varName) + ", 0)",
	}
	if r := e.RenderRange(varName); r != "" {
		parts = append(parts, r)
	}
	return strings.Join(parts, " && ")
}

// RenderRange emits only the bound and zero-exclusion clauses as Go
// source, for constructors that test finiteness separately. Returns ""
// for an unbounded zero-admitting constraint.
func (e Expression) RenderRange(varName string) string {
	v := e.widened(varName)
	var parts []string
	for _, cl := range e.Clauses {
		switch cl.Kind {
		case ClauseLower:
			op := ">="
			if cl.Strict {
				op = ">"
			}
			parts = append(parts, v+" "+op+" "+formatBound(cl.Bound))
		case ClauseUpper:
			op := "<="
			if cl.Strict {
				op = "<"
			}
			parts = append(parts, v+" "+op+" "+formatBound(cl.Bound))
		case ClauseNonZero:
			parts = append(parts, v+" != 0")
		}
	}
	return strings.Join(parts, " && ")
}

// widened wraps the variable for comparison against 64-bit bound
// literals. float32 to float64 conversion is exact.
func (e Expression) widened(varName string) string {
	if e.Width == ir.Width32 {
		return "float64(" + varName + ")"
	}
	return varName
}

// formatBound renders a bound as the shortest decimal that round-trips
// to the same float64.
func formatBound(b float64) string {
	return strconv.FormatFloat(b, 'g', -1, 64)
}

// Failure is the taxonomy kind of an inadmissible value, mirrored by
// the generated error sentinels.
type Failure string

// Failure kinds.
const (
	FailNone       Failure = "ok"
	FailNaN        Failure = "nan"
	FailPosInf     Failure = "pos_inf"
	FailNegInf     Failure = "neg_inf"
	FailOutOfRange Failure = "out_of_range"
)

// Classify maps a value to its taxonomy kind for a constraint: NaN and
// infinities before the range test, FailNone for admissible values.
func Classify(c *ir.Constraint, v float64) Failure {
	switch {
	case math.IsNaN(v):
		return FailNaN
	case math.IsInf(v, 1):
		return FailPosInf
	case math.IsInf(v, -1):
		return FailNegInf
	}
	if !c.Contains(v) {
		return FailOutOfRange
	}
	return FailNone
}
