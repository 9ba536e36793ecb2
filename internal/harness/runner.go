package harness

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/strictnum/floatgen/internal/infer"
	"github.com/strictnum/floatgen/internal/ir"
	"github.com/strictnum/floatgen/internal/predicate"
)

// Runner evaluates scenario checks against the inference tables of one
// resolved configuration, using the same predicate evaluator and IEEE
// arithmetic the generated code compiles down to.
type Runner struct {
	cfg    *ir.Config
	tables *infer.Tables
}

// NewRunner builds a runner for a resolved configuration.
func NewRunner(cfg *ir.Config) *Runner {
	return &Runner{cfg: cfg, tables: infer.Build(cfg)}
}

// Tables exposes the materialised inference tables.
func (r *Runner) Tables() *infer.Tables { return r.tables }

// CheckResult records the outcome of a single check.
type CheckResult struct {
	Index  int
	Kind   string
	Pass   bool
	Detail string
}

// Result aggregates the outcomes of one scenario run.
type Result struct {
	Scenario string
	Checks   []CheckResult
	Failed   int
}

// Run evaluates every check in order. Checks never abort the run; a
// failing check records its detail and evaluation continues.
func (r *Runner) Run(scenario *Scenario) *Result {
	res := &Result{Scenario: scenario.Name}
	for i := range scenario.Checks {
		ck := &scenario.Checks[i]
		kind := ck.Kind()
		err := r.evalCheck(ck, kind)
		cr := CheckResult{Index: i, Kind: kind, Pass: err == nil}
		if err != nil {
			cr.Detail = err.Error()
			res.Failed++
		}
		res.Checks = append(res.Checks, cr)
	}
	return res
}

func (r *Runner) evalCheck(ck *Check, kind string) error {
	switch kind {
	case KindConstruct:
		return r.evalConstruct(ck.Construct)
	case KindArith:
		return r.evalArith(ck.Arith)
	case KindUnary:
		return r.evalUnary(ck.Unary)
	case KindConvert:
		return r.evalConvert(ck.Convert)
	case KindParse:
		return r.evalParse(ck.Parse)
	case KindConstant:
		return r.evalConstant(ck.Constant)
	}
	return fmt.Errorf("unhandled check kind %q", kind)
}

func (r *Runner) constraint(name string) (*ir.Constraint, error) {
	c := r.cfg.Constraint(name)
	if c == nil {
		return nil, fmt.Errorf("unknown constraint %q", name)
	}
	return c, nil
}

// admit fetches the operand's constraint and requires the value to be
// admissible under it.
func (r *Runner) admit(op Operand) (*ir.Constraint, error) {
	c, err := r.constraint(op.Type)
	if err != nil {
		return nil, err
	}
	if got := predicate.Classify(c, op.Value); got != predicate.FailNone {
		return nil, fmt.Errorf("operand %v is not admissible for %s: %s", op.Value, op.Type, got)
	}
	return c, nil
}

func (r *Runner) evalConstruct(ck *ConstructCheck) error {
	c, err := r.constraint(ck.Type)
	if err != nil {
		return err
	}
	got := string(predicate.Classify(c, ck.Value))
	if got != ck.Expect {
		return fmt.Errorf("constructing %s(%v): got %s, want %s", ck.Type, ck.Value, got, ck.Expect)
	}
	return nil
}

func (r *Runner) evalArith(ck *ArithCheck) error {
	if _, err := r.admit(ck.Lhs); err != nil {
		return err
	}
	if _, err := r.admit(ck.Rhs); err != nil {
		return err
	}
	op := ir.ArithmeticOp(ck.Op)
	verdict, ok := r.tables.Arith(op, ck.Lhs.Type, ck.Rhs.Type)
	if !ok {
		return fmt.Errorf("no %s inference for %s and %s", ck.Op, ck.Lhs.Type, ck.Rhs.Type)
	}
	if verdict.Output != ck.ExpectOutput {
		return fmt.Errorf("inferred output %s, want %s", verdict.Output, ck.ExpectOutput)
	}
	if verdict.Safe != ck.ExpectSafe {
		return fmt.Errorf("inferred safe=%v, want %v", verdict.Safe, ck.ExpectSafe)
	}

	want := ck.Expect
	if want == "" {
		want = "ok"
	}
	got := "ok"
	var v float64
	if op == ir.OpDiv && ck.Rhs.Value == 0 {
		got = "division_by_zero"
	} else {
		v = apply(op, ck.Lhs.Value, ck.Rhs.Value)
		out, err := r.constraint(verdict.Output)
		if err != nil {
			return err
		}
		got = string(predicate.Classify(out, v))
	}
	if got != want {
		return fmt.Errorf("%v %s %v: got %s, want %s", ck.Lhs.Value, op.Symbol(), ck.Rhs.Value, got, want)
	}
	if want == "ok" && ck.ExpectValue != nil && v != *ck.ExpectValue {
		return fmt.Errorf("%v %s %v = %v, want %v", ck.Lhs.Value, op.Symbol(), ck.Rhs.Value, v, *ck.ExpectValue)
	}
	return nil
}

func (r *Runner) evalUnary(ck *UnaryCheck) error {
	if _, err := r.admit(ck.Input); err != nil {
		return err
	}
	op := ir.UnaryOp(ck.Op)
	verdict, ok := r.tables.UnaryFor(op, ck.Input.Type)
	if !ok {
		return fmt.Errorf("no %s inference for %s", ck.Op, ck.Input.Type)
	}
	if verdict.Output != ck.ExpectOutput {
		return fmt.Errorf("inferred output %s, want %s", verdict.Output, ck.ExpectOutput)
	}

	want := ck.Expect
	if want == "" {
		want = "ok"
	}
	v := applyUnary(op, ck.Input.Value)
	out, err := r.constraint(verdict.Output)
	if err != nil {
		return err
	}
	got := string(predicate.Classify(out, v))
	if got != want {
		return fmt.Errorf("%s(%v): got %s, want %s", ck.Op, ck.Input.Value, got, want)
	}
	if want == "ok" && ck.ExpectValue != nil && v != *ck.ExpectValue {
		return fmt.Errorf("%s(%v) = %v, want %v", ck.Op, ck.Input.Value, v, *ck.ExpectValue)
	}
	return nil
}

func (r *Runner) evalConvert(ck *ConvertCheck) error {
	if _, err := r.admit(Operand{Type: ck.From, Value: ck.Value}); err != nil {
		return err
	}
	target, err := r.constraint(ck.To)
	if err != nil {
		return err
	}
	verdict, ok := r.tables.Conversion(ck.From, ck.To)
	if !ok {
		return fmt.Errorf("no conversion from %s to %s", ck.From, ck.To)
	}
	got := "ok"
	if verdict == ir.ConversionFallible {
		got = string(predicate.Classify(target, ck.Value))
	}
	if got != ck.Expect {
		return fmt.Errorf("converting %s(%v) to %s: got %s, want %s", ck.From, ck.Value, ck.To, got, ck.Expect)
	}
	return nil
}

// evalParse mirrors the generated parse pipeline: trim, reject empty,
// parse tolerating range errors, then admit.
func (r *Runner) evalParse(ck *ParseCheck) error {
	c, err := r.constraint(ck.Type)
	if err != nil {
		return err
	}
	got := "ok"
	var v float64
	s := strings.TrimSpace(ck.Input)
	if s == "" {
		got = "empty_input"
	} else {
		f, perr := strconv.ParseFloat(s, 64)
		switch {
		case perr != nil && !errors.Is(perr, strconv.ErrRange):
			got = "syntax"
		default:
			v = f
			got = string(predicate.Classify(c, v))
		}
	}
	if got != ck.Expect {
		return fmt.Errorf("parsing %q as %s: got %s, want %s", ck.Input, ck.Type, got, ck.Expect)
	}
	if ck.Expect == "ok" && ck.ExpectValue != nil && v != *ck.ExpectValue {
		return fmt.Errorf("parsing %q = %v, want %v", ck.Input, v, *ck.ExpectValue)
	}
	return nil
}

func (r *Runner) evalConstant(ck *ConstantCheck) error {
	if _, err := r.constraint(ck.Type); err != nil {
		return err
	}
	if !knownConstant(ck.Name) {
		return fmt.Errorf("unknown constant %q", ck.Name)
	}
	got := "inadmissible"
	if r.tables.Admits(ck.Name, ck.Type) {
		got = "admissible"
	}
	if got != ck.Expect {
		return fmt.Errorf("constant %s for %s: got %s, want %s", ck.Name, ck.Type, got, ck.Expect)
	}
	return nil
}

func knownConstant(name string) bool {
	for _, k := range infer.Catalogue() {
		if k.Name == name {
			return true
		}
	}
	return false
}

func apply(op ir.ArithmeticOp, l, r float64) float64 {
	switch op {
	case ir.OpAdd:
		return l + r
	case ir.OpSub:
		return l - r
	case ir.OpMul:
		return l * r
	case ir.OpDiv:
		return l / r
	}
	panic("unknown arithmetic op " + string(op))
}

func applyUnary(op ir.UnaryOp, v float64) float64 {
	switch op {
	case ir.OpNeg:
		return -v
	case ir.OpAbs:
		return math.Abs(v)
	case ir.OpSignum:
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	case ir.OpSin:
		return math.Sin(v)
	case ir.OpCos:
		return math.Cos(v)
	case ir.OpTan:
		return math.Tan(v)
	}
	panic("unknown unary op " + string(op))
}
