package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: a sequence of checks
// evaluated against the inference tables of one configuration.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Checks lists the checks to evaluate, in order. Each check sets
	// exactly one of the kind fields.
	Checks []Check `yaml:"checks"`
}

// Check is a tagged union: exactly one field is non-nil.
type Check struct {
	Construct *ConstructCheck `yaml:"construct,omitempty"`
	Arith     *ArithCheck     `yaml:"arith,omitempty"`
	Unary     *UnaryCheck     `yaml:"unary,omitempty"`
	Convert   *ConvertCheck   `yaml:"convert,omitempty"`
	Parse     *ParseCheck     `yaml:"parse,omitempty"`
	Constant  *ConstantCheck  `yaml:"constant,omitempty"`
}

// Operand names a constraint and a literal value for it.
type Operand struct {
	Type  string  `yaml:"type"`
	Value float64 `yaml:"value"`
}

// ConstructCheck validates a value against a constraint's admission
// taxonomy: ok, nan, pos_inf, neg_inf or out_of_range.
type ConstructCheck struct {
	Type   string  `yaml:"type"`
	Value  float64 `yaml:"value"`
	Expect string  `yaml:"expect"`
}

// ArithCheck evaluates a binary operation: the inferred output
// constraint and safety must match, and the computed result must land
// in the expected taxonomy kind (default ok).
type ArithCheck struct {
	Op           string   `yaml:"op"`
	Lhs          Operand  `yaml:"lhs"`
	Rhs          Operand  `yaml:"rhs"`
	ExpectOutput string   `yaml:"expect_output"`
	ExpectSafe   bool     `yaml:"expect_safe"`
	ExpectValue  *float64 `yaml:"expect_value,omitempty"`
	Expect       string   `yaml:"expect,omitempty"`
}

// UnaryCheck evaluates a unary operation against the inferred output.
type UnaryCheck struct {
	Op           string   `yaml:"op"`
	Input        Operand  `yaml:"input"`
	ExpectOutput string   `yaml:"expect_output"`
	ExpectValue  *float64 `yaml:"expect_value,omitempty"`
	Expect       string   `yaml:"expect,omitempty"`
}

// ConvertCheck moves an admissible source value into the target
// constraint and checks the outcome.
type ConvertCheck struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Value  float64 `yaml:"value"`
	Expect string  `yaml:"expect"`
}

// ParseCheck runs the textual admission pipeline on a raw input.
type ParseCheck struct {
	Type        string   `yaml:"type"`
	Input       string   `yaml:"input"`
	Expect      string   `yaml:"expect"`
	ExpectValue *float64 `yaml:"expect_value,omitempty"`
}

// ConstantCheck asserts whether a catalogue constant is admissible for
// a constraint. Expect is "admissible" or "inadmissible".
type ConstantCheck struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Expect string `yaml:"expect"`
}

// Check kind names, in the order validate reports them.
const (
	KindConstruct = "construct"
	KindArith     = "arith"
	KindUnary     = "unary"
	KindConvert   = "convert"
	KindParse     = "parse"
	KindConstant  = "constant"
)

// Kind returns the name of the set field, or "" when the union is
// empty or over-set.
func (c *Check) Kind() string {
	kind := ""
	n := 0
	if c.Construct != nil {
		kind, n = KindConstruct, n+1
	}
	if c.Arith != nil {
		kind, n = KindArith, n+1
	}
	if c.Unary != nil {
		kind, n = KindUnary, n+1
	}
	if c.Convert != nil {
		kind, n = KindConvert, n+1
	}
	if c.Parse != nil {
		kind, n = KindParse, n+1
	}
	if c.Constant != nil {
		kind, n = KindConstant, n+1
	}
	if n != 1 {
		return ""
	}
	return kind
}

// LoadScenario loads and validates a scenario from a YAML file.
// Unknown fields are rejected so that typos in scenario files fail
// loudly instead of silently skipping assertions.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks structural requirements before execution.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("scenario must have at least one check")
	}
	for i := range s.Checks {
		ck := &s.Checks[i]
		kind := ck.Kind()
		if kind == "" {
			return fmt.Errorf("check %d: exactly one check kind must be set", i)
		}
		if err := validateCheck(ck, kind); err != nil {
			return fmt.Errorf("check %d (%s): %w", i, kind, err)
		}
	}
	return nil
}

func validateCheck(ck *Check, kind string) error {
	switch kind {
	case KindConstruct:
		if ck.Construct.Type == "" {
			return fmt.Errorf("type is required")
		}
		return validateExpect(ck.Construct.Expect, false)
	case KindArith:
		a := ck.Arith
		if !validArithOp(a.Op) {
			return fmt.Errorf("unknown op %q", a.Op)
		}
		if a.Lhs.Type == "" || a.Rhs.Type == "" {
			return fmt.Errorf("lhs and rhs types are required")
		}
		if a.ExpectOutput == "" {
			return fmt.Errorf("expect_output is required")
		}
		return validateExpect(a.Expect, true)
	case KindUnary:
		u := ck.Unary
		if !validUnaryOp(u.Op) {
			return fmt.Errorf("unknown op %q", u.Op)
		}
		if u.Input.Type == "" {
			return fmt.Errorf("input type is required")
		}
		if u.ExpectOutput == "" {
			return fmt.Errorf("expect_output is required")
		}
		return validateExpect(u.Expect, true)
	case KindConvert:
		c := ck.Convert
		if c.From == "" || c.To == "" {
			return fmt.Errorf("from and to are required")
		}
		return validateExpect(c.Expect, false)
	case KindParse:
		if ck.Parse.Type == "" {
			return fmt.Errorf("type is required")
		}
		return validateExpect(ck.Parse.Expect, false)
	case KindConstant:
		c := ck.Constant
		if c.Name == "" || c.Type == "" {
			return fmt.Errorf("name and type are required")
		}
		if c.Expect != "admissible" && c.Expect != "inadmissible" {
			return fmt.Errorf("expect must be admissible or inadmissible, got %q", c.Expect)
		}
		return nil
	}
	return fmt.Errorf("unhandled kind %q", kind)
}

// expectKinds are the taxonomy outcomes a check may expect.
var expectKinds = map[string]bool{
	"ok":               true,
	"nan":              true,
	"pos_inf":          true,
	"neg_inf":          true,
	"out_of_range":     true,
	"division_by_zero": true,
	"empty_input":      true,
	"syntax":           true,
}

func validateExpect(expect string, optional bool) error {
	if expect == "" {
		if optional {
			return nil
		}
		return fmt.Errorf("expect is required")
	}
	if !expectKinds[expect] {
		return fmt.Errorf("unknown expect kind %q", expect)
	}
	return nil
}

func validArithOp(op string) bool {
	switch op {
	case "add", "sub", "mul", "div":
		return true
	}
	return false
}

func validUnaryOp(op string) bool {
	switch op {
	case "neg", "abs", "signum", "sin", "cos", "tan":
		return true
	}
	return false
}
