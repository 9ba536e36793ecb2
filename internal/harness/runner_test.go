package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/compiler"
)

func defaultRunner() *Runner {
	return NewRunner(compiler.DefaultConfig())
}

func TestRunScenarioFiles(t *testing.T) {
	files := []string{
		"normalized_multiplication",
		"arithmetic_edges",
		"negation_and_conversion",
		"parsing_taxonomy",
		"constant_admissibility",
	}
	runner := defaultRunner()

	for _, name := range files {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", name+".yaml"))
			require.NoError(t, err)

			result := runner.Run(scenario)
			for _, ck := range result.Checks {
				assert.True(t, ck.Pass, "check %d (%s): %s", ck.Index, ck.Kind, ck.Detail)
			}
			require.Zero(t, result.Failed)

			AssertGolden(t, name, result)
		})
	}
}

func TestRunRecordsFailures(t *testing.T) {
	runner := defaultRunner()
	scenario := &Scenario{
		Name: "failing",
		Checks: []Check{
			{Construct: &ConstructCheck{Type: "Normalized", Value: 1.5, Expect: "ok"}},
			{Construct: &ConstructCheck{Type: "Normalized", Value: 0.5, Expect: "ok"}},
		},
	}

	result := runner.Run(scenario)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Checks[0].Pass)
	assert.Contains(t, result.Checks[0].Detail, "out_of_range")
	assert.True(t, result.Checks[1].Pass)
	assert.Empty(t, result.Checks[1].Detail)
}

func TestRunUnknownConstraint(t *testing.T) {
	runner := defaultRunner()
	scenario := &Scenario{
		Name: "unknown",
		Checks: []Check{
			{Construct: &ConstructCheck{Type: "Bogus", Value: 1, Expect: "ok"}},
		},
	}

	result := runner.Run(scenario)
	require.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Checks[0].Detail, `unknown constraint "Bogus"`)
}

func TestRunArithVerdictMismatch(t *testing.T) {
	runner := defaultRunner()
	scenario := &Scenario{
		Name: "verdict",
		Checks: []Check{
			{Arith: &ArithCheck{
				Op:           "mul",
				Lhs:          Operand{Type: "Normalized", Value: 0.5},
				Rhs:          Operand{Type: "Normalized", Value: 0.5},
				ExpectOutput: "Fin",
				ExpectSafe:   true,
			}},
		},
	}

	result := runner.Run(scenario)
	require.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Checks[0].Detail, "inferred output Normalized")
}

func TestRunArithInadmissibleOperand(t *testing.T) {
	runner := defaultRunner()
	scenario := &Scenario{
		Name: "operand",
		Checks: []Check{
			{Arith: &ArithCheck{
				Op:           "add",
				Lhs:          Operand{Type: "Positive", Value: -1},
				Rhs:          Operand{Type: "Positive", Value: 1},
				ExpectOutput: "Positive",
			}},
		},
	}

	result := runner.Run(scenario)
	require.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Checks[0].Detail, "not admissible")
}

func TestRunDivisionByZero(t *testing.T) {
	runner := defaultRunner()
	scenario := &Scenario{
		Name: "divzero",
		Checks: []Check{
			{Arith: &ArithCheck{
				Op:           "div",
				Lhs:          Operand{Type: "Fin", Value: 1},
				Rhs:          Operand{Type: "Fin", Value: 0},
				ExpectOutput: "Fin",
				Expect:       "division_by_zero",
			}},
		},
	}

	result := runner.Run(scenario)
	assert.Zero(t, result.Failed)
}

func TestRunUnknownConstantName(t *testing.T) {
	runner := defaultRunner()
	scenario := &Scenario{
		Name: "constant",
		Checks: []Check{
			{Constant: &ConstantCheck{Name: "Tau", Type: "Fin", Expect: "admissible"}},
		},
	}

	result := runner.Run(scenario)
	require.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Checks[0].Detail, `unknown constant "Tau"`)
}
