package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "normalized_multiplication.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "normalized-multiplication", scenario.Name)
	require.Len(t, scenario.Checks, 7)
	assert.Equal(t, KindConstruct, scenario.Checks[0].Kind())
	assert.Equal(t, KindArith, scenario.Checks[2].Kind())
	assert.Equal(t, KindConstant, scenario.Checks[6].Kind())

	arith := scenario.Checks[2].Arith
	assert.Equal(t, "mul", arith.Op)
	assert.Equal(t, "Normalized", arith.Lhs.Type)
	assert.True(t, arith.ExpectSafe)
	require.NotNil(t, arith.ExpectValue)
	assert.Equal(t, 0.2, *arith.ExpectValue)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "does_not_exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scenario file")
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `name: bad
checks:
  - construct: {type: Fin, value: 1.0, expect: ok, surprise: true}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario YAML")
}

func TestValidateScenario(t *testing.T) {
	construct := &ConstructCheck{Type: "Fin", Value: 1, Expect: "ok"}

	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{
			name:     "valid",
			scenario: Scenario{Name: "s", Checks: []Check{{Construct: construct}}},
		},
		{
			name:     "missing name",
			scenario: Scenario{Checks: []Check{{Construct: construct}}},
			wantErr:  "name is required",
		},
		{
			name:     "no checks",
			scenario: Scenario{Name: "s"},
			wantErr:  "at least one check",
		},
		{
			name:     "empty union",
			scenario: Scenario{Name: "s", Checks: []Check{{}}},
			wantErr:  "exactly one check kind",
		},
		{
			name: "two kinds set",
			scenario: Scenario{Name: "s", Checks: []Check{{
				Construct: construct,
				Parse:     &ParseCheck{Type: "Fin", Input: "1", Expect: "ok"},
			}}},
			wantErr: "exactly one check kind",
		},
		{
			name: "bad expect kind",
			scenario: Scenario{Name: "s", Checks: []Check{{
				Construct: &ConstructCheck{Type: "Fin", Value: 1, Expect: "boom"},
			}}},
			wantErr: `unknown expect kind "boom"`,
		},
		{
			name: "bad arithmetic op",
			scenario: Scenario{Name: "s", Checks: []Check{{
				Arith: &ArithCheck{
					Op:           "mod",
					Lhs:          Operand{Type: "Fin"},
					Rhs:          Operand{Type: "Fin"},
					ExpectOutput: "Fin",
				},
			}}},
			wantErr: `unknown op "mod"`,
		},
		{
			name: "arith without expect_output",
			scenario: Scenario{Name: "s", Checks: []Check{{
				Arith: &ArithCheck{Op: "add", Lhs: Operand{Type: "Fin"}, Rhs: Operand{Type: "Fin"}},
			}}},
			wantErr: "expect_output is required",
		},
		{
			name: "constant expect not a verdict",
			scenario: Scenario{Name: "s", Checks: []Check{{
				Constant: &ConstantCheck{Name: "Pi", Type: "Fin", Expect: "ok"},
			}}},
			wantErr: "admissible or inadmissible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateScenario(&tt.scenario)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
