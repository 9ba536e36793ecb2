package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func harnessScenario(name string) string {
	return filepath.Join("..", "harness", "testdata", name)
}

func TestVerifyPassingScenarios(t *testing.T) {
	stdout, _, err := execute(t, "verify",
		harnessScenario("normalized_multiplication.yaml"),
		harnessScenario("parsing_taxonomy.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "ok   normalized-multiplication (7 checks)")
	assert.Contains(t, stdout, "ok   parsing-taxonomy (11 checks)")
}

func TestVerifyFailingScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failing.yaml")
	scenario := `name: failing
checks:
  - construct: {type: Normalized, value: 1.5, expect: ok}
`
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	stdout, _, err := execute(t, "verify", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "FAIL failing (1 of 1 checks failed)")
	assert.Contains(t, stdout, "out_of_range")
}

func TestVerifyMissingScenario(t *testing.T) {
	_, _, err := execute(t, "verify", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
