package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultConfig(t *testing.T) {
	stdout, _, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration valid")
	assert.Contains(t, stdout, "9 constraint(s)")
}

func TestValidateTinyConfig(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "validate", "--config", writeTinyConfig(t))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, float64(2), data["constraints"])
}

func TestValidateInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cue")
	bad := `
constraints: [
	{name: "Backwards", lower: 1.0, upper: -1.0},
]
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	stdout, _, err := execute(t, "validate", "--config", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Configuration invalid")
}
