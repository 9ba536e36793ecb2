package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesTextOutput(t *testing.T) {
	stdout, _, err := execute(t, "tables")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Fingerprint: ")
	assert.Contains(t, stdout, "mul(Normalized, Normalized) -> Normalized safe")
	assert.Contains(t, stdout, "add(Positive, Negative) -> Fin safe")
	assert.Contains(t, stdout, "neg(Positive) -> Negative safe")
	assert.Contains(t, stdout, "Fin -> Normalized: fallible")
	assert.Contains(t, stdout, "Normalized -> Fin: infallible")
	assert.Contains(t, stdout, "Pi for Symmetric: inadmissible")
}

func TestTablesKindFilter(t *testing.T) {
	stdout, _, err := execute(t, "tables", "--kind", "unary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Unary (")
	assert.NotContains(t, stdout, "Arithmetic (")
	assert.NotContains(t, stdout, "Conversions (")
}

func TestTablesInvalidKind(t *testing.T) {
	_, _, err := execute(t, "tables", "--kind", "bogus")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTablesJSONOutput(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "tables", "--kind", "constants")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["fingerprint"])
	constants, ok := data["constants"].([]any)
	require.True(t, ok)
	// 18 catalogue constants for each of 9 constraints.
	assert.Len(t, constants, 162)
	assert.Nil(t, data["arithmetic"])
}

func TestTablesExportDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tables.db")
	stdout, _, err := execute(t, "tables", "--export-db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported run: ")
	assert.FileExists(t, dbPath)
}
