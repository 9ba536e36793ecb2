package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfig(t *testing.T) {
	outDir := t.TempDir()
	stdout, _, err := execute(t, "generate", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated 20 file(s)")
	assert.Contains(t, stdout, "package strictfloat")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 20)

	doc, err := os.ReadFile(filepath.Join(outDir, "doc_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Code generated by floatgen. DO NOT EDIT.")
	assert.Contains(t, string(doc), "package strictfloat")
}

func TestGenerateTinyConfigJSON(t *testing.T) {
	outDir := t.TempDir()
	stdout, _, err := execute(t, "--format", "json", "generate",
		"--config", writeTinyConfig(t), "--out", outDir)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tinyfloat", data["package"])
	assert.NotEmpty(t, data["fingerprint"])
	assert.Len(t, data["files"], 4)
}

func TestGeneratePackageOverride(t *testing.T) {
	outDir := t.TempDir()
	stdout, _, err := execute(t, "generate",
		"--config", writeTinyConfig(t), "--out", outDir, "--package", "unitfloat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "package unitfloat")

	doc, err := os.ReadFile(filepath.Join(outDir, "doc_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "package unitfloat")
}

func TestGenerateMissingConfig(t *testing.T) {
	_, _, err := execute(t, "generate",
		"--config", filepath.Join(t.TempDir(), "missing.cue"), "--out", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
