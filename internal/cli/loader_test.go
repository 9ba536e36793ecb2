package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/ir"
)

const tinyConfigCUE = `
"package": "tinyfloat"
constraints: [
	{name: "Fin", doc: "any finite value"},
	{name: "Unit", lower: 0.0, upper: 1.0},
]
constraint_types: [
	{name: "Fin", widths: [64]},
	{name: "Unit", widths: [64]},
]
`

func writeTinyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.cue")
	require.NoError(t, os.WriteFile(path, []byte(tinyConfigCUE), 0o644))
	return path
}

func TestLoadRawConfigDefault(t *testing.T) {
	raw, err := LoadRawConfig("")
	require.NoError(t, err)
	assert.Equal(t, "strictfloat", raw.Package)
	assert.Len(t, raw.Constraints, 9)
	assert.Equal(t, "Fin", raw.Constraints[0].Name)
}

func TestLoadRawConfigFile(t *testing.T) {
	raw, err := LoadRawConfig(writeTinyConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "tinyfloat", raw.Package)
	require.Len(t, raw.Constraints, 2)
	assert.Equal(t, "Unit", raw.Constraints[1].Name)
	require.NotNil(t, raw.Constraints[1].Upper)
	assert.Equal(t, 1.0, *raw.Constraints[1].Upper)
}

func TestLoadRawConfigMissingPath(t *testing.T) {
	_, err := LoadRawConfig(filepath.Join(t.TempDir(), "nope.cue"))
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadRawConfigEmptyDir(t *testing.T) {
	_, err := LoadRawConfig(t.TempDir())
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestLoadRawConfigBadStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cue")
	require.NoError(t, os.WriteFile(path, []byte(`"package": "p"`), 0o644))

	_, err := LoadRawConfig(path)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeBadConfig, loadErr.Code)
	assert.Contains(t, loadErr.Message, "constraints")
}

func TestLoadRawConfigExampleMatchesDefault(t *testing.T) {
	raw, err := LoadRawConfig(filepath.Join("..", "..", "examples", "strictfloat.cue"))
	require.NoError(t, err)

	fromExample, verrs := compiler.Resolve(raw)
	require.Empty(t, verrs)

	assert.Equal(t, ir.MustConfigFingerprint(compiler.DefaultConfig()),
		ir.MustConfigFingerprint(fromExample))
}

func TestFindCUEFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cue"), []byte("x: 1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("not cue"), 0o644))

	files, err := FindCUEFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.cue", filepath.Base(files[0]))
}
