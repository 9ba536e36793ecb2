package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/infer"
	"github.com/strictnum/floatgen/internal/ir"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "floatgen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenPragmas(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floatgen.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var version int
	require.NoError(t, s2.DB().QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestExportAndLoadRun(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	cfg := compiler.DefaultConfig()
	tables := infer.Build(cfg)
	hash := ir.MustConfigFingerprint(cfg)

	runID, err := s.ExportRun(ctx, tables, hash)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	loaded, err := s.LoadRun(ctx, runID)
	require.NoError(t, err)

	assert.Equal(t, hash, loaded.Run.ConfigHash)
	assert.Equal(t, cfg.Package, loaded.Run.Package)
	assert.Equal(t, len(cfg.Constraints), loaded.Run.ConstraintCount)
	assert.False(t, loaded.Run.CreatedAt.IsZero())

	// the round trip preserves every table exactly
	require.Len(t, loaded.Constraints, len(cfg.Constraints))
	for i := range cfg.Constraints {
		want := cfg.Constraints[i]
		got := loaded.Constraints[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Sign, got.Sign)
		assert.Equal(t, want.ExcludesZero, got.ExcludesZero)
		assert.Equal(t, want.NegateTo, got.NegateTo)
		assert.True(t, want.BoundsEqual(&got), want.Name)
	}
	assert.Equal(t, tables.Arithmetic, loaded.Arithmetic)
	assert.Equal(t, tables.Unary, loaded.Unary)
	assert.Equal(t, tables.Conversions, loaded.Conversions)
	assert.Equal(t, tables.Constants, loaded.Constants)
}

func TestLoadRunUnknownID(t *testing.T) {
	s := openTestStore(t)
	_, err := s.LoadRun(context.Background(), "no-such-run")
	assert.Error(t, err)
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	cfg := compiler.DefaultConfig()
	tables := infer.Build(cfg)
	hash := ir.MustConfigFingerprint(cfg)

	first, err := s.ExportRun(ctx, tables, hash)
	require.NoError(t, err)
	second, err := s.ExportRun(ctx, tables, hash)
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)
}
