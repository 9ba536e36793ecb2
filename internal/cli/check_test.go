package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAdmissible(t *testing.T) {
	stdout, _, err := execute(t, "check", "Fin", "3.14")
	require.NoError(t, err)
	assert.Contains(t, stdout, "3.14 is admissible for Fin")
}

func TestCheckOutOfRange(t *testing.T) {
	stdout, _, err := execute(t, "check", "Normalized", "1.5")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "out_of_range")
}

func TestCheckNaN(t *testing.T) {
	stdout, _, err := execute(t, "check", "Fin", "NaN")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "nan")
}

func TestCheckWidth32Rounding(t *testing.T) {
	// 1.0000000000000002 collapses to 1 at 32 bits and stays admissible.
	stdout, _, err := execute(t, "check", "Normalized", "1.0000000000000002", "--width", "32")
	require.NoError(t, err)
	assert.Contains(t, stdout, "admissible for Normalized")

	_, _, err = execute(t, "check", "Normalized", "1.0000000000000002", "--width", "64")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCheckUnknownConstraint(t *testing.T) {
	_, _, err := execute(t, "check", "Bogus", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckBadValue(t *testing.T) {
	_, _, err := execute(t, "check", "Fin", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckBadWidth(t *testing.T) {
	_, _, err := execute(t, "check", "Fin", "1", "--width", "16")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
