package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/ir"
)

func TestUnaryDefaultTable(t *testing.T) {
	cfg := compiler.DefaultConfig()

	tests := []struct {
		op     ir.UnaryOp
		input  string
		output string
		safe   bool
	}{
		// Negation follows the mirror pairing; reflexive sets loop.
		{ir.OpNeg, "Fin", "Fin", true},
		{ir.OpNeg, "Positive", "Negative", true},
		{ir.OpNeg, "Negative", "Positive", true},
		{ir.OpNeg, "NonZero", "NonZero", true},
		{ir.OpNeg, "Normalized", "NegativeNormalized", true},
		{ir.OpNeg, "NegativeNormalized", "Normalized", true},
		{ir.OpNeg, "NonZeroPositive", "NonZeroNegative", true},
		{ir.OpNeg, "Symmetric", "Symmetric", true},

		// Absolute value folds onto the positive half-line.
		{ir.OpAbs, "Fin", "Positive", true},
		{ir.OpAbs, "Negative", "Positive", true},
		{ir.OpAbs, "NonZero", "NonZeroPositive", true},
		{ir.OpAbs, "NonZeroNegative", "NonZeroPositive", true},
		{ir.OpAbs, "Symmetric", "Normalized", true},
		{ir.OpAbs, "NegativeNormalized", "Normalized", true},
		{ir.OpAbs, "Normalized", "Normalized", true},

		// Signum lands in the sign-matched unit interval.
		{ir.OpSignum, "Fin", "Symmetric", true},
		{ir.OpSignum, "NonZero", "Symmetric", true},
		{ir.OpSignum, "Positive", "Normalized", true},
		{ir.OpSignum, "NonZeroNegative", "NegativeNormalized", true},

		// Sine and cosine stay within the symmetric unit interval.
		{ir.OpSin, "Fin", "Symmetric", true},
		{ir.OpCos, "NonZero", "Symmetric", true},
		{ir.OpSin, "Normalized", "Symmetric", true},

		// Tangent has poles, so it can only target the full set.
		{ir.OpTan, "Fin", "Fin", false},
		{ir.OpTan, "Symmetric", "Fin", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op)+"_"+tt.input, func(t *testing.T) {
			res, ok := Unary(cfg, tt.op, tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.output, res.Output)
			assert.Equal(t, tt.safe, res.Safe)
		})
	}
}

func TestUnaryUnknownConstraint(t *testing.T) {
	cfg := compiler.DefaultConfig()
	_, ok := Unary(cfg, ir.OpNeg, "Bogus")
	assert.False(t, ok)
}
