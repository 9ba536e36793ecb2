package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/ir"
)

func TestArithmeticDefaultTable(t *testing.T) {
	cfg := compiler.DefaultConfig()

	tests := []struct {
		op       ir.ArithmeticOp
		lhs, rhs string
		output   string
		safe     bool
	}{
		// Addition is safe only for opposite-sign operands.
		{ir.OpAdd, "Positive", "Negative", "Fin", true},
		{ir.OpAdd, "Negative", "Positive", "Fin", true},
		{ir.OpAdd, "NonZeroPositive", "NonZeroNegative", "Fin", true},
		{ir.OpAdd, "Positive", "Positive", "Positive", false},
		{ir.OpAdd, "Negative", "Negative", "Negative", false},
		{ir.OpAdd, "NonZero", "NonZero", "Fin", false},
		{ir.OpAdd, "Normalized", "Normalized", "Positive", false},
		{ir.OpAdd, "Fin", "Fin", "Fin", false},

		// Subtraction is addition with a negated right operand.
		{ir.OpSub, "Positive", "Positive", "Fin", true},
		{ir.OpSub, "Positive", "Negative", "Positive", false},
		{ir.OpSub, "Normalized", "Normalized", "Symmetric", true},
		{ir.OpSub, "Symmetric", "Symmetric", "Fin", false},

		// Bounded products stay safe when the corner products match a
		// configured interval exactly.
		{ir.OpMul, "Normalized", "Normalized", "Normalized", true},
		{ir.OpMul, "NegativeNormalized", "NegativeNormalized", "Normalized", true},
		{ir.OpMul, "Normalized", "NegativeNormalized", "NegativeNormalized", true},
		{ir.OpMul, "Symmetric", "Symmetric", "Symmetric", true},
		{ir.OpMul, "Normalized", "Symmetric", "Symmetric", true},
		{ir.OpMul, "NonZero", "NonZero", "NonZero", false},
		{ir.OpMul, "Positive", "Positive", "Positive", false},
		{ir.OpMul, "Positive", "Negative", "Negative", false},
		{ir.OpMul, "Fin", "Fin", "Fin", false},

		// Quotients are never safe against unbounded divisors.
		{ir.OpDiv, "Fin", "Fin", "Fin", false},
		{ir.OpDiv, "NonZeroPositive", "NonZeroPositive", "NonZeroPositive", false},
		{ir.OpDiv, "NonZeroPositive", "NonZeroNegative", "NonZeroNegative", false},
		{ir.OpDiv, "Normalized", "NonZeroPositive", "Positive", false},
		{ir.OpDiv, "Positive", "Positive", "Positive", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op)+"_"+tt.lhs+"_"+tt.rhs, func(t *testing.T) {
			res, ok := Arithmetic(cfg, tt.op, tt.lhs, tt.rhs)
			require.True(t, ok)
			assert.Equal(t, tt.output, res.Output)
			assert.Equal(t, tt.safe, res.Safe)
		})
	}
}

func TestArithmeticUnknownConstraint(t *testing.T) {
	cfg := compiler.DefaultConfig()
	_, ok := Arithmetic(cfg, ir.OpAdd, "Fin", "Bogus")
	assert.False(t, ok)
}

func TestArithmeticQuotientKeepsDividendZeroExclusion(t *testing.T) {
	cfg := compiler.DefaultConfig()

	// x/y is zero iff x is zero, so the quotient inherits the
	// dividend's exclusion, not the divisor's.
	res, ok := Arithmetic(cfg, ir.OpDiv, "NonZero", "NonZeroPositive")
	require.True(t, ok)
	assert.Equal(t, "NonZero", res.Output)
	assert.False(t, res.Safe)

	res, ok = Arithmetic(cfg, ir.OpDiv, "Positive", "NonZeroPositive")
	require.True(t, ok)
	assert.Equal(t, "Positive", res.Output)
}

func TestArithmeticNarrowestOutputWins(t *testing.T) {
	cfg := compiler.DefaultConfig()

	// The unsafe product of two positive sets selects Positive, not
	// the wider Fin, even though both contain every possible result.
	res, ok := Arithmetic(cfg, ir.OpMul, "NonZeroPositive", "Positive")
	require.True(t, ok)
	assert.Equal(t, "Positive", res.Output)
}
