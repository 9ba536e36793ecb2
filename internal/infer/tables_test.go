package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/compiler"
	"github.com/strictnum/floatgen/internal/ir"
)

func TestBuildDefaultTableSizes(t *testing.T) {
	cfg := compiler.DefaultConfig()
	tables := Build(cfg)

	// 9 constraints, 4 binary ops over every ordered pair.
	assert.Len(t, tables.Arithmetic, 9*9*4)
	// Every constraint has all 6 unary operations in the default pool.
	assert.Len(t, tables.Unary, 9*6)
	// Ordered pairs of distinct constraints.
	assert.Len(t, tables.Conversions, 9*8)
	// Full catalogue scored against every constraint.
	assert.Len(t, tables.Constants, 9*len(Catalogue()))
}

func TestTablesLookups(t *testing.T) {
	tables := Build(compiler.DefaultConfig())

	res, ok := tables.Arith(ir.OpMul, "Normalized", "Normalized")
	require.True(t, ok)
	assert.Equal(t, "Normalized", res.Output)
	assert.True(t, res.Safe)

	_, ok = tables.Arith(ir.OpMul, "Normalized", "Bogus")
	assert.False(t, ok)

	ures, ok := tables.UnaryFor(ir.OpNeg, "Positive")
	require.True(t, ok)
	assert.Equal(t, "Negative", ures.Output)

	_, ok = tables.Conversion("Fin", "Fin")
	assert.False(t, ok, "self conversions are not materialised")
}

func TestSameWidthConversionVerdicts(t *testing.T) {
	cfg := compiler.DefaultConfig()
	tables := Build(cfg)

	tests := []struct {
		source, target string
		verdict        ir.ConversionVerdict
	}{
		{"Normalized", "Fin", ir.ConversionInfallible},
		{"Normalized", "Positive", ir.ConversionInfallible},
		{"Normalized", "Symmetric", ir.ConversionInfallible},
		{"NonZeroPositive", "Positive", ir.ConversionInfallible},
		{"NonZeroPositive", "NonZero", ir.ConversionInfallible},
		{"Fin", "Normalized", ir.ConversionFallible},
		{"Positive", "NonZeroPositive", ir.ConversionFallible},
		{"Positive", "Negative", ir.ConversionFallible},
		{"Symmetric", "Normalized", ir.ConversionFallible},
		{"NonZero", "NonZeroPositive", ir.ConversionFallible},
	}
	for _, tt := range tests {
		t.Run(tt.source+"_to_"+tt.target, func(t *testing.T) {
			v, ok := tables.Conversion(tt.source, tt.target)
			require.True(t, ok)
			assert.Equal(t, tt.verdict, v)
		})
	}
}

func TestCrossWidthVerdicts(t *testing.T) {
	assert.Equal(t, ir.ConversionInfallible, CrossWidth(ir.Width32, ir.Width64))
	assert.Equal(t, ir.ConversionFallible, CrossWidth(ir.Width64, ir.Width32))
}

func TestConstantAdmissibility(t *testing.T) {
	tables := Build(compiler.DefaultConfig())

	assert.True(t, tables.Admits("Pi", "Fin"))
	assert.True(t, tables.Admits("Pi", "Positive"))
	assert.False(t, tables.Admits("Pi", "Negative"))
	assert.False(t, tables.Admits("Pi", "Symmetric"))
	assert.True(t, tables.Admits("Zero", "Normalized"))
	assert.False(t, tables.Admits("Zero", "NonZero"))
	assert.True(t, tables.Admits("NegHalf", "Symmetric"))
	assert.False(t, tables.Admits("NegHalf", "Normalized"))
	assert.True(t, tables.Admits("TwoOverPi", "Normalized"))
	assert.False(t, tables.Admits("PiOver2", "Symmetric"))
	assert.True(t, tables.Admits("PiOver4", "Normalized"))

	// Unknown names are simply inadmissible everywhere.
	assert.False(t, tables.Admits("Tau", "Fin"))
}

func TestFullSet(t *testing.T) {
	cfg := compiler.DefaultConfig()
	name, ok := FullSet(cfg)
	require.True(t, ok)
	assert.Equal(t, "Fin", name)

	bounded := &ir.Config{Constraints: []ir.Constraint{
		{Name: "Unit", Sign: ir.SignPositive, Lower: ir.Bound(0), Upper: ir.Bound(1)},
	}}
	_, ok = FullSet(bounded)
	assert.False(t, ok)
}
