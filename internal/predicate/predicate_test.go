package predicate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/ir"
)

func normalized() *ir.Constraint {
	return &ir.Constraint{Name: "Normalized", Lower: ir.Bound(0), Upper: ir.Bound(1), Sign: ir.SignPositive}
}

func nonZeroPositive() *ir.Constraint {
	return &ir.Constraint{Name: "NonZeroPositive", Lower: ir.Bound(0), ExcludesZero: true, Sign: ir.SignPositive}
}

func nonZero() *ir.Constraint {
	return &ir.Constraint{Name: "NonZero", ExcludesZero: true, Sign: ir.SignAny}
}

func TestBuildClauseShapes(t *testing.T) {
	tests := []struct {
		name string
		c    *ir.Constraint
		want []Clause
	}{
		{
			"unbounded has only finiteness",
			&ir.Constraint{Name: "Fin", Sign: ir.SignAny},
			[]Clause{{Kind: ClauseFinite}},
		},
		{
			"bounds become non-strict comparisons",
			normalized(),
			[]Clause{
				{Kind: ClauseFinite},
				{Kind: ClauseLower, Bound: 0},
				{Kind: ClauseUpper, Bound: 1},
			},
		},
		{
			"zero bound with exclusion is strict",
			nonZeroPositive(),
			[]Clause{
				{Kind: ClauseFinite},
				{Kind: ClauseLower, Bound: 0, Strict: true},
			},
		},
		{
			"exclusion away from bounds gets its own clause",
			nonZero(),
			[]Clause{
				{Kind: ClauseFinite},
				{Kind: ClauseNonZero},
			},
		},
		{
			"exclusion inside bounds gets its own clause",
			&ir.Constraint{Name: "SymNZ", Lower: ir.Bound(-1), Upper: ir.Bound(1), ExcludesZero: true, Sign: ir.SignAny},
			[]Clause{
				{Kind: ClauseFinite},
				{Kind: ClauseLower, Bound: -1},
				{Kind: ClauseUpper, Bound: 1},
				{Kind: ClauseNonZero},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Build(tt.c, ir.Width64)
			assert.Equal(t, tt.want, e.Clauses)
		})
	}
}

func TestEvalMatchesContains(t *testing.T) {
	constraints := []*ir.Constraint{
		{Name: "Fin", Sign: ir.SignAny},
		{Name: "Positive", Lower: ir.Bound(0), Sign: ir.SignPositive},
		{Name: "Negative", Upper: ir.Bound(0), Sign: ir.SignNegative},
		nonZero(),
		normalized(),
		nonZeroPositive(),
		{Name: "Symmetric", Lower: ir.Bound(-1), Upper: ir.Bound(1), Sign: ir.SignAny},
	}
	values := []float64{
		math.NaN(), math.Inf(1), math.Inf(-1),
		0, math.Copysign(0, -1), 1, -1, 0.5, -0.5, 1.5, -1.5,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		math.MaxFloat64, -math.MaxFloat64,
	}

	for _, c := range constraints {
		e := Build(c, ir.Width64)
		for _, v := range values {
			assert.Equal(t, c.Contains(v), e.Eval(v), "%s(%v)", c.Name, v)
		}
	}
}

func TestEvalStrictZeroBoundRejectsBothZeros(t *testing.T) {
	e := Build(nonZeroPositive(), ir.Width64)
	assert.False(t, e.Eval(0))
	assert.False(t, e.Eval(math.Copysign(0, -1)))
	assert.True(t, e.Eval(math.SmallestNonzeroFloat64))
}

func TestRenderRange(t *testing.T) {
	tests := []struct {
		name  string
		c     *ir.Constraint
		width ir.Width
		want  string
	}{
		{"unbounded renders empty", &ir.Constraint{Name: "Fin", Sign: ir.SignAny}, ir.Width64, ""},
		{"interval", normalized(), ir.Width64, "v >= 0 && v <= 1"},
		{"strict zero bound", nonZeroPositive(), ir.Width64, "v > 0"},
		{"explicit zero exclusion", nonZero(), ir.Width64, "v != 0"},
		{
			"width 32 widens the variable",
			normalized(), ir.Width32,
			"float64(v) >= 0 && float64(v) <= 1",
		},
		{
			"fractional bound renders round-trip decimal",
			&ir.Constraint{Name: "Tenth", Lower: ir.Bound(0.1), Sign: ir.SignPositive},
			ir.Width64,
			"v >= 0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.c, tt.width).RenderRange("v"))
		})
	}
}

func TestRenderIncludesFiniteness(t *testing.T) {
	got := Build(normalized(), ir.Width64).Render("v")
	assert.Equal(t, "!math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 1", got)

	got32 := Build(&ir.Constraint{Name: "Fin", Sign: ir.SignAny}, ir.Width32).Render("v")
	assert.Equal(t, "!math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)", got32)
}

func TestClassify(t *testing.T) {
	c := normalized()
	assert.Equal(t, FailNone, Classify(c, 0.5))
	assert.Equal(t, FailNaN, Classify(c, math.NaN()))
	assert.Equal(t, FailPosInf, Classify(c, math.Inf(1)))
	assert.Equal(t, FailNegInf, Classify(c, math.Inf(-1)))
	assert.Equal(t, FailOutOfRange, Classify(c, 1.5))

	require.Equal(t, FailOutOfRange, Classify(nonZero(), 0))
}
