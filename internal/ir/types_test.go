package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthHelpers(t *testing.T) {
	assert.Equal(t, "F32", Width32.Tag())
	assert.Equal(t, "F64", Width64.Tag())
	assert.Equal(t, "float32", Width32.Primitive())
	assert.Equal(t, "float64", Width64.Primitive())
	assert.Equal(t, 32, Width32.Bits())
	assert.Equal(t, 64, Width64.Bits())
	assert.True(t, Width32.Valid())
	assert.True(t, Width64.Valid())
	assert.False(t, Width(16).Valid())
}

func TestWrapperTypeName(t *testing.T) {
	assert.Equal(t, "FinF64", WrapperType{Constraint: "Fin", Width: Width64}.TypeName())
	assert.Equal(t, "NormalizedF32", WrapperType{Constraint: "Normalized", Width: Width32}.TypeName())
}

func TestArithmeticOpHelpers(t *testing.T) {
	assert.Equal(t, "Add", OpAdd.Method())
	assert.Equal(t, "/", OpDiv.Symbol())
	assert.Len(t, AllArithmeticOps(), 4)
}

func TestConstraintContains(t *testing.T) {
	tests := []struct {
		name string
		c    Constraint
		v    float64
		want bool
	}{
		{"fin accepts value", Constraint{Name: "Fin", Sign: SignAny}, 3.14, true},
		{"fin rejects nan", Constraint{Name: "Fin", Sign: SignAny}, math.NaN(), false},
		{"fin rejects +inf", Constraint{Name: "Fin", Sign: SignAny}, math.Inf(1), false},
		{"fin rejects -inf", Constraint{Name: "Fin", Sign: SignAny}, math.Inf(-1), false},
		{"lower bound inclusive", Constraint{Name: "Positive", Lower: Bound(0), Sign: SignPositive}, 0, true},
		{"lower bound rejects below", Constraint{Name: "Positive", Lower: Bound(0), Sign: SignPositive}, -0.1, false},
		{"negative zero passes non-strict lower", Constraint{Name: "Positive", Lower: Bound(0), Sign: SignPositive}, negZero(), true},
		{"upper bound inclusive", Constraint{Name: "Normalized", Lower: Bound(0), Upper: Bound(1), Sign: SignPositive}, 1, true},
		{"upper bound rejects above", Constraint{Name: "Normalized", Lower: Bound(0), Upper: Bound(1), Sign: SignPositive}, 1.5, false},
		{"zero exclusion rejects zero", Constraint{Name: "NonZero", ExcludesZero: true, Sign: SignAny}, 0, false},
		{"zero exclusion rejects negative zero", Constraint{Name: "NonZero", ExcludesZero: true, Sign: SignAny}, negZero(), false},
		{"zero exclusion accepts nonzero", Constraint{Name: "NonZero", ExcludesZero: true, Sign: SignAny}, -2, true},
		{"strict positive via flag", Constraint{Name: "NonZeroPositive", Lower: Bound(0), ExcludesZero: true, Sign: SignPositive}, 0, false},
		{"strict positive accepts small", Constraint{Name: "NonZeroPositive", Lower: Bound(0), ExcludesZero: true, Sign: SignPositive}, 1e-300, true},
		{"symmetric accepts edge", Constraint{Name: "Symmetric", Lower: Bound(-1), Upper: Bound(1), Sign: SignAny}, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Contains(tt.v))
		})
	}
}

func TestConstraintBounds(t *testing.T) {
	c := Constraint{Name: "Normalized", Lower: Bound(0), Upper: Bound(1), Sign: SignPositive}
	assert.True(t, c.IsBounded())

	lo, ok := c.LowerValue()
	require.True(t, ok)
	assert.Equal(t, 0.0, lo)

	hi, ok := c.UpperValue()
	require.True(t, ok)
	assert.Equal(t, 1.0, hi)

	fin := Constraint{Name: "Fin", Sign: SignAny}
	assert.False(t, fin.IsBounded())
	lo, ok = fin.LowerValue()
	assert.False(t, ok)
	assert.True(t, math.IsInf(lo, -1))
}

func TestConstraintBoundsEqual(t *testing.T) {
	a := Constraint{Name: "A", Lower: Bound(0), Upper: Bound(1)}
	b := Constraint{Name: "B", Lower: Bound(0), Upper: Bound(1)}
	c := Constraint{Name: "C", Lower: Bound(-1), Upper: Bound(1)}
	unbounded := Constraint{Name: "U"}

	assert.True(t, a.BoundsEqual(&b))
	assert.False(t, a.BoundsEqual(&c))
	assert.False(t, a.BoundsEqual(&unbounded))
	other := Constraint{Name: "V"}
	assert.True(t, unbounded.BoundsEqual(&other))
}

func TestFeaturesHas(t *testing.T) {
	f := Features{ImplTraits: []string{TraitEquality, TraitAdd, TraitMul}}
	assert.True(t, f.Has(TraitEquality))
	assert.False(t, f.Has(TraitDiv))
	assert.True(t, f.OpEnabled(OpAdd))
	assert.False(t, f.OpEnabled(OpDiv))
}

func TestConfigLookups(t *testing.T) {
	cfg := &Config{
		Package: "strictfloat",
		Constraints: []Constraint{
			{Name: "Fin", Sign: SignAny, NegateTo: "Fin"},
			{Name: "Positive", Lower: Bound(0), Sign: SignPositive, NegateTo: "Negative"},
			{Name: "Negative", Upper: Bound(0), Sign: SignNegative, NegateTo: "Positive"},
		},
		Types: []TypeDef{
			{Name: "Fin", Widths: []Width{Width32, Width64}, Constraints: []string{"Fin"}},
			{Name: "Positive", Widths: []Width{Width64}, Constraints: []string{"Positive"}},
			{Name: "Negative", Widths: []Width{Width64}, Constraints: []string{"Negative"}},
		},
		Features: Features{ImplTraits: AllTraits()},
	}

	require.NoError(t, cfg.Validate())

	assert.NotNil(t, cfg.Constraint("Fin"))
	assert.Nil(t, cfg.Constraint("Missing"))
	assert.NotNil(t, cfg.TypeDefFor("Positive"))

	wrappers := cfg.Wrappers()
	require.Len(t, wrappers, 4)
	assert.Equal(t, "FinF32", wrappers[0].TypeName())
	assert.Equal(t, "FinF64", wrappers[1].TypeName())

	at64 := cfg.WrappersAt(Width64)
	require.Len(t, at64, 3)
	assert.Equal(t, "PositiveF64", at64[1].TypeName())
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing package", Config{}},
		{"duplicate constraint", Config{
			Package: "p",
			Constraints: []Constraint{
				{Name: "Fin", Sign: SignAny},
				{Name: "Fin", Sign: SignAny},
			},
		}},
		{"inverted bounds", Config{
			Package: "p",
			Constraints: []Constraint{
				{Name: "Bad", Lower: Bound(1), Upper: Bound(0), Sign: SignAny},
			},
		}},
		{"invalid sign", Config{
			Package: "p",
			Constraints: []Constraint{
				{Name: "Bad", Sign: Sign("sideways")},
			},
		}},
		{"unknown negation target", Config{
			Package: "p",
			Constraints: []Constraint{
				{Name: "Fin", Sign: SignAny, NegateTo: "Missing"},
			},
		}},
		{"type without constraint", Config{
			Package: "p",
			Constraints: []Constraint{
				{Name: "Fin", Sign: SignAny},
			},
			Types: []TypeDef{{Name: "Ghost", Widths: []Width{Width64}}},
		}},
		{"invalid width", Config{
			Package: "p",
			Constraints: []Constraint{
				{Name: "Fin", Sign: SignAny},
			},
			Types: []TypeDef{{Name: "Fin", Widths: []Width{16}}},
		}},
		{"alias to unknown type", Config{
			Package: "p",
			Constraints: []Constraint{
				{Name: "Fin", Sign: SignAny},
			},
			Types:   []TypeDef{{Name: "Fin", Widths: []Width{Width64}}},
			Aliases: []AliasDef{{Canonical: "Missing", Alias: "Real"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
