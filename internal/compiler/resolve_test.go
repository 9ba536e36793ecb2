package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/ir"
)

// =============================================================================
// Default Catalogue Tests
// =============================================================================

func TestResolveDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "strictfloat", cfg.Package)
	require.Len(t, cfg.Constraints, 9)
	require.Len(t, cfg.Types, 9)

	for _, td := range cfg.Types {
		assert.Equal(t, []ir.Width{ir.Width32, ir.Width64}, td.Widths)
	}

	signs := map[string]ir.Sign{
		"Fin":                ir.SignAny,
		"Positive":           ir.SignPositive,
		"Negative":           ir.SignNegative,
		"NonZero":            ir.SignAny,
		"Normalized":         ir.SignPositive,
		"NegativeNormalized": ir.SignNegative,
		"NonZeroPositive":    ir.SignPositive,
		"NonZeroNegative":    ir.SignNegative,
		"Symmetric":          ir.SignAny,
	}
	for name, want := range signs {
		con := cfg.Constraint(name)
		require.NotNil(t, con, name)
		assert.Equal(t, want, con.Sign, name)
	}

	negations := map[string]string{
		"Fin":                "Fin",
		"Positive":           "Negative",
		"Negative":           "Positive",
		"NonZero":            "NonZero",
		"Normalized":         "NegativeNormalized",
		"NegativeNormalized": "Normalized",
		"NonZeroPositive":    "NonZeroNegative",
		"NonZeroNegative":    "NonZeroPositive",
		"Symmetric":          "Symmetric",
	}
	for name, want := range negations {
		assert.Equal(t, want, cfg.Constraint(name).NegateTo, name)
	}

	assert.ElementsMatch(t, ir.AllTraits(), cfg.Features.ImplTraits)
	assert.True(t, cfg.Features.GenerateOptionTypes)
	assert.True(t, cfg.Features.GenerateNewConst)
}

func TestDefaultConfigValidates(t *testing.T) {
	assert.Empty(t, Validate(DefaultConfig()))
}

// =============================================================================
// Sign Resolution Tests
// =============================================================================

func TestResolveDerivesSignFromBounds(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "AboveTwo", Lower: ir.Bound(2)},
		{Name: "BelowNegThree", Upper: ir.Bound(-3)},
		{Name: "Spanning", Lower: ir.Bound(-1), Upper: ir.Bound(5)},
		{Name: "Unbounded"},
	}})
	require.Empty(t, errs)

	assert.Equal(t, ir.SignPositive, cfg.Constraint("AboveTwo").Sign)
	assert.Equal(t, ir.SignNegative, cfg.Constraint("BelowNegThree").Sign)
	assert.Equal(t, ir.SignAny, cfg.Constraint("Spanning").Sign)
	assert.Equal(t, ir.SignAny, cfg.Constraint("Unbounded").Sign)
}

func TestResolveDeclaredSignImpliesBound(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "Pos", Sign: "positive"},
		{Name: "Neg", Sign: "negative"},
	}})
	require.Empty(t, errs)

	pos := cfg.Constraint("Pos")
	require.NotNil(t, pos.Lower)
	assert.Equal(t, 0.0, *pos.Lower)
	assert.Nil(t, pos.Upper)

	neg := cfg.Constraint("Neg")
	require.NotNil(t, neg.Upper)
	assert.Equal(t, 0.0, *neg.Upper)
	assert.Nil(t, neg.Lower)
}

func TestResolveSignContradictsBounds(t *testing.T) {
	_, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "Bad", Lower: ir.Bound(-1), Sign: "positive"},
	}})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSignMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Message, "non-negative")
}

func TestResolveSignAnyOnHalfLine(t *testing.T) {
	_, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "Bad", Lower: ir.Bound(0), Upper: ir.Bound(1), Sign: "any"},
	}})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSignMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Message, "contradicts")
}

func TestResolveUnknownSign(t *testing.T) {
	_, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "Bad", Sign: "upward"},
	}})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSignMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Message, "upward")
}

// =============================================================================
// Family Resolution Tests
// =============================================================================

func TestResolveCompositeIntersectsComponents(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "Positive", Lower: ir.Bound(0)},
			{Name: "NonZero", ExcludesZero: true},
		},
		Types: []RawTypeDef{
			{Name: "NonZeroPositive", Widths: []ir.Width{ir.Width64}, Constraints: []string{"Positive", "NonZero"}},
		},
	})
	require.Empty(t, errs)

	require.Len(t, cfg.Constraints, 1)
	con := cfg.Constraint("NonZeroPositive")
	require.NotNil(t, con)
	require.NotNil(t, con.Lower)
	assert.Equal(t, 0.0, *con.Lower)
	assert.Nil(t, con.Upper)
	assert.True(t, con.ExcludesZero)
	assert.Equal(t, ir.SignPositive, con.Sign)

	require.Len(t, cfg.Types, 1)
	assert.Equal(t, []ir.Width{ir.Width64}, cfg.Types[0].Widths)
	assert.Equal(t, []string{"Positive", "NonZero"}, cfg.Types[0].Constraints)
}

func TestResolveCompositeTightestBoundsWin(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "Unit", Lower: ir.Bound(0), Upper: ir.Bound(1)},
			{Name: "Symmetric", Lower: ir.Bound(-1), Upper: ir.Bound(1)},
		},
		Types: []RawTypeDef{
			{Name: "Both", Widths: []ir.Width{ir.Width64}, Constraints: []string{"Unit", "Symmetric"}},
		},
	})
	require.Empty(t, errs)

	con := cfg.Constraint("Both")
	assert.Equal(t, 0.0, *con.Lower)
	assert.Equal(t, 1.0, *con.Upper)
}

func TestResolveRenamedFamily(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "Finite", Doc: "any finite value"},
		},
		Types: []RawTypeDef{
			{Name: "Fin", Widths: []ir.Width{ir.Width32, ir.Width64}, Constraints: []string{"Finite"}},
		},
	})
	require.Empty(t, errs)

	con := cfg.Constraint("Fin")
	require.NotNil(t, con)
	assert.Equal(t, "any finite value", con.Doc)
	assert.Equal(t, "Fin", con.NegateTo)
	assert.Nil(t, cfg.Constraint("Finite"))
}

func TestResolveEmptyIntersectionDisjoint(t *testing.T) {
	_, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "AboveOne", Lower: ir.Bound(1)},
			{Name: "BelowZero", Upper: ir.Bound(0)},
		},
		Types: []RawTypeDef{
			{Name: "Impossible", Widths: []ir.Width{ir.Width64}, Constraints: []string{"AboveOne", "BelowZero"}},
		},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrEmptyIntersection, errs[0].Code)
}

func TestResolveEmptyIntersectionExcludedPoint(t *testing.T) {
	_, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "Positive", Lower: ir.Bound(0)},
			{Name: "Negative", Upper: ir.Bound(0)},
			{Name: "NonZero", ExcludesZero: true},
		},
		Types: []RawTypeDef{
			{Name: "Impossible", Widths: []ir.Width{ir.Width64}, Constraints: []string{"Positive", "Negative", "NonZero"}},
		},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrEmptyIntersection, errs[0].Code)
}

func TestResolveZeroPointFamilyAllowed(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "Positive", Lower: ir.Bound(0)},
			{Name: "Negative", Upper: ir.Bound(0)},
		},
		Types: []RawTypeDef{
			{Name: "Zero", Widths: []ir.Width{ir.Width64}, Constraints: []string{"Positive", "Negative"}},
		},
	})
	require.Empty(t, errs)

	con := cfg.Constraint("Zero")
	assert.Equal(t, 0.0, *con.Lower)
	assert.Equal(t, 0.0, *con.Upper)
	assert.True(t, con.Contains(0))
	assert.False(t, con.Contains(0.5))
}

func TestResolveUnknownComponent(t *testing.T) {
	_, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "Fin"},
		},
		Types: []RawTypeDef{
			{Name: "Bad", Widths: []ir.Width{ir.Width64}, Constraints: []string{"Missing"}},
		},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnknownConstraint, errs[0].Code)
	assert.Contains(t, errs[0].Message, "Missing")
}

func TestResolveInvalidWidths(t *testing.T) {
	_, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "Fin"},
		},
		Types: []RawTypeDef{
			{Name: "Fin", Widths: []ir.Width{16}},
			{Name: "Dup", Widths: []ir.Width{ir.Width64, ir.Width64}, Constraints: []string{"Fin"}},
		},
	})
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, ErrInvalidWidth, e.Code)
	}
}

// =============================================================================
// Negation Target Tests
// =============================================================================

func TestResolveNegationDeclaredAndVerified(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "Gain", Lower: ir.Bound(0), Upper: ir.Bound(2), NegateTo: "Loss"},
		{Name: "Loss", Lower: ir.Bound(-2), Upper: ir.Bound(0)},
	}})
	require.Empty(t, errs)

	assert.Equal(t, "Loss", cfg.Constraint("Gain").NegateTo)
	assert.Equal(t, "Gain", cfg.Constraint("Loss").NegateTo)
}

func TestResolveNegationDeclaredMismatch(t *testing.T) {
	_, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "Gain", Lower: ir.Bound(0), Upper: ir.Bound(2), NegateTo: "Half"},
		{Name: "Half", Lower: ir.Bound(0), Upper: ir.Bound(1)},
	}})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrNegationMismatch, errs[0].Code)
}

func TestResolveNegationUnknownTarget(t *testing.T) {
	_, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "Gain", Lower: ir.Bound(0), NegateTo: "Missing"},
	}})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnknownConstraint, errs[0].Code)
}

func TestResolveNegationAbsentWhenNoMirror(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "AboveOne", Lower: ir.Bound(1), Upper: ir.Bound(2)},
	}})
	require.Empty(t, errs)
	assert.Empty(t, cfg.Constraint("AboveOne").NegateTo)
}

func TestResolveNegationZeroExclusionMustMatch(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{Constraints: []RawConstraint{
		{Name: "StrictPos", Lower: ir.Bound(0), ExcludesZero: true},
		{Name: "Negative", Upper: ir.Bound(0)},
		{Name: "StrictNeg", Upper: ir.Bound(0), ExcludesZero: true},
	}})
	require.Empty(t, errs)
	assert.Equal(t, "StrictNeg", cfg.Constraint("StrictPos").NegateTo)
}

func TestResolveNegationAcrossRename(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{
			{Name: "Up", Lower: ir.Bound(0), NegateTo: "Down"},
			{Name: "Down", Upper: ir.Bound(0)},
		},
		Types: []RawTypeDef{
			{Name: "Rise", Widths: []ir.Width{ir.Width64}, Constraints: []string{"Up"}},
			{Name: "Fall", Widths: []ir.Width{ir.Width64}, Constraints: []string{"Down"}},
		},
	})
	require.Empty(t, errs)

	assert.Equal(t, "Fall", cfg.Constraint("Rise").NegateTo)
	assert.Equal(t, "Rise", cfg.Constraint("Fall").NegateTo)
}

// =============================================================================
// Alias, Feature and Error Collection Tests
// =============================================================================

func TestResolveAliasTargetsUnknownType(t *testing.T) {
	_, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{{Name: "Fin"}},
		Aliases:     []ir.AliasDef{{Canonical: "Missing", Alias: "Real"}},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrInvalidAlias, errs[0].Code)
}

func TestResolveAliasCollidesWithType(t *testing.T) {
	_, errs := Resolve(&RawConfig{
		Constraints: []RawConstraint{{Name: "Fin"}},
		Aliases:     []ir.AliasDef{{Canonical: "Fin", Alias: "Fin"}},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateName, errs[0].Code)
}

func TestResolveFeatureOverrides(t *testing.T) {
	off := false
	cfg, errs := Resolve(&RawConfig{
		Constraints:         []RawConstraint{{Name: "Fin"}},
		ImplTraits:          []string{ir.TraitAdd},
		ImplTraitsDeclared:  true,
		GenerateOptionTypes: &off,
	})
	require.Empty(t, errs)

	assert.Equal(t, []string{ir.TraitAdd}, cfg.Features.ImplTraits)
	assert.True(t, cfg.Features.OpEnabled(ir.OpAdd))
	assert.False(t, cfg.Features.OpEnabled(ir.OpSub))
	assert.False(t, cfg.Features.GenerateOptionTypes)
	assert.True(t, cfg.Features.GenerateNewConst)
}

func TestResolveUnknownTrait(t *testing.T) {
	_, errs := Resolve(&RawConfig{
		Constraints:        []RawConstraint{{Name: "Fin"}},
		ImplTraits:         []string{ir.TraitEquality, "banana"},
		ImplTraitsDeclared: true,
	})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnknownTrait, errs[0].Code)
	assert.Contains(t, errs[0].Message, "banana")
}

func TestResolveCollectsAllErrors(t *testing.T) {
	_, errs := Resolve(&RawConfig{
		Package: "Bad Package",
		Constraints: []RawConstraint{
			{Name: "lower"},
			{Name: "Dup"},
			{Name: "Dup"},
			{Name: "Inverted", Lower: ir.Bound(1), Upper: ir.Bound(0)},
		},
	})
	require.GreaterOrEqual(t, len(errs), 4)

	codes := make(map[string]bool)
	for _, e := range errs {
		codes[e.Code] = true
	}
	assert.True(t, codes[ErrInvalidPackage])
	assert.True(t, codes[ErrInvalidName])
	assert.True(t, codes[ErrDuplicateName])
	assert.True(t, codes[ErrInvalidBound])
}

func TestResolveNoConstraints(t *testing.T) {
	_, errs := Resolve(&RawConfig{})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrNoConstraints, errs[0].Code)
}

func TestResolveDefaultPackageName(t *testing.T) {
	cfg, errs := Resolve(&RawConfig{Constraints: []RawConstraint{{Name: "Fin"}}})
	require.Empty(t, errs)
	assert.Equal(t, DefaultPackage, cfg.Package)
}
