package compiler

import (
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/ir"
)

func TestCompileConfigBasic(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		"package": "floats"

		constraints: [
			{name: "Finite", doc: "any finite value"},
			{name: "Positive", lower: 0, sign: "positive"},
			{name: "Negative", upper: 0, negate_to: "Positive"},
			{name: "NonZero", excludes_zero: true},
		]

		constraint_types: [
			{name: "Fin", widths: [32, 64], constraints: ["Finite"]},
			{name: "NonZeroPositive", widths: [64], constraints: ["Positive", "NonZero"]},
		]

		type_aliases: [
			{canonical: "Fin", alias: "Real"},
		]

		features: {
			impl_traits: ["equality", "add"]
			generate_option_types: false
		}
	`)

	require.NoError(t, v.Err())
	raw, err := CompileConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "floats", raw.Package)
	require.Len(t, raw.Constraints, 4)
	assert.Equal(t, "Finite", raw.Constraints[0].Name)
	assert.Equal(t, "any finite value", raw.Constraints[0].Doc)
	assert.Nil(t, raw.Constraints[0].Lower)
	require.NotNil(t, raw.Constraints[1].Lower)
	assert.Equal(t, 0.0, *raw.Constraints[1].Lower)
	assert.Equal(t, "positive", raw.Constraints[1].Sign)
	assert.Equal(t, "Positive", raw.Constraints[2].NegateTo)
	assert.True(t, raw.Constraints[3].ExcludesZero)

	require.Len(t, raw.Types, 2)
	assert.Equal(t, "Fin", raw.Types[0].Name)
	assert.Equal(t, []ir.Width{ir.Width32, ir.Width64}, raw.Types[0].Widths)
	assert.Equal(t, []string{"Finite"}, raw.Types[0].Constraints)
	assert.Equal(t, []string{"Positive", "NonZero"}, raw.Types[1].Constraints)

	require.Len(t, raw.Aliases, 1)
	assert.Equal(t, ir.AliasDef{Canonical: "Fin", Alias: "Real"}, raw.Aliases[0])

	assert.True(t, raw.ImplTraitsDeclared)
	assert.Equal(t, []string{"equality", "add"}, raw.ImplTraits)
	require.NotNil(t, raw.GenerateOptionTypes)
	assert.False(t, *raw.GenerateOptionTypes)
	assert.Nil(t, raw.GenerateNewConst)
}

func TestCompileConfigMissingConstraints(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`"package": "floats"`)

	require.NoError(t, v.Err())
	_, err := CompileConfig(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraints")
	assert.Contains(t, err.Error(), "missing")
}

func TestCompileConfigConstraintMissingName(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		constraints: [
			{lower: 0},
		]
	`)

	require.NoError(t, v.Err())
	_, err := CompileConfig(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "missing")
}

func TestCompileConfigConstraintsNotAList(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`constraints: "NonZero"`)

	require.NoError(t, v.Err())
	_, err := CompileConfig(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a list")
}

func TestCompileConfigBoundNotANumber(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		constraints: [
			{name: "Bad", lower: "zero"},
		]
	`)

	require.NoError(t, v.Err())
	_, err := CompileConfig(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestCompileConfigWidthsMustBeIntegers(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		constraints: [{name: "Fin"}]
		constraint_types: [
			{name: "Fin", widths: ["64"]},
		]
	`)

	require.NoError(t, v.Err())
	_, err := CompileConfig(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "integers")
}

func TestCompileConfigTypeDefMissingWidths(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		constraints: [{name: "Fin"}]
		constraint_types: [
			{name: "Fin"},
		]
	`)

	require.NoError(t, v.Err())
	_, err := CompileConfig(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "widths")
}

func TestCompileConfigAliasMissingFields(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		constraints: [{name: "Fin"}]
		type_aliases: [
			{alias: "Real"},
		]
	`)

	require.NoError(t, v.Err())
	_, err := CompileConfig(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "canonical")
}

func TestCompileConfigFeaturesOmitted(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		constraints: [{name: "Fin"}]
	`)

	require.NoError(t, v.Err())
	raw, err := CompileConfig(v)
	require.NoError(t, err)

	assert.False(t, raw.ImplTraitsDeclared)
	assert.Nil(t, raw.GenerateOptionTypes)
	assert.Nil(t, raw.GenerateNewConst)
	assert.Empty(t, raw.Package)
}

func TestCompileErrorFormatsPosition(t *testing.T) {
	err := &CompileError{Field: "constraints", Message: "must be a list"}
	assert.Equal(t, "constraints: must be a list", err.Error())
}
