package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictnum/floatgen/internal/ir"
)

func TestValidateUnsupportedType(t *testing.T) {
	errs := Validate(42)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnsupportedConfigType, errs[0].Code)
	assert.Contains(t, errs[0].Message, "int")
}

func TestValidateRawConfigByValue(t *testing.T) {
	errs := Validate(RawConfig{Constraints: []RawConstraint{{Name: "Fin"}}})
	assert.Empty(t, errs)
}

func TestValidateResolvedConfigClean(t *testing.T) {
	cfg := &ir.Config{
		Package: "floats",
		Constraints: []ir.Constraint{
			{Name: "Fin", Sign: ir.SignAny, NegateTo: "Fin"},
		},
		Types: []ir.TypeDef{
			{Name: "Fin", Widths: []ir.Width{ir.Width64}, Constraints: []string{"Fin"}},
		},
		Features: ir.Features{ImplTraits: ir.AllTraits()},
	}
	assert.Empty(t, Validate(cfg))
}

func TestValidateResolvedSignMismatch(t *testing.T) {
	cfg := &ir.Config{
		Package: "floats",
		Constraints: []ir.Constraint{
			{Name: "Unit", Lower: ir.Bound(0), Upper: ir.Bound(1), Sign: ir.SignAny},
		},
	}
	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSignMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Field, "sign")
}

func TestValidateResolvedNegationTargetMissing(t *testing.T) {
	cfg := &ir.Config{
		Package: "floats",
		Constraints: []ir.Constraint{
			{Name: "Pos", Lower: ir.Bound(0), Sign: ir.SignPositive, NegateTo: "Neg"},
		},
	}
	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnknownConstraint, errs[0].Code)
}

func TestValidateResolvedNegationMismatch(t *testing.T) {
	cfg := &ir.Config{
		Package: "floats",
		Constraints: []ir.Constraint{
			{Name: "Pos", Lower: ir.Bound(0), Sign: ir.SignPositive, NegateTo: "Unit"},
			{Name: "Unit", Lower: ir.Bound(0), Upper: ir.Bound(1), Sign: ir.SignPositive},
		},
	}
	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrNegationMismatch, errs[0].Code)
}

func TestValidateResolvedTypeWithoutConstraint(t *testing.T) {
	cfg := &ir.Config{
		Package: "floats",
		Constraints: []ir.Constraint{
			{Name: "Fin", Sign: ir.SignAny},
		},
		Types: []ir.TypeDef{
			{Name: "Ghost", Widths: []ir.Width{ir.Width64}},
		},
	}
	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnknownConstraint, errs[0].Code)
	assert.Contains(t, errs[0].Message, "Ghost")
}

func TestValidateResolvedBadPackage(t *testing.T) {
	cfg := &ir.Config{
		Package: "Strict Float",
		Constraints: []ir.Constraint{
			{Name: "Fin", Sign: ir.SignAny},
		},
	}
	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrInvalidPackage, errs[0].Code)
}

func TestValidationErrorFormat(t *testing.T) {
	withLine := ValidationError{Field: "constraints[0].name", Message: "bad", Code: ErrInvalidName, Line: 3}
	assert.Equal(t, "[E102] line 3: constraints[0].name: bad", withLine.Error())

	plain := ValidationError{Field: "package", Message: "bad", Code: ErrInvalidPackage}
	assert.Equal(t, "[E114] package: bad", plain.Error())
}

func TestValidateTraitDependencies(t *testing.T) {
	tests := []struct {
		name   string
		traits []string
		codes  []string
	}{
		{
			name:   "total ordering without ordering",
			traits: []string{"equality", "total_ordering", "add"},
			codes:  []string{ErrTraitDependency},
		},
		{
			name:   "debug without display",
			traits: []string{"debug"},
			codes:  []string{ErrTraitDependency},
		},
		{
			name:   "both prerequisites missing",
			traits: []string{"total_ordering", "debug"},
			codes:  []string{ErrTraitDependency, ErrTraitDependency},
		},
		{
			name:   "dependencies satisfied",
			traits: []string{"equality", "ordering", "total_ordering", "display", "debug"},
			codes:  nil,
		},
		{
			name:   "unknown trait skips dependency check",
			traits: []string{"bitwise"},
			codes:  []string{ErrUnknownTrait},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &ir.Config{
				Package: "floats",
				Constraints: []ir.Constraint{
					{Name: "Fin", Sign: ir.SignAny, NegateTo: "Fin"},
				},
				Features: ir.Features{ImplTraits: tc.traits},
			}
			errs := Validate(cfg)
			var codes []string
			for _, e := range errs {
				codes = append(codes, e.Code)
			}
			assert.Equal(t, tc.codes, codes)
		})
	}
}

func TestResolveTraitDependencyDiagnostic(t *testing.T) {
	raw := &RawConfig{
		Constraints:        []RawConstraint{{Name: "Fin"}},
		ImplTraits:         []string{"equality", "total_ordering", "add"},
		ImplTraitsDeclared: true,
	}
	_, errs := Resolve(raw)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrTraitDependency, errs[0].Code)
	assert.Contains(t, errs[0].Message, `trait "total_ordering" requires "ordering"`)
	assert.Equal(t, "features.impl_traits[1]", errs[0].Field)
}
