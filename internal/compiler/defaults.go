package compiler

import (
	"fmt"

	"github.com/strictnum/floatgen/internal/ir"
)

// DefaultPackage is the package name used when the configuration does
// not declare one.
const DefaultPackage = "strictfloat"

// DefaultRaw returns the built-in constraint catalogue: nine families
// covering the finite reals, the two half-lines with and without zero,
// the unit intervals, and the symmetric unit interval. Signs and
// negation pairings resolve from the bounds alone.
func DefaultRaw() *RawConfig {
	return &RawConfig{
		Package: DefaultPackage,
		Constraints: []RawConstraint{
			{
				Name: "Fin",
				Doc:  "a finite value: NaN and infinities are rejected",
			},
			{
				Name:  "Positive",
				Lower: ir.Bound(0),
				Doc:   "a finite value greater than or equal to zero",
			},
			{
				Name:  "Negative",
				Upper: ir.Bound(0),
				Doc:   "a finite value less than or equal to zero",
			},
			{
				Name:         "NonZero",
				ExcludesZero: true,
				Doc:          "a finite non-zero value",
			},
			{
				Name:  "Normalized",
				Lower: ir.Bound(0),
				Upper: ir.Bound(1),
				Doc:   "a finite value in [0, 1]",
			},
			{
				Name:  "NegativeNormalized",
				Lower: ir.Bound(-1),
				Upper: ir.Bound(0),
				Doc:   "a finite value in [-1, 0]",
			},
			{
				Name:         "NonZeroPositive",
				Lower:        ir.Bound(0),
				ExcludesZero: true,
				Doc:          "a finite value strictly greater than zero",
			},
			{
				Name:         "NonZeroNegative",
				Upper:        ir.Bound(0),
				ExcludesZero: true,
				Doc:          "a finite value strictly less than zero",
			},
			{
				Name:  "Symmetric",
				Lower: ir.Bound(-1),
				Upper: ir.Bound(1),
				Doc:   "a finite value in [-1, 1]",
			},
		},
	}
}

// DefaultConfig returns the resolved built-in configuration: every
// catalogue constraint as a family at both widths, all trait emissions
// enabled, option types and Must constructors on.
func DefaultConfig() *ir.Config {
	cfg, errs := Resolve(DefaultRaw())
	if len(errs) > 0 {
		panic(fmt.Sprintf("compiler: default configuration invalid: %v", errs[0]))
	}
	return cfg
}
