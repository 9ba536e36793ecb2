package infer

import (
	"math"

	"github.com/strictnum/floatgen/internal/ir"
)

// Catalogue returns the generated-constant candidates in emission
// order. Expressions are untyped Go constants so that conversion to
// either width rounds once, at that width.
func Catalogue() []ir.Constant {
	return []ir.Constant{
		{Name: "Zero", Value: 0, Expr: "0"},
		{Name: "One", Value: 1, Expr: "1"},
		{Name: "NegOne", Value: -1, Expr: "-1"},
		{Name: "Two", Value: 2, Expr: "2"},
		{Name: "NegTwo", Value: -2, Expr: "-2"},
		{Name: "Half", Value: 0.5, Expr: "0.5"},
		{Name: "NegHalf", Value: -0.5, Expr: "-0.5"},
		{Name: "Pi", Value: math.Pi, Expr: "math.Pi"},
		{Name: "NegPi", Value: -math.Pi, Expr: "-math.Pi"},
		{Name: "E", Value: math.E, Expr: "math.E"},
		{Name: "NegE", Value: -math.E, Expr: "-math.E"},
		{Name: "OneOverPi", Value: 1 / math.Pi, Expr: "1 / math.Pi"},
		{Name: "TwoOverPi", Value: 2 / math.Pi, Expr: "2 / math.Pi"},
		{Name: "PiOver2", Value: math.Pi / 2, Expr: "math.Pi / 2"},
		{Name: "PiOver3", Value: math.Pi / 3, Expr: "math.Pi / 3"},
		{Name: "PiOver4", Value: math.Pi / 4, Expr: "math.Pi / 4"},
		{Name: "PiOver6", Value: math.Pi / 6, Expr: "math.Pi / 6"},
		{Name: "PiOver8", Value: math.Pi / 8, Expr: "math.Pi / 8"},
	}
}

// Admissible reports whether the constant's literal lies in the
// constraint's set. The test runs on the float64 literal; the generated
// float32 rendition converts the same untyped expression.
func Admissible(c *ir.Constraint, k ir.Constant) bool {
	return c.Contains(k.Value)
}
