package infer

import "github.com/strictnum/floatgen/internal/ir"

// SameWidth classifies a conversion between two constraints at one
// width: infallible when every admissible source value is admissible in
// the target, fallible (runtime constraint check) otherwise.
func SameWidth(source, target *ir.Constraint) ir.ConversionVerdict {
	if subsetOf(source, target) {
		return ir.ConversionInfallible
	}
	return ir.ConversionFallible
}

// CrossWidth classifies a width change within one constraint. Widening
// to float64 preserves the value exactly; narrowing to float32 can
// overflow or lose precision and must re-validate.
func CrossWidth(from, to ir.Width) ir.ConversionVerdict {
	if from == ir.Width32 && to == ir.Width64 {
		return ir.ConversionInfallible
	}
	return ir.ConversionFallible
}
