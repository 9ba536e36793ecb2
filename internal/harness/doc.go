// Package harness runs YAML conformance scenarios against the
// inference kernel. A scenario lists checks (construction, arithmetic,
// unary operations, conversions, parsing, constant admissibility) that
// the runner evaluates with the predicate evaluator and plain IEEE
// float64 arithmetic, independently of any generated code. Results can
// be compared against golden files for regression coverage.
package harness
