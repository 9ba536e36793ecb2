// Package infer derives the result types of generated operations: which
// constraint holds an arithmetic result, whether the operation can fail,
// how wrappers convert, and which constants each wrapper admits.
//
// Everything here is pure computation over ir.Constraint values. Build
// materialises every verdict for a configuration into immutable maps;
// generation, export, and verification only look entries up. A missing
// entry means the operation has no sound target type and is not emitted.
package infer
