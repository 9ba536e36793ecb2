// Package gen turns materialised inference tables into Go source: one
// file per generated wrapper plus the shared error and doc files.
//
// The package splits into per-combination iterators, which resolve the
// names of every emitted declaration by consulting the inference
// tables, and emitters, which transcribe each resolved tuple into
// source text. Iterators never infer; emitters never decide. All
// output is deterministic for a given configuration and passes through
// a goimports run before it is returned.
package gen
