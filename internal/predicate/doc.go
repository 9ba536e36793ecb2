// Package predicate builds the runtime validation predicate for a
// constraint: an ordered clause list combining finiteness, bound
// comparisons, and zero exclusion.
//
// The same expression serves three consumers. Render emits it as Go
// source for the generated constructors, Eval applies it to a value
// during verification, and Classify maps an inadmissible value to the
// taxonomy kind the generated error sentinels mirror.
package predicate
