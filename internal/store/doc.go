// Package store persists exported inference tables in SQLite. Each
// export is a run keyed by a time-ordered UUID, written in a single
// transaction, and can be loaded back for inspection or diffing
// against a freshly built table set.
package store
