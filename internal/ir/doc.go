// Package ir provides the constraint model and generation descriptors for
// floatgen.
//
// This package contains type definitions only. All other internal packages
// import ir; ir imports nothing internal. This keeps the model the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Bounds are *float64 with nil meaning unbounded; a stored bound is
//     always finite
//   - All JSON tags use snake_case
//   - Everything is immutable once compiled; descriptors are plain data
package ir
