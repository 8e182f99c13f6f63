// Package kernel provides the core domain primitives shared by all aggregates
// in the dispatch system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Point: a value object for geographic coordinates with great-circle distance
//
// These primitives are immutable and thread-safe. They enforce their invariants
// at construction time so that aggregates built on top of them never observe
// malformed identifiers or coordinates.
package kernel
