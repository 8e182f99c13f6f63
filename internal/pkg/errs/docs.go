// Package errs provides the standardized error types used across the dispatch
// service: object-not-found, invalid/required/out-of-range values, and stale
// aggregate versions from optimistic concurrency checks.
//
// Each error type follows the same pattern: a sentinel error variable anchoring
// errors.Is classification, a struct carrying the offending parameter and an
// optional cause, constructors with and without cause, and Error/Unwrap methods.
// Domain packages define their own sentinels (invalid transition, not authorized,
// order terminal) and reuse these types for parameter validation.
package errs
