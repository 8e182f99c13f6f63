// Package order provides the Order aggregate root and the delivery lifecycle
// state machine for the dispatch system.
//
// The package includes:
//   - Order: the aggregate root owning assignment, financials, proof-of-delivery
//     photos, and the audit trail
//   - Status: a closed enumeration with per-actor transition tables and
//     canonicalization of legacy synonym spellings (PICKUP, DIKIRIM, SELESAI)
//   - AuditEvent: immutable, append-only records of every mutation
//
// Key business rules:
//   - Every courier-initiated mutation re-checks that the requesting courier is
//     the one assigned to the order before any other validation runs
//   - REJECTED is transient: rejecting an offer atomically returns the order to
//     NEW and clears the assignment
//   - DELIVERED and CANCELLED are terminal; no mutation ever leaves them
//   - Delivery requires at least one proof-of-delivery photo unless an admin
//     overrides the check
//
// All mutations go through validated methods; a successful mutation appends the
// corresponding audit event in the same step, so status, assignment, and audit
// can never drift apart inside the aggregate.
package order
