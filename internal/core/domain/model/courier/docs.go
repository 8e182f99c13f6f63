// Package courier provides the Courier aggregate: delivery agent identity,
// availability flags, and the one-time pairing flow that links a courier to
// their Telegram bot account.
//
// A courier may hold any number of active orders at a time; the one-courier-
// per-order constraint lives on the Order aggregate. Pairing codes are single
// use and expire five minutes after generation.
package courier
