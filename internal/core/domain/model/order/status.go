package order

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with separate transition tables for courier and admin actors.
//
// Courier flow (canonical spellings):
//
//	OFFERED ──┬──> ACCEPTED ──> OTW_PICKUP ──> PICKED ──> OTW_DROPOFF ──> NEED_POD ──> DELIVERED
//	          └──> REJECTED (transient: returns the order to NEW)
//
//	ASSIGNED ────> OTW_PICKUP (direct assignment skips the accept handshake)
//
// Admins assign NEW orders to OFFERED or ASSIGNED and may force CANCELLED from
// any non-terminal state.
//
// The platform historically used two spellings for three states. Input in
// either spelling is accepted; the canonical representative is used everywhere
// internally:
//
//	PICKUP  -> PICKED
//	DIKIRIM -> OTW_DROPOFF
//	SELESAI -> DELIVERED
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status of every order. New orders have no
	// courier and are waiting for an admin to assign one.
	StatusNew

	// StatusOffered means an admin proposed the order to a specific courier,
	// who may accept or reject it.
	StatusOffered

	// StatusAccepted means the offered courier took the job.
	StatusAccepted

	// StatusAssigned means an admin bound a courier directly, skipping the
	// offer handshake. The courier's next move is OTW_PICKUP.
	StatusAssigned

	// StatusOtwPickup means the courier is on the way to the pickup point.
	StatusOtwPickup

	// StatusPicked means the package has been picked up (legacy: PICKUP).
	StatusPicked

	// StatusOtwDropoff means the courier is en route to the dropoff point
	// (legacy: DIKIRIM).
	StatusOtwDropoff

	// StatusNeedPOD means the courier arrived and must upload proof of
	// delivery before the order can complete.
	StatusNeedPOD

	// StatusDelivered is the successful terminal state (legacy: SELESAI).
	StatusDelivered

	// StatusRejected is transient only. A courier rejecting an offer moves
	// the order back to NEW atomically; REJECTED is never valid at rest.
	StatusRejected

	// StatusCancelled is the terminal state for orders an admin called off.
	StatusCancelled
)

// getStatusStrings returns the canonical spelling for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusNew:        "NEW",
		StatusOffered:    "OFFERED",
		StatusAccepted:   "ACCEPTED",
		StatusAssigned:   "ASSIGNED",
		StatusOtwPickup:  "OTW_PICKUP",
		StatusPicked:     "PICKED",
		StatusOtwDropoff: "OTW_DROPOFF",
		StatusNeedPOD:    "NEED_POD",
		StatusDelivered:  "DELIVERED",
		StatusRejected:   "REJECTED",
		StatusCancelled:  "CANCELLED",
	}
}

// getLegacyStatusStrings maps the old spellings still sent by existing callers
// to their canonical representatives.
func getLegacyStatusStrings() map[string]Status {
	return map[string]Status{
		"PICKUP":  StatusPicked,
		"DIKIRIM": StatusOtwDropoff,
		"SELESAI": StatusDelivered,
	}
}

// StatusFromString normalizes a status spelling (canonical or legacy,
// case-insensitive) into its canonical Status. Unknown spellings are rejected
// at this boundary so raw strings never reach the state machine.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))

	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == normalized {
			return status, nil
		}
	}
	if status, ok := getLegacyStatusStrings()[normalized]; ok {
		return status, nil
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known order status", s))
}

// String returns the canonical spelling of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// LegacyName returns the historical spelling for states that have one and the
// canonical spelling otherwise. External reporting still reads the old names.
func (s Status) LegacyName() string {
	switch s {
	case StatusPicked:
		return "PICKUP"
	case StatusOtwDropoff:
		return "DIKIRIM"
	case StatusDelivered:
		return "SELESAI"
	default:
		return s.String()
	}
}

// Validate checks that the status is legal at rest. StatusUnknown is never
// valid, and StatusRejected is transient (rejection lands on NEW), so both are
// refused here. Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if s == StatusUnknown || s == StatusRejected {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid at-rest status", s.String()))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CourierNext returns the set of statuses a courier may move the order to from
// this status. The returned slice is freshly allocated.
func (s Status) CourierNext() []Status {
	switch s {
	case StatusOffered:
		return []Status{StatusAccepted, StatusRejected}
	case StatusAccepted, StatusAssigned:
		return []Status{StatusOtwPickup}
	case StatusOtwPickup:
		return []Status{StatusPicked}
	case StatusPicked:
		return []Status{StatusOtwDropoff}
	case StatusOtwDropoff:
		return []Status{StatusNeedPOD}
	case StatusNeedPOD:
		return []Status{StatusDelivered}
	default:
		return nil
	}
}

// AdminNext returns the set of statuses an admin may move the order to from
// this status: everything a courier could do, plus forcing CANCELLED on any
// non-terminal order. Assignment to OFFERED/ASSIGNED goes through Order.Assign,
// not through a plain status transition.
func (s Status) AdminNext() []Status {
	if s.IsTerminal() {
		return nil
	}
	return append(s.CourierNext(), StatusCancelled)
}

// nextFor returns the allowed-next set for the given actor type.
func (s Status) nextFor(actorType ActorType) []Status {
	if actorType == ActorAdmin {
		return s.AdminNext()
	}
	return s.CourierNext()
}

// canMoveTo reports whether next is in the allowed set for the actor type.
func (s Status) canMoveTo(next Status, actorType ActorType) bool {
	for _, allowed := range s.nextFor(actorType) {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateAssignable checks that an admin may (re)bind a courier while the
// order is in this status. Binding is allowed on NEW orders and on OFFERED
// orders that have not been accepted yet; once a courier accepted, the
// assignment is fixed until rejection or cancellation.
func (s Status) ValidateAssignable() error {
	if s.IsTerminal() {
		return ErrOrderTerminal
	}
	if s != StatusNew && s != StatusOffered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign a courier", s.String()))
	}
	return nil
}

// ValidateCanHaveCourier validates consistency between status and assignment
// when restoring from persistence. NEW orders must have no courier; everything
// past NEW requires one, except CANCELLED, which may have been cancelled before
// assignment.
func (s Status) ValidateCanHaveCourier(hasCourier bool) error {
	if s == StatusNew && hasCourier {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must not have a courier", s.String()))
	}
	if !hasCourier && s != StatusNew && s != StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must have a courier", s.String()))
	}
	return nil
}
