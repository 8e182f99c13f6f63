package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// defaultRejectReason is recorded when a courier rejects an offer without
// giving a reason.
const defaultRejectReason = "not specified"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrInvalidTransition anchors errors.Is checks for refused status
	// transitions. The concrete error is always an *InvalidTransitionError
	// carrying the current status and the allowed-next set.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrNotAuthorizedForOrder is returned when a courier acts on an order
	// assigned to somebody else (or to nobody).
	ErrNotAuthorizedForOrder = errors.New("courier is not assigned to this order")

	// ErrOrderTerminal is returned when any mutation is attempted on a
	// DELIVERED or CANCELLED order.
	ErrOrderTerminal = errors.New("order is in a terminal status")

	// ErrPreconditionFailed anchors errors.Is checks for mutations refused
	// because a required precondition is missing.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrProofOfDeliveryRequired refuses delivery without at least one POD
	// photo. Admin actors may override.
	ErrProofOfDeliveryRequired = fmt.Errorf("%w: at least one proof-of-delivery photo is required", ErrPreconditionFailed)

	// ErrCODNotDelivered refuses COD settlement before the order is delivered.
	ErrCODNotDelivered = fmt.Errorf("%w: COD can only be settled after delivery", ErrPreconditionFailed)

	// ErrNoTalangan refuses talangan bookkeeping on orders without advance funds.
	ErrNoTalangan = fmt.Errorf("%w: order has no talangan amount", ErrPreconditionFailed)
)

// InvalidTransitionError reports a refused status transition together with
// everything the caller needs to render a helpful message: the status the
// order is actually in and the complete allowed-next set for the acting actor.
type InvalidTransitionError struct {
	From      Status
	Requested Status
	Allowed   []Status
}

func (e *InvalidTransitionError) Error() string {
	names := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		names = append(names, s.String())
	}
	return fmt.Sprintf("status transition is not allowed: %s -> %s (allowed: %s)",
		e.From, e.Requested, strings.Join(names, ", "))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Order is the aggregate root for a delivery request, from intake to terminal
// resolution. It owns the status state machine, the courier assignment, the
// financials (pricing, COD, talangan), the proof-of-delivery photos, and the
// audit trail.
//
// Order follows these invariants:
//   - exactly one current status from the closed enumeration
//   - at most one assigned courier; NEW orders have none
//   - every courier-initiated mutation passes an ownership check first
//   - podPhotos and audit grow monotonically, never shrink or reorder
//   - DELIVERED and CANCELLED orders refuse all further mutation
//
// The version field carries the optimistic-concurrency token the persistence
// layer compares on save; the aggregate itself never changes it.
type Order struct {
	id        kernel.UUID
	version   int
	status    Status
	courierID *kernel.UUID

	sender  Sender
	pickup  kernel.Point
	dropoff kernel.Point

	pricing            Pricing
	codAmount          int
	codCollected       bool
	codSettled         bool
	talanganAmount     int
	talanganReimbursed bool

	podPhotos []PODPhoto
	audit     []AuditEvent

	guard guard.ConstructorGuard
}

// NewOrder creates an order in status NEW with an ORDER_CREATED audit entry.
// codAmount and talanganAmount are optional (zero means not applicable).
//
// Example:
//
//	sender, _ := order.NewSender("Budi", "+62811111", "Jl. Melati 5")
//	o, err := order.NewOrder(kernel.NewUUID(), sender, pickup, dropoff, pricing, 150000, 0)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	sender Sender,
	pickup, dropoff kernel.Point,
	pricing Pricing,
	codAmount, talanganAmount int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if sender.Name() == "" {
		return nil, errs.NewValueIsRequiredError("sender")
	}
	if codAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("codAmount", fmt.Errorf("%d is negative", codAmount))
	}
	if talanganAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("talanganAmount", fmt.Errorf("%d is negative", talanganAmount))
	}

	o := &Order{
		id:             id,
		status:         StatusNew,
		sender:         sender,
		pickup:         pickup,
		dropoff:        dropoff,
		pricing:        pricing,
		codAmount:      codAmount,
		talanganAmount: talanganAmount,
		guard:          guard.NewConstructorGuard(),
	}

	o.appendEvent(EventOrderCreated, NewSystemActor("intake"), map[string]string{
		"total": fmt.Sprintf("%d", pricing.Total()),
	})

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, re-validating the
// invariants the database cannot express: at-rest status legality, the
// status/assignment consistency rule, and COD settlement only after delivery.
func RestoreOrder(
	id kernel.UUID,
	version int,
	status Status,
	courierID *kernel.UUID,
	sender Sender,
	pickup, dropoff kernel.Point,
	pricing Pricing,
	codAmount int, codCollected, codSettled bool,
	talanganAmount int, talanganReimbursed bool,
	podPhotos []PODPhoto,
	audit []AuditEvent,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("order", fmt.Errorf("%d is negative", version))
	}
	if codSettled && status != StatusDelivered {
		return nil, errs.NewValueIsInvalidErrorWithCause("codSettled",
			fmt.Errorf("COD settled on %s order", status))
	}

	return &Order{
		id:                 id,
		version:            version,
		status:             status,
		courierID:          courierID,
		sender:             sender,
		pickup:             pickup,
		dropoff:            dropoff,
		pricing:            pricing,
		codAmount:          codAmount,
		codCollected:       codCollected,
		codSettled:         codSettled,
		talanganAmount:     talanganAmount,
		talanganReimbursed: talanganReimbursed,
		podPhotos:          append([]PODPhoto(nil), podPhotos...),
		audit:              append([]AuditEvent(nil), audit...),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Version returns the optimistic-concurrency token loaded from storage.
func (o *Order) Version() int { return o.version }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Courier returns the assigned courier's ID, or nil when unassigned.
func (o *Order) Courier() *kernel.UUID { return o.courierID }

// Sender returns the customer contact details.
func (o *Order) Sender() Sender { return o.sender }

// Pickup returns the pickup coordinates.
func (o *Order) Pickup() kernel.Point { return o.pickup }

// Dropoff returns the dropoff coordinates.
func (o *Order) Dropoff() kernel.Point { return o.dropoff }

// Pricing returns the fee breakdown computed at intake.
func (o *Order) Pricing() Pricing { return o.pricing }

// CODAmount returns the cash-on-delivery amount (zero when not COD).
func (o *Order) CODAmount() int { return o.codAmount }

// CODCollected reports whether the courier collected the COD cash.
func (o *Order) CODCollected() bool { return o.codCollected }

// CODSettled reports whether the collected cash was handed over to the admin.
func (o *Order) CODSettled() bool { return o.codSettled }

// TalanganAmount returns the advance funds the courier fronts (zero when none).
func (o *Order) TalanganAmount() int { return o.talanganAmount }

// TalanganReimbursed reports whether the advance funds were paid back.
func (o *Order) TalanganReimbursed() bool { return o.talanganReimbursed }

// PODPhotos returns a copy of the proof-of-delivery photo sequence.
func (o *Order) PODPhotos() []PODPhoto {
	return append([]PODPhoto(nil), o.podPhotos...)
}

// Audit returns a copy of the audit trail in append order.
func (o *Order) Audit() []AuditEvent {
	return append([]AuditEvent(nil), o.audit...)
}

// IsTerminal reports whether the order reached DELIVERED or CANCELLED.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// Assign binds a courier to the order, replacing any previous binding. Only
// admins may assign. asOffer chooses between the OFFERED handshake (courier
// must accept) and direct ASSIGNED binding. Allowed on NEW orders and on
// still-unaccepted OFFERED orders; once accepted, the binding is fixed.
func (o *Order) Assign(courierID kernel.UUID, asOffer bool, actor Actor) error {
	if !actor.IsAdmin() {
		return ErrNotAuthorizedForOrder
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderTerminal
	}
	if err := o.status.ValidateAssignable(); err != nil {
		return err
	}

	oldCourier := ""
	if o.courierID != nil {
		oldCourier = o.courierID.String()
	}

	newStatus := StatusAssigned
	if asOffer {
		newStatus = StatusOffered
	}

	previous := o.status
	o.courierID = &courierID
	o.status = newStatus

	o.appendEvent(EventOrderAssigned, actor, map[string]string{
		"previousStatus": previous.String(),
		"status":         newStatus.String(),
		"oldCourierId":   oldCourier,
		"newCourierId":   courierID.String(),
	})

	return nil
}

// Accept records the offered courier taking the job (OFFERED -> ACCEPTED).
func (o *Order) Accept(courierID kernel.UUID) error {
	if err := o.checkOwnership(courierID); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderTerminal
	}
	if !o.status.canMoveTo(StatusAccepted, ActorCourier) {
		return o.invalidTransition(StatusAccepted, ActorCourier)
	}

	previous := o.status
	o.status = StatusAccepted

	o.appendEvent(EventOrderAccepted, NewCourierActor(courierID.String()), map[string]string{
		"previousStatus": previous.String(),
	})

	return nil
}

// Reject turns down an offer. Legal only while the order is OFFERED to this
// courier. The order returns to NEW with the assignment cleared in the same
// step; REJECTED is never an at-rest state. An empty reason is recorded as
// "not specified".
func (o *Order) Reject(courierID kernel.UUID, reason string) error {
	if err := o.checkOwnership(courierID); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderTerminal
	}
	if o.status != StatusOffered {
		return o.invalidTransition(StatusRejected, ActorCourier)
	}

	if reason == "" {
		reason = defaultRejectReason
	}

	o.status = StatusNew
	o.courierID = nil

	o.appendEvent(EventOrderRejected, NewCourierActor(courierID.String()), map[string]string{
		"reason":    reason,
		"courierId": courierID.String(),
	})

	return nil
}

// AdvanceTo applies a requested status transition for the given actor,
// enforcing the per-actor transition table. Couriers must own the order.
// Requesting REJECTED routes through the reject semantics with the default
// reason; CANCELLED (admin) through the cancel semantics. Transitioning into
// DELIVERED without a POD photo fails with ErrProofOfDeliveryRequired unless
// the actor is an admin.
func (o *Order) AdvanceTo(requested Status, actor Actor) error {
	if actor.Type() == ActorCourier {
		courierID, err := kernel.UUIDFromString(actor.ID())
		if err != nil {
			return err
		}
		if err := o.checkOwnership(courierID); err != nil {
			return err
		}
	}
	if o.status.IsTerminal() {
		return ErrOrderTerminal
	}
	if !o.status.canMoveTo(requested, actor.Type()) {
		return o.invalidTransition(requested, actor.Type())
	}

	switch requested {
	case StatusRejected:
		courierID, err := kernel.UUIDFromString(actor.ID())
		if err != nil {
			return err
		}
		return o.Reject(courierID, "")
	case StatusCancelled:
		return o.Cancel(actor)
	case StatusAccepted:
		courierID, err := kernel.UUIDFromString(actor.ID())
		if err != nil {
			return err
		}
		return o.Accept(courierID)
	case StatusDelivered:
		if len(o.podPhotos) == 0 && !actor.IsAdmin() {
			return ErrProofOfDeliveryRequired
		}
	}

	previous := o.status
	o.status = requested

	o.appendEvent(StatusEventKind(requested), actor, map[string]string{
		"previousStatus": previous.String(),
	})

	return nil
}

// UploadPODAndDeliver appends a proof-of-delivery photo and completes the
// order in one aggregate mutation (NEED_POD -> DELIVERED), so untrusted
// callers never need a separate photo-then-status sequence. Emits POD_UPLOADED
// followed by STATUS_DELIVERED.
func (o *Order) UploadPODAndDeliver(courierID kernel.UUID, photoURL string) error {
	if err := o.checkOwnership(courierID); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderTerminal
	}
	if o.status != StatusNeedPOD {
		return o.invalidTransition(StatusDelivered, ActorCourier)
	}

	photo, err := NewPODPhoto(photoURL, courierID.String(), time.Now())
	if err != nil {
		return err
	}

	actor := NewCourierActor(courierID.String())
	o.podPhotos = append(o.podPhotos, photo)
	o.appendEvent(EventPODUploaded, actor, map[string]string{
		"url": photo.URL(),
	})

	previous := o.status
	o.status = StatusDelivered
	o.appendEvent(StatusEventKind(StatusDelivered), actor, map[string]string{
		"previousStatus": previous.String(),
	})

	return nil
}

// Cancel forces the order into CANCELLED. Admin only; any non-terminal status.
func (o *Order) Cancel(actor Actor) error {
	if !actor.IsAdmin() {
		return ErrNotAuthorizedForOrder
	}
	if o.status.IsTerminal() {
		return ErrOrderTerminal
	}

	previous := o.status
	o.status = StatusCancelled

	o.appendEvent(EventOrderCancelled, actor, map[string]string{
		"previousStatus": previous.String(),
	})

	return nil
}

// ReportIssue appends an ISSUE_REPORTED audit event without touching the
// status. Couriers may report on their own orders at any point, including
// after delivery (damaged goods discovered late, failed handover, and so on).
func (o *Order) ReportIssue(courierID kernel.UUID, issueType, description string) error {
	if err := o.checkOwnership(courierID); err != nil {
		return err
	}
	if issueType == "" {
		return errs.NewValueIsRequiredError("issueType")
	}

	o.appendEvent(EventIssueReported, NewCourierActor(courierID.String()), map[string]string{
		"type":        issueType,
		"description": description,
	})

	return nil
}

// MarkCODCollected records that the courier collected the cash on delivery.
func (o *Order) MarkCODCollected(courierID kernel.UUID) error {
	if err := o.checkOwnership(courierID); err != nil {
		return err
	}
	if o.codAmount <= 0 {
		return fmt.Errorf("%w: order has no COD amount", ErrPreconditionFailed)
	}

	o.codCollected = true
	o.appendEvent(EventCODCollected, NewCourierActor(courierID.String()), map[string]string{
		"amount": fmt.Sprintf("%d", o.codAmount),
	})

	return nil
}

// SettleCOD records the admin receiving the collected cash. Only legal once
// the order is DELIVERED.
func (o *Order) SettleCOD(actor Actor) error {
	if !actor.IsAdmin() {
		return ErrNotAuthorizedForOrder
	}
	if o.status != StatusDelivered {
		return ErrCODNotDelivered
	}
	if o.codAmount <= 0 {
		return fmt.Errorf("%w: order has no COD amount", ErrPreconditionFailed)
	}

	o.codSettled = true
	o.appendEvent(EventCODSettled, actor, map[string]string{
		"amount": fmt.Sprintf("%d", o.codAmount),
	})

	return nil
}

// ConfirmTalanganReimbursed records the courier's advance funds being paid
// back. Admin-only bookkeeping; does not touch the status.
func (o *Order) ConfirmTalanganReimbursed(actor Actor) error {
	if !actor.IsAdmin() {
		return ErrNotAuthorizedForOrder
	}
	if o.talanganAmount <= 0 {
		return ErrNoTalangan
	}

	o.talanganReimbursed = true
	o.appendEvent(EventTalanganReimbursed, actor, map[string]string{
		"amount": fmt.Sprintf("%d", o.talanganAmount),
	})

	return nil
}

// checkOwnership is the security gate for every courier-initiated mutation:
// the requesting courier must be the one currently assigned.
func (o *Order) checkOwnership(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrNotAuthorizedForOrder
	}
	return nil
}

// invalidTransition builds the error carrying current status and allowed set.
func (o *Order) invalidTransition(requested Status, actorType ActorType) error {
	return &InvalidTransitionError{
		From:      o.status,
		Requested: requested,
		Allowed:   o.status.nextFor(actorType),
	}
}

// appendEvent appends an audit event stamped now. Events share the mutation
// that produced them, so trail order always matches mutation order.
func (o *Order) appendEvent(kind string, actor Actor, meta map[string]string) {
	o.audit = append(o.audit, NewAuditEvent(kind, time.Now(), actor, meta))
}
