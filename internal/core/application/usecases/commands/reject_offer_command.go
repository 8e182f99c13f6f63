package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRejectOfferCommandIsNotConstructed = errors.New(
	"RejectOfferCommand must be created via NewRejectOfferCommand constructor",
)

// RejectOfferCommand turns down an offered order, returning it to the
// assignable pool. The reason is free text ("tidak bisa", "jauh", ...) and
// optional.
type RejectOfferCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectOfferCommand creates a command for a courier rejecting an offer.
func NewRejectOfferCommand(orderID, courierID kernel.UUID, reason string) (RejectOfferCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return RejectOfferCommand{}, err
	}

	return RejectOfferCommand{
		orderID:   orderID,
		courierID: courierID,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOfferCommand) Validate() error {
	return c.guard.Validate(ErrRejectOfferCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c RejectOfferCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the rejecting courier.
func (c RejectOfferCommand) CourierID() kernel.UUID { return c.courierID }

// Reason returns the free-text rejection reason, possibly empty.
func (c RejectOfferCommand) Reason() string { return c.reason }
