package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand requests a lifecycle transition for an order. The
// requested status arrives as text from the bot or dashboard and is
// normalized here, so legacy spellings (PICKUP, DIKIRIM, SELESAI) work.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requested order.Status
	actor     order.Actor

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a transition request. requestedStatus is
// the raw spelling from the caller; actor identifies who asks.
func NewAdvanceStatusCommand(orderID kernel.UUID, requestedStatus string, actor order.Actor) (AdvanceStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceStatusCommand{}, err
	}

	requested, err := order.StatusFromString(requestedStatus)
	if err != nil {
		return AdvanceStatusCommand{}, err
	}

	return AdvanceStatusCommand{
		orderID:   orderID,
		requested: requested,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c AdvanceStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Requested returns the normalized target status.
func (c AdvanceStatusCommand) Requested() order.Status { return c.requested }

// Actor returns who requests the transition.
func (c AdvanceStatusCommand) Actor() order.Actor { return c.actor }
