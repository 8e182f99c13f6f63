package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand records the offered courier taking the job.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command for a courier accepting an offer.
func NewAcceptOfferCommand(orderID, courierID kernel.UUID) (AcceptOfferCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AcceptOfferCommand{}, err
	}

	return AcceptOfferCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c AcceptOfferCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the accepting courier.
func (c AcceptOfferCommand) CourierID() kernel.UUID { return c.courierID }
