package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCollectCODCommandIsNotConstructed = errors.New(
	"CollectCODCommand must be created via NewCollectCODCommand constructor",
)

// CollectCODCommand records that the courier received the cash-on-delivery
// payment from the recipient.
type CollectCODCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCollectCODCommand creates a command marking COD cash as collected.
func NewCollectCODCommand(orderID, courierID kernel.UUID) (CollectCODCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return CollectCODCommand{}, err
	}

	return CollectCODCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CollectCODCommand) Validate() error {
	return c.guard.Validate(ErrCollectCODCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c CollectCODCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the collecting courier.
func (c CollectCODCommand) CourierID() kernel.UUID { return c.courierID }
