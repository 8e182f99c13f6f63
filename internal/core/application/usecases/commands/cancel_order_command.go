package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand forces an order into CANCELLED. Admin only.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	adminID string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command cancelling an order.
func NewCancelOrderCommand(orderID kernel.UUID, adminID string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		adminID: adminID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// AdminID returns the acting admin's identifier.
func (c CancelOrderCommand) AdminID() string { return c.adminID }
