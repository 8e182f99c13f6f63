package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSettleCODCommandIsNotConstructed = errors.New(
	"SettleCODCommand must be created via NewSettleCODCommand constructor",
)

// SettleCODCommand records the admin receiving collected COD cash from the
// courier. Only legal on delivered orders.
type SettleCODCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	adminID string

	guard guard.ConstructorGuard
}

// NewSettleCODCommand creates a command settling an order's COD cash.
func NewSettleCODCommand(orderID kernel.UUID, adminID string) (SettleCODCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SettleCODCommand{}, err
	}

	return SettleCODCommand{
		orderID: orderID,
		adminID: adminID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleCODCommand) Validate() error {
	return c.guard.Validate(ErrSettleCODCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c SettleCODCommand) OrderID() kernel.UUID { return c.orderID }

// AdminID returns the acting admin's identifier.
func (c SettleCODCommand) AdminID() string { return c.adminID }
