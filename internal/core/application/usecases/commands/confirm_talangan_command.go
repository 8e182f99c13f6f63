package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrConfirmTalanganCommandIsNotConstructed = errors.New(
	"ConfirmTalanganCommand must be created via NewConfirmTalanganCommand constructor",
)

// ConfirmTalanganCommand records that the courier's fronted purchase money
// (talangan) was paid back.
type ConfirmTalanganCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	adminID string

	guard guard.ConstructorGuard
}

// NewConfirmTalanganCommand creates a command confirming talangan reimbursement.
func NewConfirmTalanganCommand(orderID kernel.UUID, adminID string) (ConfirmTalanganCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmTalanganCommand{}, err
	}

	return ConfirmTalanganCommand{
		orderID: orderID,
		adminID: adminID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmTalanganCommand) Validate() error {
	return c.guard.Validate(ErrConfirmTalanganCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c ConfirmTalanganCommand) OrderID() kernel.UUID { return c.orderID }

// AdminID returns the acting admin's identifier.
func (c ConfirmTalanganCommand) AdminID() string { return c.adminID }
