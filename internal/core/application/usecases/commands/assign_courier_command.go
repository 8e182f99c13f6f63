package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand binds a courier to an order, either as an offer the
// courier must accept or as a direct assignment. Dispatch is a human decision
// here: the admin picks the courier on the dashboard.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	asOffer   bool
	adminID   string

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to bind a courier to an order.
// asOffer selects the offer handshake; adminID identifies the acting admin
// for the audit trail.
func NewAssignCourierCommand(orderID, courierID kernel.UUID, asOffer bool, adminID string) (AssignCourierCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		asOffer:   asOffer,
		adminID:   adminID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c AssignCourierCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the courier being bound.
func (c AssignCourierCommand) CourierID() kernel.UUID { return c.courierID }

// AsOffer reports whether the binding goes through the offer handshake.
func (c AssignCourierCommand) AsOffer() bool { return c.asOffer }

// AdminID returns the acting admin's identifier.
func (c AssignCourierCommand) AdminID() string { return c.adminID }
