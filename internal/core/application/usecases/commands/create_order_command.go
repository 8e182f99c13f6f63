package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery order.
// Carries the sender contact, both route endpoints, the service options and
// the financial amounts; the fee quote is computed by the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	senderName    string
	senderPhone   string
	senderAddress string

	pickup  kernel.Point
	dropoff kernel.Point

	express        bool
	codAmount      int
	talanganAmount int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// codAmount and talanganAmount are optional; zero means not applicable.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	senderName, senderPhone, senderAddress string,
	pickup, dropoff kernel.Point,
	express bool,
	codAmount, talanganAmount int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		senderPhone:   senderPhone,
		senderAddress: senderAddress,
		pickup:        pickup,
		dropoff:       dropoff,
		express:       express,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSenderName(senderName),
		cmd.setCODAmount(codAmount),
		cmd.setTalanganAmount(talanganAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// SenderName returns the customer's name.
func (c CreateOrderCommand) SenderName() string { return c.senderName }

// SenderPhone returns the customer's contact number.
func (c CreateOrderCommand) SenderPhone() string { return c.senderPhone }

// SenderAddress returns the customer's street address.
func (c CreateOrderCommand) SenderAddress() string { return c.senderAddress }

// Pickup returns the pickup coordinates.
func (c CreateOrderCommand) Pickup() kernel.Point { return c.pickup }

// Dropoff returns the dropoff coordinates.
func (c CreateOrderCommand) Dropoff() kernel.Point { return c.dropoff }

// Express reports whether express handling was requested.
func (c CreateOrderCommand) Express() bool { return c.express }

// CODAmount returns the cash-on-delivery amount.
func (c CreateOrderCommand) CODAmount() int { return c.codAmount }

// TalanganAmount returns the advance-purchase amount.
func (c CreateOrderCommand) TalanganAmount() int { return c.talanganAmount }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSenderName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("senderName")
	}

	c.senderName = name
	return nil
}

func (c *CreateOrderCommand) setCODAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("codAmount")
	}

	c.codAmount = amount
	return nil
}

func (c *CreateOrderCommand) setTalanganAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("talanganAmount")
	}

	c.talanganAmount = amount
	return nil
}
