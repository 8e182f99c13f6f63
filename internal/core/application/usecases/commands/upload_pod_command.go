package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUploadPODCommandIsNotConstructed = errors.New(
	"UploadPODCommand must be created via NewUploadPODCommand constructor",
)

// UploadPODCommand attaches a proof-of-delivery photo and completes the
// order in the same step. The photo itself is already in object storage;
// only its reference travels here.
type UploadPODCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	photoURL  string

	guard guard.ConstructorGuard
}

// NewUploadPODCommand creates a command completing a delivery with its photo.
func NewUploadPODCommand(orderID, courierID kernel.UUID, photoURL string) (UploadPODCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return UploadPODCommand{}, err
	}
	if photoURL == "" {
		return UploadPODCommand{}, errs.NewValueIsRequiredError("photoUrl")
	}

	return UploadPODCommand{
		orderID:   orderID,
		courierID: courierID,
		photoURL:  photoURL,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadPODCommand) Validate() error {
	return c.guard.Validate(ErrUploadPODCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c UploadPODCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the delivering courier.
func (c UploadPODCommand) CourierID() kernel.UUID { return c.courierID }

// PhotoURL returns the stored photo reference.
func (c UploadPODCommand) PhotoURL() string { return c.photoURL }
