package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGeneratePairingCodeCommandIsNotConstructed = errors.New(
	"GeneratePairingCodeCommand must be created via NewGeneratePairingCodeCommand constructor",
)

// GeneratePairingCodeCommand issues a one-time code the admin hands to a
// courier, who types it into the Telegram bot to link their chat.
type GeneratePairingCodeCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGeneratePairingCodeCommand creates a command issuing a pairing code.
func NewGeneratePairingCodeCommand(courierID kernel.UUID) (GeneratePairingCodeCommand, error) {
	if err := courierID.Validate(); err != nil {
		return GeneratePairingCodeCommand{}, err
	}

	return GeneratePairingCodeCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GeneratePairingCodeCommand) Validate() error {
	return c.guard.Validate(ErrGeneratePairingCodeCommandIsNotConstructed)
}

// CourierID returns the courier to pair.
func (c GeneratePairingCodeCommand) CourierID() kernel.UUID { return c.courierID }
