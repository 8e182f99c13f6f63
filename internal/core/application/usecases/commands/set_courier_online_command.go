package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetCourierOnlineCommandIsNotConstructed = errors.New(
	"SetCourierOnlineCommand must be created via NewSetCourierOnlineCommand constructor",
)

// SetCourierOnlineCommand toggles a courier's self-reported availability.
type SetCourierOnlineCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	online    bool

	guard guard.ConstructorGuard
}

// NewSetCourierOnlineCommand creates a command toggling availability.
func NewSetCourierOnlineCommand(courierID kernel.UUID, online bool) (SetCourierOnlineCommand, error) {
	if err := courierID.Validate(); err != nil {
		return SetCourierOnlineCommand{}, err
	}

	return SetCourierOnlineCommand{
		courierID: courierID,
		online:    online,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierOnlineCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierOnlineCommandIsNotConstructed)
}

// CourierID returns the courier toggling availability.
func (c SetCourierOnlineCommand) CourierID() kernel.UUID { return c.courierID }

// Online returns the requested availability.
func (c SetCourierOnlineCommand) Online() bool { return c.online }
