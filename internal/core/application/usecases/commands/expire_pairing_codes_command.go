package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrExpirePairingCodesCommandIsNotConstructed = errors.New(
	"ExpirePairingCodesCommand must be created via NewExpirePairingCodesCommand constructor",
)

// ExpirePairingCodesCommand requests a sweep of outstanding pairing codes,
// clearing every one past its expiry.
type ExpirePairingCodesCommand struct {
	guard guard.ConstructorGuard
}

// NewExpirePairingCodesCommand creates a pairing code sweep command.
func NewExpirePairingCodesCommand() ExpirePairingCodesCommand {
	return ExpirePairingCodesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ExpirePairingCodesCommand) Validate() error {
	return c.guard.Validate(ErrExpirePairingCodesCommandIsNotConstructed)
}
