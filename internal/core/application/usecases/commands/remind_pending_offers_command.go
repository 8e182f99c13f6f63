package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRemindPendingOffersCommandIsNotConstructed = errors.New(
	"RemindPendingOffersCommand must be created via NewRemindPendingOffersCommand constructor",
)

// RemindPendingOffersCommand requests a reminder for every offer a courier
// has left unanswered longer than the given age.
type RemindPendingOffersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindPendingOffersCommand creates a reminder command for offers pending
// longer than olderThan.
func NewRemindPendingOffersCommand(olderThan time.Duration) (RemindPendingOffersCommand, error) {
	if olderThan <= 0 {
		return RemindPendingOffersCommand{}, errs.NewValueIsInvalidError("olderThan")
	}

	return RemindPendingOffersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindPendingOffersCommand) Validate() error {
	return c.guard.Validate(ErrRemindPendingOffersCommandIsNotConstructed)
}

// OlderThan returns the minimum age of offers to remind about.
func (c RemindPendingOffersCommand) OlderThan() time.Duration { return c.olderThan }
