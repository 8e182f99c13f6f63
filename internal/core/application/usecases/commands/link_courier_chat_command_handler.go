package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/courier"
)

// LinkCourierChatCommandHandler resolves a pairing code to its courier and
// binds the Telegram chat. An unknown code and a known-but-expired code fail
// with different errors so the bot can tell the courier what went wrong.
type LinkCourierChatCommandHandler struct {
	uowFactory CourierUoWFactory
	now        func() time.Time
}

// NewLinkCourierChatCommandHandler creates a handler for chat pairing.
func NewLinkCourierChatCommandHandler(uowFactory CourierUoWFactory) LinkCourierChatCommandHandler {
	return LinkCourierChatCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the pairing command.
func (h LinkCourierChatCommandHandler) Handle(ctx context.Context, cmd LinkCourierChatCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	candidates, err := courierRepo.GetAllWithPairingCode(ctx)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		if candidate.PairingCode() != cmd.Code() {
			continue
		}

		if err = candidate.LinkChat(cmd.Code(), cmd.ChatID(), h.now()); err != nil {
			return err
		}

		if err = courierRepo.Update(ctx, candidate); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}

	return courier.ErrPairingCodeInvalid
}
