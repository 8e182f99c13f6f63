package commands

import (
	"context"
)

// SetCourierOnlineCommandHandler persists a courier's availability toggle.
type SetCourierOnlineCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierOnlineCommandHandler creates a handler for availability toggles.
func NewSetCourierOnlineCommandHandler(uowFactory CourierUoWFactory) SetCourierOnlineCommandHandler {
	return SetCourierOnlineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command.
func (h SetCourierOnlineCommandHandler) Handle(ctx context.Context, cmd SetCourierOnlineCommand) error {
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

	aggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	aggregate.SetOnline(cmd.Online())

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
