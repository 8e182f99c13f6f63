package commands

import (
	"context"
	"time"
)

// GeneratePairingCodeCommandHandler issues pairing codes. Handle returns the
// generated code so the admin can read it off the dashboard.
type GeneratePairingCodeCommandHandler struct {
	uowFactory CourierUoWFactory
	now        func() time.Time
}

// NewGeneratePairingCodeCommandHandler creates a handler for pairing-code issuance.
func NewGeneratePairingCodeCommandHandler(uowFactory CourierUoWFactory) GeneratePairingCodeCommandHandler {
	return GeneratePairingCodeCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle issues a fresh code, replacing any outstanding one.
func (h GeneratePairingCodeCommandHandler) Handle(ctx context.Context, cmd GeneratePairingCodeCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	aggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return "", err
	}

	code, err := aggregate.GeneratePairingCode(h.now())
	if err != nil {
		return "", err
	}

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return code, nil
}
