package commands

import (
	"context"
	"time"
)

// ExpirePairingCodesCommandHandler clears pairing codes past their expiry so
// a forgotten code cannot be redeemed long after it was issued. The sweep job
// runs it periodically.
type ExpirePairingCodesCommandHandler struct {
	uowFactory CourierUoWFactory
	now        func() time.Time
}

// NewExpirePairingCodesCommandHandler creates a handler for the sweep.
func NewExpirePairingCodesCommandHandler(uowFactory CourierUoWFactory) ExpirePairingCodesCommandHandler {
	return ExpirePairingCodesCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle expires stale pairing codes and reports how many were cleared.
func (h ExpirePairingCodesCommandHandler) Handle(ctx context.Context, cmd ExpirePairingCodesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	couriers, err := uow.CourierRepository().GetAllWithPairingCode(ctx)
	if err != nil {
		return 0, err
	}

	now := h.now()
	expired := 0
	for _, aggregate := range couriers {
		if !aggregate.ExpirePairingCode(now) {
			continue
		}
		if err := uow.CourierRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
		expired++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
