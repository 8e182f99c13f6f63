package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AssignCourierCommandHandler binds couriers to orders. The courier must be
// active; the order must be assignable (NEW, or OFFERED for a re-offer).
// Runs the same bounded compare-and-swap retry loop as every other order
// mutation, with the courier check repeated inside each attempt so a courier
// deactivated mid-flight cannot slip through.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.OrderChangeNotifier
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory UoWFactory, notifier ports.OrderChangeNotifier) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var lastErr error

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		aggregate, err := h.tryOnce(ctx, cmd)
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			lastErr = err
			continue
		}
		if err != nil {
			return err
		}

		notifyOrderChanged(ctx, h.notifier, aggregate)
		return nil
	}

	return errors.Join(ErrConcurrentModification, lastErr)
}

func (h AssignCourierCommandHandler) tryOnce(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignee, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}
	if !assignee.IsActive() {
		return nil, courier.ErrCourierInactive
	}

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Assign(cmd.CourierID(), cmd.AsOffer(), order.NewAdminActor(cmd.AdminID())); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
