package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// maxUpdateAttempts bounds the reload-and-retry loop on version conflicts.
const maxUpdateAttempts = 3

// ErrConcurrentModification is returned when an order kept being modified by
// other writers and the retry budget ran out. Callers surface it as a retryable
// conflict; nothing was committed by the losing writer.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// orderMutator runs the load, mutate, compare-and-swap save cycle every
// order-mutating handler shares. A stale version aborts the transaction and
// the cycle restarts against a fresh copy, so business rules are always
// re-checked against current state.
//
// After a successful commit the change is announced through the notifier.
// Notification is best effort and cannot fail the command.
type orderMutator struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderChangeNotifier
}

func newOrderMutator(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) orderMutator {
	return orderMutator{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (m orderMutator) Mutate(ctx context.Context, orderID kernel.UUID, fn func(*order.Order) error) error {
	var lastErr error

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		aggregate, err := m.tryOnce(ctx, orderID, fn)
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			lastErr = err
			continue
		}
		if err != nil {
			return err
		}

		m.notify(ctx, aggregate)
		return nil
	}

	return errors.Join(ErrConcurrentModification, lastErr)
}

func (m orderMutator) tryOnce(
	ctx context.Context,
	orderID kernel.UUID,
	fn func(*order.Order) error,
) (*order.Order, error) {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = fn(aggregate); err != nil {
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

func (m orderMutator) notify(ctx context.Context, aggregate *order.Order) {
	notifyOrderChanged(ctx, m.notifier, aggregate)
}

// notifyOrderChanged announces a committed change. Best effort: a failure is
// logged and swallowed, it must never fail the command that already committed.
func notifyOrderChanged(ctx context.Context, notifier ports.OrderChangeNotifier, aggregate *order.Order) {
	if notifier == nil {
		return
	}
	if err := notifier.NotifyOrderChanged(ctx, aggregate); err != nil {
		slog.WarnContext(ctx, "Order change notification failed",
			"orderId", aggregate.ID().String(), "error", err)
	}
}
