package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// RemindPendingOffersCommandHandler re-notifies offers that couriers have
// left unanswered. The age of an offer is the time since its latest audit
// event, which for an order sitting in OFFERED is the offer itself.
type RemindPendingOffersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderChangeNotifier
	now        func() time.Time
}

// NewRemindPendingOffersCommandHandler creates a handler for offer reminders.
func NewRemindPendingOffersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderChangeNotifier,
) RemindPendingOffersCommandHandler {
	return RemindPendingOffersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle re-notifies every stale offer and reports how many were sent.
// Notification failures skip the order rather than aborting the run.
func (h RemindPendingOffersCommandHandler) Handle(ctx context.Context, cmd RemindPendingOffersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if h.notifier == nil {
		return 0, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	offered, err := uow.OrderRepository().GetAllInStatus(ctx, order.StatusOffered)
	if err != nil {
		return 0, err
	}

	cutoff := h.now().Add(-cmd.OlderThan())
	reminded := 0
	for _, aggregate := range offered {
		audit := aggregate.Audit()
		if len(audit) == 0 || audit[len(audit)-1].At().After(cutoff) {
			continue
		}
		if err := h.notifier.NotifyOrderChanged(ctx, aggregate); err != nil {
			slog.WarnContext(ctx, "Offer reminder notification failed",
				"orderId", aggregate.ID().String(), "error", err)
			continue
		}
		reminded++
	}

	return reminded, nil
}
