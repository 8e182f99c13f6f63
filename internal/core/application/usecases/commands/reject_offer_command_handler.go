package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// RejectOfferCommandHandler returns an offered order to NEW with the
// assignment cleared, in one committed write, so the dashboard can re-offer
// it immediately.
type RejectOfferCommandHandler struct {
	mutator orderMutator
}

// NewRejectOfferCommandHandler creates a handler for offer rejection.
func NewRejectOfferCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) RejectOfferCommandHandler {
	return RejectOfferCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the rejection command.
func (h RejectOfferCommandHandler) Handle(ctx context.Context, cmd RejectOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.Reject(cmd.CourierID(), cmd.Reason())
	})
}
