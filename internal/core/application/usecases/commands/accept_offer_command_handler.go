package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// AcceptOfferCommandHandler moves an offered order to ACCEPTED on behalf of
// the offered courier.
type AcceptOfferCommandHandler struct {
	mutator orderMutator
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the acceptance command.
func (h AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.Accept(cmd.CourierID())
	})
}
