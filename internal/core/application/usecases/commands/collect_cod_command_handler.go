package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CollectCODCommandHandler marks COD cash as collected by the courier.
type CollectCODCommandHandler struct {
	mutator orderMutator
}

// NewCollectCODCommandHandler creates a handler for COD collection.
func NewCollectCODCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) CollectCODCommandHandler {
	return CollectCODCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the collection command.
func (h CollectCODCommandHandler) Handle(ctx context.Context, cmd CollectCODCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.MarkCODCollected(cmd.CourierID())
	})
}
