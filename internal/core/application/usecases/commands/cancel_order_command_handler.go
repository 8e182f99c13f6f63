package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order on the admin's behalf.
type CancelOrderCommandHandler struct {
	mutator orderMutator
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.Cancel(order.NewAdminActor(cmd.AdminID()))
	})
}
