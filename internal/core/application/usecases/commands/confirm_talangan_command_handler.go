package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ConfirmTalanganCommandHandler records talangan reimbursement bookkeeping.
type ConfirmTalanganCommandHandler struct {
	mutator orderMutator
}

// NewConfirmTalanganCommandHandler creates a handler for talangan confirmation.
func NewConfirmTalanganCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) ConfirmTalanganCommandHandler {
	return ConfirmTalanganCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the confirmation command.
func (h ConfirmTalanganCommandHandler) Handle(ctx context.Context, cmd ConfirmTalanganCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.ConfirmTalanganReimbursed(order.NewAdminActor(cmd.AdminID()))
	})
}
