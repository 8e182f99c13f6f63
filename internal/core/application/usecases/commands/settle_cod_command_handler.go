package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// SettleCODCommandHandler records COD cash changing hands from courier to admin.
type SettleCODCommandHandler struct {
	mutator orderMutator
}

// NewSettleCODCommandHandler creates a handler for COD settlement.
func NewSettleCODCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) SettleCODCommandHandler {
	return SettleCODCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the settlement command.
func (h SettleCODCommandHandler) Handle(ctx context.Context, cmd SettleCODCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.SettleCOD(order.NewAdminActor(cmd.AdminID()))
	})
}
