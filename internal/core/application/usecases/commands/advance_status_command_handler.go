package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// AdvanceStatusCommandHandler applies table-checked lifecycle transitions.
// The aggregate enforces ownership, the per-actor transition table and the
// proof-of-delivery gate; this handler only supplies the retry loop.
type AdvanceStatusCommandHandler struct {
	mutator orderMutator
}

// NewAdvanceStatusCommandHandler creates a handler for status transitions.
func NewAdvanceStatusCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the transition command.
func (h AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.AdvanceTo(cmd.Requested(), cmd.Actor())
	})
}
