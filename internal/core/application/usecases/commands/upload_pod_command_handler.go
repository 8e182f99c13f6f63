package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// UploadPODCommandHandler completes a delivery: photo appended and status
// moved to DELIVERED as one aggregate mutation, one committed row write.
type UploadPODCommandHandler struct {
	mutator orderMutator
}

// NewUploadPODCommandHandler creates a handler for delivery completion.
func NewUploadPODCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) UploadPODCommandHandler {
	return UploadPODCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the completion command.
func (h UploadPODCommandHandler) Handle(ctx context.Context, cmd UploadPODCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UploadPODAndDeliver(cmd.CourierID(), cmd.PhotoURL())
	})
}
