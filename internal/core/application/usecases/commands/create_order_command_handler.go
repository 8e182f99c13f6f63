package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler handles order intake. It plans both route legs,
// prices the order through the tariff engine and persists the aggregate in
// status NEW, ready for assignment.
//
// The pickup leg is measured from the dispatch base (where idle couriers
// wait) to the pickup point; the delivery leg from pickup to dropoff.
type CreateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	routePlanner ports.RoutePlanner
	pricing      services.PricingEngine
	base         kernel.Point
	notifier     ports.OrderChangeNotifier
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	routePlanner ports.RoutePlanner,
	base kernel.Point,
	notifier ports.OrderChangeNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		routePlanner: routePlanner,
		pricing:      services.NewPricingEngine(),
		base:         base,
		notifier:     notifier,
	}
}

// Handle prices and persists a new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sender, err := order.NewSender(cmd.SenderName(), cmd.SenderPhone(), cmd.SenderAddress())
	if err != nil {
		return err
	}

	pickupLeg, err := h.routePlanner.PlanRoute(ctx, h.base, cmd.Pickup())
	if err != nil {
		return err
	}

	deliveryLeg, err := h.routePlanner.PlanRoute(ctx, cmd.Pickup(), cmd.Dropoff())
	if err != nil {
		return err
	}

	quote, err := h.pricing.CalculateQuote(pickupLeg.DistanceKm, deliveryLeg.DistanceKm, cmd.Express())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), sender, cmd.Pickup(), cmd.Dropoff(), quote,
		cmd.CODAmount(), cmd.TalanganAmount(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderChanged(ctx, h.notifier, aggregate)

	return nil
}
