package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// compare-and-swap on the aggregate version. When another writer got in
	// first the update touches nothing and a version error is returned; the
	// caller reloads and retries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves every order not yet in a terminal status,
	// oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// oldest first. Used by reminder jobs to find stale offers.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllActiveByCourier retrieves a courier's non-terminal orders,
	// oldest first.
	GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
