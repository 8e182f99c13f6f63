// Package ports defines the outbound contracts of the application core:
// repositories, the unit of work, order change notification, and route
// planning. Adapters implement these; use cases depend only on the
// interfaces.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByChatID retrieves the courier linked to a Telegram chat.
	// Every bot update is resolved through this lookup.
	GetByChatID(ctx context.Context, chatID int64) (*courier.Courier, error)

	// GetAllActive retrieves all couriers that may receive assignments.
	GetAllActive(ctx context.Context) ([]*courier.Courier, error)

	// GetAllWithPairingCode retrieves couriers holding an outstanding
	// pairing code, for the expiry sweep.
	GetAllWithPairingCode(ctx context.Context) ([]*courier.Courier, error)
}
