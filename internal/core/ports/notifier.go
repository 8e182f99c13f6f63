package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderChangeNotifier publishes order lifecycle changes to interested parties:
// the Telegram bot, the dashboard event stream, and reporting.
//
// Notification is best effort. A failed publish must never roll back the
// state change that triggered it; implementations log and move on.
type OrderChangeNotifier interface {
	// NotifyOrderChanged announces the latest audit event of the order.
	NotifyOrderChanged(ctx context.Context, aggregate *order.Order) error
}
