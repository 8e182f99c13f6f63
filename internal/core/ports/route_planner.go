package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Route is a planned leg between two points.
type Route struct {
	DistanceKm      float64
	DurationMinutes float64
}

// RoutePlanner estimates travel between two points. Implementations call an
// external routing service and fall back to a straight-line heuristic when it
// is unavailable; quotes must always be producible.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, from, to kernel.Point) (Route, error)
}

// RouteCache is a read-through cache for planned routes, keyed by the
// endpoint pair. Entries carry a TTL because traffic estimates go stale.
type RouteCache interface {
	Get(ctx context.Context, from, to kernel.Point) (Route, bool, error)
	Set(ctx context.Context, from, to kernel.Point, route Route) error
}
