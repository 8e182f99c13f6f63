package geo

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Planner is the route planner the application uses. It reads through the
// cache, asks the external provider on a miss and falls back to the
// straight-line estimate when the provider is unavailable.
type Planner struct {
	provider ports.RoutePlanner
	fallback ports.RoutePlanner
	cache    ports.RouteCache
	log      *slog.Logger
}

// NewPlanner wires the provider and cache together. The cache may be nil, in
// which case every call goes to the provider.
func NewPlanner(provider ports.RoutePlanner, cache ports.RouteCache, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}

	return &Planner{
		provider: provider,
		fallback: NewHaversinePlanner(),
		cache:    cache,
		log:      log,
	}
}

// PlanRoute returns the leg between two points. It never fails: provider
// outages degrade to the straight-line estimate, and cache errors only cost
// the round trip to the provider.
func (p *Planner) PlanRoute(ctx context.Context, from, to kernel.Point) (ports.Route, error) {
	if p.cache != nil {
		route, ok, err := p.cache.Get(ctx, from, to)
		if err != nil {
			p.log.Warn("route cache read failed", "error", err)
		} else if ok {
			return route, nil
		}
	}

	route, err := p.provider.PlanRoute(ctx, from, to)
	if err != nil {
		p.log.Warn("routing provider unavailable, using straight-line estimate",
			"from", from.String(), "to", to.String(), "error", err)
		return p.fallback.PlanRoute(ctx, from, to)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, from, to, route); err != nil {
			p.log.Warn("route cache write failed", "error", err)
		}
	}

	return route, nil
}
