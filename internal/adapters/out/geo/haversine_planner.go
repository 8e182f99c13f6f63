package geo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Road distance exceeds the great-circle distance in a street grid, and city
// traffic stretches travel time beyond the free-flow estimate. Both factors
// are deliberately pessimistic so fallback quotes never undercharge.
const (
	roadFactor      = 1.3
	averageSpeedKmh = 30.0
	trafficFactor   = 1.3
)

// HaversinePlanner estimates a route from the great-circle distance between
// the endpoints. It never fails, which makes it the fallback of last resort.
type HaversinePlanner struct{}

// NewHaversinePlanner creates the estimator.
func NewHaversinePlanner() *HaversinePlanner {
	return &HaversinePlanner{}
}

// PlanRoute returns a straight-line estimate of the leg.
func (HaversinePlanner) PlanRoute(_ context.Context, from, to kernel.Point) (ports.Route, error) {
	distanceKm := from.DistanceKm(to) * roadFactor
	durationMinutes := distanceKm / averageSpeedKmh * 60 * trafficFactor

	return ports.Route{
		DistanceKm:      distanceKm,
		DurationMinutes: durationMinutes,
	}, nil
}
