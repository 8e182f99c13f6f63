package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
)

// earthRadiusKm is Earth's mean radius used by the Haversine formula.
const earthRadiusKm = 6371.0

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// Point is a value object representing a geographic coordinate pair.
// Latitude and longitude are stored in decimal degrees. The zero value
// (0, 0) is technically a valid coordinate but never occurs in practice;
// construction still goes through NewPoint so range checks always run.
//
// Example usage:
//
//	pickup, err := kernel.NewPoint(-6.1754, 106.8272)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
//	dropoff, _ := kernel.NewPoint(-6.2000, 106.8167)
//	km := pickup.DistanceKm(dropoff)
type Point struct {
	lat float64
	lon float64
}

// NewPoint creates a Point after validating that both coordinates are finite
// and inside their geographic ranges.
func NewPoint(lat, lon float64) (Point, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Point{}, errs.NewValueIsInvalidErrorWithCause("latitude", fmt.Errorf("%v is not a finite number", lat))
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Point{}, errs.NewValueIsInvalidErrorWithCause("longitude", fmt.Errorf("%v is not a finite number", lon))
	}
	if lat < minLatitude || lat > maxLatitude {
		return Point{}, errs.NewValueIsOutOfRangeError("latitude", lat, minLatitude, maxLatitude)
	}
	if lon < minLongitude || lon > maxLongitude {
		return Point{}, errs.NewValueIsOutOfRangeError("longitude", lon, minLongitude, maxLongitude)
	}

	return Point{lat: lat, lon: lon}, nil
}

// Lat returns the latitude in decimal degrees.
func (p Point) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p Point) Lon() float64 {
	return p.lon
}

// IsEqual reports whether two points share the same coordinates.
func (p Point) IsEqual(other Point) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// String returns the point as "lat,lon", the form routing providers expect.
func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.lat, p.lon)
}

// DistanceKm computes the great-circle distance to another point in kilometers
// using the Haversine formula.
func (p Point) DistanceKm(other Point) float64 {
	const degToRad = math.Pi / 180

	dLat := (other.lat - p.lat) * degToRad
	dLon := (other.lon - p.lon) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p.lat*degToRad)*math.Cos(other.lat*degToRad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
