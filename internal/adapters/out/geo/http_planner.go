// Package geo plans delivery routes. The primary source is an external
// routing service over HTTP; results are cached in Redis and a straight-line
// estimate covers outages so a quote can always be produced.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

const requestTimeout = 5 * time.Second

// HTTPRoutePlanner queries the routing service's /route endpoint.
type HTTPRoutePlanner struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRoutePlanner creates a planner for the service at baseURL.
func NewHTTPRoutePlanner(baseURL string) *HTTPRoutePlanner {
	return &HTTPRoutePlanner{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type routeResponse struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// PlanRoute asks the routing service for the leg between two points.
func (p *HTTPRoutePlanner) PlanRoute(ctx context.Context, from, to kernel.Point) (ports.Route, error) {
	query := url.Values{}
	query.Set("from_lat", formatCoord(from.Lat()))
	query.Set("from_lon", formatCoord(from.Lon()))
	query.Set("to_lat", formatCoord(to.Lat()))
	query.Set("to_lon", formatCoord(to.Lon()))

	endpoint := p.baseURL + "/route?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.Route{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return ports.Route{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Route{}, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Route{}, fmt.Errorf("decode routing response: %w", err)
	}

	if body.DistanceKm < 0 || body.DurationMinutes < 0 {
		return ports.Route{}, fmt.Errorf("routing service returned negative route: %+v", body)
	}

	return ports.Route{
		DistanceKm:      body.DistanceKm,
		DurationMinutes: body.DurationMinutes,
	}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
