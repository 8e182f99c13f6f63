package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

// RedisRouteCache stores planned routes in Redis with a TTL. Traffic
// estimates go stale, so entries expire rather than live forever.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRouteCache creates a cache on the given client with the given TTL.
func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

// Get returns the cached route for the endpoint pair, if present.
func (c *RedisRouteCache) Get(ctx context.Context, from, to kernel.Point) (ports.Route, bool, error) {
	payload, err := c.client.Get(ctx, routeKey(from, to)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.Route{}, false, nil
	}
	if err != nil {
		return ports.Route{}, false, err
	}

	var route ports.Route
	if err := json.Unmarshal([]byte(payload), &route); err != nil {
		return ports.Route{}, false, err
	}

	return route, true, nil
}

// Set stores the route for the endpoint pair.
func (c *RedisRouteCache) Set(ctx context.Context, from, to kernel.Point, route ports.Route) error {
	payload, err := json.Marshal(route)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, routeKey(from, to), payload, c.ttl).Err()
}

// Five decimal places keeps the key stable at roughly one meter resolution.
func routeKey(from, to kernel.Point) string {
	return fmt.Sprintf("route:%.5f,%.5f:%.5f,%.5f", from.Lat(), from.Lon(), to.Lat(), to.Lon())
}
