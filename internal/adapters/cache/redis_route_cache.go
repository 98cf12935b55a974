package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hosplanner/internal/domain"
)

// RedisRouteCache is the hot tier of the route cache: a TTL-bounded
// Redis-backed cache checked before the persistent SQLite tier. The
// teacher carried github.com/redis/go-redis/v9 as an unused indirect
// dependency; this is where it is actually exercised.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RedisRouteCache{client: client, ttl: ttl}
}

type redisRouteCacheEntry struct {
	DistanceMiles float64          `json:"distance_miles"`
	DurationHours float64          `json:"duration_hours"`
	Geometry      []domain.Location `json:"geometry"`
}

func (r *RedisRouteCache) Get(ctx context.Context, origin, destination domain.Location) (domain.RouteInformation, bool, error) {
	if r.client == nil {
		return domain.RouteInformation{}, false, errors.New("redis route cache: client is nil")
	}

	raw, err := r.client.Get(ctx, routeCacheKey(origin, destination)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.RouteInformation{}, false, nil
	}
	if err != nil {
		return domain.RouteInformation{}, false, fmt.Errorf("redis route cache: get: %w", err)
	}

	var entry redisRouteCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.RouteInformation{}, false, fmt.Errorf("redis route cache: decode: %w", err)
	}

	return domain.RouteInformation{
		DistanceMiles: entry.DistanceMiles,
		DurationHours: entry.DurationHours,
		Geometry:      entry.Geometry,
	}, true, nil
}

func (r *RedisRouteCache) Put(ctx context.Context, origin, destination domain.Location, info domain.RouteInformation) error {
	if r.client == nil {
		return errors.New("redis route cache: client is nil")
	}

	raw, err := json.Marshal(redisRouteCacheEntry{
		DistanceMiles: info.DistanceMiles,
		DurationHours: info.DurationHours,
		Geometry:      info.Geometry,
	})
	if err != nil {
		return fmt.Errorf("redis route cache: encode: %w", err)
	}

	if err := r.client.Set(ctx, routeCacheKey(origin, destination), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis route cache: set: %w", err)
	}

	return nil
}
