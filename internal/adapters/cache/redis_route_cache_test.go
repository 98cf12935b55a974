package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"hosplanner/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisRouteCache {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRouteCache(client, time.Minute)
}

func TestRedisRouteCacheMissThenHit(t *testing.T) {
	ctx := context.Background()
	cache := newTestRedisCache(t)

	origin := domain.Location{Latitude: 40, Longitude: -74}
	destination := domain.Location{Latitude: 41, Longitude: -73}

	if _, ok, err := cache.Get(ctx, origin, destination); err != nil || ok {
		t.Fatalf("Get on empty cache: ok=%v err=%v", ok, err)
	}

	info := domain.RouteInformation{
		DistanceMiles: 42,
		DurationHours: 1.5,
		Geometry:      []domain.Location{origin, destination},
	}
	if err := cache.Put(ctx, origin, destination, info); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := cache.Get(ctx, origin, destination)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if got.DistanceMiles != 42 || got.DurationHours != 1.5 || len(got.Geometry) != 2 {
		t.Errorf("Get returned %+v", got)
	}
}

func TestLayeredRouteCacheBackfillsHotFromPersistent(t *testing.T) {
	ctx := context.Background()
	hot := newTestRedisCache(t)
	persistent := &fakeRouteCache{store: map[string]domain.RouteInformation{}}

	origin := domain.Location{Latitude: 1, Longitude: 1}
	destination := domain.Location{Latitude: 2, Longitude: 2}
	info := domain.RouteInformation{DistanceMiles: 5, DurationHours: 0.5, Geometry: []domain.Location{origin, destination}}

	if err := persistent.Put(ctx, origin, destination, info); err != nil {
		t.Fatalf("persistent.Put: %v", err)
	}

	layered := &LayeredRouteCache{Hot: hot, Persistent: persistent}

	got, ok, err := layered.Get(ctx, origin, destination)
	if err != nil || !ok {
		t.Fatalf("layered Get: ok=%v err=%v", ok, err)
	}
	if got.DistanceMiles != 5 {
		t.Errorf("got %+v", got)
	}

	// Should now be present in the hot tier without touching persistent again.
	if _, ok, err := hot.Get(ctx, origin, destination); err != nil || !ok {
		t.Fatalf("expected hot tier to be backfilled: ok=%v err=%v", ok, err)
	}
}

type fakeRouteCache struct {
	store map[string]domain.RouteInformation
}

func (f *fakeRouteCache) Get(_ context.Context, origin, destination domain.Location) (domain.RouteInformation, bool, error) {
	info, ok := f.store[routeCacheKey(origin, destination)]
	return info, ok, nil
}

func (f *fakeRouteCache) Put(_ context.Context, origin, destination domain.Location, info domain.RouteInformation) error {
	f.store[routeCacheKey(origin, destination)] = info
	return nil
}
