package cache

import (
	"context"
	"log"

	"hosplanner/internal/domain"
	"hosplanner/internal/ports"
)

// LayeredRouteCache checks Hot before Persistent, and back-fills Hot on a
// Persistent hit. Either tier may be nil, in which case it is skipped.
type LayeredRouteCache struct {
	Hot        ports.RouteCache
	Persistent ports.RouteCache
}

func (l *LayeredRouteCache) Get(ctx context.Context, origin, destination domain.Location) (domain.RouteInformation, bool, error) {
	if l.Hot != nil {
		if info, ok, err := l.Hot.Get(ctx, origin, destination); err != nil {
			log.Printf("layered route cache: hot tier get failed: %v", err)
		} else if ok {
			return info, true, nil
		}
	}

	if l.Persistent != nil {
		info, ok, err := l.Persistent.Get(ctx, origin, destination)
		if err != nil {
			return domain.RouteInformation{}, false, err
		}
		if ok && l.Hot != nil {
			if err := l.Hot.Put(ctx, origin, destination, info); err != nil {
				log.Printf("layered route cache: hot tier backfill failed: %v", err)
			}
		}
		return info, ok, nil
	}

	return domain.RouteInformation{}, false, nil
}

func (l *LayeredRouteCache) Put(ctx context.Context, origin, destination domain.Location, info domain.RouteInformation) error {
	if l.Hot != nil {
		if err := l.Hot.Put(ctx, origin, destination, info); err != nil {
			log.Printf("layered route cache: hot tier put failed: %v", err)
		}
	}
	if l.Persistent != nil {
		return l.Persistent.Put(ctx, origin, destination, info)
	}
	return nil
}
