// Package cache provides the two tiers of internal/ports.RouteCache used by
// the routing oracle adapter: a persistent SQLite-backed tier and a hot
// Redis-backed tier composed in front of it.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hosplanner/internal/domain"
)

// SQLRouteCache is a SQLite-backed persistent cache for
// (origin,destination) -> RouteInformation, adapted from the teacher's
// sqlite_distance_cache.go: a single-table prepared-statement upsert, but
// keyed by coordinate pair instead of address string and storing geometry
// as JSON rather than a plain scalar distance.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

func (s *SQLRouteCache) Get(ctx context.Context, origin, destination domain.Location) (domain.RouteInformation, bool, error) {
	if s.DB == nil {
		return domain.RouteInformation{}, false, errors.New("route cache: db is nil")
	}

	row := s.DB.QueryRowContext(ctx, `
	SELECT distance_miles, duration_hours, geometry_json
	FROM route_cache
	WHERE cache_key = ?;
	`, routeCacheKey(origin, destination))

	var distanceMiles, durationHours float64
	var geometryJSON string
	if err := row.Scan(&distanceMiles, &durationHours, &geometryJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RouteInformation{}, false, nil
		}
		return domain.RouteInformation{}, false, fmt.Errorf("route cache: get: scan row: %w", err)
	}

	var geometry []domain.Location
	if err := json.Unmarshal([]byte(geometryJSON), &geometry); err != nil {
		return domain.RouteInformation{}, false, fmt.Errorf("route cache: get: decode geometry: %w", err)
	}

	return domain.RouteInformation{
		DistanceMiles: distanceMiles,
		DurationHours: durationHours,
		Geometry:      geometry,
	}, true, nil
}

func (s *SQLRouteCache) Put(ctx context.Context, origin, destination domain.Location, info domain.RouteInformation) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	geometryJSON, err := json.Marshal(info.Geometry)
	if err != nil {
		return fmt.Errorf("route cache: put: encode geometry: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO route_cache (cache_key, distance_miles, duration_hours, geometry_json)
	VALUES (?, ?, ?, ?);
	`, routeCacheKey(origin, destination), info.DistanceMiles, info.DurationHours, string(geometryJSON))
	if err != nil {
		return fmt.Errorf("route cache: put: %w", err)
	}

	return nil
}

func routeCacheKey(origin, destination domain.Location) string {
	return domain.RouteKey(origin, destination)
}
