package routingoracle

import (
	"context"
	"fmt"

	"hosplanner/internal/domain"
)

// RoutingOracleStub is a deterministic ports.RoutingOracle test double,
// generalized from the teacher's MockDistanceProvider: each (origin,
// destination) pair is registered up front and served without any network
// access.
type RoutingOracleStub struct {
	routes map[string]domain.RouteInformation
}

// StubRoute registers the RouteInformation served for a single (origin,
// destination) pair.
type StubRoute struct {
	Origin, Destination domain.Location
	Info                domain.RouteInformation
}

func NewRoutingOracleStub(routes []StubRoute) *RoutingOracleStub {
	m := make(map[string]domain.RouteInformation, len(routes))
	for _, r := range routes {
		m[domain.RouteKey(r.Origin, r.Destination)] = r.Info
	}
	return &RoutingOracleStub{routes: m}
}

func (s *RoutingOracleStub) FetchRoute(_ context.Context, origin, destination domain.Location) (domain.RouteInformation, error) {
	if origin.Equal(destination) {
		return domain.RouteInformation{DistanceMiles: 0, DurationHours: 0, Geometry: []domain.Location{origin}}, nil
	}

	info, ok := s.routes[domain.RouteKey(origin, destination)]
	if !ok {
		return domain.RouteInformation{}, fmt.Errorf("stub: no route registered for %v -> %v", origin, destination)
	}
	return info, nil
}
