package ports

import (
	"context"

	"hosplanner/internal/domain"
)

// RouteCache stores previously fetched RouteInformation keyed by an
// origin/destination coordinate pair, to avoid repeat calls to the routing
// oracle for the same leg.
type RouteCache interface {
	Get(ctx context.Context, origin, destination domain.Location) (domain.RouteInformation, bool, error)
	Put(ctx context.Context, origin, destination domain.Location, info domain.RouteInformation) error
}
