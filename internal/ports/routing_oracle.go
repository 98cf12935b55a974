package ports

import (
	"context"

	"hosplanner/internal/domain"
)

// RoutingOracle fetches distance, duration, and geometry for an ordered
// pair of locations (spec §4.2). Implementations must be safe for
// concurrent use: the Trip Coordinator fetches both legs of a trip
// concurrently.
type RoutingOracle interface {
	FetchRoute(ctx context.Context, origin, destination domain.Location) (domain.RouteInformation, error)
}
