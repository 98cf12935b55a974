package domain

// RouteInformation is the immutable result of a routing oracle fetch: the
// distance and duration of a free-flowing drive between two locations, plus
// the geometry (ordered coordinates) of the path between them. Produced by
// the routing oracle client, consumed read-only by the segment planner.
type RouteInformation struct {
	DistanceMiles float64
	DurationHours float64
	Geometry      []Location
}
