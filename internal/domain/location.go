package domain

import "fmt"

// Location is an immutable geographic point in decimal degrees, plus an
// optional human label. Equality is coordinate equality.
type Location struct {
	Latitude  float64
	Longitude float64
	Label     string
}

// Equal reports whether two locations refer to the same coordinate pair.
// The label is descriptive only and does not participate in equality.
func (l Location) Equal(other Location) bool {
	return l.Latitude == other.Latitude && l.Longitude == other.Longitude
}

// RouteKey is the canonical cache/lookup key for an origin/destination pair,
// shared by the route cache and the Routing Oracle Client's test stub so
// both index a leg the same way.
func RouteKey(origin, destination Location) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)
}
