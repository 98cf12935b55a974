// Package routingoracle implements the Routing Oracle Client of spec §4.2
// and §6 against an OSRM-style HTTP service: GET
// /{lon1},{lat1};{lon2},{lat2}?overview=full&geometries=geojson.
package routingoracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"hosplanner/internal/apperr"
	"hosplanner/internal/domain"
	"hosplanner/internal/platform/obs"
	"hosplanner/internal/ports"
)

const (
	metersPerMile    = 1609.344
	secondsPerHour   = 3600.0
	defaultTimeout   = 10 * time.Second
)

// OSRMRoutingOracle implements ports.RoutingOracle. It coordinates an
// optional RouteCache lookup, the external HTTP call with retry/backoff,
// and the GeoJSON response decode. Safe for concurrent use.
type OSRMRoutingOracle struct {
	session *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	cache   ports.RouteCache
}

// NewOSRMRoutingOracle creates a client against baseURL. cache may be nil
// to disable caching. timeout is the per-fetch deadline (spec §5); if
// zero, defaultTimeout (10s) is used.
func NewOSRMRoutingOracle(baseURL, apiKey string, timeout time.Duration, cache ports.RouteCache) (*OSRMRoutingOracle, error) {
	if baseURL == "" {
		return nil, errors.New("routing oracle: base url is empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &OSRMRoutingOracle{
		session: &http.Client{Timeout: timeout + 5*time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		cache:   cache,
	}, nil
}

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// FetchRoute implements ports.RoutingOracle.
func (o *OSRMRoutingOracle) FetchRoute(ctx context.Context, origin, destination domain.Location) (_ domain.RouteInformation, err error) {
	// Degenerate input: same coordinates must short-circuit without
	// touching the network or the cache (spec §4.2).
	if origin.Equal(destination) {
		return domain.RouteInformation{
			DistanceMiles: 0,
			DurationHours: 0,
			Geometry:      []domain.Location{origin},
		}, nil
	}

	defer obs.Time(ctx, "routingoracle.FetchRoute", fmt.Sprintf("%v->%v", origin, destination))(&err)

	if o.cache != nil {
		if hit, ok, cerr := o.cache.Get(ctx, origin, destination); cerr == nil && ok {
			return hit, nil
		} else if cerr != nil {
			log.Printf("routing oracle: cache get failed: %v", cerr)
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	url := o.requestURL(origin, destination)
	resp, err := o.doWithRetry(fetchCtx, func() (*http.Request, error) {
		return o.newRequest(fetchCtx, http.MethodGet, url)
	})
	if err != nil {
		return domain.RouteInformation{}, fmt.Errorf("fetch route: %w: %w", apperr.ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.RouteInformation{}, fmt.Errorf("fetch route: decode response: %w: %w", apperr.ErrRoutingMalformed, err)
	}

	info, err := toRouteInformation(parsed)
	if err != nil {
		return domain.RouteInformation{}, fmt.Errorf("fetch route: %w: %w", apperr.ErrRoutingMalformed, err)
	}

	if o.cache != nil {
		if perr := o.cache.Put(ctx, origin, destination, info); perr != nil {
			log.Printf("routing oracle: cache put failed: %v", perr)
		}
	}

	return info, nil
}

func toRouteInformation(parsed osrmResponse) (domain.RouteInformation, error) {
	if len(parsed.Routes) == 0 {
		return domain.RouteInformation{}, errors.New("response contains no routes")
	}

	route := parsed.Routes[0]
	if route.Distance < 0 || route.Duration < 0 {
		return domain.RouteInformation{}, errors.New("negative distance or duration")
	}
	if len(route.Geometry.Coordinates) == 0 {
		return domain.RouteInformation{}, errors.New("geometry has no coordinates")
	}

	geometry := make([]domain.Location, 0, len(route.Geometry.Coordinates))
	for i, pair := range route.Geometry.Coordinates {
		if len(pair) != 2 {
			return domain.RouteInformation{}, fmt.Errorf("coordinate %d has %d elements, want 2", i, len(pair))
		}
		geometry = append(geometry, domain.Location{
			Longitude: pair[0],
			Latitude:  pair[1],
		})
	}

	return domain.RouteInformation{
		DistanceMiles: route.Distance / metersPerMile,
		DurationHours: route.Duration / secondsPerHour,
		Geometry:      geometry,
	}, nil
}

func (o *OSRMRoutingOracle) requestURL(origin, destination domain.Location) string {
	return fmt.Sprintf(
		"%s/%s,%s;%s,%s?overview=full&geometries=geojson",
		o.baseURL,
		formatCoord(origin.Longitude), formatCoord(origin.Latitude),
		formatCoord(destination.Longitude), formatCoord(destination.Latitude),
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
