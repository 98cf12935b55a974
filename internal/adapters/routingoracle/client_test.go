package routingoracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hosplanner/internal/domain"
)

func TestFetchRouteDegenerateInputSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	oracle, err := NewOSRMRoutingOracle(srv.URL, "", time.Second, nil)
	if err != nil {
		t.Fatalf("NewOSRMRoutingOracle: %v", err)
	}

	loc := domain.Location{Latitude: 40, Longitude: -74}
	info, err := oracle.FetchRoute(context.Background(), loc, loc)
	if err != nil {
		t.Fatalf("FetchRoute: %v", err)
	}
	if called {
		t.Fatalf("FetchRoute must not call network for identical coordinates")
	}
	if info.DistanceMiles != 0 || info.DurationHours != 0 || len(info.Geometry) != 1 {
		t.Fatalf("degenerate RouteInformation = %+v", info)
	}
}

func TestFetchRouteConvertsUnits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"routes": []map[string]any{
				{
					"distance": 1609.344 * 10,
					"duration": 3600.0 * 2,
					"geometry": map[string]any{
						"coordinates": [][]float64{{-74.0, 40.0}, {-73.9, 40.1}},
					},
				},
			},
		})
	}))
	defer srv.Close()

	oracle, err := NewOSRMRoutingOracle(srv.URL, "", time.Second, nil)
	if err != nil {
		t.Fatalf("NewOSRMRoutingOracle: %v", err)
	}

	origin := domain.Location{Latitude: 40.0, Longitude: -74.0}
	destination := domain.Location{Latitude: 40.1, Longitude: -73.9}

	info, err := oracle.FetchRoute(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("FetchRoute: %v", err)
	}
	if info.DistanceMiles != 10 {
		t.Errorf("DistanceMiles = %v, want 10", info.DistanceMiles)
	}
	if info.DurationHours != 2 {
		t.Errorf("DurationHours = %v, want 2", info.DurationHours)
	}
	if len(info.Geometry) != 2 {
		t.Fatalf("Geometry len = %d, want 2", len(info.Geometry))
	}
	if info.Geometry[0].Longitude != -74.0 || info.Geometry[0].Latitude != 40.0 {
		t.Errorf("Geometry[0] = %+v", info.Geometry[0])
	}
}

func TestFetchRouteMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"routes": []map[string]any{}})
	}))
	defer srv.Close()

	oracle, err := NewOSRMRoutingOracle(srv.URL, "", time.Second, nil)
	if err != nil {
		t.Fatalf("NewOSRMRoutingOracle: %v", err)
	}

	_, err = oracle.FetchRoute(context.Background(),
		domain.Location{Latitude: 1, Longitude: 1},
		domain.Location{Latitude: 2, Longitude: 2},
	)
	if err == nil {
		t.Fatal("expected error for empty routes array")
	}
}
