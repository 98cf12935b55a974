package summarizer

import (
	"testing"
	"time"

	"hosplanner/internal/domain"
)

func TestSummarizeFoldsTotalsAndMergesGeometry(t *testing.T) {
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	a := domain.Location{Latitude: 0, Longitude: 0}
	b := domain.Location{Latitude: 1, Longitude: 1}
	c := domain.Location{Latitude: 2, Longitude: 2}

	segments := []domain.Segment{
		{
			Type: domain.SegmentDriveToPickup, Status: domain.DutyDriving,
			StartTime: base, EndTime: base.Add(2 * time.Hour),
			DistanceMiles: 100, StartCoordinates: a, EndCoordinates: b,
		},
		{
			Type: domain.SegmentPickup, Status: domain.DutyOnDutyNotDriving,
			StartTime: base.Add(2 * time.Hour), EndTime: base.Add(3 * time.Hour),
			DistanceMiles: 0, StartCoordinates: b, EndCoordinates: b,
		},
		{
			Type: domain.SegmentMandatoryBreak, Status: domain.DutyOffDuty,
			StartTime: base.Add(3 * time.Hour), EndTime: base.Add(3*time.Hour + 30*time.Minute),
			DistanceMiles: 0, StartCoordinates: b, EndCoordinates: b,
		},
		{
			Type: domain.SegmentDriveToDropOff, Status: domain.DutyDriving,
			StartTime: base.Add(3*time.Hour + 30*time.Minute), EndTime: base.Add(6*time.Hour + 30*time.Minute),
			DistanceMiles: 150, StartCoordinates: b, EndCoordinates: c,
		},
	}

	// Leg geometries are the oracle's own turn-by-turn polylines, much
	// finer-grained than the segments' duty-boundary endpoints; leg2's
	// leading point duplicates leg1's trailing point at the pickup.
	mid1 := domain.Location{Latitude: 0.5, Longitude: 0.5}
	mid2 := domain.Location{Latitude: 1.5, Longitude: 1.5}
	leg1Geometry := []domain.Location{a, mid1, b}
	leg2Geometry := []domain.Location{b, mid2, c}

	plan := Summarize(segments, leg1Geometry, leg2Geometry)

	if plan.TotalDistanceMiles != 250 {
		t.Errorf("TotalDistanceMiles = %v, want 250", plan.TotalDistanceMiles)
	}
	if plan.DrivingTime != 5*time.Hour {
		t.Errorf("DrivingTime = %v, want 5h", plan.DrivingTime)
	}
	if plan.RestingTime != 30*time.Minute {
		t.Errorf("RestingTime = %v, want 30m", plan.RestingTime)
	}
	if !plan.StartTime.Equal(base) {
		t.Errorf("StartTime = %v, want %v", plan.StartTime, base)
	}
	if !plan.EndTime.Equal(base.Add(6*time.Hour + 30*time.Minute)) {
		t.Errorf("EndTime = %v", plan.EndTime)
	}
	if want := 6.5; plan.TotalDurationHours != want {
		t.Errorf("TotalDurationHours = %v, want %v", plan.TotalDurationHours, want)
	}

	want := []domain.Location{a, mid1, b, mid2, c}
	if len(plan.RouteGeometry) != len(want) {
		t.Fatalf("RouteGeometry = %+v, want %+v", plan.RouteGeometry, want)
	}
	for i, loc := range want {
		if !plan.RouteGeometry[i].Equal(loc) {
			t.Errorf("RouteGeometry[%d] = %+v, want %+v", i, plan.RouteGeometry[i], loc)
		}
	}
}

func TestSummarizeNoSharedJunctionConcatenatesBothEndpoints(t *testing.T) {
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	a := domain.Location{Latitude: 0, Longitude: 0}
	b := domain.Location{Latitude: 1, Longitude: 1}
	c := domain.Location{Latitude: 2, Longitude: 2}
	d := domain.Location{Latitude: 3, Longitude: 3}

	segments := []domain.Segment{
		{
			Type: domain.SegmentDriveToPickup, Status: domain.DutyDriving,
			StartTime: base, EndTime: base.Add(time.Hour),
			DistanceMiles: 50, StartCoordinates: a, EndCoordinates: b,
		},
	}

	leg1Geometry := []domain.Location{a, b}
	leg2Geometry := []domain.Location{c, d}

	plan := Summarize(segments, leg1Geometry, leg2Geometry)

	want := []domain.Location{a, b, c, d}
	if len(plan.RouteGeometry) != len(want) {
		t.Fatalf("RouteGeometry = %+v, want %+v", plan.RouteGeometry, want)
	}
	for i, loc := range want {
		if !plan.RouteGeometry[i].Equal(loc) {
			t.Errorf("RouteGeometry[%d] = %+v, want %+v", i, plan.RouteGeometry[i], loc)
		}
	}
}

func TestSummarizeEmptySegments(t *testing.T) {
	plan := Summarize(nil, nil, nil)
	if plan.TotalDistanceMiles != 0 || len(plan.Segments) != 0 {
		t.Errorf("plan = %+v, want zero value", plan)
	}
}
