package domain

import (
	"testing"
	"time"
)

func TestNewRestSegmentIsStationary(t *testing.T) {
	start := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	at := Location{Latitude: 1, Longitude: 2}

	seg := NewRestSegment(SegmentMandatoryBreak, start, 30*time.Minute, DutyOffDuty, at)

	if seg.DistanceMiles != 0 {
		t.Errorf("DistanceMiles = %v, want 0", seg.DistanceMiles)
	}
	if !seg.StartCoordinates.Equal(at) || !seg.EndCoordinates.Equal(at) {
		t.Errorf("rest segment moved: start=%+v end=%+v, want both %+v", seg.StartCoordinates, seg.EndCoordinates, at)
	}
	if !seg.EndTime.Equal(start.Add(30 * time.Minute)) {
		t.Errorf("EndTime = %v, want %v", seg.EndTime, start.Add(30*time.Minute))
	}
	if want := 0.5; seg.DurationHours != want {
		t.Errorf("DurationHours = %v, want %v", seg.DurationHours, want)
	}
}

func TestRouteKeySymmetricInputsProduceDistinctKeys(t *testing.T) {
	a := Location{Latitude: 10, Longitude: 20}
	b := Location{Latitude: 30, Longitude: 40}

	if RouteKey(a, b) == RouteKey(b, a) {
		t.Error("RouteKey should distinguish origin from destination")
	}
	if RouteKey(a, b) != RouteKey(a, b) {
		t.Error("RouteKey should be deterministic for the same inputs")
	}
}
