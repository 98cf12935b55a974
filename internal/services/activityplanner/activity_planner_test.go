package activityplanner

import (
	"testing"
	"time"

	"hosplanner/internal/domain"
	"hosplanner/internal/driverclock"
	"hosplanner/internal/hosrules"
)

func rules(t *testing.T) hosrules.RuleSet {
	t.Helper()
	rs, err := hosrules.Get(hosrules.TagInterstate)
	if err != nil {
		t.Fatalf("hosrules.Get: %v", err)
	}
	return rs
}

// S1. Degenerate zero-leg: two activities, each 1h on-duty-not-driving.
func TestPlanActivityNoRestNeeded(t *testing.T) {
	rs := rules(t)
	clock := driverclock.New(rs, 0, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))
	loc := domain.Location{Latitude: 40, Longitude: -74}

	segs, err := PlanActivity(domain.SegmentPickup, loc, clock, rs)
	if err != nil {
		t.Fatalf("PlanActivity: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("len(segs) = %d, want 1", len(segs))
	}
	s := segs[0]
	if s.Type != domain.SegmentPickup || s.DurationHours != 1 || s.Status != domain.DutyOnDutyNotDriving {
		t.Errorf("segs[0] = %+v", s)
	}
	if !s.StartCoordinates.Equal(loc) || !s.EndCoordinates.Equal(loc) {
		t.Errorf("activity coordinates = %+v/%+v, want %+v for both", s.StartCoordinates, s.EndCoordinates, loc)
	}

	segs2, err := PlanActivity(domain.SegmentDropOff, loc, clock, rs)
	if err != nil {
		t.Fatalf("PlanActivity drop_off: %v", err)
	}
	if len(segs2) != 1 || segs2[0].Type != domain.SegmentDropOff {
		t.Fatalf("drop_off segs = %+v", segs2)
	}

	if got := driverclock.DurationHours(clock.CycleUsed()); got != 2 {
		t.Errorf("cycle used = %v, want 2 (two 1h activities)", got)
	}
}

func TestPlanActivityInsertsRestWhenWindowExhausted(t *testing.T) {
	rs := rules(t)
	clock := driverclock.New(rs, 0, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))

	// Consume on-duty window hours (as prior activity time, so the 11h
	// driving cap is untouched) right up to within one activity of the
	// 14-hour window limit.
	if err := clock.DoActivity(rs.MaxOnDutyWindow - 30*time.Minute); err != nil {
		t.Fatalf("DoActivity: %v", err)
	}

	loc := domain.Location{Latitude: 1, Longitude: 1}
	segs, err := PlanActivity(domain.SegmentPickup, loc, clock, rs)
	if err != nil {
		t.Fatalf("PlanActivity: %v", err)
	}

	if len(segs) != 2 {
		t.Fatalf("len(segs) = %d, want 2 (rest, pickup); got %+v", len(segs), segs)
	}
	if segs[0].Type != domain.SegmentDailyRest {
		t.Errorf("segs[0].Type = %v, want daily_rest", segs[0].Type)
	}
	if segs[1].Type != domain.SegmentPickup {
		t.Errorf("segs[1].Type = %v, want pickup", segs[1].Type)
	}
}
