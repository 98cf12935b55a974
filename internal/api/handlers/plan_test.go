package handlers

import (
	"testing"
	"time"

	"hosplanner/internal/domain"
)

func TestShiftPlanTimesAlignsDailyLogBoundaryWithRenderedOffset(t *testing.T) {
	// 23:30 UTC is 07:30 the next day at UTC+8, which is what the rendered
	// segment timestamp (via renderOffset) will show; the Daily Log Builder
	// must see the same local hour so its day/hour boundaries agree.
	start := time.Date(2025, 1, 1, 23, 30, 0, 0, time.UTC)
	plan := domain.RoutePlan{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Segments: []domain.Segment{
			{
				Type: domain.SegmentDriveToPickup, Status: domain.DutyDriving,
				StartTime: start, EndTime: start.Add(time.Hour),
				DistanceMiles: 50,
			},
		},
	}

	offset := 8 * time.Hour
	shifted := shiftPlanTimes(plan, offset)

	// shiftPlanTimes must not change the instant represented, only the
	// Location segments/plan timestamps carry (so dailylog's Hour()/Day()
	// reads agree with renderOffset's rendering of the same instant).
	if !shifted.Segments[0].StartTime.Equal(start) {
		t.Errorf("shifted segment start = %v, want same instant as %v", shifted.Segments[0].StartTime, start)
	}

	wantHour, wantDay := 7, 2
	if got := shifted.Segments[0].StartTime.Hour(); got != wantHour {
		t.Errorf("shifted segment start hour = %d, want %d", got, wantHour)
	}
	if got := shifted.Segments[0].StartTime.Day(); got != wantDay {
		t.Errorf("shifted segment start day = %d, want %d", got, wantDay)
	}

	if got, want := renderOffset(plan.Segments[0].StartTime, offset), "2025-01-02T07:30:00+08:00"; got != want {
		t.Errorf("renderOffset = %q, want %q", got, want)
	}
}
