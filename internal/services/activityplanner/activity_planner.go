// Package activityplanner implements the Activity Planner of spec §4.4:
// pickup and drop-off activities, each costing one hour on-duty-not-driving,
// prefixed by whatever rest the driver clock requires first.
package activityplanner

import (
	"time"

	"hosplanner/internal/domain"
	"hosplanner/internal/driverclock"
	"hosplanner/internal/hosrules"
)

const epsilon = time.Microsecond

// maxPreRests bounds the number of rests inserted before an activity; one
// restart plus one daily rest is already generous headroom for any
// realistic clock state.
const maxPreRests = 8

// PlanActivity emits the rest segments (if any) required before segType
// (pickup or drop_off) and the activity segment itself, mutating clock as
// it goes. at is the pickup or drop-off location; the activity's start and
// end coordinates both equal it.
func PlanActivity(segType domain.SegmentType, at domain.Location, clock *driverclock.Clock, rules hosrules.RuleSet) ([]domain.Segment, error) {
	duration := rules.PickupActivity
	if segType == domain.SegmentDropOff {
		duration = rules.DropOffActivity
	}

	segments := make([]domain.Segment, 0, 1)

	// Consult the clock first: if the activity would exceed the on-duty
	// window or cycle limit, emit the appropriate rest first, per the same
	// hierarchy as §4.3 (spec §4.4, §9 resolves the pre-rest ambiguity as
	// cycle > daily).
	for i := 0; i < maxPreRests; i++ {
		if clock.RemainingCycle() >= duration+epsilon && clock.RemainingWindow() >= duration+epsilon {
			break
		}

		segStart := clock.Now()
		if clock.RemainingCycle() < duration+epsilon {
			dur := clock.TakeCycleRestart()
			segments = append(segments, domain.NewRestSegment(domain.SegmentCycleRestart, segStart, dur, domain.DutyOffDuty, at))
			continue
		}

		dur := clock.TakeDailyRest()
		segments = append(segments, domain.NewRestSegment(domain.SegmentDailyRest, segStart, dur, domain.DutySleeperBerth, at))
	}

	segStart := clock.Now()
	if err := clock.DoActivity(duration); err != nil {
		return nil, err
	}
	segEnd := clock.Now()

	segments = append(segments, domain.Segment{
		Type:             segType,
		StartTime:        segStart,
		EndTime:          segEnd,
		DurationHours:    driverclock.DurationHours(duration),
		DistanceMiles:    0,
		Status:           domain.DutyOnDutyNotDriving,
		StartCoordinates: at,
		EndCoordinates:   at,
	})

	return segments, nil
}
