// Package segmentplanner implements the interstate Segment Planner of spec
// §4.3: given a free-flowing drive leg and the current DriverClock, it
// fractures the leg into compliant driving and mandatory-rest
// sub-segments.
package segmentplanner

import (
	"fmt"
	"time"

	"hosplanner/internal/apperr"
	"hosplanner/internal/domain"
	"hosplanner/internal/driverclock"
)

// epsilon absorbs floating-point->Duration rounding when comparing a
// remaining budget or leg duration to zero.
const epsilon = time.Microsecond

// maxIterations bounds the planning loop defensively; the algorithm always
// either drives a positive sub-interval or frees a budget via a rest, so a
// well-formed leg converges in far fewer iterations than this.
const maxIterations = 100_000

// PlanLeg emits the ordered list of segments that cover leg, mutating
// clock as it goes. segType must be drive_to_pickup or drive_to_drop_off.
func PlanLeg(leg domain.RouteInformation, segType domain.SegmentType, clock *driverclock.Clock) ([]domain.Segment, error) {
	legDurationRemaining := driverclock.HoursToDuration(leg.DurationHours)
	legDistanceRemaining := leg.DistanceMiles
	totalDistance := leg.DistanceMiles
	position := 0.0

	var avgSpeedMPH float64
	hasAvgSpeed := leg.DurationHours > 0 && leg.DistanceMiles > 0
	if hasAvgSpeed {
		avgSpeedMPH = leg.DistanceMiles / leg.DurationHours
	}

	segments := make([]domain.Segment, 0)

	for iteration := 0; legDurationRemaining > epsilon; iteration++ {
		if iteration >= maxIterations {
			return nil, fmt.Errorf("segment planner: exceeded %d iterations without completing leg: %w", maxIterations, apperr.ErrPlanInfeasible)
		}

		remainingDriving := clock.RemainingDrivingInShift()
		remainingWindow := clock.RemainingWindow()
		remainingBreak := clock.RemainingBeforeBreak()
		remainingCycle := clock.RemainingCycle()

		hoursToFuel := time.Duration(1<<62 - 1)
		if hasAvgSpeed {
			hoursToFuel = clock.HoursToNextFuelStop(avgSpeedMPH)
		}

		d := minDuration(remainingDriving, remainingWindow, remainingBreak, remainingCycle, legDurationRemaining, hoursToFuel)

		if d <= epsilon {
			currentCoord := coordinateAtFraction(leg.Geometry, safeFraction(position, totalDistance))
			segStart := clock.Now()

			// A fuel stop due now but too large for the window or cycle budget
			// it would draw from (Fuel, unlike the other rest kinds, doesn't
			// reset either) must not be taken as-is: fall through to whichever
			// reset actually frees the exhausted budget first.
			fuelDue := hoursToFuel <= epsilon
			fuelFits := !fuelDue || (clock.FuelFitsWindow() && clock.FuelFitsCycle())

			var (
				seg domain.Segment
				ok  bool
			)
			switch {
			case remainingCycle <= epsilon || (fuelDue && !clock.FuelFitsCycle()):
				dur := clock.TakeCycleRestart()
				seg, ok = domain.NewRestSegment(domain.SegmentCycleRestart, segStart, dur, domain.DutyOffDuty, currentCoord), true
			case remainingDriving <= epsilon || remainingWindow <= epsilon || (fuelDue && !clock.FuelFitsWindow()):
				dur := clock.TakeDailyRest()
				seg, ok = domain.NewRestSegment(domain.SegmentDailyRest, segStart, dur, domain.DutySleeperBerth, currentCoord), true
			case remainingBreak <= epsilon:
				dur := clock.TakeMandatoryBreak()
				seg, ok = domain.NewRestSegment(domain.SegmentMandatoryBreak, segStart, dur, domain.DutyOffDuty, currentCoord), true
			case fuelDue && fuelFits:
				dur, ferr := clock.Fuel()
				if ferr != nil {
					return nil, ferr
				}
				seg, ok = domain.NewRestSegment(domain.SegmentFueling, segStart, dur, domain.DutyOnDutyNotDriving, currentCoord), true
			}

			if !ok {
				return nil, fmt.Errorf("segment planner: no budget exhausted yet forward progress blocked: %w", apperr.ErrPlanInfeasible)
			}

			segments = append(segments, seg)
			continue
		}

		distanceDelta := 0.0
		if legDurationRemaining > 0 {
			distanceDelta = (driverclock.DurationHours(d) / driverclock.DurationHours(legDurationRemaining)) * legDistanceRemaining
		}

		startCoord := coordinateAtFraction(leg.Geometry, safeFraction(position, totalDistance))

		position += distanceDelta
		legDistanceRemaining -= distanceDelta
		legDurationRemaining -= d

		var endCoord domain.Location
		if legDurationRemaining <= epsilon && len(leg.Geometry) > 0 {
			// Final sub-segment: end exactly at the leg's end coordinate,
			// no rounding drift (spec §4.3 edge case).
			endCoord = leg.Geometry[len(leg.Geometry)-1]
			position = totalDistance
		} else {
			endCoord = coordinateAtFraction(leg.Geometry, safeFraction(position, totalDistance))
		}

		segStart := clock.Now()
		if err := clock.Drive(d, distanceDelta); err != nil {
			return nil, err
		}
		segEnd := clock.Now()

		segments = append(segments, domain.Segment{
			Type:             segType,
			StartTime:        segStart,
			EndTime:          segEnd,
			DurationHours:    driverclock.DurationHours(d),
			DistanceMiles:    distanceDelta,
			Status:           domain.DutyDriving,
			StartCoordinates: startCoord,
			EndCoordinates:   endCoord,
		})
	}

	return segments, nil
}

func safeFraction(position, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return position / total
}

func minDuration(ds ...time.Duration) time.Duration {
	m := ds[0]
	for _, d := range ds[1:] {
		if d < m {
			m = d
		}
	}
	return m
}
