// Package coordinator implements the Trip Coordinator of spec §4.5: it
// owns the DriverClock and the growing segment list for one trip request,
// orchestrating the two oracle fetches and the segment/activity planners
// in the order spec §4.5 mandates.
package coordinator

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"hosplanner/internal/domain"
	"hosplanner/internal/driverclock"
	"hosplanner/internal/hosrules"
	"hosplanner/internal/ports"
	"hosplanner/internal/services/activityplanner"
	"hosplanner/internal/services/segmentplanner"
	"hosplanner/internal/summarizer"
)

// PlanTrip executes spec §4.5's seven steps: it initializes a DriverClock,
// concurrently fetches both leg geometries (replacing the teacher's
// hand-rolled WaitGroup/semaphore fan-out in its delivery-planning code
// with golang.org/x/sync/errgroup, which cancels the sibling fetch the
// moment either one fails), then plans leg 1, the pickup activity, leg 2,
// and the drop-off activity strictly in sequence against the single
// shared clock, and finally hands the segment list and the two legs' own
// geometries to the Summarizer.
func PlanTrip(
	ctx context.Context,
	oracle ports.RoutingOracle,
	rules hosrules.RuleSet,
	current, pickup, dropOff domain.Location,
	currentCycleUsedHours float64,
	startTime time.Time,
) (domain.RoutePlan, error) {
	var leg1, leg2 domain.RouteInformation

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		info, err := oracle.FetchRoute(gctx, current, pickup)
		if err != nil {
			return err
		}
		leg1 = info
		return nil
	})
	group.Go(func() error {
		info, err := oracle.FetchRoute(gctx, pickup, dropOff)
		if err != nil {
			return err
		}
		leg2 = info
		return nil
	})
	if err := group.Wait(); err != nil {
		return domain.RoutePlan{}, err
	}

	clock := driverclock.New(rules, currentCycleUsedHours, startTime)
	segments := make([]domain.Segment, 0)

	legSegs, err := segmentplanner.PlanLeg(leg1, domain.SegmentDriveToPickup, clock)
	if err != nil {
		return domain.RoutePlan{}, err
	}
	segments = append(segments, legSegs...)

	pickupSegs, err := activityplanner.PlanActivity(domain.SegmentPickup, pickup, clock, rules)
	if err != nil {
		return domain.RoutePlan{}, err
	}
	segments = append(segments, pickupSegs...)

	legSegs, err = segmentplanner.PlanLeg(leg2, domain.SegmentDriveToDropOff, clock)
	if err != nil {
		return domain.RoutePlan{}, err
	}
	segments = append(segments, legSegs...)

	dropOffSegs, err := activityplanner.PlanActivity(domain.SegmentDropOff, dropOff, clock, rules)
	if err != nil {
		return domain.RoutePlan{}, err
	}
	segments = append(segments, dropOffSegs...)

	return summarizer.Summarize(segments, leg1.Geometry, leg2.Geometry), nil
}
