// Package summarizer implements the Trip Summarizer of spec §4.6: a pure
// fold over a finished segment list into the totals of a RoutePlan, plus
// the full-resolution route geometry assembled from the two oracle legs.
package summarizer

import (
	"hosplanner/internal/domain"
)

// Summarize folds segments (already in strictly chronological order, as
// the Coordinator guarantees) into a complete RoutePlan. leg1Geometry and
// leg2Geometry are the Routing Oracle Client's own polylines for
// drive_to_pickup and drive_to_drop_off; route_geometry is their
// concatenation with the shared junction point de-duplicated, exactly as
// the original's combine_geometries does
// (_examples/original_source/routing/trip_summarizer.py) — not a
// reconstruction from segment endpoints, which would collapse to one
// point per duty-boundary whenever a leg is fractured by a rest/break/fuel
// stop.
func Summarize(segments []domain.Segment, leg1Geometry, leg2Geometry []domain.Location) domain.RoutePlan {
	if len(segments) == 0 {
		return domain.RoutePlan{}
	}

	plan := domain.RoutePlan{
		Segments:  segments,
		StartTime: segments[0].StartTime,
		EndTime:   segments[len(segments)-1].EndTime,
	}

	for _, s := range segments {
		plan.TotalDistanceMiles += s.DistanceMiles

		d := s.EndTime.Sub(s.StartTime)
		switch s.Status {
		case domain.DutyDriving:
			plan.DrivingTime += d
		case domain.DutyOffDuty, domain.DutySleeperBerth:
			plan.RestingTime += d
		}
	}

	plan.TotalDurationHours = plan.EndTime.Sub(plan.StartTime).Hours()
	plan.RouteGeometry = combineGeometries(leg1Geometry, leg2Geometry)

	return plan
}

// combineGeometries concatenates geometry1 and geometry2, dropping
// geometry2's leading point when it duplicates geometry1's trailing point
// (spec §4.6: "duplicate junction points removed").
func combineGeometries(geometry1, geometry2 []domain.Location) []domain.Location {
	if len(geometry1) > 0 && len(geometry2) > 0 && geometry1[len(geometry1)-1].Equal(geometry2[0]) {
		geometry2 = geometry2[1:]
	}

	merged := make([]domain.Location, 0, len(geometry1)+len(geometry2))
	merged = append(merged, geometry1...)
	merged = append(merged, geometry2...)
	return merged
}
