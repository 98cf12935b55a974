package domain

import "time"

// SegmentType identifies the kind of activity a Segment records.
type SegmentType string

const (
	SegmentDriveToPickup      SegmentType = "drive_to_pickup"
	SegmentDriveToDropOff     SegmentType = "drive_to_drop_off"
	SegmentMandatoryBreak     SegmentType = "mandatory_driving_break"
	SegmentDailyRest          SegmentType = "daily_rest"
	SegmentCycleRestart       SegmentType = "cycle_restart"
	SegmentFueling            SegmentType = "fueling"
	SegmentPickup             SegmentType = "pickup"
	SegmentDropOff            SegmentType = "drop_off"
)

// DutyStatus is one of the four FMCSA duty states a driver may occupy
// during a Segment.
type DutyStatus string

const (
	DutyDriving        DutyStatus = "On Duty (Driving)"
	DutyOnDutyNotDriving DutyStatus = "On Duty (Not Driving)"
	DutyOffDuty        DutyStatus = "Off Duty"
	DutySleeperBerth   DutyStatus = "Sleeper Berth"
)

// Segment is an immutable, contiguous interval of a single duty state in a
// finished RoutePlan. Consecutive segments in a RoutePlan cover the trip
// without gaps or overlaps: segment i+1's StartTime equals segment i's
// EndTime.
type Segment struct {
	Type             SegmentType
	StartTime        time.Time
	EndTime          time.Time
	DurationHours    float64
	DistanceMiles    float64
	Status           DutyStatus
	StartCoordinates Location
	EndCoordinates   Location
	Label            string
}

// NewRestSegment builds a stationary (zero-distance) Segment covering
// duration starting at start: a rest, break, daily reset, cycle restart, or
// fuel stop. Both the Segment Planner and the Activity Planner build every
// rest, break, restart and fuel segment this way; pickup and drop-off
// activity segments are built by the Activity Planner directly.
func NewRestSegment(segType SegmentType, start time.Time, duration time.Duration, status DutyStatus, at Location) Segment {
	return Segment{
		Type:             segType,
		StartTime:        start,
		EndTime:          start.Add(duration),
		DurationHours:    duration.Hours(),
		DistanceMiles:    0,
		Status:           status,
		StartCoordinates: at,
		EndCoordinates:   at,
	}
}
