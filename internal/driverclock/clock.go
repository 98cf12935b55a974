// Package driverclock implements the DriverClock state machine of spec §3:
// the HOS state a single trip request threads through the segment and
// activity planners. A Clock is created once per trip request and mutated
// exclusively by those planners through the methods below; no two planners
// run simultaneously against the same Clock (spec §9).
package driverclock

import (
	"fmt"
	"time"

	"hosplanner/internal/apperr"
	"hosplanner/internal/hosrules"
)

// DutyState is the clock's internal duty-state tag.
type DutyState string

const (
	Driving          DutyState = "DRIVING"
	OnDutyNotDriving DutyState = "ON_DUTY_NOT_DRIVING"
	OffDuty          DutyState = "OFF_DUTY"
	Sleeper          DutyState = "SLEEPER"
)

// Clock tracks remaining driving time, on-duty window, 30-minute-break
// eligibility, and 8-day cumulative duty total for one trip request. All
// counters are held as time.Duration (nanosecond resolution) internally;
// hours are only ever derived at the boundary, per spec §9.
type Clock struct {
	rules hosrules.RuleSet

	drivingUsedInShift  time.Duration
	onDutyUsedInShift   time.Duration
	drivingSinceBreak   time.Duration
	cycleUsed           time.Duration
	milesSinceLastFuel  float64
	current             time.Time
	state               DutyState
}

// New creates a Clock for a trip request. cycleUsedHours is the driver's
// accumulated rolling 8-day on-duty total at the start of the trip, in
// hours (spec: current_cycle_used, range [0, 70]).
func New(rules hosrules.RuleSet, cycleUsedHours float64, startTime time.Time) *Clock {
	return &Clock{
		rules:     rules,
		cycleUsed: hoursToDuration(cycleUsedHours),
		current:   startTime,
		state:     OffDuty,
	}
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

// HoursToDuration converts fractional hours (as carried on RouteInformation
// and RuleSet) to a time.Duration, the inverse of DurationHours. Exported so
// callers outside this package (e.g. the Segment Planner) share the same
// conversion rather than reimplementing it.
func HoursToDuration(h float64) time.Duration {
	return hoursToDuration(h)
}

// DurationHours converts a time.Duration to fractional hours for reporting
// at the API boundary (spec §9).
func DurationHours(d time.Duration) float64 {
	return float64(d) / float64(time.Hour)
}

// --- queries ---

func (c *Clock) Now() time.Time { return c.current }

func (c *Clock) State() DutyState { return c.state }

func (c *Clock) MilesSinceLastFuel() float64 { return c.milesSinceLastFuel }

func (c *Clock) CycleUsed() time.Duration { return c.cycleUsed }

// RemainingDrivingInShift is the remaining driving time before the 11-hour
// shift cap (may be negative; callers treat <= 0 as exhausted).
func (c *Clock) RemainingDrivingInShift() time.Duration {
	return c.rules.MaxDriving - c.drivingUsedInShift
}

// RemainingWindow is the remaining on-duty window before the 14-hour cap.
func (c *Clock) RemainingWindow() time.Duration {
	return c.rules.MaxOnDutyWindow - c.onDutyUsedInShift
}

// RemainingBeforeBreak is the remaining driving time before the 8-hour
// mandatory-break trigger.
func (c *Clock) RemainingBeforeBreak() time.Duration {
	return c.rules.DrivingBeforeBreak - c.drivingSinceBreak
}

// RemainingCycle is the remaining on-duty time before the 70-hour/8-day cap.
func (c *Clock) RemainingCycle() time.Duration {
	return c.rules.MaxCycle - c.cycleUsed
}

// FuelFitsWindow reports whether a fuel stop can be taken without pushing
// the on-duty window past its cap. Callers must check this (and
// FuelFitsCycle) before calling Fuel when a fuel stop is due but the window
// is close to exhausted, and take a daily rest first otherwise: Fuel, unlike
// TakeDailyRest/TakeCycleRestart, does not reset the window it consumes
// from.
func (c *Clock) FuelFitsWindow() bool {
	return c.rules.FuelStop <= c.RemainingWindow()+graceTolerance
}

// FuelFitsCycle reports whether a fuel stop can be taken without pushing the
// rolling cycle total past its cap. See FuelFitsWindow.
func (c *Clock) FuelFitsCycle() bool {
	return c.rules.FuelStop <= c.RemainingCycle()+graceTolerance
}

// HoursToNextFuelStop returns the driving time remaining before the next
// 1000-mile fuel interval is reached, given the leg's average speed in
// miles per hour. A zero or negative average speed means the leg has no
// well-defined speed (e.g. zero duration); callers must skip fuel
// scheduling in that case rather than call this method.
func (c *Clock) HoursToNextFuelStop(avgSpeedMPH float64) time.Duration {
	remainingMiles := c.rules.FuelIntervalMiles - c.milesSinceLastFuel
	hours := remainingMiles / avgSpeedMPH
	return hoursToDuration(hours)
}

// --- mutations ---

// Drive advances the clock by d (a driving sub-interval already clamped by
// the caller to respect every remaining budget) and distanceMiles driven
// during it. It enforces the §3 invariants and returns ErrPlanInfeasible if
// the caller asked for more than the clock can grant.
func (c *Clock) Drive(d time.Duration, distanceMiles float64) error {
	if d <= 0 {
		return fmt.Errorf("driverclock: drive duration must be positive: %w", apperr.ErrPlanInfeasible)
	}
	if d > c.RemainingDrivingInShift()+graceTolerance ||
		d > c.RemainingWindow()+graceTolerance ||
		d > c.RemainingBeforeBreak()+graceTolerance ||
		d > c.RemainingCycle()+graceTolerance {
		return fmt.Errorf("driverclock: drive(%s) exceeds a remaining budget: %w", d, apperr.ErrPlanInfeasible)
	}

	c.drivingUsedInShift += d
	c.onDutyUsedInShift += d
	c.drivingSinceBreak += d
	c.cycleUsed += d
	c.milesSinceLastFuel += distanceMiles
	c.current = c.current.Add(d)
	c.state = Driving

	return c.checkInvariants()
}

// TakeMandatoryBreak consumes the rule set's mandatory off-duty break
// (30 minutes under INTERSTATE) and resets only drivingSinceBreak. It does
// not consume on-duty window or cycle hours. Returns the duration taken.
func (c *Clock) TakeMandatoryBreak() time.Duration {
	d := c.rules.MandatoryBreak
	c.drivingSinceBreak = 0
	c.current = c.current.Add(d)
	c.state = OffDuty
	return d
}

// TakeDailyRest consumes the rule set's daily reset (10 hours under
// INTERSTATE), resetting shift, window, and break counters. The cycle
// total persists across a daily rest. Returns the duration taken.
func (c *Clock) TakeDailyRest() time.Duration {
	d := c.rules.MinRest
	c.drivingUsedInShift = 0
	c.onDutyUsedInShift = 0
	c.drivingSinceBreak = 0
	c.current = c.current.Add(d)
	c.state = Sleeper
	return d
}

// TakeCycleRestart consumes the rule set's cycle restart (34 hours under
// INTERSTATE), resetting cycle, shift, window, and break counters. Returns
// the duration taken.
func (c *Clock) TakeCycleRestart() time.Duration {
	d := c.rules.Restart
	c.cycleUsed = 0
	c.drivingUsedInShift = 0
	c.onDutyUsedInShift = 0
	c.drivingSinceBreak = 0
	c.current = c.current.Add(d)
	c.state = OffDuty
	return d
}

// Fuel consumes the rule set's fuel-stop duration (15 minutes under
// INTERSTATE) as on-duty-not-driving time: it resets milesSinceLastFuel and
// consumes window and cycle hours, but not driving or break counters.
// Returns the duration taken and an error if doing so would push the
// window or cycle counter past its cap (the caller reached the fuel
// branch with only a sliver of window or cycle remaining).
func (c *Clock) Fuel() (time.Duration, error) {
	d := c.rules.FuelStop
	c.milesSinceLastFuel = 0
	c.onDutyUsedInShift += d
	c.cycleUsed += d
	c.current = c.current.Add(d)
	c.state = OnDutyNotDriving
	return d, c.checkInvariants()
}

// DoActivity consumes d (a fixed pickup/drop-off activity duration) as
// on-duty-not-driving time: it consumes window and cycle hours, but not
// driving or break counters.
func (c *Clock) DoActivity(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("driverclock: activity duration must be positive: %w", apperr.ErrPlanInfeasible)
	}
	c.onDutyUsedInShift += d
	c.cycleUsed += d
	c.current = c.current.Add(d)
	c.state = OnDutyNotDriving
	return c.checkInvariants()
}

// graceTolerance absorbs floating-point->Duration conversion error at the
// nanosecond scale; it is far smaller than any HOS-meaningful interval.
const graceTolerance = 10 * time.Microsecond

func (c *Clock) checkInvariants() error {
	switch {
	case c.drivingUsedInShift < -graceTolerance || c.drivingUsedInShift > c.rules.MaxDriving+graceTolerance:
		return fmt.Errorf("driverclock: driving_hours_used_in_shift=%s out of bounds: %w", c.drivingUsedInShift, apperr.ErrPlanInfeasible)
	case c.onDutyUsedInShift < -graceTolerance || c.onDutyUsedInShift > c.rules.MaxOnDutyWindow+graceTolerance:
		return fmt.Errorf("driverclock: on_duty_hours_used_in_shift=%s out of bounds: %w", c.onDutyUsedInShift, apperr.ErrPlanInfeasible)
	case c.drivingSinceBreak < -graceTolerance || c.drivingSinceBreak > c.rules.DrivingBeforeBreak+graceTolerance:
		return fmt.Errorf("driverclock: driving_since_last_break_hours=%s out of bounds: %w", c.drivingSinceBreak, apperr.ErrPlanInfeasible)
	case c.cycleUsed < -graceTolerance || c.cycleUsed > c.rules.MaxCycle+graceTolerance:
		return fmt.Errorf("driverclock: cycle_hours_used=%s out of bounds: %w", c.cycleUsed, apperr.ErrPlanInfeasible)
	}
	return nil
}
