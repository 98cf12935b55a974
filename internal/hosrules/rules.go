// Package hosrules is the HOS Rule Table of spec §4.1: pure data, numeric
// limits keyed by a rule-set tag. It exists to keep regulatory policy
// testable in isolation from the planners that consume it.
package hosrules

import (
	"fmt"
	"time"

	"hosplanner/internal/apperr"
)

// RuleSet is an immutable record of HOS constants for one jurisdiction's
// rule tag. Durations are stored as time.Duration so downstream arithmetic
// never round-trips through floating-point hours (spec §9).
type RuleSet struct {
	MaxDriving          time.Duration
	MaxOnDutyWindow     time.Duration
	DrivingBeforeBreak  time.Duration
	MandatoryBreak      time.Duration
	MaxCycle            time.Duration
	MinRest             time.Duration
	Restart             time.Duration
	FuelIntervalMiles   float64
	FuelStop            time.Duration
	PickupActivity      time.Duration
	DropOffActivity     time.Duration
}

const TagInterstate = "INTERSTATE"

var registry = map[string]RuleSet{
	TagInterstate: {
		MaxDriving:         11 * time.Hour,
		MaxOnDutyWindow:    14 * time.Hour,
		DrivingBeforeBreak: 8 * time.Hour,
		MandatoryBreak:     30 * time.Minute,
		MaxCycle:           70 * time.Hour,
		MinRest:            10 * time.Hour,
		Restart:            34 * time.Hour,
		FuelIntervalMiles:  1000,
		FuelStop:           15 * time.Minute,
		PickupActivity:     1 * time.Hour,
		DropOffActivity:    1 * time.Hour,
	},
}

// Get returns the RuleSet registered under tag, or ErrUnknownRuleSet if tag
// is not registered.
func Get(tag string) (RuleSet, error) {
	rs, ok := registry[tag]
	if !ok {
		return RuleSet{}, fmt.Errorf("get rule set %q: %w", tag, apperr.ErrUnknownRuleSet)
	}
	return rs, nil
}
