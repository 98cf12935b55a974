// Package apperr defines the error kinds of spec §7, checked upward via
// errors.Is/errors.As and never swallowed. Handlers map these to HTTP
// status codes; nothing below internal/api needs to know about HTTP.
package apperr

import "errors"

var (
	// ErrInvalidRequest marks a missing field, malformed coordinate, an
	// out-of-range current_cycle_used, or a non-monotone time in a request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownRuleSet marks a rule-set tag that is not registered in the
	// HOS rule table.
	ErrUnknownRuleSet = errors.New("unknown rule set")

	// ErrRoutingUnavailable marks a routing oracle transport failure or
	// timeout. Callers may retry.
	ErrRoutingUnavailable = errors.New("routing oracle unavailable")

	// ErrRoutingMalformed marks a routing oracle response that violated the
	// expected schema. Not retried.
	ErrRoutingMalformed = errors.New("routing oracle response malformed")

	// ErrPlanInfeasible marks a planner state where no forward progress is
	// possible; this indicates a bug or corrupted clock state, not a user
	// error.
	ErrPlanInfeasible = errors.New("plan infeasible")
)
