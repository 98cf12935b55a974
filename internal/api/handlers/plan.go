package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"hosplanner/internal/api/dto"
	"hosplanner/internal/apperr"
	"hosplanner/internal/coordinator"
	"hosplanner/internal/domain"
	"hosplanner/internal/hosrules"
	"hosplanner/internal/ports"
	"hosplanner/internal/services/dailylog"
)

// PlanHandler wires the Trip Coordinator (and, when configured, an audit
// sink) behind the plan_trip HTTP endpoint of spec §6.
type PlanHandler struct {
	Oracle     ports.RoutingOracle
	Audit      ports.AuditSink // may be nil: audit logging is ambient, not required for a plan to succeed
	RuleSet    hosrules.RuleSet
	RuleSetTag string
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	if err := validatePlanRequest(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	current := toLocation(req.CurrentLocation)
	pickup := toLocation(req.PickupLocation)
	dropOff := toLocation(req.DropOffLocation)

	plan, err := coordinator.PlanTrip(r.Context(), h.Oracle, h.RuleSet, current, pickup, dropOff, req.CurrentCycleUsed, req.StartTime)
	if err != nil {
		writePlanError(w, r, err)
		return
	}

	if h.Audit != nil {
		if err := h.Audit.RecordPlan(r.Context(), plan, h.RuleSetTag); err != nil {
			// Audit failure does not invalidate an already-successful plan
			// (spec §7: partial plans are never returned, but this isn't one).
			logAuditFailure(r, err)
		}
	}

	offset := time.Duration(req.TimezoneOffsetMinutes) * time.Minute
	logs := dailylog.BuildDailyLogs(shiftPlanTimes(plan, offset))
	writeJSON(w, r, http.StatusOK, toPlanResponse(plan, logs, offset))
}

func validatePlanRequest(req dto.PlanRequest) error {
	if req.CurrentCycleUsed < 0 || req.CurrentCycleUsed > 70 {
		return apperr.ErrInvalidRequest
	}
	if req.StartTime.IsZero() {
		return apperr.ErrInvalidRequest
	}
	if !validCoordinates(req.CurrentLocation) || !validCoordinates(req.PickupLocation) || !validCoordinates(req.DropOffLocation) {
		return apperr.ErrInvalidRequest
	}
	return nil
}

func validCoordinates(l dto.LocationDTO) bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

func writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidRequest), errors.Is(err, apperr.ErrUnknownRuleSet):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrRoutingUnavailable):
		writeError(w, r, http.StatusBadGateway, err.Error())
	case errors.Is(err, apperr.ErrRoutingMalformed):
		writeError(w, r, http.StatusBadGateway, err.Error())
	case errors.Is(err, apperr.ErrPlanInfeasible):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func toLocation(l dto.LocationDTO) domain.Location {
	return domain.Location{Latitude: l.Latitude, Longitude: l.Longitude, Label: l.Label}
}

func fromLocation(l domain.Location) dto.LocationDTO {
	return dto.LocationDTO{Latitude: l.Latitude, Longitude: l.Longitude, Label: l.Label}
}

func toPlanResponse(plan domain.RoutePlan, logs []dailylog.DailyLog, offset time.Duration) dto.PlanResponse {
	segments := make([]dto.SegmentDTO, 0, len(plan.Segments))
	for _, s := range plan.Segments {
		segments = append(segments, dto.SegmentDTO{
			Type:             string(s.Type),
			StartTime:        renderOffset(s.StartTime, offset),
			EndTime:          renderOffset(s.EndTime, offset),
			DurationHours:    s.DurationHours,
			DistanceMiles:    s.DistanceMiles,
			Status:           string(s.Status),
			StartCoordinates: fromLocation(s.StartCoordinates),
			EndCoordinates:   fromLocation(s.EndCoordinates),
		})
	}

	geometry := make([]dto.LocationDTO, 0, len(plan.RouteGeometry))
	for _, loc := range plan.RouteGeometry {
		geometry = append(geometry, fromLocation(loc))
	}

	dailyLogDTOs := make([]dto.DailyLogDTO, 0, len(logs))
	for _, l := range logs {
		entries := make([]dto.LogEntryDTO, 0, len(l.Entries))
		for _, e := range l.Entries {
			entries = append(entries, dto.LogEntryDTO{
				Status:      string(e.Status),
				StartHour:   e.StartHour,
				StartMinute: e.StartMinute,
				EndHour:     e.EndHour,
				EndMinute:   e.EndMinute,
			})
		}
		dailyLogDTOs = append(dailyLogDTOs, dto.DailyLogDTO{
			Date:              l.Date.Format("2006-01-02"),
			TotalMilesDriving: l.TotalMilesDriving,
			Entries:           entries,
		})
	}

	return dto.PlanResponse{
		Segments:           segments,
		TotalDistanceMiles: plan.TotalDistanceMiles,
		TotalDurationHours: plan.TotalDurationHours,
		StartTime:          renderOffset(plan.StartTime, offset),
		EndTime:            renderOffset(plan.EndTime, offset),
		RouteGeometry:      geometry,
		DrivingTimeHours:   plan.DrivingTime.Hours(),
		RestingTimeHours:   plan.RestingTime.Hours(),
		DailyLogs:          dailyLogDTOs,
	}
}

func renderOffset(t time.Time, offset time.Duration) string {
	if t.IsZero() {
		return ""
	}
	return t.In(zoneForOffset(offset)).Format(time.RFC3339)
}

func zoneForOffset(offset time.Duration) *time.Location {
	return time.FixedZone("", int(offset.Seconds()))
}

// shiftPlanTimes returns a copy of plan with every segment and plan-level
// timestamp converted into offset's zone, so the Daily Log Builder's day and
// hour/minute boundaries (derived from time.Time.Hour/Minute/Location) agree
// with the timezone_offset_minutes-rendered segment times in the same
// response, instead of being computed against the plan's raw (UTC) times.
func shiftPlanTimes(plan domain.RoutePlan, offset time.Duration) domain.RoutePlan {
	zone := zoneForOffset(offset)

	shifted := plan
	shifted.StartTime = plan.StartTime.In(zone)
	shifted.EndTime = plan.EndTime.In(zone)

	shifted.Segments = make([]domain.Segment, len(plan.Segments))
	for i, s := range plan.Segments {
		s.StartTime = s.StartTime.In(zone)
		s.EndTime = s.EndTime.In(zone)
		shifted.Segments[i] = s
	}

	return shifted
}
