// Package dailylog implements the supplemental Daily Log Builder described
// in SPEC_FULL.md §4, grounded on original_source/trip_planner/services.py
// (TruckerLogService): it folds a finished RoutePlan into per-24-hour-day
// ELD-style log entries, splitting segments that span midnight
// proportionally and filling duty-state gaps with synthesized Off Duty
// entries. Like the Trip Summarizer, it is a pure, read-only fold over the
// segment list — no clock or network access.
package dailylog

import (
	"time"

	"hosplanner/internal/domain"
)

// LogEntry is one duty-state interval within a single day's log.
type LogEntry struct {
	Status      domain.DutyStatus
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	Location    domain.Location
}

// DailyLog is one 24-hour day's worth of log entries.
type DailyLog struct {
	Date              time.Time
	TotalMilesDriving float64
	From              domain.Location
	To                domain.Location
	Entries           []LogEntry
}

// BuildDailyLogs folds plan's segments into one DailyLog per calendar day
// the trip spans, in the segments' own location (no timezone conversion:
// that is the API layer's concern, per spec §6's timezone_offset_minutes).
func BuildDailyLogs(plan domain.RoutePlan) []DailyLog {
	if len(plan.Segments) == 0 {
		return nil
	}

	logsByDay := make(map[string]*DailyLog)
	order := make([]string, 0)

	addEntry := func(day time.Time, entry LogEntry, miles float64, from, to domain.Location) {
		key := dayKey(day)
		log, ok := logsByDay[key]
		if !ok {
			log = &DailyLog{Date: startOfDay(day), From: from, To: to}
			logsByDay[key] = log
			order = append(order, key)
		}
		log.Entries = append(log.Entries, entry)
		log.TotalMilesDriving += miles
		log.To = to
	}

	for _, seg := range plan.Segments {
		splitSegmentAcrossDays(seg, addEntry)
	}

	fillGapsWithOffDuty(logsByDay, order)

	logs := make([]DailyLog, 0, len(order))
	for _, key := range order {
		logs = append(logs, *logsByDay[key])
	}
	return logs
}

func splitSegmentAcrossDays(seg domain.Segment, add func(day time.Time, entry LogEntry, miles float64, from, to domain.Location)) {
	start := seg.StartTime
	end := seg.EndTime
	totalSeconds := end.Sub(start).Seconds()

	for start.Before(end) {
		dayEnd := startOfDay(start).Add(24 * time.Hour)
		segmentEnd := end
		if dayEnd.Before(end) {
			segmentEnd = dayEnd
		}

		var milesThisSplit float64
		if totalSeconds > 0 {
			fraction := segmentEnd.Sub(start).Seconds() / totalSeconds
			milesThisSplit = fraction * seg.DistanceMiles
		}

		add(start, LogEntry{
			Status:      seg.Status,
			StartHour:   start.Hour(),
			StartMinute: start.Minute(),
			EndHour:     hourOf(segmentEnd, start),
			EndMinute:   segmentEnd.Minute(),
			Location:    seg.StartCoordinates,
		}, milesThisSplit, seg.StartCoordinates, seg.EndCoordinates)

		start = segmentEnd
	}
}

// hourOf renders 24:00 for a split that ends exactly at midnight, rather
// than rolling over to 0:00 of the next day's entry.
func hourOf(t, splitStart time.Time) int {
	if t.Hour() == 0 && t.Minute() == 0 && t.After(splitStart) {
		return 24
	}
	return t.Hour()
}

func fillGapsWithOffDuty(logsByDay map[string]*DailyLog, order []string) {
	for _, key := range order {
		log := logsByDay[key]
		entries := log.Entries
		if len(entries) == 0 {
			continue
		}

		filled := make([]LogEntry, 0, len(entries)+2)
		cursorHour, cursorMinute := 0, 0

		for _, e := range entries {
			if e.StartHour > cursorHour || (e.StartHour == cursorHour && e.StartMinute > cursorMinute) {
				filled = append(filled, LogEntry{
					Status:      domain.DutyOffDuty,
					StartHour:   cursorHour,
					StartMinute: cursorMinute,
					EndHour:     e.StartHour,
					EndMinute:   e.StartMinute,
					Location:    e.Location,
				})
			}
			filled = append(filled, e)
			cursorHour, cursorMinute = e.EndHour, e.EndMinute
		}

		if cursorHour < 24 {
			last := entries[len(entries)-1]
			filled = append(filled, LogEntry{
				Status:      domain.DutyOffDuty,
				StartHour:   cursorHour,
				StartMinute: cursorMinute,
				EndHour:     24,
				EndMinute:   0,
				Location:    last.Location,
			})
		}

		log.Entries = filled
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return startOfDay(t).Format("2006-01-02")
}
