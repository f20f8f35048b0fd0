package appointment

import (
	"time"

	"github.com/glowline/salon-scheduler/internal/models"
)

// DayWindow projects a weekday working-hours row onto a concrete day,
// in that day's location. ok is false for a missing or inactive row —
// a non-working day, not an error.
func DayWindow(wh *models.WorkingHours, day time.Time) (open, close time.Time, ok bool) {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return time.Time{}, time.Time{}, false
	}

	loc := day.Location()

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	open, okStart := parseHM(wh.StartTime)
	close, okEnd := parseHM(wh.EndTime)
	if !okStart || !okEnd || !open.Before(close) {
		return time.Time{}, time.Time{}, false
	}

	return open, close, true
}

// WithinWorkingHours reports whether [start, end) sits inside the
// staff member's window for that day.
func WithinWorkingHours(wh *models.WorkingHours, start, end time.Time) bool {
	open, close, ok := DayWindow(wh, start)
	if !ok {
		return false
	}
	return !start.Before(open) && !end.After(close)
}
