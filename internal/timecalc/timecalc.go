package timecalc

import (
	"fmt"
	"strings"
	"time"
)

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from a to b, ignoring the
// time of day. It is negative when b lies before a.
func DaysBetween(a, b time.Time) int {
	// Compare civil dates in UTC so DST shifts cannot produce 23h or 25h days.
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// DueLabel turns a due date into the label shown on assignment cards,
// e.g. "Due Today", "Due Tomorrow" or "Due in 3 days".
func DueLabel(due, now time.Time) string {
	switch d := DaysBetween(now, due); {
	case d < 0:
		return "Overdue"
	case d == 0:
		return "Due Today"
	case d == 1:
		return "Due Tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", d)
	}
}

// ClockLabel converts a 24-hour "HH:MM" value, as produced by a time
// picker, into a 12-hour label like "2:30 PM". Anything else is returned
// unchanged with ok == false.
func ClockLabel(s string) (label string, ok bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("15:04", s)
	if err != nil {
		return s, false
	}
	return t.Format("3:04 PM"), true
}

// ParseDay reads "today", "tomorrow" or a YYYY-MM-DD date in now's location
// and returns the start of that day. Empty input yields the zero time.
func ParseDay(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return time.Time{}, nil
	case "today":
		return StartOfDay(now), nil
	case "tomorrow":
		return StartOfDay(now).AddDate(0, 0, 1), nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not today, tomorrow or YYYY-MM-DD", s)
	}
	return d, nil
}
