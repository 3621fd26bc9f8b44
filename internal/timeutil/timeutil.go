package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

const (
	displayDateLayout = "Mon, Jan 2, 2006"
	kickoffLayout     = "15:04"
)

// ParseDate parses a YYYY-MM-DD date as midnight in loc (UTC when nil).
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

// FormatDate formats a time as YYYY-MM-DD in loc, or in its own zone when loc
// is nil. The zero time formats as "".
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

// FormatDisplayDate renders a fixture date for listings, e.g. "Sat, Apr 11, 2026".
// A nil location keeps t's own zone. The zero time renders as "TBD".
func FormatDisplayDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "TBD"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(displayDateLayout)
}

// FormatKickoff renders the kick-off clock time, e.g. "15:00".
func FormatKickoff(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(kickoffLayout)
}

// SameDay reports whether t falls on the calendar day of day, compared in day's location.
func SameDay(t, day time.Time) bool {
	t = t.In(day.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
