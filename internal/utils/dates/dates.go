// Package dates holds the calendar helpers shared by the bill store, the
// aggregation engine and the HTTP layer.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// DisplayLayout renders a date the way the dashboard does ("Jun 15, 2024").
	DisplayLayout = "Jan 2, 2006"
	// MonthLabelLayout renders a chart bucket label ("Jun 24").
	MonthLabelLayout = "Jan 06"

	day = 24 * time.Hour
)

// ParseDate accepts either YYYY-MM-DD or RFC3339 and returns a calendar date:
// midnight UTC of the day written in s. For RFC3339 that is the date in the
// given offset, so "2024-06-15T23:30:00-05:00" yields 2024-06-15.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC3339", s)
	}
	return CalendarDate(t), nil
}

// CalendarDate drops the clock part of t, keeping the date as seen in t's
// location, and returns it as midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns midnight on the first day of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths returns the first day of the month n months after t's month.
// Working from the first of the month avoids day overflow (Jan 31 + 1 month).
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysUntil returns the ceiling of the whole days from ref to t.
// It is negative when t is more than a day before ref.
func DaysUntil(t, ref time.Time) int {
	d := t.Sub(ref)
	n := d / day
	if d%day > 0 {
		n++
	}
	return int(n)
}

// MonthLabel formats a month bucket label.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}

// FormatDate renders t as "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format(DisplayLayout)
}

// FormatRelative describes t relative to now: Today, Tomorrow, In N days,
// In N weeks (up to 30 days out), otherwise the formatted date.
func FormatRelative(t, now time.Time) string {
	diff := DaysUntil(t, now)
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff > 1 && diff <= 7:
		return fmt.Sprintf("In %d days", diff)
	case diff > 7 && diff <= 30:
		weeks := diff / 7
		if weeks == 1 {
			return "In 1 week"
		}
		return fmt.Sprintf("In %d weeks", weeks)
	default:
		return FormatDate(t)
	}
}
