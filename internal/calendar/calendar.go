// Package calendar provides the pure date arithmetic the rest of the engine
// is built on. All comparisons are by calendar date; time-of-day is only
// meaningful on completion timestamps, which this package does not touch.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/constants"
)

// ErrInvalidDate is returned when a day string is not a well-formed
// YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ParseDay parses a YYYY-MM-DD day string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDay renders a date as a YYYY-MM-DD day string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Truncate drops the time-of-day component of t, keeping its calendar date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LastNDays returns exactly n dates ending at anchor, most recent first
// (anchor itself is included).
func LastNDays(n int, anchor time.Time) []time.Time {
	if n <= 0 {
		return nil
	}
	anchor = Truncate(anchor)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, anchor.AddDate(0, 0, -i))
	}
	return days
}

// DateRange returns every date from start to end inclusive, ascending.
// Returns nil when end precedes start.
func DateRange(start, end time.Time) []time.Time {
	start = Truncate(start)
	end = Truncate(end)
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
