// Package ledger holds the date-indexed record of completion events.
package ledger

import (
	"sort"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

// Ledger maps YYYY-MM-DD day strings to the habits completed that day.
// An entry's presence means "done"; absence is the only negative state.
type Ledger map[string]map[string]models.Completion

// New returns an empty ledger.
func New() Ledger {
	return Ledger{}
}

// FromMap wraps an existing day->habit->event map, initializing it when nil.
func FromMap(m map[string]map[string]models.Completion) Ledger {
	if m == nil {
		return New()
	}
	return Ledger(m)
}

// Record marks habitID complete on the given day. The upsert is idempotent;
// re-recording overwrites the event timestamp. Returns calendar.ErrInvalidDate
// when day is not a well-formed date.
func (l Ledger) Record(day, habitID string, timestamp time.Time) error {
	if _, err := calendar.ParseDay(day); err != nil {
		return err
	}
	if l[day] == nil {
		l[day] = map[string]models.Completion{}
	}
	l[day][habitID] = models.Completion{Completed: true, Timestamp: timestamp}
	return nil
}

// Remove deletes the completion for (day, habitID). Removing an absent entry
// is a no-op.
func (l Ledger) Remove(day, habitID string) {
	entries, ok := l[day]
	if !ok {
		return
	}
	delete(entries, habitID)
	if len(entries) == 0 {
		delete(l, day)
	}
}

// IsCompleted reports whether habitID was completed on the given day.
func (l Ledger) IsCompleted(day, habitID string) bool {
	c, ok := l[day][habitID]
	return ok && c.Completed
}

// Get returns the completion event for (day, habitID), if any.
func (l Ledger) Get(day, habitID string) (models.Completion, bool) {
	c, ok := l[day][habitID]
	return c, ok
}

// CountOn returns the number of distinct habits completed on the given day.
func (l Ledger) CountOn(day string) int {
	n := 0
	for _, c := range l[day] {
		if c.Completed {
			n++
		}
	}
	return n
}

// PurgeHabit drops every entry for habitID across all days. Used when a habit
// is deleted.
func (l Ledger) PurgeHabit(habitID string) {
	for day, entries := range l {
		if _, ok := entries[habitID]; ok {
			delete(entries, habitID)
			if len(entries) == 0 {
				delete(l, day)
			}
		}
	}
}

// Days returns every day with at least one completion, sorted ascending.
// Day strings are YYYY-MM-DD so lexicographic order is chronological.
func (l Ledger) Days() []string {
	days := make([]string, 0, len(l))
	for day := range l {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for day, entries := range l {
		m := make(map[string]models.Completion, len(entries))
		for id, c := range entries {
			m[id] = c
		}
		out[day] = m
	}
	return out
}

// Map exposes the underlying day->habit->event map for serialization.
func (l Ledger) Map() map[string]map[string]models.Completion {
	return map[string]map[string]models.Completion(l)
}
