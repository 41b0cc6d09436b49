// Package streak computes consecutive-day completion streaks.
package streak

import (
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/constants"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/ledger"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

// Compute walks backward day-by-day from today and returns the habit's
// current streak and its new best streak.
//
// A completed day extends the streak whether or not the habit was due. A
// missed day breaks the streak only when the habit was due; non-due days are
// skipped, so a weekday-only habit keeps its streak over the weekend. The
// walk stops at the habit's creation date, or after MaxStreakLookbackDays
// when the creation date is unset.
//
// Best is monotone: max of the habit's stored best and the freshly computed
// current streak.
func Compute(h models.Habit, l ledger.Ledger, today time.Time) (current, best int) {
	day := calendar.Truncate(today)
	createdAt := calendar.Truncate(h.CreatedAt)

	for step := 0; step < constants.MaxStreakLookbackDays; step++ {
		if !h.CreatedAt.IsZero() && day.Before(createdAt) {
			break
		}
		if l.IsCompleted(calendar.FormatDay(day), h.ID) {
			current++
		} else if h.IsDueOn(day) {
			break
		}
		day = day.AddDate(0, 0, -1)
	}

	best = h.BestStreak
	if current > best {
		best = current
	}
	return current, best
}
