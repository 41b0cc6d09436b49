// Package repo owns the habit collection and the completion ledger, and is
// the single entry point for state transitions. Streak counters are only ever
// updated here.
package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/ledger"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/streak"
)

// ErrNotFound is returned when operating on an unknown habit id.
var ErrNotFound = errors.New("habit not found")

// HabitSpec carries the caller-settable fields of a habit. Derived counters
// (streak, best streak, total completions) are never part of a spec.
type HabitSpec struct {
	Name         string
	Description  string
	Category     models.Category
	Icon         string
	Color        string
	Target       int
	Frequency    models.Frequency
	SelectedDays []time.Weekday
}

// Repository holds all tracked state. It is not safe for concurrent use by
// multiple goroutines without external synchronization; mutations and streak
// recomputation read and write the same habit records.
type Repository struct {
	habits []models.Habit
	ledger ledger.Ledger

	// Opaque blobs carried through import/export untouched.
	settings      json.RawMessage
	notifications json.RawMessage

	now func() time.Time
}

func New() *Repository {
	return NewWithClock(time.Now)
}

// NewWithClock injects the time source, which pins "today" in tests.
func NewWithClock(now func() time.Time) *Repository {
	return &Repository{
		habits: []models.Habit{},
		ledger: ledger.New(),
		now:    now,
	}
}

func (r *Repository) indexOf(id string) int {
	for i := range r.habits {
		if r.habits[i].ID == id {
			return i
		}
	}
	return -1
}

// AddHabit validates the spec, fills defaults, and appends a new habit.
//
// Defaults: target floors at 1; frequency falls back to daily; daily habits
// (and custom habits with no days picked) select all seven weekdays; a weekly
// habit freezes the weekday of its creation date as its single selected day.
func (r *Repository) AddHabit(spec HabitSpec) models.Habit {
	now := r.now()

	target := spec.Target
	if target < 1 {
		target = 1
	}
	freq := spec.Frequency
	if freq == "" {
		freq = models.FrequencyDaily
	}
	category := spec.Category
	if category == "" {
		category = models.CategoryOther
	}

	days := normalizeWeekdays(spec.SelectedDays)
	switch freq {
	case models.FrequencyDaily:
		days = models.AllWeekdays()
	case models.FrequencyWeekly:
		if len(days) == 0 {
			days = []time.Weekday{now.Weekday()}
		} else {
			days = days[:1]
		}
	default:
		if len(days) == 0 {
			days = models.AllWeekdays()
		}
	}

	h := models.Habit{
		ID:           uuid.New().String(),
		Name:         spec.Name,
		Description:  spec.Description,
		Category:     category,
		Icon:         spec.Icon,
		Color:        spec.Color,
		Target:       target,
		Frequency:    freq,
		SelectedDays: days,
		CreatedAt:    calendar.Truncate(now),
	}
	r.habits = append(r.habits, h)
	return h
}

// UpdateHabit replaces the habit's non-empty spec fields in place. Returns
// ErrNotFound for an unknown id; derived counters are preserved.
func (r *Repository) UpdateHabit(id string, spec HabitSpec) (models.Habit, error) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	h := r.habits[i]
	if spec.Name != "" {
		h.Name = spec.Name
	}
	if spec.Description != "" {
		h.Description = spec.Description
	}
	if spec.Category != "" {
		h.Category = spec.Category
	}
	if spec.Icon != "" {
		h.Icon = spec.Icon
	}
	if spec.Color != "" {
		h.Color = spec.Color
	}
	if spec.Target >= 1 {
		h.Target = spec.Target
	}
	if spec.Frequency != "" {
		h.Frequency = spec.Frequency
	}
	if days := normalizeWeekdays(spec.SelectedDays); len(days) > 0 {
		if h.Frequency == models.FrequencyWeekly {
			days = days[:1]
		}
		h.SelectedDays = days
	} else if h.Frequency == models.FrequencyDaily {
		h.SelectedDays = models.AllWeekdays()
	}

	r.habits[i] = h
	return h, nil
}

// DeleteHabit removes the habit and purges its ledger entries across all
// dates. Returns ErrNotFound for an unknown id.
func (r *Repository) DeleteHabit(id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.habits = append(r.habits[:i], r.habits[i+1:]...)
	r.ledger.PurgeHabit(id)
	return nil
}

// ToggleCompletion flips the habit's completion for the given date and
// refreshes its derived counters. Returns whether the habit is completed
// after the toggle. A zero date means today.
//
// This is the single state-transition path for streaks: marking records the
// event, bumps total completions, and recomputes streak/best; unmarking
// removes the event, decrements total (floored at 0), and recomputes as well
// since the current streak may have shortened. Best never decreases.
func (r *Repository) ToggleCompletion(habitID string, date time.Time) (bool, error) {
	i := r.indexOf(habitID)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrNotFound, habitID)
	}

	now := r.now()
	if date.IsZero() {
		date = now
	}
	day := calendar.FormatDay(date)

	h := r.habits[i]
	completed := !r.ledger.IsCompleted(day, habitID)
	if completed {
		if err := r.ledger.Record(day, habitID, now); err != nil {
			return false, err
		}
		h.TotalCompletions++
	} else {
		r.ledger.Remove(day, habitID)
		if h.TotalCompletions > 0 {
			h.TotalCompletions--
		}
	}
	h.Streak, h.BestStreak = streak.Compute(h, r.ledger, now)
	r.habits[i] = h
	return completed, nil
}

// RecomputeStreaks refreshes every habit's streak counters from the ledger.
// Used after imports that request a recompute.
func (r *Repository) RecomputeStreaks() {
	now := r.now()
	for i := range r.habits {
		r.habits[i].Streak, r.habits[i].BestStreak = streak.Compute(r.habits[i], r.ledger, now)
	}
}

// GetHabit returns the habit with the given id.
func (r *Repository) GetHabit(id string) (models.Habit, error) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.habits[i], nil
}

// GetHabits returns the habit collection in insertion order.
func (r *Repository) GetHabits() []models.Habit {
	out := make([]models.Habit, len(r.habits))
	copy(out, r.habits)
	return out
}

// DueOn returns the habits due on the given date, in insertion order. A zero
// date means today.
func (r *Repository) DueOn(date time.Time) []models.Habit {
	if date.IsZero() {
		date = r.now()
	}
	var due []models.Habit
	for _, h := range r.habits {
		if h.IsDueOn(date) {
			due = append(due, h)
		}
	}
	return due
}

// Ledger exposes the completion ledger for analytics queries. Callers must
// treat it as read-only.
func (r *Repository) Ledger() ledger.Ledger {
	return r.ledger
}

// Export returns a deep-copied snapshot of all state, stamped with the export
// time, suitable for serialization by the caller.
func (r *Repository) Export() models.State {
	return models.State{
		Habits:        r.GetHabits(),
		Completions:   r.ledger.Clone().Map(),
		Settings:      r.settings,
		Notifications: r.notifications,
		ExportedAt:    r.now(),
	}
}

// Import atomically replaces the habit collection and ledger with the given
// state. A state missing its habits or completions collection is rejected
// with models.ErrInvalidFormat and current state is left untouched. Streaks
// are recomputed only when requested, since imported data may already carry
// authoritative counters.
func (r *Repository) Import(st models.State, recompute bool) error {
	if st.Habits == nil || st.Completions == nil {
		return fmt.Errorf("state missing habits or completions: %w", models.ErrInvalidFormat)
	}

	habits := make([]models.Habit, len(st.Habits))
	copy(habits, st.Habits)

	r.habits = habits
	r.ledger = ledger.FromMap(st.Completions).Clone()
	r.settings = st.Settings
	r.notifications = st.Notifications

	if recompute {
		r.RecomputeStreaks()
	}
	return nil
}

// normalizeWeekdays dedupes and drops out-of-range values, preserving first
// occurrence order.
func normalizeWeekdays(days []time.Weekday) []time.Weekday {
	var out []time.Weekday
	seen := map[time.Weekday]bool{}
	for _, wd := range days {
		if wd < time.Sunday || wd > time.Saturday || seen[wd] {
			continue
		}
		seen[wd] = true
		out = append(out, wd)
	}
	return out
}
