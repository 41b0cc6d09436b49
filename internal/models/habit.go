package models

import "time"

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
	CategoryMindfulness  Category = "mindfulness"
	CategorySocial       Category = "social"
	CategoryCreativity   Category = "creativity"
	CategoryOther        Category = "other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryFitness,
	CategoryProductivity,
	CategoryLearning,
	CategoryMindfulness,
	CategorySocial,
	CategoryCreativity,
	CategoryOther,
}

// ParseCategory maps a raw string onto a known category, falling back to
// CategoryOther for anything unrecognized.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// Habit represents a recurring practice to track.
//
// Streak, BestStreak and TotalCompletions are derived counters owned by the
// repository; they are never written from display-layer input.
type Habit struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	Category         Category       `json:"category"`
	Icon             string         `json:"icon,omitempty"`
	Color            string         `json:"color,omitempty"`
	Target           int            `json:"target"`
	Frequency        Frequency      `json:"frequency"`
	SelectedDays     []time.Weekday `json:"selected_days"`
	CreatedAt        time.Time      `json:"created_at"`
	Streak           int            `json:"streak"`
	BestStreak       int            `json:"best_streak"`
	TotalCompletions int            `json:"total_completions"`
}

// IsDueOn reports whether the habit is expected to run on the given calendar
// date. Daily habits are due every day; weekly and custom habits are due only
// on their selected weekdays.
func (h Habit) IsDueOn(date time.Time) bool {
	if h.Frequency == FrequencyDaily {
		return true
	}
	for _, wd := range h.SelectedDays {
		if date.Weekday() == wd {
			return true
		}
	}
	return false
}

// AllWeekdays returns the full Sunday..Saturday set.
func AllWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}
