// Package analytics derives behavioral metrics from the completion ledger.
// Every query is a pure function over the habits and ledger it is handed;
// nothing here mutates engine state.
package analytics

import (
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/ledger"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

const (
	// DefaultMomentumScale weights the zero-prior-window momentum fallback
	// (momentum = recent * scale when the prior window had no completions).
	DefaultMomentumScale = 100.0

	// MomentumWindowDays is the size of each of the two adjacent windows
	// momentum compares.
	MomentumWindowDays = 7
)

// Engine answers analytics queries. It carries tuning knobs only; all data
// comes in through the query arguments.
type Engine struct {
	MomentumScale float64
}

func New() *Engine {
	return &Engine{MomentumScale: DefaultMomentumScale}
}

// CompletionRate returns completed/due for the given date across all habits.
// A day with no due habits has a rate of 0.
func (e *Engine) CompletionRate(habits []models.Habit, l ledger.Ledger, date time.Time) float64 {
	day := calendar.FormatDay(date)
	due, done := 0, 0
	for _, h := range habits {
		if !h.IsDueOn(date) {
			continue
		}
		due++
		if l.IsCompleted(day, h.ID) {
			done++
		}
	}
	if due == 0 {
		return 0
	}
	return float64(done) / float64(due)
}

// WindowCompletions counts the days within the last windowDays (ending at
// ref, inclusive) on which the habit was completed.
func (e *Engine) WindowCompletions(l ledger.Ledger, habitID string, windowDays int, ref time.Time) int {
	n := 0
	for _, day := range calendar.LastNDays(windowDays, ref) {
		if l.IsCompleted(calendar.FormatDay(day), habitID) {
			n++
		}
	}
	return n
}

// WindowPossible counts the habit's due days within the last windowDays
// ending at ref. This is the denominator for consistency and target metrics.
func (e *Engine) WindowPossible(h models.Habit, windowDays int, ref time.Time) int {
	n := 0
	for _, day := range calendar.LastNDays(windowDays, ref) {
		if h.IsDueOn(day) {
			n++
		}
	}
	return n
}

// ConsistencyScore is completions over possible (due) occurrences in the
// window, 0 when nothing was possible.
func (e *Engine) ConsistencyScore(h models.Habit, l ledger.Ledger, windowDays int, ref time.Time) float64 {
	possible := e.WindowPossible(h, windowDays, ref)
	if possible == 0 {
		return 0
	}
	return float64(e.WindowCompletions(l, h.ID, windowDays, ref)) / float64(possible)
}

// TargetAchievement is the percentage of the habit's target met over the
// window, clamped to [0, 100]. The denominator scales possible days by the
// per-day target.
func (e *Engine) TargetAchievement(h models.Habit, l ledger.Ledger, windowDays int, ref time.Time) float64 {
	target := h.Target
	if target < 1 {
		target = 1
	}
	possible := e.WindowPossible(h, windowDays, ref) * target
	if possible == 0 {
		return 0
	}
	pct := float64(e.WindowCompletions(l, h.ID, windowDays, ref)) / float64(possible) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// Aggregate selects how CategoryRollup combines per-habit metric values.
type Aggregate int

const (
	AggregateSum Aggregate = iota
	AggregateMean
)

// CategoryRollup groups habits by category and aggregates metric over each
// group.
func (e *Engine) CategoryRollup(habits []models.Habit, metric func(models.Habit) float64, agg Aggregate) map[models.Category]float64 {
	sums := map[models.Category]float64{}
	counts := map[models.Category]int{}
	for _, h := range habits {
		sums[h.Category] += metric(h)
		counts[h.Category]++
	}
	if agg == AggregateMean {
		for cat, sum := range sums {
			sums[cat] = sum / float64(counts[cat])
		}
	}
	return sums
}

// WeekdayLoad pairs the completions observed on a weekday with the number of
// habits configured to be due on it.
type WeekdayLoad struct {
	Completions int
	Due         int
}

// WeekdayDistribution buckets every ledger completion by weekday and counts
// how many habits are due per weekday. The due count reflects habit
// configuration without any date bound, so habits created partway through the
// observed history weigh the same as old ones.
func (e *Engine) WeekdayDistribution(habits []models.Habit, l ledger.Ledger) [7]WeekdayLoad {
	var dist [7]WeekdayLoad
	for day, entries := range l {
		date, err := calendar.ParseDay(day)
		if err != nil {
			continue
		}
		wd := int(date.Weekday())
		for _, c := range entries {
			if c.Completed {
				dist[wd].Completions++
			}
		}
	}
	for _, h := range habits {
		if h.Frequency == models.FrequencyDaily {
			for wd := range dist {
				dist[wd].Due++
			}
			continue
		}
		for _, wd := range h.SelectedDays {
			dist[int(wd)].Due++
		}
	}
	return dist
}

// Momentum compares the habit's completions in the most recent 7-day window
// against the prior 7-day window. 100 means unchanged; above 100 means
// acceleration. When the prior window is empty the result is
// recent * MomentumScale instead of a division by zero.
func (e *Engine) Momentum(l ledger.Ledger, habitID string, ref time.Time) float64 {
	recent := e.WindowCompletions(l, habitID, MomentumWindowDays, ref)
	prior := e.WindowCompletions(l, habitID, MomentumWindowDays, ref.AddDate(0, 0, -MomentumWindowDays))
	if prior == 0 {
		return float64(recent) * e.MomentumScale
	}
	return (float64(recent)-float64(prior))/float64(prior)*100 + 100
}

// TimeBand is a fixed hour-of-day interval completions are bucketed into.
type TimeBand struct {
	Label     string
	StartHour int // inclusive
	EndHour   int // exclusive
}

// TimeBands lists the fixed time-of-day bands in chronological order.
var TimeBands = []TimeBand{
	{Label: "Late Night", StartHour: 0, EndHour: 5},
	{Label: "Early Morning", StartHour: 5, EndHour: 8},
	{Label: "Morning", StartHour: 8, EndHour: 12},
	{Label: "Afternoon", StartHour: 12, EndHour: 17},
	{Label: "Evening", StartHour: 17, EndHour: 21},
	{Label: "Night", StartHour: 21, EndHour: 24},
}

// TimeOfDayBuckets counts completion events per time band using the hour of
// each event's timestamp. The returned slice is parallel to TimeBands.
func (e *Engine) TimeOfDayBuckets(l ledger.Ledger) []int {
	counts := make([]int, len(TimeBands))
	for _, entries := range l {
		for _, c := range entries {
			if !c.Completed {
				continue
			}
			hour := c.Timestamp.Hour()
			for i, band := range TimeBands {
				if hour >= band.StartHour && hour < band.EndHour {
					counts[i]++
					break
				}
			}
		}
	}
	return counts
}
