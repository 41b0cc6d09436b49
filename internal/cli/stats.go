package cli

import (
	"fmt"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/analytics"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/ledger"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

type StatsCmd struct {
	ID     string `arg:"" optional:"" help:"Habit id or name; omit for all habits."`
	Window int    `short:"n" help:"Window size in days." default:"30"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	habits := r.GetHabits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	selected := habits
	if c.ID != "" {
		h, err := resolveHabit(r, c.ID)
		if err != nil {
			return err
		}
		selected = []models.Habit{h}
	}

	now := time.Now()
	l := r.Ledger()
	eng := ctx.Analytics

	fmt.Printf("Stats over the last %d days:\n\n", c.Window)
	for _, h := range selected {
		fmt.Printf("%s (%s)\n", h.Name, formatSchedule(h))
		fmt.Printf("  Streak:       %d (best %d)\n", h.Streak, h.BestStreak)
		fmt.Printf("  Completions:  %d of %d possible\n",
			eng.WindowCompletions(l, h.ID, c.Window, now),
			eng.WindowPossible(h, c.Window, now))
		fmt.Printf("  Consistency:  %.0f%%\n", eng.ConsistencyScore(h, l, c.Window, now)*100)
		fmt.Printf("  Target:       %.0f%%\n", eng.TargetAchievement(h, l, c.Window, now))
		fmt.Printf("  Momentum:     %.0f\n", eng.Momentum(l, h.ID, now))
		fmt.Println()
	}

	if c.ID == "" {
		printCategoryRollup(eng, habits)
		printWeekdayDistribution(eng, habits, l)
		printTimeOfDay(eng, l)
	}
	return nil
}

func printCategoryRollup(eng *analytics.Engine, habits []models.Habit) {
	rollup := eng.CategoryRollup(habits, func(h models.Habit) float64 {
		return float64(h.TotalCompletions)
	}, analytics.AggregateSum)

	fmt.Println("Completions by category:")
	for _, cat := range models.Categories {
		if total, ok := rollup[cat]; ok {
			fmt.Printf("  %-13s %.0f\n", cat, total)
		}
	}
	fmt.Println()
}

func printWeekdayDistribution(eng *analytics.Engine, habits []models.Habit, l ledger.Ledger) {
	dist := eng.WeekdayDistribution(habits, l)

	fmt.Println("Weekday distribution (completions / habits due):")
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		load := dist[int(wd)]
		fmt.Printf("  %-10s %d / %d\n", wd, load.Completions, load.Due)
	}
	fmt.Println()
}

func printTimeOfDay(eng *analytics.Engine, l ledger.Ledger) {
	counts := eng.TimeOfDayBuckets(l)

	fmt.Println("Completions by time of day:")
	for i, band := range analytics.TimeBands {
		fmt.Printf("  %-14s (%02d-%02d)  %d\n", band.Label, band.StartHour, band.EndHour, counts[i])
	}
}
