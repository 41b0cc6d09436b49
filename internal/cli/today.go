package cli

import (
	"fmt"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	now := time.Now()
	due := r.DueOn(now)
	if len(due) == 0 {
		fmt.Println("No habits due today")
		return nil
	}

	day := calendar.FormatDay(now)
	fmt.Printf("Due today (%s):\n", day)
	for _, h := range due {
		marker := "○"
		if r.Ledger().IsCompleted(day, h.ID) {
			marker = "✓"
		}
		fmt.Printf("  %s %s (streak %d)\n", marker, h.Name, h.Streak)
	}

	rate := ctx.Analytics.CompletionRate(r.GetHabits(), r.Ledger(), now)
	fmt.Printf("\nCompletion rate: %.0f%%\n", rate*100)
	return nil
}
