package cli

import (
	"fmt"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
)

type CorrelateCmd struct {
	Days int `short:"n" help:"Number of days to correlate over." default:"30"`
}

func (c *CorrelateCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	habits := r.GetHabits()
	if len(habits) < 2 {
		fmt.Println("Need at least two habits to correlate")
		return nil
	}

	end := calendar.Truncate(time.Now())
	start := end.AddDate(0, 0, -(c.Days - 1))
	days := calendar.DateRange(start, end)

	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	matrix := ctx.Analytics.CorrelationMatrix(r.Ledger(), ids, days)

	fmt.Printf("Correlation over %s to %s:\n\n", calendar.FormatDay(start), calendar.FormatDay(end))
	for i, h := range habits {
		fmt.Printf("%-20.20s", h.Name)
		for j := range habits {
			fmt.Printf(" %6.2f", matrix[i][j])
		}
		fmt.Println()
	}
	return nil
}
