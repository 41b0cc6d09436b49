package cli

import (
	"fmt"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
)

type DoneCmd struct {
	ID   string `arg:"" help:"Habit id or name."`
	Date string `short:"D" help:"Day to toggle (YYYY-MM-DD), defaults to today."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	h, err := resolveHabit(r, c.ID)
	if err != nil {
		return err
	}

	var date time.Time
	if c.Date != "" {
		if date, err = calendar.ParseDay(c.Date); err != nil {
			return err
		}
	}

	completed, err := r.ToggleCompletion(h.ID, date)
	if err != nil {
		return err
	}
	if err := ctx.SaveRepository(r); err != nil {
		return err
	}

	h, _ = r.GetHabit(h.ID)
	if completed {
		fmt.Printf("✓ %s completed (streak %d, best %d)\n", h.Name, h.Streak, h.BestStreak)
	} else {
		fmt.Printf("○ %s unmarked (streak %d, best %d)\n", h.Name, h.Streak, h.BestStreak)
	}
	return nil
}
