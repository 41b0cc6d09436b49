package cli

import (
	"fmt"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/repo"
)

type HabitEditCmd struct {
	ID          string `arg:"" help:"Habit id or name."`
	Name        string `help:"New name."`
	Description string `short:"d" help:"New description."`
	Category    string `short:"c" help:"New category."`
	Icon        string `help:"New icon."`
	Color       string `help:"New color."`
	Target      int    `short:"t" help:"New per-day target."`
	Frequency   string `short:"f" help:"New frequency (daily|weekly|custom)."`
	Days        string `short:"w" help:"New comma-separated weekdays."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	h, err := resolveHabit(r, c.ID)
	if err != nil {
		return err
	}

	spec := repo.HabitSpec{
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		Target:      c.Target,
		Frequency:   models.Frequency(c.Frequency),
	}
	if c.Category != "" {
		spec.Category = models.ParseCategory(c.Category)
	}
	if c.Days != "" {
		days, err := parseWeekdays(c.Days)
		if err != nil {
			return err
		}
		spec.SelectedDays = days
	}

	updated, err := r.UpdateHabit(h.ID, spec)
	if err != nil {
		return err
	}
	if err := ctx.SaveRepository(r); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s (%s)\n", updated.Name, formatSchedule(updated))
	return nil
}
