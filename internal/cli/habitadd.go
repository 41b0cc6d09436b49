package cli

import (
	"fmt"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/repo"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Habit description."`
	Category    string `short:"c" help:"Category (health|fitness|productivity|learning|mindfulness|social|creativity|other)." default:"other"`
	Icon        string `help:"Display icon."`
	Color       string `help:"Display color."`
	Target      int    `short:"t" help:"Completions per due day." default:"1"`
	Frequency   string `short:"f" help:"Frequency (daily|weekly|custom)." default:"daily"`
	Days        string `short:"w" help:"Comma-separated weekdays for custom frequency."`
}

func (c *HabitAddCmd) Validate() error {
	switch models.Frequency(c.Frequency) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyCustom:
		return nil
	}
	return fmt.Errorf("invalid frequency: %s", c.Frequency)
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	spec := repo.HabitSpec{
		Name:        c.Name,
		Description: c.Description,
		Category:    models.ParseCategory(c.Category),
		Icon:        c.Icon,
		Color:       c.Color,
		Target:      c.Target,
		Frequency:   models.Frequency(c.Frequency),
	}
	if c.Days != "" {
		days, err := parseWeekdays(c.Days)
		if err != nil {
			return err
		}
		spec.SelectedDays = days
	}

	h := r.AddHabit(spec)
	if err := ctx.SaveRepository(r); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s, %s)\n", h.Name, h.ID, formatSchedule(h))
	return nil
}
