package cli

import "fmt"

type HabitListCmd struct {
	Category string `short:"c" help:"Show only habits in this category."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	habits := r.GetHabits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		if c.Category != "" && string(h.Category) != c.Category {
			continue
		}

		fmt.Printf("  %s - %s (%s, streak %d, best %d, %d total)\n",
			h.Name, formatSchedule(h), h.Category, h.Streak, h.BestStreak, h.TotalCompletions)
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
		fmt.Printf("      ID: %s\n", h.ID)
	}

	return nil
}
