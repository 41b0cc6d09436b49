package cli

import "fmt"

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	h, err := resolveHabit(r, c.ID)
	if err != nil {
		return err
	}

	if err := r.DeleteHabit(h.ID); err != nil {
		return err
	}
	if err := ctx.SaveRepository(r); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (completion history purged)\n", h.Name)
	return nil
}
