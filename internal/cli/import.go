package cli

import (
	"fmt"
	"os"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

type ImportCmd struct {
	File      string `arg:"" help:"JSON state file to import." type:"path"`
	Recompute bool   `help:"Recompute streaks from the imported ledger instead of trusting its counters."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	st, err := models.ParseState(data)
	if err != nil {
		return err
	}

	// Back up the current storage before overwriting it with imported data.
	ctx.PerformAutomaticBackup()

	if err := r.Import(st, c.Recompute); err != nil {
		return err
	}
	if err := ctx.SaveRepository(r); err != nil {
		return err
	}

	fmt.Printf("Imported %d habits and %d completion days\n", len(st.Habits), len(st.Completions))
	return nil
}
