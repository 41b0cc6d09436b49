package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/repo"
)

type ExportCmd struct {
	Format string `short:"f" help:"Export format (json|csv)." default:"json"`
	Out    string `short:"o" help:"Output file; defaults to stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	r, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	out := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r.Export()); err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
	case "csv":
		if err := writeCSV(out, r); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid export format: %s", c.Format)
	}

	if c.Out != "" {
		fmt.Fprintf(os.Stderr, "Exported to %s\n", c.Out)
	}
	return nil
}

// writeCSV emits one row per (date, habit) completion, dates ascending.
func writeCSV(out *os.File, r *repo.Repository) error {
	names := map[string]models.Habit{}
	for _, h := range r.GetHabits() {
		names[h.ID] = h
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"Date", "HabitName", "Completed", "Category", "Streak"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	l := r.Ledger()
	for _, day := range l.Days() {
		entries := l.Map()[day]
		ids := make([]string, 0, len(entries))
		for id := range entries {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			h, known := names[id]
			name, category, streak := id, string(models.CategoryOther), 0
			if known {
				name, category, streak = h.Name, string(h.Category), h.Streak
			}
			if err := w.Write([]string{day, name, "Yes", category, strconv.Itoa(streak)}); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}
