package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/analytics"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/backup"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/repo"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Analytics *analytics.Engine
}

// LoadRepository reads the stored snapshot into a fresh repository. Stored
// streak counters are taken as authoritative; no recompute happens on load.
func (c *Context) LoadRepository() (*repo.Repository, error) {
	st, err := c.Store.Load()
	if err != nil {
		return nil, err
	}
	r := repo.New()
	if err := r.Import(st, false); err != nil {
		return nil, err
	}
	return r, nil
}

// SaveRepository persists the repository's current snapshot.
func (c *Context) SaveRepository(r *repo.Repository) error {
	return c.Store.Save(r.Export())
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// resolveHabit finds a habit by exact id, then by case-insensitive name.
func resolveHabit(r *repo.Repository, ref string) (models.Habit, error) {
	if h, err := r.GetHabit(ref); err == nil {
		return h, nil
	}
	var matches []models.Habit
	for _, h := range r.GetHabits() {
		if strings.EqualFold(h.Name, ref) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Habit{}, fmt.Errorf("no habit matches %q", ref)
	default:
		return models.Habit{}, fmt.Errorf("%d habits named %q, use the id instead", len(matches), ref)
	}
}

func parseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

func formatSchedule(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		if len(h.SelectedDays) > 0 {
			return fmt.Sprintf("weekly on %s", h.SelectedDays[0].String()[:3])
		}
		return "weekly"
	default:
		var days []string
		for _, wd := range h.SelectedDays {
			days = append(days, wd.String()[:3])
		}
		return strings.Join(days, ",")
	}
}
