package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/analytics"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/repo"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateStats
	StateAddHabit
	StateConfirmDelete
)

// tabCount covers the cycling tab states only.
const tabCount = 2

type HabitFormModel struct {
	Name      string
	Category  models.Category
	Frequency models.Frequency
	Target    string
}

type Model struct {
	repo      *repo.Repository
	analytics *analytics.Engine
	save      func() error

	state         SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	habitToDelete string
	saveErr       error
	quitting      bool
	width         int
	height        int
}

// NewModel builds the dashboard over an already-loaded repository. save is
// called after every mutation to persist the snapshot.
func NewModel(r *repo.Repository, eng *analytics.Engine, save func() error) Model {
	m := Model{
		repo:      r,
		analytics: eng,
		save:      save,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(nil, 0, 0),
	}
	m.refreshHabits()
	return m
}

func (m *Model) refreshHabits() {
	now := time.Now()
	day := calendar.FormatDay(now)

	var items []habitlist.Item
	for _, h := range m.repo.GetHabits() {
		items = append(items, habitlist.Item{
			Habit:  h,
			IsDue:  h.IsDueOn(now),
			IsDone: m.repo.Ledger().IsCompleted(day, h.ID),
		})
	}
	m.habitList.SetItems(items)
}

// persist saves the snapshot, keeping any error for display.
func (m *Model) persist() {
	m.saveErr = m.save()
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(
					huh.NewOption("Health", models.CategoryHealth),
					huh.NewOption("Fitness", models.CategoryFitness),
					huh.NewOption("Productivity", models.CategoryProductivity),
					huh.NewOption("Learning", models.CategoryLearning),
					huh.NewOption("Mindfulness", models.CategoryMindfulness),
					huh.NewOption("Social", models.CategorySocial),
					huh.NewOption("Creativity", models.CategoryCreativity),
					huh.NewOption("Other", models.CategoryOther),
				).
				Value(&fm.Category),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", models.FrequencyDaily),
					huh.NewOption("Weekly", models.FrequencyWeekly),
					huh.NewOption("Custom", models.FrequencyCustom),
				).
				Value(&fm.Frequency),
			huh.NewInput().
				Title("Target per day").
				Value(&fm.Target).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("target must be a positive number")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
