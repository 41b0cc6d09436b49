package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type Item struct {
	Habit  models.Habit
	IsDue  bool
	IsDone bool
}

func (i Item) Title() string {
	title := i.Habit.Name
	if i.IsDone {
		title = "✓ " + title
	} else {
		title = "○ " + title
	}
	if !i.IsDue {
		title += " (not due today)"
	}
	return title
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · streak %d · best %d", i.Habit.Category, i.Habit.Streak, i.Habit.BestStreak)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowHelp(false)

	return Model{
		list: l,
		keys: DefaultKeyMap(),
	}
}

func (m *Model) SetItems(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the habit under the cursor, if any.
func (m Model) Selected() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Habit{}, false
	}
	return item.Habit, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: h.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: h.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
