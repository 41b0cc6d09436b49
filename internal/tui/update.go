package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/repo"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/tui/components/habitlist"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Target: "1"}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		if _, err := m.repo.ToggleCompletion(msg.ID, time.Time{}); err == nil {
			m.persist()
			m.refreshHabits()
		}
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDelete = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateTabs(msg)
	}
}

func (m Model) updateTabs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		target, _ := strconv.Atoi(m.habitForm.Target)
		m.repo.AddHabit(repo.HabitSpec{
			Name:      m.habitForm.Name,
			Category:  m.habitForm.Category,
			Frequency: m.habitForm.Frequency,
			Target:    target,
		})
		m.persist()
		m.refreshHabits()
		m.state = StateHabits
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.repo.DeleteHabit(m.habitToDelete); err == nil {
				m.persist()
				m.refreshHabits()
			}
			m.habitToDelete = ""
			m.state = StateHabits
		case "n", "N", "esc", "q":
			m.habitToDelete = ""
			m.state = StateHabits
		}
	}
	return m, nil
}
