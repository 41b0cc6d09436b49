package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// statsWindowDays is the window the stats tab reports over.
const statsWindowDays = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateAddHabit:
		return m.form.View()
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.saveErr != nil {
		sections = append(sections, dangerStyle.Render(fmt.Sprintf("Save failed: %v", m.saveErr)))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStats() string {
	habits := m.repo.GetHabits()
	if len(habits) == 0 {
		return "No habits yet. Press 'a' on the Habits tab to add one."
	}

	now := time.Now()
	l := m.repo.Ledger()

	var b strings.Builder
	fmt.Fprintf(&b, "Last %d days\n\n", statsWindowDays)
	for _, h := range habits {
		fmt.Fprintf(&b, "%s\n", h.Name)
		fmt.Fprintf(&b, "%s%d (best %d)\n", statLabelStyle.Render("Streak"), h.Streak, h.BestStreak)
		fmt.Fprintf(&b, "%s%.0f%%\n", statLabelStyle.Render("Consistency"),
			m.analytics.ConsistencyScore(h, l, statsWindowDays, now)*100)
		fmt.Fprintf(&b, "%s%.0f%%\n", statLabelStyle.Render("Target"),
			m.analytics.TargetAchievement(h, l, statsWindowDays, now))
		fmt.Fprintf(&b, "%s%.0f\n\n", statLabelStyle.Render("Momentum"),
			m.analytics.Momentum(l, h.ID, now))
	}
	fmt.Fprintf(&b, "%s%.0f%%\n", statLabelStyle.Render("Today"),
		m.analytics.CompletionRate(habits, l, now)*100)
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this habit and its completion history?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
