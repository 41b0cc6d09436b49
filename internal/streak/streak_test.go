package streak

import (
	"testing"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/ledger"
	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

func record(t *testing.T, l ledger.Ledger, habitID string, days ...time.Time) {
	t.Helper()
	for _, d := range days {
		if err := l.Record(calendar.FormatDay(d), habitID, d.Add(8*time.Hour)); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
}

func TestCompute_DailyConsecutive(t *testing.T) {
	today := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC) // Wednesday
	h := models.Habit{
		ID:        "h1",
		Frequency: models.FrequencyDaily,
		CreatedAt: today.AddDate(0, 0, -30),
	}

	// Completions on T, T-1, T-2; nothing on T-3
	l := ledger.New()
	record(t, l, "h1", today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2))

	current, best := Compute(h, l, today)
	if current != 3 {
		t.Errorf("expected current streak 3, got %d", current)
	}
	if best != 3 {
		t.Errorf("expected best streak 3, got %d", best)
	}
}

func TestCompute_WeekendDoesNotBreakWeekdayHabit(t *testing.T) {
	// Saturday; habit runs Mon-Fri and was completed Mon-Fri
	saturday := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	h := models.Habit{
		ID:        "h1",
		Frequency: models.FrequencyCustom,
		SelectedDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		CreatedAt: saturday.AddDate(0, 0, -30),
	}

	l := ledger.New()
	friday := saturday.AddDate(0, 0, -1)
	for i := 0; i < 5; i++ {
		record(t, l, "h1", friday.AddDate(0, 0, -i))
	}

	current, _ := Compute(h, l, saturday)
	if current != 5 {
		t.Errorf("expected streak 5 across the weekend, got %d", current)
	}
}

func TestCompute_MissedDueDayBreaks(t *testing.T) {
	today := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	h := models.Habit{
		ID:        "h1",
		Frequency: models.FrequencyDaily,
		CreatedAt: today.AddDate(0, 0, -30),
	}

	// Completed yesterday but not today: today is due and missing
	l := ledger.New()
	record(t, l, "h1", today.AddDate(0, 0, -1))

	current, _ := Compute(h, l, today)
	if current != 0 {
		t.Errorf("expected streak 0 when today is due and missed, got %d", current)
	}
}

func TestCompute_CompletionOnNonDueDayCounts(t *testing.T) {
	// Habit due Wednesdays only, but also completed on Tuesday
	wednesday := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	h := models.Habit{
		ID:           "h1",
		Frequency:    models.FrequencyCustom,
		SelectedDays: []time.Weekday{time.Wednesday},
		CreatedAt:    wednesday.AddDate(0, 0, -30),
	}

	l := ledger.New()
	record(t, l, "h1", wednesday, wednesday.AddDate(0, 0, -1))

	current, _ := Compute(h, l, wednesday)
	if current != 2 {
		t.Errorf("expected off-schedule completion to count, got %d", current)
	}
}

func TestCompute_BestIsMonotone(t *testing.T) {
	today := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	h := models.Habit{
		ID:         "h1",
		Frequency:  models.FrequencyDaily,
		CreatedAt:  today.AddDate(0, 0, -30),
		BestStreak: 10,
	}

	l := ledger.New()
	record(t, l, "h1", today)

	current, best := Compute(h, l, today)
	if current != 1 {
		t.Errorf("expected current 1, got %d", current)
	}
	if best != 10 {
		t.Errorf("expected best to stay at 10, got %d", best)
	}
}

func TestCompute_BoundedByCreatedAt(t *testing.T) {
	today := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	h := models.Habit{
		ID:           "h1",
		Frequency:    models.FrequencyCustom,
		SelectedDays: []time.Weekday{time.Saturday}, // never due in the tested span
		CreatedAt:    today.AddDate(0, 0, -2),
	}

	// No completions at all: walk skips non-due days and must stop at createdAt
	current, best := Compute(h, ledger.New(), today)
	if current != 0 || best != 0 {
		t.Errorf("expected 0/0 for empty ledger, got %d/%d", current, best)
	}
}

func TestCompute_TerminatesWithoutCreatedAt(t *testing.T) {
	h := models.Habit{
		ID:           "h1",
		Frequency:    models.FrequencyCustom,
		SelectedDays: []time.Weekday{}, // never due, never breaks
	}

	current, _ := Compute(h, ledger.New(), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	if current != 0 {
		t.Errorf("expected 0 for never-due habit, got %d", current)
	}
}
