package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/calendar"
)

func TestRecord_Idempotent(t *testing.T) {
	l := New()
	ts := time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC)

	if err := l.Record("2025-12-31", "h1", ts); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := l.Record("2025-12-31", "h1", ts.Add(time.Hour)); err != nil {
		t.Fatalf("second Record failed: %v", err)
	}

	if !l.IsCompleted("2025-12-31", "h1") {
		t.Error("expected habit to be completed")
	}
	if n := l.CountOn("2025-12-31"); n != 1 {
		t.Errorf("expected 1 completion on the day, got %d", n)
	}

	// Upsert keeps the latest timestamp
	c, ok := l.Get("2025-12-31", "h1")
	if !ok || !c.Timestamp.Equal(ts.Add(time.Hour)) {
		t.Errorf("expected upserted timestamp, got %+v", c)
	}
}

func TestRecord_InvalidDate(t *testing.T) {
	l := New()
	err := l.Record("31-12-2025", "h1", time.Now())
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if len(l) != 0 {
		t.Error("invalid record must not create entries")
	}
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	l := New()
	l.Remove("2025-12-31", "h1") // nothing there

	if err := l.Record("2025-12-31", "h1", time.Now()); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	l.Remove("2025-12-31", "h2") // different habit
	if !l.IsCompleted("2025-12-31", "h1") {
		t.Error("removing a different habit must not touch existing entries")
	}

	l.Remove("2025-12-31", "h1")
	if l.IsCompleted("2025-12-31", "h1") {
		t.Error("expected completion removed")
	}
	// Emptied day entries disappear entirely
	if _, ok := l["2025-12-31"]; ok {
		t.Error("expected empty day to be dropped")
	}
}

func TestPurgeHabit(t *testing.T) {
	l := New()
	ts := time.Now()

	// 10 completions for h1 across 10 distinct dates, h2 alongside on each
	day := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		d := calendar.FormatDay(day.AddDate(0, 0, i))
		if err := l.Record(d, "h1", ts); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if err := l.Record(d, "h2", ts); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	l.PurgeHabit("h1")

	for i := 0; i < 10; i++ {
		d := calendar.FormatDay(day.AddDate(0, 0, i))
		if l.IsCompleted(d, "h1") {
			t.Errorf("expected h1 purged on %s", d)
		}
		if !l.IsCompleted(d, "h2") {
			t.Errorf("expected h2 untouched on %s", d)
		}
	}
}

func TestDays_Sorted(t *testing.T) {
	l := New()
	ts := time.Now()
	for _, d := range []string{"2026-01-02", "2025-12-31", "2026-01-01"} {
		if err := l.Record(d, "h1", ts); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	days := l.Days()
	want := []string{"2025-12-31", "2026-01-01", "2026-01-02"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}

func TestClone_Independent(t *testing.T) {
	l := New()
	if err := l.Record("2025-12-31", "h1", time.Now()); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	clone := l.Clone()
	clone.Remove("2025-12-31", "h1")

	if !l.IsCompleted("2025-12-31", "h1") {
		t.Error("mutating a clone must not affect the original")
	}
}
