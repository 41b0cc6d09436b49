package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestParseDay_Valid(t *testing.T) {
	d, err := ParseDay("2025-12-31")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if d.Weekday() != time.Wednesday {
		t.Errorf("expected 2025-12-31 to be a Wednesday, got %s", d.Weekday())
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, input := range []string{"not-a-date", "2025-13-01", "31/12/2025", ""} {
		if _, err := ParseDay(input); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDay(%q): expected ErrInvalidDate, got %v", input, err)
		}
	}
}

func TestLastNDays(t *testing.T) {
	anchor := time.Date(2025, 12, 31, 15, 30, 0, 0, time.UTC)

	days := LastNDays(5, anchor)
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if FormatDay(days[0]) != "2025-12-31" {
		t.Errorf("expected anchor first, got %s", FormatDay(days[0]))
	}
	if FormatDay(days[4]) != "2025-12-27" {
		t.Errorf("expected 2025-12-27 last, got %s", FormatDay(days[4]))
	}

	// Descending, consecutive, no time-of-day component
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			t.Errorf("days not consecutive at index %d: %s then %s", i, days[i-1], days[i])
		}
	}
}

func TestLastNDays_NonPositive(t *testing.T) {
	if days := LastNDays(0, time.Now()); days != nil {
		t.Errorf("expected nil for n=0, got %v", days)
	}
}

func TestDateRange(t *testing.T) {
	start := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	days := DateRange(start, end)
	if len(days) != 5 {
		t.Fatalf("expected 5 days inclusive, got %d", len(days))
	}
	if FormatDay(days[0]) != "2025-12-29" || FormatDay(days[4]) != "2026-01-02" {
		t.Errorf("unexpected bounds: %s .. %s", FormatDay(days[0]), FormatDay(days[4]))
	}
}

func TestDateRange_SingleDay(t *testing.T) {
	d := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	days := DateRange(d, d)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
}

func TestDateRange_EndBeforeStart(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
	if days := DateRange(start, end); days != nil {
		t.Errorf("expected nil for inverted range, got %v", days)
	}
}
