package models

import (
	"errors"
	"testing"
)

func TestParseState_Valid(t *testing.T) {
	data := []byte(`{
		"habits": [{"id": "h1", "name": "Read", "category": "learning", "target": 1, "frequency": "daily"}],
		"completions": {"2025-12-31": {"h1": {"completed": true, "timestamp": "2025-12-31T08:00:00Z"}}},
		"settings": {"theme": "dark"}
	}`)

	st, err := ParseState(data)
	if err != nil {
		t.Fatalf("ParseState failed: %v", err)
	}
	if len(st.Habits) != 1 || st.Habits[0].ID != "h1" {
		t.Errorf("unexpected habits: %+v", st.Habits)
	}
	if !st.Completions["2025-12-31"]["h1"].Completed {
		t.Error("expected completion entry to survive parsing")
	}
	if string(st.Settings) == "" {
		t.Error("expected settings blob to be carried through")
	}
}

func TestParseState_MissingKeys(t *testing.T) {
	cases := map[string]string{
		"no habits":      `{"completions": {}}`,
		"no completions": `{"habits": []}`,
		"neither":        `{"settings": {}}`,
	}
	for name, payload := range cases {
		if _, err := ParseState([]byte(payload)); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("%s: expected ErrInvalidFormat, got %v", name, err)
		}
	}
}

func TestParseState_EmptyCollections(t *testing.T) {
	st, err := ParseState([]byte(`{"habits": [], "completions": {}}`))
	if err != nil {
		t.Fatalf("ParseState failed: %v", err)
	}
	if st.Habits == nil || st.Completions == nil {
		t.Error("expected collections to be initialized")
	}
}

func TestParseState_Malformed(t *testing.T) {
	if _, err := ParseState([]byte(`{garbage`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
