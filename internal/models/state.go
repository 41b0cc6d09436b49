package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Completion is a single day's record for a habit. Presence of an entry means
// the habit was done on that day; there is no explicit "not done" record.
type Completion struct {
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrInvalidFormat is returned when an imported state payload is missing the
// required habits/completions keys.
var ErrInvalidFormat = errors.New("invalid state format")

// State is the full serializable snapshot of tracked data: the habit
// collection, the completion ledger (day -> habit id -> event), and blobs the
// engine carries through untouched (settings, notifications).
type State struct {
	Habits        []Habit                          `json:"habits"`
	Completions   map[string]map[string]Completion `json:"completions"`
	Settings      json.RawMessage                  `json:"settings,omitempty"`
	Notifications json.RawMessage                  `json:"notifications,omitempty"`
	ExportedAt    time.Time                        `json:"exported_at,omitzero"`
}

// NewState returns an empty state with initialized collections.
func NewState() State {
	return State{
		Habits:      []Habit{},
		Completions: map[string]map[string]Completion{},
	}
}

// ParseState decodes a state payload, requiring the habits and completions
// keys to be present. Anything else in the payload is preserved opaquely.
func ParseState(data []byte) (State, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return State{}, fmt.Errorf("failed to parse state payload: %w", err)
	}
	if _, ok := probe["habits"]; !ok {
		return State{}, fmt.Errorf("missing 'habits' key: %w", ErrInvalidFormat)
	}
	if _, ok := probe["completions"]; !ok {
		return State{}, fmt.Errorf("missing 'completions' key: %w", ErrInvalidFormat)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("failed to parse state payload: %w", err)
	}
	if st.Habits == nil {
		st.Habits = []Habit{}
	}
	if st.Completions == nil {
		st.Completions = map[string]map[string]Completion{}
	}
	return st, nil
}
