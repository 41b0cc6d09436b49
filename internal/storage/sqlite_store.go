package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT 'other',
	icon TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	target INTEGER NOT NULL DEFAULT 1,
	frequency TEXT NOT NULL DEFAULT 'daily',
	selected_days TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL,
	streak INTEGER NOT NULL DEFAULT 0,
	best_streak INTEGER NOT NULL DEFAULT 0,
	total_completions INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS completions (
	day TEXT NOT NULL,
	habit_id TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 1,
	timestamp TEXT NOT NULL,
	PRIMARY KEY (day, habit_id)
);

CREATE TABLE IF NOT EXISTS blobs (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitflow init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetDB exposes the database handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Load() (models.State, error) {
	if err := s.open(); err != nil {
		return models.State{}, err
	}

	st := models.NewState()

	rows, err := s.db.Query(`SELECT id, name, description, category, icon, color,
		target, frequency, selected_days, created_at, streak, best_streak, total_completions
		FROM habits ORDER BY position, created_at`)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		var category, frequency, selectedDays, createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &category, &h.Icon, &h.Color,
			&h.Target, &frequency, &selectedDays, &createdAt,
			&h.Streak, &h.BestStreak, &h.TotalCompletions); err != nil {
			return models.State{}, fmt.Errorf("failed to scan habit: %w", err)
		}
		h.Category = models.Category(category)
		h.Frequency = models.Frequency(frequency)
		if err := json.Unmarshal([]byte(selectedDays), &h.SelectedDays); err != nil {
			return models.State{}, fmt.Errorf("failed to parse selected days for habit %s: %w", h.ID, err)
		}
		if h.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return models.State{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
		}
		st.Habits = append(st.Habits, h)
	}
	if err := rows.Err(); err != nil {
		return models.State{}, fmt.Errorf("failed to read habits: %w", err)
	}

	crows, err := s.db.Query(`SELECT day, habit_id, completed, timestamp FROM completions`)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to query completions: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var day, habitID, timestamp string
		var completed int
		if err := crows.Scan(&day, &habitID, &completed, &timestamp); err != nil {
			return models.State{}, fmt.Errorf("failed to scan completion: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return models.State{}, fmt.Errorf("failed to parse completion timestamp: %w", err)
		}
		if st.Completions[day] == nil {
			st.Completions[day] = map[string]models.Completion{}
		}
		st.Completions[day][habitID] = models.Completion{Completed: completed != 0, Timestamp: ts}
	}
	if err := crows.Err(); err != nil {
		return models.State{}, fmt.Errorf("failed to read completions: %w", err)
	}

	st.Settings = s.loadBlob("settings")
	st.Notifications = s.loadBlob("notifications")

	return st, nil
}

func (s *SQLiteStore) loadBlob(key string) json.RawMessage {
	var value string
	if err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value); err != nil {
		return nil
	}
	return json.RawMessage(value)
}

// Save writes the full snapshot in one transaction, replacing the previous
// contents.
func (s *SQLiteStore) Save(st models.State) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"habits", "completions", "blobs"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, h := range st.Habits {
		selectedDays, err := json.Marshal(h.SelectedDays)
		if err != nil {
			return fmt.Errorf("failed to serialize selected days: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO habits
			(id, name, description, category, icon, color, target, frequency,
			 selected_days, created_at, streak, best_streak, total_completions, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Description, string(h.Category), h.Icon, h.Color,
			h.Target, string(h.Frequency), string(selectedDays),
			h.CreatedAt.Format(time.RFC3339), h.Streak, h.BestStreak, h.TotalCompletions, i,
		); err != nil {
			return fmt.Errorf("failed to insert habit %s: %w", h.ID, err)
		}
	}

	for day, entries := range st.Completions {
		for habitID, c := range entries {
			completed := 0
			if c.Completed {
				completed = 1
			}
			if _, err := tx.Exec(`INSERT INTO completions (day, habit_id, completed, timestamp)
				VALUES (?, ?, ?, ?)`,
				day, habitID, completed, c.Timestamp.Format(time.RFC3339),
			); err != nil {
				return fmt.Errorf("failed to insert completion for %s on %s: %w", habitID, day, err)
			}
		}
	}

	for key, value := range map[string]json.RawMessage{
		"settings":      st.Settings,
		"notifications": st.Notifications,
	} {
		if value == nil {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO blobs (key, value) VALUES (?, ?)`, key, string(value)); err != nil {
			return fmt.Errorf("failed to insert %s blob: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
