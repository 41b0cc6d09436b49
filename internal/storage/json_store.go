package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NgoHuuLoc0612/HabitFlow/internal/models"
)

// storeVersion is the on-disk schema version of the JSON store.
const storeVersion = 1

// jsonFile is the on-disk layout: the state shape plus a version field.
type jsonFile struct {
	Version int `json:"version"`
	models.State
}

type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(models.NewState())
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Load() (models.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.State{}, fmt.Errorf("storage not initialized, run 'habitflow init' first")
		}
		return models.State{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return models.State{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if file.Habits == nil {
		file.Habits = []models.Habit{}
	}
	if file.Completions == nil {
		file.Completions = map[string]map[string]models.Completion{}
	}

	return file.State, nil
}

func (s *JSONStore) Save(st models.State) error {
	return s.write(st)
}

func (s *JSONStore) write(st models.State) error {
	data, err := json.MarshalIndent(jsonFile{Version: storeVersion, State: st}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple habitflow processes that share the same storage path at
//     the same time is not supported and may lead to data loss or corruption.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
