package storage

import "github.com/NgoHuuLoc0612/HabitFlow/internal/models"

// Provider persists state snapshots. The engine itself never touches storage;
// the command layer loads a snapshot into the repository on startup and saves
// one back after mutations.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Snapshots
	Load() (models.State, error)
	Save(models.State) error

	// Utils
	GetConfigPath() string
}
