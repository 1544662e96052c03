package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jwebster45206/quest-engine/pkg/state"
)

// ErrIncompatibleSave is returned when a save file was written by a
// different save format version.
var ErrIncompatibleSave = errors.New("incompatible save file version")

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage is the save/load port for games. Every implementation stores the
// versioned save file form of a state.
type Storage interface {
	HealthChecker
	Closer

	// SaveGame stores the full state of a game, replacing any earlier save
	SaveGame(ctx context.Context, id uuid.UUID, gs state.GameState) error

	// LoadGame retrieves a game by ID.
	// Returns nil if the game doesn't exist
	LoadGame(ctx context.Context, id uuid.UUID) (*state.GameState, error)

	// DeleteGame removes a game by ID
	DeleteGame(ctx context.Context, id uuid.UUID) error
}
