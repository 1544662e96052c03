package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jwebster45206/quest-engine/pkg/state"
)

// SaveVersion is the save file format written by this build.
const SaveVersion = 1

// SaveFile is the on-disk and on-wire form of a saved game.
type SaveFile struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	State   state.GameState `json:"state"`
}

// EncodeSave wraps gs in a save file stamped with now.
func EncodeSave(gs state.GameState, now time.Time) ([]byte, error) {
	data, err := json.Marshal(SaveFile{
		Version: SaveVersion,
		SavedAt: now.UTC(),
		State:   gs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save file: %w", err)
	}
	return data, nil
}

// DecodeSave parses a save file. Saves from another format version fail
// with ErrIncompatibleSave and states that break the game's invariants
// with state.ErrInvalidState.
func DecodeSave(data []byte) (*SaveFile, error) {
	var header struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save file: %w", err)
	}
	if header.Version != SaveVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrIncompatibleSave, header.Version, SaveVersion)
	}

	var save SaveFile
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save file: %w", err)
	}
	if err := save.State.Validate(); err != nil {
		return nil, err
	}
	return &save, nil
}
