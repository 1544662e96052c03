package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/quest-engine/pkg/state"
)

// MemoryStorage keeps encoded saves in a map. It backs the "memory"
// storage backend and the tests of everything built on Storage.
type MemoryStorage struct {
	mu        sync.RWMutex
	saves     map[uuid.UUID][]byte
	pingError error
}

// Ensure MemoryStorage implements Storage interface
var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		saves: make(map[uuid.UUID][]byte),
	}
}

// SetPingError configures ping to fail with err, or succeed when err is nil
func (m *MemoryStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// PutRaw stores raw save file bytes under id.
func (m *MemoryStorage) PutRaw(id uuid.UUID, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[id] = data
}

// Len returns the number of stored games.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.saves)
}

func (m *MemoryStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MemoryStorage) Close() error {
	return nil
}

func (m *MemoryStorage) SaveGame(ctx context.Context, id uuid.UUID, gs state.GameState) error {
	data, err := EncodeSave(gs, time.Now())
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[id] = data
	return nil
}

func (m *MemoryStorage) LoadGame(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	m.mu.RLock()
	data, exists := m.saves[id]
	m.mu.RUnlock()
	if !exists {
		return nil, nil // Return nil for not found
	}

	save, err := DecodeSave(data)
	if err != nil {
		return nil, err
	}
	return &save.State, nil
}

func (m *MemoryStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saves, id)
	return nil
}
