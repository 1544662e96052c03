package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testState(t *testing.T) state.GameState {
	t.Helper()
	r := state.NewReducer(dice.NewSeeded(7))
	gs := r.Reduce(r.Initial(), state.StartBattle{})
	return r.Reduce(gs, state.PlayerAttack{})
}

func setupRedis(t *testing.T, ttl time.Duration) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStorage("redis://"+mr.Addr(), ttl, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func setupSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "saves", "quest.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// backends returns every Storage implementation, each with a fresh store.
func backends(t *testing.T) map[string]Storage {
	t.Helper()
	redisStore, _ := setupRedis(t, 0)
	return map[string]Storage{
		"memory": NewMemoryStorage(),
		"redis":  redisStore,
		"sqlite": setupSQLite(t),
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			id := uuid.New()
			gs := testState(t)

			require.NoError(t, store.Ping(ctx))
			require.NoError(t, store.SaveGame(ctx, id, gs))

			loaded, err := store.LoadGame(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Equal(t, gs, *loaded)

			gs = state.NewReducer(dice.NewSeeded(1)).Reduce(gs, state.FleeBattle{})
			require.NoError(t, store.SaveGame(ctx, id, gs))
			loaded, err = store.LoadGame(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, gs.Screen, loaded.Screen)

			require.NoError(t, store.DeleteGame(ctx, id))
			loaded, err = store.LoadGame(ctx, id)
			require.NoError(t, err)
			assert.Nil(t, loaded)
		})
	}
}

func TestStorage_LoadMissing(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			loaded, err := store.LoadGame(context.Background(), uuid.New())
			assert.NoError(t, err)
			assert.Nil(t, loaded)
		})
	}
}

func TestRedisStorage_KeyAndTTL(t *testing.T) {
	store, mr := setupRedis(t, time.Hour)
	id := uuid.New()
	require.NoError(t, store.SaveGame(context.Background(), id, testState(t)))

	key := "gamestate:" + id.String()
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))

	raw, err := mr.Get(key)
	require.NoError(t, err)
	var save SaveFile
	require.NoError(t, json.Unmarshal([]byte(raw), &save))
	assert.Equal(t, SaveVersion, save.Version)
	assert.False(t, save.SavedAt.IsZero())
}

func TestRedisStorage_NoTTL(t *testing.T) {
	store, mr := setupRedis(t, 0)
	id := uuid.New()
	require.NoError(t, store.SaveGame(context.Background(), id, testState(t)))
	assert.Equal(t, time.Duration(0), mr.TTL("gamestate:"+id.String()))
}

func TestRedisStorage_RejectsOldSave(t *testing.T) {
	store, mr := setupRedis(t, 0)
	id := uuid.New()
	require.NoError(t, mr.Set("gamestate:"+id.String(), `{"version":0,"state":{}}`))

	_, err := store.LoadGame(context.Background(), id)
	assert.ErrorIs(t, err, ErrIncompatibleSave)
}

func TestRedisStorage_PingFailsWhenDown(t *testing.T) {
	store, mr := setupRedis(t, 0)
	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestNewRedisStorage_BadURL(t *testing.T) {
	_, err := NewRedisStorage("http://localhost:6379", 0, testLogger())
	assert.Error(t, err)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ", testLogger())
	assert.Error(t, err)
}

func TestSQLiteStorage_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.db")
	id := uuid.New()
	gs := testState(t)

	first, err := OpenSQLite(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, first.SaveGame(context.Background(), id, gs))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path, testLogger())
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.LoadGame(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, gs, *loaded)
}

func TestMemoryStorage_PingError(t *testing.T) {
	store := NewMemoryStorage()
	boom := errors.New("boom")
	store.SetPingError(boom)
	assert.ErrorIs(t, store.Ping(context.Background()), boom)
	store.SetPingError(nil)
	assert.NoError(t, store.Ping(context.Background()))
}
