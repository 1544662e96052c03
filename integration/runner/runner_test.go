package runner

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/quest-engine/internal/game"
	"github.com/jwebster45206/quest-engine/internal/handlers"
	"github.com/jwebster45206/quest-engine/internal/storage"
	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/state"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.MemoryStorage) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemoryStorage()
	svc := game.NewService(store, dice.NewSeeded(11), logger)
	server := httptest.NewServer(handlers.NewGamesHandler(svc, logger))
	t.Cleanup(server.Close)
	return server, store
}

// The bundled cases must pass against the real handlers.
func TestRunSuite_Cases(t *testing.T) {
	server, store := newTestServer(t)
	r := NewRunner(server.URL)

	files, err := filepath.Glob(filepath.Join("..", "cases", "*.json"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			suite, err := LoadTestSuite(file)
			require.NoError(t, err)

			result, err := r.RunSuite(context.Background(), suite)
			require.NoError(t, err)
			assert.Len(t, result.Results, len(suite.Steps))
			for _, step := range result.Results {
				assert.True(t, step.Success, step.StepName)
			}
		})
	}

	assert.Equal(t, 0, store.Len(), "games are deleted after each suite")
}

func TestRunSuite_ReportsFailures(t *testing.T) {
	server, _ := newTestServer(t)
	wrong := "battle"
	suite := TestSuite{
		Name: "wrong expectations",
		Steps: []TestStep{
			{Name: "screen", Action: []byte(`{"type":"CHANGE_SCREEN","payload":"map"}`), Expectations: Expectations{Screen: &wrong}},
			{Name: "empty step"},
			{Name: "still runs", Action: []byte(`{"type":"REFRESH_SHOP"}`)},
		},
	}

	t.Run("continue", func(t *testing.T) {
		result, err := NewRunner(server.URL).RunSuite(context.Background(), suite)
		require.Error(t, err)
		require.Len(t, result.Results, 3)
		assert.False(t, result.Results[0].Success)
		assert.False(t, result.Results[1].Success)
		assert.True(t, result.Results[2].Success)
	})

	t.Run("exit", func(t *testing.T) {
		r := NewRunner(server.URL)
		r.ErrorHandlingMode = ErrorHandlingExit
		result, err := r.RunSuite(context.Background(), suite)
		require.Error(t, err)
		assert.Len(t, result.Results, 1)
	})
}

func TestCheckExpectations(t *testing.T) {
	level, gold := 2, 10
	over := false
	gs := state.GameState{Screen: state.ScreenMap, BattleLog: []string{"You defeated the Rat!"}}
	gs.Player.Level = 1
	gs.Player.Gold = 10

	err := CheckExpectations(Expectations{Level: &level, Gold: &gold, GameOver: &over, BattleLogContains: []string{"Rat", "Ogre"}}, gs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level: expected 2, got 1")
	assert.Contains(t, err.Error(), `battle log does not contain "Ogre"`)
	assert.NotContains(t, err.Error(), "gold")
}
