package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/state"
)

func setup(t *testing.T) (*Broadcaster, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewBroadcaster(client, slog.New(slog.NewTextHandler(io.Discard, nil))), client
}

func receive(t *testing.T, ch <-chan *redis.Message) Event {
	t.Helper()
	select {
	case msg := <-ch:
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBroadcaster_PublishesToGameChannel(t *testing.T) {
	b, client := setup(t)
	ctx := context.Background()
	gameID := uuid.New()

	sub := client.Subscribe(ctx, Channel(gameID))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)
	ch := sub.Channel()

	gs := state.NewReducer(dice.NewSeeded(1)).Initial()

	require.NoError(t, b.PublishGameCreated(ctx, gameID, gs))
	ev := receive(t, ch)
	assert.Equal(t, EventTypeGameCreated, ev.Type)
	assert.Equal(t, gameID.String(), ev.GameID)
	assert.Equal(t, "start", ev.Data["screen"])

	require.NoError(t, b.PublishActionApplied(ctx, gameID, state.ActionResetGame, gs))
	ev = receive(t, ch)
	assert.Equal(t, EventTypeActionApplied, ev.Type)
	assert.Equal(t, "RESET_GAME", ev.Data["action"])
	assert.Equal(t, float64(100), ev.Data["health"])

	require.NoError(t, b.PublishGameDeleted(ctx, gameID))
	ev = receive(t, ch)
	assert.Equal(t, EventTypeGameDeleted, ev.Type)
}

func TestChannel(t *testing.T) {
	id := uuid.MustParse("2b1c9a52-5f43-4d4f-9a53-3f3d1f0ad0a1")
	assert.Equal(t, "game:2b1c9a52-5f43-4d4f-9a53-3f3d1f0ad0a1", Channel(id))
}
