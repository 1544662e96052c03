package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/quest-engine/pkg/state"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeGameCreated   EventType = "game.created"
	EventTypeActionApplied EventType = "game.action_applied"
	EventTypeGameDeleted   EventType = "game.deleted"
)

// Event represents a generic event structure
type Event struct {
	Type   EventType      `json:"type"`
	GameID string         `json:"game_id"`
	Data   map[string]any `json:"data,omitempty"`
}

// Channel is the Pub/Sub channel carrying a game's events.
func Channel(gameID uuid.UUID) string {
	return "game:" + gameID.String()
}

// Broadcaster publishes events to Redis Pub/Sub for SSE distribution
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// PublishGameCreated publishes a game.created event
func (b *Broadcaster) PublishGameCreated(ctx context.Context, gameID uuid.UUID, gs state.GameState) error {
	return b.publishToGame(ctx, gameID, Event{
		Type:   EventTypeGameCreated,
		GameID: gameID.String(),
		Data: map[string]any{
			"screen": gs.Screen,
			"level":  gs.Player.Level,
		},
	})
}

// PublishActionApplied publishes a game.action_applied event
func (b *Broadcaster) PublishActionApplied(ctx context.Context, gameID uuid.UUID, action state.ActionType, gs state.GameState) error {
	return b.publishToGame(ctx, gameID, Event{
		Type:   EventTypeActionApplied,
		GameID: gameID.String(),
		Data: map[string]any{
			"action":    action,
			"screen":    gs.Screen,
			"health":    gs.Player.Health,
			"level":     gs.Player.Level,
			"game_over": gs.GameOver,
		},
	})
}

// PublishGameDeleted publishes a game.deleted event
func (b *Broadcaster) PublishGameDeleted(ctx context.Context, gameID uuid.UUID) error {
	return b.publishToGame(ctx, gameID, Event{
		Type:   EventTypeGameDeleted,
		GameID: gameID.String(),
	})
}

// publishToGame publishes an event to the game-specific channel
func (b *Broadcaster) publishToGame(ctx context.Context, gameID uuid.UUID, event Event) error {
	channel := Channel(gameID)

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event", event)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
	)

	return nil
}
