package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/quest-engine/internal/services/events"
)

const keepaliveInterval = 30 * time.Second

// EventsHandler streams a game's events to the client as Server-Sent Events
type EventsHandler struct {
	redisClient *redis.Client
	logger      *slog.Logger
	keepalive   time.Duration
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(redisClient *redis.Client, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		redisClient: redisClient,
		logger:      logger,
		keepalive:   keepaliveInterval,
	}
}

// Stream relays the game's Pub/Sub channel until the client goes away.
// GET /v1/games/{id}/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	ctx := r.Context()
	channel := events.Channel(gameID)
	pubsub := h.redisClient.Subscribe(ctx, channel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			h.logger.Error("Failed to close pubsub", "error", err)
		}
	}()

	// Wait for the subscription so no event published after the handshake
	// is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		h.logger.Error("Failed to subscribe to game events", "error", err, "channel", channel)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to subscribe to game events")
		return
	}

	h.logger.Info("SSE connection established",
		"game_id", gameID.String(),
		"remote_addr", r.RemoteAddr)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)

	msgChan := pubsub.Channel()

	keepaliveTicker := time.NewTicker(h.keepalive)
	defer keepaliveTicker.Stop()

	h.sendSSE(w, "connected", map[string]any{
		"game_id": gameID.String(),
		"message": "Connected to event stream",
	})

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("SSE client disconnected", "game_id", gameID.String())
			return

		case msg, ok := <-msgChan:
			if !ok {
				return
			}
			var event events.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				h.logger.Error("Failed to unmarshal event", "error", err, "payload", msg.Payload)
				continue
			}
			h.sendSSE(w, string(event.Type), event.Data)

		case <-keepaliveTicker.C:
			if _, err := fmt.Fprintf(w, ": keepalive\n\n"); err != nil {
				h.logger.Error("Failed to write keepalive", "error", err)
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}

// sendSSE sends a Server-Sent Event to the client
func (h *EventsHandler) sendSSE(w http.ResponseWriter, eventType string, data any) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("Failed to marshal SSE data", "error", err)
		return
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, dataJSON); err != nil {
		h.logger.Error("Failed to write event", "error", err)
		return
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
