package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/quest-engine/internal/game"
	"github.com/jwebster45206/quest-engine/internal/middleware"
	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/state"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error string `json:"error"`
}

// GameResponse is the body returned by every endpoint that yields a state.
type GameResponse struct {
	ID    uuid.UUID       `json:"id"`
	State state.GameState `json:"state"`
}

// ExploreRequest is the body of POST /v1/games/{id}/explore. An empty
// terrain means plains.
type ExploreRequest struct {
	Terrain actor.Terrain `json:"terrain"`
}

type GamesHandler struct {
	games  *game.Service
	events *EventsHandler
	logger *slog.Logger
}

func NewGamesHandler(games *game.Service, logger *slog.Logger) *GamesHandler {
	return &GamesHandler{
		games:  games,
		logger: logger,
	}
}

// WithEvents enables GET /v1/games/{id}/events
// Returns the GamesHandler for method chaining
func (h *GamesHandler) WithEvents(events *EventsHandler) *GamesHandler {
	h.events = events
	return h
}

// ServeHTTP routes game requests
// Routes:
// POST   /v1/games              - Create a new game
// GET    /v1/games/{id}         - Read a game's state
// DELETE /v1/games/{id}         - Delete a game
// POST   /v1/games/{id}/actions - Apply an action
// POST   /v1/games/{id}/explore - Take a step on the map
// GET    /v1/games/{id}/summary - Plain-text summary
// GET    /v1/games/{id}/events  - Server-Sent Events stream
func (h *GamesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := middleware.FromContext(r.Context(), h.logger)

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/games"), "/")
	var parts []string
	if path != "" {
		parts = strings.Split(path, "/")
	}

	if len(parts) == 0 {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, log, r, http.MethodPost)
			return
		}
		h.handleCreate(w, r, log)
		return
	}

	gameID, err := uuid.Parse(parts[0])
	if err != nil {
		log.Warn("Invalid game ID", "id", parts[0], "error", err)
		writeError(w, log, http.StatusBadRequest, "Invalid game ID format")
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			h.handleRead(w, r, log, gameID)
		case http.MethodDelete:
			h.handleDelete(w, r, log, gameID)
		default:
			methodNotAllowed(w, log, r, http.MethodGet, http.MethodDelete)
		}
		return
	}

	if len(parts) > 2 {
		writeError(w, log, http.StatusNotFound, "Not found")
		return
	}

	switch parts[1] {
	case "actions":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, log, r, http.MethodPost)
			return
		}
		h.handleAction(w, r, log, gameID)
	case "explore":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, log, r, http.MethodPost)
			return
		}
		h.handleExplore(w, r, log, gameID)
	case "summary":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, log, r, http.MethodGet)
			return
		}
		h.handleSummary(w, r, log, gameID)
	case "events":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, log, r, http.MethodGet)
			return
		}
		h.handleEvents(w, r, log, gameID)
	default:
		writeError(w, log, http.StatusNotFound, "Not found")
	}
}

func (h *GamesHandler) handleCreate(w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	id, gs, err := h.games.Create(r.Context())
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusCreated, GameResponse{ID: id, State: gs})
}

func (h *GamesHandler) handleRead(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	gs, err := h.games.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, GameResponse{ID: id, State: gs})
}

func (h *GamesHandler) handleDelete(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	if err := h.games.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GamesHandler) handleAction(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Warn("Failed to read action body", "error", err)
		writeError(w, log, http.StatusBadRequest, "Failed to read request body")
		return
	}

	action, err := state.DecodeAction(body)
	if err != nil {
		log.Warn("Rejected action", "game_id", id, "error", err)
		writeError(w, log, http.StatusBadRequest, err.Error())
		return
	}

	gs, err := h.games.Dispatch(r.Context(), id, action)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, GameResponse{ID: id, State: gs})
}

func (h *GamesHandler) handleExplore(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	var req ExploreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn("Invalid explore request", "error", err)
		writeError(w, log, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.Terrain == "" {
		req.Terrain = actor.TerrainPlains
	}
	if !req.Terrain.Valid() {
		writeError(w, log, http.StatusBadRequest, fmt.Sprintf("Unknown terrain %q", req.Terrain))
		return
	}

	gs, err := h.games.Explore(r.Context(), id, req.Terrain)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, GameResponse{ID: id, State: gs})
}

func (h *GamesHandler) handleSummary(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	gs, err := h.games.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, state.Summary(gs)); err != nil {
		log.Error("Failed to write summary", "error", err)
	}
}

func (h *GamesHandler) handleEvents(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	if h.events == nil {
		writeError(w, log, http.StatusNotFound, "Event stream is not enabled")
		return
	}
	if _, err := h.games.Get(r.Context(), id); err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	h.events.Stream(w, r, id)
}

// writeServiceError maps game service errors to status codes.
func (h *GamesHandler) writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		writeError(w, log, http.StatusNotFound, "Game not found")
	case errors.Is(err, state.ErrUnknownAction), errors.Is(err, state.ErrInvalidAction):
		writeError(w, log, http.StatusBadRequest, err.Error())
	case errors.Is(err, state.ErrInvalidState), errors.Is(err, game.ErrCannotExplore):
		writeError(w, log, http.StatusConflict, err.Error())
	default:
		log.Error("Game request failed", "error", err)
		writeError(w, log, http.StatusInternalServerError, "Internal server error")
	}
}

func methodNotAllowed(w http.ResponseWriter, log *slog.Logger, r *http.Request, allowed ...string) {
	log.Warn("Method not allowed", "method", r.Method, "path", r.URL.Path)
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, log, http.StatusMethodNotAllowed,
		"Method not allowed. Supported methods: "+strings.Join(allowed, ", "))
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, status int, msg string) {
	writeJSON(w, log, status, ErrorResponse{Error: msg})
}
