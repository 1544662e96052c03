// Package game owns running games: it loads a game, applies an action with
// the reducer, stores the result and announces it, one action per game at a
// time.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jwebster45206/quest-engine/internal/logger"
	"github.com/jwebster45206/quest-engine/internal/storage"
	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/event"
	"github.com/jwebster45206/quest-engine/pkg/state"
)

const tracerName = "github.com/jwebster45206/quest-engine/internal/game"

var (
	ErrNotFound = errors.New("game not found")
	// ErrCannotExplore is returned while the battle screen is up or after
	// defeat.
	ErrCannotExplore = errors.New("cannot explore right now")
)

// Publisher announces game changes. Failures are logged, never returned to
// the caller.
type Publisher interface {
	PublishGameCreated(ctx context.Context, gameID uuid.UUID, gs state.GameState) error
	PublishActionApplied(ctx context.Context, gameID uuid.UUID, action state.ActionType, gs state.GameState) error
	PublishGameDeleted(ctx context.Context, gameID uuid.UUID) error
}

// Service runs games on top of a Storage.
type Service struct {
	store     storage.Storage
	reducer   *state.Reducer
	src       dice.Source
	publisher Publisher
	logger    *slog.Logger
	tracer    trace.Tracer
	locks     *keyedMutex
}

// NewService creates a game service. src feeds both the reducer and map
// exploration; nil means the process-wide source.
func NewService(store storage.Storage, src dice.Source, logger *slog.Logger) *Service {
	if src == nil {
		src = dice.Default()
	}
	return &Service{
		store:   store,
		reducer: state.NewReducer(src),
		src:     src,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
		locks:   newKeyedMutex(),
	}
}

// WithPublisher sets where game changes are announced
// Returns the Service for method chaining
func (s *Service) WithPublisher(p Publisher) *Service {
	s.publisher = p
	return s
}

// WithTracerProvider replaces the global tracer provider
// Returns the Service for method chaining
func (s *Service) WithTracerProvider(tp trace.TracerProvider) *Service {
	s.tracer = tp.Tracer(tracerName)
	return s
}

// Create starts a new game from the initial state.
func (s *Service) Create(ctx context.Context) (uuid.UUID, state.GameState, error) {
	ctx, span := s.tracer.Start(ctx, "game.Create")
	defer span.End()

	id := uuid.New()
	span.SetAttributes(attribute.String("game.id", id.String()))

	gs := s.reducer.Initial()
	if err := s.store.SaveGame(ctx, id, gs); err != nil {
		return uuid.Nil, state.GameState{}, fail(span, fmt.Errorf("failed to save new game: %w", err))
	}

	log := logger.WithGameID(s.logger, id.String())
	log.Info("Game created")
	if s.publisher != nil {
		if err := s.publisher.PublishGameCreated(ctx, id, gs); err != nil {
			log.Warn("Failed to publish game created", "error", err)
		}
	}
	return id, gs, nil
}

// Get returns the current state of a game.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (state.GameState, error) {
	ctx, span := s.tracer.Start(ctx, "game.Get", trace.WithAttributes(attribute.String("game.id", id.String())))
	defer span.End()

	gs, err := s.load(ctx, id)
	if err != nil {
		return state.GameState{}, fail(span, err)
	}
	return gs, nil
}

// Dispatch applies a to a game and stores the result. Results that break
// the game's invariants are rejected with state.ErrInvalidState and not
// stored.
func (s *Service) Dispatch(ctx context.Context, id uuid.UUID, a state.Action) (state.GameState, error) {
	if a == nil {
		return state.GameState{}, state.ErrUnknownAction
	}
	ctx, span := s.tracer.Start(ctx, "game.Dispatch", trace.WithAttributes(
		attribute.String("game.id", id.String()),
		attribute.String("game.action", string(a.Type())),
	))
	defer span.End()

	unlock := s.locks.Lock(id)
	defer unlock()

	gs, err := s.load(ctx, id)
	if err != nil {
		return state.GameState{}, fail(span, err)
	}

	next, err := s.apply(ctx, id, gs, a)
	if err != nil {
		return state.GameState{}, fail(span, err)
	}
	return next, nil
}

// Explore takes one step on the map: an event is rolled at the player's
// level and, for battles, an enemy shaped by terrain is sent into battle.
// The event and the battle start are stored together as one change.
func (s *Service) Explore(ctx context.Context, id uuid.UUID, terrain actor.Terrain) (state.GameState, error) {
	ctx, span := s.tracer.Start(ctx, "game.Explore", trace.WithAttributes(
		attribute.String("game.id", id.String()),
		attribute.String("game.terrain", string(terrain)),
	))
	defer span.End()

	unlock := s.locks.Lock(id)
	defer unlock()

	gs, err := s.load(ctx, id)
	if err != nil {
		return state.GameState{}, fail(span, err)
	}
	if gs.GameOver || gs.Screen == state.ScreenBattle {
		return state.GameState{}, fail(span, ErrCannotExplore)
	}

	ev, enemy := event.Explore(s.src, gs.Player.Level, terrain)
	span.SetAttributes(attribute.String("game.event", string(ev.Type)))

	actions := []state.Action{state.TriggerEvent{Event: ev}}
	if enemy != nil {
		actions = append(actions, state.StartBattle{Enemy: enemy})
	}

	gs, err = s.apply(ctx, id, gs, actions...)
	if err != nil {
		return state.GameState{}, fail(span, err)
	}
	return gs, nil
}

// Delete removes a game. Deleting an unknown game is not an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "game.Delete", trace.WithAttributes(attribute.String("game.id", id.String())))
	defer span.End()

	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.store.DeleteGame(ctx, id); err != nil {
		return fail(span, fmt.Errorf("failed to delete game: %w", err))
	}

	log := logger.WithGameID(s.logger, id.String())
	log.Info("Game deleted")
	if s.publisher != nil {
		if err := s.publisher.PublishGameDeleted(ctx, id); err != nil {
			log.Warn("Failed to publish game deleted", "error", err)
		}
	}
	return nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (state.GameState, error) {
	gs, err := s.store.LoadGame(ctx, id)
	if err != nil {
		return state.GameState{}, fmt.Errorf("failed to load game: %w", err)
	}
	if gs == nil {
		return state.GameState{}, ErrNotFound
	}
	return *gs, nil
}

// apply reduces actions in order and stores the result once. Nothing is
// stored unless the final state is valid. It must be called with the game's
// lock held.
func (s *Service) apply(ctx context.Context, id uuid.UUID, gs state.GameState, actions ...state.Action) (state.GameState, error) {
	log := logger.WithGameID(s.logger, id.String())

	next := gs
	for _, a := range actions {
		next = s.reducer.Reduce(next, a)
	}
	last := actions[len(actions)-1].Type()

	if err := next.Validate(); err != nil {
		log.Warn("Rejected action", "action", last, "error", err)
		return state.GameState{}, err
	}
	if err := s.store.SaveGame(ctx, id, next); err != nil {
		return state.GameState{}, fmt.Errorf("failed to save game: %w", err)
	}

	log.Debug("Action applied", "action", last, "applied", len(actions), "screen", next.Screen)
	if s.publisher != nil {
		if err := s.publisher.PublishActionApplied(ctx, id, last, next); err != nil {
			log.Warn("Failed to publish action", "error", err)
		}
	}
	return next, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
