package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/quest-engine/pkg/state"
)

const keyPrefix = "gamestate:"

// RedisStorage implements the Storage interface using Redis
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance. redisURL is either a
// redis:// URL or a bare host:port. A zero ttl keeps saves forever.
func NewRedisStorage(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opt := &redis.Options{Addr: redisURL}
	if strings.Contains(redisURL, "://") {
		var err error
		opt, err = redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}
	}

	return &RedisStorage{
		client: redis.NewClient(opt),
		logger: logger,
		ttl:    ttl,
	}, nil
}

// Client returns the underlying Redis client for direct operations
func (r *RedisStorage) Client() *redis.Client {
	return r.client
}

func gameKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Game operations

func (r *RedisStorage) SaveGame(ctx context.Context, id uuid.UUID, gs state.GameState) error {
	data, err := EncodeSave(gs, time.Now())
	if err != nil {
		r.logger.Error("Failed to encode game", "uuid", id, "error", err)
		return err
	}

	if err := r.client.Set(ctx, gameKey(id), data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save game", "uuid", id, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadGame(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	data, err := r.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Game not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load game", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	save, err := DecodeSave(data)
	if err != nil {
		r.logger.Error("Failed to decode game", "uuid", id, "error", err)
		return nil, err
	}
	return &save.State, nil
}

func (r *RedisStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, gameKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete game", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
