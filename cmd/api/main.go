package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/quest-engine/internal/config"
	"github.com/jwebster45206/quest-engine/internal/game"
	"github.com/jwebster45206/quest-engine/internal/handlers"
	"github.com/jwebster45206/quest-engine/internal/logger"
	"github.com/jwebster45206/quest-engine/internal/middleware"
	"github.com/jwebster45206/quest-engine/internal/services/events"
	"github.com/jwebster45206/quest-engine/internal/storage"
	"github.com/jwebster45206/quest-engine/internal/telemetry"
	"github.com/jwebster45206/quest-engine/pkg/dice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Quest Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"storage_backend", cfg.StorageBackend)

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.OTelEndpoint)
	if err != nil {
		log.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}

	store, redisClient, err := openStorage(cfg, log)
	if err != nil {
		log.Error("Failed to open storage", "error", err, "backend", cfg.StorageBackend)
		os.Exit(1)
	}

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.Ping(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	var src dice.Source
	if cfg.RandomSeed != 0 {
		src = dice.NewSeeded(cfg.RandomSeed)
		log.Info("Using seeded dice", "seed", cfg.RandomSeed)
	}

	games := game.NewService(store, src, log)
	gamesHandler := handlers.NewGamesHandler(games, log)

	switch {
	case !cfg.EventsEnabled:
		log.Info("Game events disabled")
	case redisClient == nil:
		log.Info("Game events need the redis storage backend; disabled")
	default:
		games.WithPublisher(events.NewBroadcaster(redisClient, log))
		gamesHandler.WithEvents(handlers.NewEventsHandler(redisClient, log))
		log.Info("Game events enabled")
	}

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(store, log))
	mux.Handle("/v1/games", gamesHandler)
	mux.Handle("/v1/games/", gamesHandler)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     middleware.Logger(log)(mux),
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the event stream stays open
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Error flushing traces", "error", err)
	}

	log.Info("Server exited")
}

// openStorage opens the configured backend. The Redis client is returned
// for the event broadcaster and is nil for the other backends.
func openStorage(cfg *config.Config, log *slog.Logger) (storage.Storage, *redis.Client, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		store, err := storage.OpenSQLite(cfg.SQLitePath, log)
		return store, nil, err
	case config.BackendMemory:
		log.Warn("Using in-memory storage; games are lost on restart")
		return storage.NewMemoryStorage(), nil, nil
	default:
		store, err := storage.NewRedisStorage(cfg.RedisURL, cfg.SaveTTL, log)
		if err != nil {
			return nil, nil, err
		}
		waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := store.WaitForConnection(waitCtx); err != nil {
			return nil, nil, err
		}
		return store, store.Client(), nil
	}
}
