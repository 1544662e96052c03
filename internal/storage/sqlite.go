package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jwebster45206/quest-engine/pkg/state"
)

//go:embed schema.sql
var schema string

// SQLiteStorage keeps saves in a game_saves table of a SQLite database.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ Storage = (*SQLiteStorage)(nil)

// OpenSQLite opens (creating if needed) the database at path and applies
// the schema.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStorage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logger.Info("SQLite storage opened", "path", cleanPath)
	return &SQLiteStorage{db: db, logger: logger}, nil
}

func (s *SQLiteStorage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) SaveGame(ctx context.Context, id uuid.UUID, gs state.GameState) error {
	now := time.Now()
	data, err := EncodeSave(gs, now)
	if err != nil {
		s.logger.Error("Failed to encode game", "uuid", id, "error", err)
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO game_saves (id, version, data, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET version = excluded.version, data = excluded.data, saved_at = excluded.saved_at`,
		id.String(), SaveVersion, string(data), now.UTC().UnixMilli(),
	)
	if err != nil {
		s.logger.Error("Failed to save game", "uuid", id, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) LoadGame(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM game_saves WHERE id = ?`, id.String()).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Game not found", "uuid", id)
			return nil, nil
		}
		s.logger.Error("Failed to load game", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	save, err := DecodeSave([]byte(data))
	if err != nil {
		s.logger.Error("Failed to decode game", "uuid", id, "error", err)
		return nil, err
	}
	return &save.State, nil
}

func (s *SQLiteStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM game_saves WHERE id = ?`, id.String()); err != nil {
		s.logger.Error("Failed to delete game", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
