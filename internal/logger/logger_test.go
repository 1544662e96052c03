package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jwebster45206/quest-engine/internal/config"
)

func TestNew_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{Environment: "production", LogLevel: slog.LevelInfo})
	WithGameID(WithRequestID(log, "req-1"), "game-1").Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "hello" || entry["request_id"] != "req-1" || entry["game_id"] != "game-1" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNew_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{Environment: "development", LogLevel: slog.LevelWarn})
	log.Info("dropped")
	WithError(log, errors.New("boom")).Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "msg=kept") || !strings.Contains(out, "error=boom") {
		t.Errorf("unexpected text output %q", out)
	}
}
