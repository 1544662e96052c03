package runner

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TestSuite defines a scripted game played against the API
type TestSuite struct {
	Name  string     `json:"name"`
	Steps []TestStep `json:"steps"`
}

// TestStep is one request against the game and what should follow.
// Exactly one of Action or Explore is set.
type TestStep struct {
	Name         string          `json:"name,omitempty"`
	Action       json.RawMessage `json:"action,omitempty"`  // action envelope
	Explore      *string         `json:"explore,omitempty"` // terrain
	Expectations Expectations    `json:"expect"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	Status *int `json:"status,omitempty"` // HTTP status, 200 when unset

	Screen     *string  `json:"screen,omitempty"`
	Level      *int     `json:"level,omitempty"`
	Health     *int     `json:"health,omitempty"`
	Gold       *int     `json:"gold,omitempty"`
	Experience *int     `json:"experience,omitempty"`
	GameOver   *bool    `json:"game_over,omitempty"`
	InBattle   *bool    `json:"in_battle,omitempty"`
	Inventory  []string `json:"inventory,omitempty"` // item IDs, order independent

	BattleLogContains []string `json:"battle_log_contains,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	StepName string
	Success  bool
	Error    error
	Duration time.Duration
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Suite    string
	Results  []TestResult
	Error    error
	Duration time.Duration
	GameID   uuid.UUID
}
