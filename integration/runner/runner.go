package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/quest-engine/pkg/state"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner executes integration tests against a running quest-engine API
type Runner struct {
	BaseURL           string
	Client            *http.Client
	Logger            func(format string, args ...any)
	ErrorHandlingMode ErrorHandlingMode
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:           strings.TrimSuffix(baseURL, "/"),
		Client:            &http.Client{Timeout: 30 * time.Second},
		Logger:            func(string, ...any) {},
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}
	return suite, nil
}

// gameResponse mirrors the API's {id, state} body
type gameResponse struct {
	ID    uuid.UUID       `json:"id"`
	State state.GameState `json:"state"`
}

// RunSuite plays a suite on a fresh game and deletes the game afterwards
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Suite:   suite.Name,
		Results: make([]TestResult, 0, len(suite.Steps)),
	}

	var created gameResponse
	if status, err := r.do(ctx, http.MethodPost, "/v1/games", nil, &created); err != nil || status != http.StatusCreated {
		result.Error = fmt.Errorf("failed to create game (status %d): %w", status, err)
		result.Duration = time.Since(start)
		return result, result.Error
	}
	result.GameID = created.ID
	defer func() {
		if _, err := r.do(context.WithoutCancel(ctx), http.MethodDelete, "/v1/games/"+created.ID.String(), nil, nil); err != nil {
			r.Logger("    failed to delete game %s: %v", created.ID, err)
		}
	}()

	for i, step := range suite.Steps {
		r.Logger("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)
		stepResult := r.runStep(ctx, created.ID, step)
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.Logger("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), step.Name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, step.Name, stepResult.Error)
			}
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}
		r.Logger("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), step.Name, stepResult.Duration)
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

func (r *Runner) runStep(ctx context.Context, gameID uuid.UUID, step TestStep) TestResult {
	start := time.Now()
	result := TestResult{StepName: step.Name}

	base := "/v1/games/" + gameID.String()
	var (
		path string
		body []byte
	)
	switch {
	case len(step.Action) > 0 && step.Explore == nil:
		path, body = base+"/actions", step.Action
	case step.Explore != nil && len(step.Action) == 0:
		path = base + "/explore"
		body, _ = json.Marshal(map[string]string{"terrain": *step.Explore})
	default:
		result.Error = errors.New("step needs exactly one of action or explore")
		return result
	}

	var resp gameResponse
	status, err := r.do(ctx, http.MethodPost, path, body, &resp)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = err
		return result
	}

	wantStatus := http.StatusOK
	if step.Expectations.Status != nil {
		wantStatus = *step.Expectations.Status
	}
	if status != wantStatus {
		result.Error = fmt.Errorf("status %d, want %d", status, wantStatus)
		return result
	}
	if status == http.StatusOK {
		if err := CheckExpectations(step.Expectations, resp.State); err != nil {
			result.Error = err
			return result
		}
	}

	result.Success = true
	return result
}

// do sends a JSON request and decodes a 2xx JSON response into out
func (r *Runner) do(ctx context.Context, method, path string, body []byte, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// CheckExpectations compares a game state against the expectations of a step
func CheckExpectations(exp Expectations, gs state.GameState) error {
	var errs []error
	check := func(name string, want *int, got int) {
		if want != nil && *want != got {
			errs = append(errs, fmt.Errorf("%s: expected %d, got %d", name, *want, got))
		}
	}

	if exp.Screen != nil && state.Screen(*exp.Screen) != gs.Screen {
		errs = append(errs, fmt.Errorf("screen: expected %q, got %q", *exp.Screen, gs.Screen))
	}
	check("level", exp.Level, gs.Player.Level)
	check("health", exp.Health, gs.Player.Health)
	check("gold", exp.Gold, gs.Player.Gold)
	check("experience", exp.Experience, gs.Player.Experience)
	if exp.GameOver != nil && *exp.GameOver != gs.GameOver {
		errs = append(errs, fmt.Errorf("game_over: expected %v, got %v", *exp.GameOver, gs.GameOver))
	}
	if exp.InBattle != nil && *exp.InBattle != (gs.CurrentEnemy != nil) {
		errs = append(errs, fmt.Errorf("in_battle: expected %v", *exp.InBattle))
	}

	if exp.Inventory != nil {
		got := make([]string, 0, len(gs.Inventory))
		for _, it := range gs.Inventory {
			got = append(got, it.ID)
		}
		want := slices.Clone(exp.Inventory)
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			errs = append(errs, fmt.Errorf("inventory: expected %v, got %v", want, got))
		}
	}

	log := strings.Join(gs.BattleLog, "\n")
	for _, s := range exp.BattleLogContains {
		if !strings.Contains(log, s) {
			errs = append(errs, fmt.Errorf("battle log does not contain %q", s))
		}
	}

	return errors.Join(errs...)
}
