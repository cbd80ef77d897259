package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lakesidegames/tourbus/game/ai"
	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/runner"
)

var (
	// ErrGameFinished is returned when a turn is requested on an ended game
	ErrGameFinished = errors.New("game already finished")
	// ErrNoStrategies is returned for a batch request without a lineup
	ErrNoStrategies = errors.New("at least one strategy is required")
)

// The batch endpoint refuses unbounded work
const maxBatchGames = 1000

// defaultLineup seats the four stock strategies in table order
func defaultLineup() []string {
	return []string{
		ai.StrategyAggressive,
		ai.StrategyDefensive,
		ai.StrategyBalanced,
		ai.StrategyOpportunistic,
	}
}

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	presets  PresetManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, presets PresetManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		presets:  presets,
	}
}

// resolveSettings loads the named preset, or falls back to the defaults
func (s *gameServiceImpl) resolveSettings(preset string) (*engine.Settings, error) {
	if preset == "" {
		return s.presets.GetDefault(), nil
	}
	settings, err := s.presets.LoadPreset(preset)
	if err != nil {
		available, listErr := s.presets.ListPresets()
		if listErr == nil && len(available) > 0 {
			ids := make([]string, 0, len(available))
			for _, p := range available {
				ids = append(ids, p.PresetID)
			}
			return nil, fmt.Errorf("preset %q not found, available: %v", preset, ids)
		}
		return nil, fmt.Errorf("failed to load preset %q: %w", preset, err)
	}
	return settings, nil
}

// CreateSession starts a new seeded game with the requested lineup
func (s *gameServiceImpl) CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.resolveSettings(req.Preset)
	if err != nil {
		return nil, err
	}

	strategies := req.Strategies
	if len(strategies) == 0 {
		strategies = defaultLineup()
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := s.sessions.Create("", SessionOptions{
		Settings:   settings,
		Preset:     req.Preset,
		Strategies: strategies,
		Seed:       seed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Delete(sessionID)
}

// PlayTurn advances the session by one AI turn and reports what happened
func (s *gameServiceImpl) PlayTurn(ctx context.Context, sessionID string) (*TurnReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.State()
	if state.GameEnded {
		return nil, ErrGameFinished
	}

	player := state.CurrentPlayer()
	decision := runner.PlayTurn(sess.Engine, sess.Controller, sess.Collector, false)

	report := &TurnReport{
		SessionID:  sess.ID,
		TurnNumber: sess.Collector.TurnCount(),
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Strategy:   player.Strategy,
		Passed:     decision == nil || decision.Bus == nil,
		Scores:     make(map[string]int, len(state.Players)),
		GameEnded:  state.GameEnded,
	}

	if turns := sess.Collector.Turns(); len(turns) > 0 {
		turn := turns[len(turns)-1]
		report.BusID = turn.BusID
		report.StartCity = turn.StartCity
		report.EndCity = turn.EndCity
		report.MorningAction = turn.MorningActionUsed
		report.AllDayAction = turn.AllDayActionUsed
		report.AttractionsVisited = turn.AttractionsVisited
		report.MoneyEarned = turn.MoneyEarned
		report.TouristsRuined = turn.TouristsRuined
	}

	for _, p := range state.Players {
		report.Scores[p.Name] = p.Money
	}
	if state.GameEnded {
		if winner := state.Winner(); winner != nil {
			report.Winner = winner.Name
		}
	}

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("warning: failed to persist session %s after turn: %v", sessionID, err)
	}

	return report, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.State(), nil
}

// ExportCSV renders the session's full analytics report
func (s *gameServiceImpl) ExportCSV(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", fmt.Errorf("session not found: %w", err)
	}
	return sess.Collector.ExportCSV(), nil
}

// ListStrategies returns the registered strategy names
func (s *gameServiceImpl) ListStrategies(ctx context.Context) []string {
	return ai.NewController().Strategies()
}

// ListPresets returns available rule presets
func (s *gameServiceImpl) ListPresets(ctx context.Context) ([]*PresetInfo, error) {
	return s.presets.ListPresets()
}

// LoadPreset loads a specific rule preset
func (s *gameServiceImpl) LoadPreset(ctx context.Context, name string) (*engine.Settings, error) {
	return s.presets.LoadPreset(name)
}

// SavePreset stores a rule preset to disk
func (s *gameServiceImpl) SavePreset(ctx context.Context, name string, settings *engine.Settings) error {
	return s.presets.SavePreset(name, settings)
}

// RunBatch plays a batch of headless games with the requested rules
func (s *gameServiceImpl) RunBatch(ctx context.Context, req BatchRequest) (*runner.BatchResult, error) {
	if req.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", req.Games)
	}
	if req.Games > maxBatchGames {
		return nil, fmt.Errorf("games capped at %d, got %d", maxBatchGames, req.Games)
	}

	strategies := req.Strategies
	if len(strategies) == 0 {
		strategies = defaultLineup()
	}
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}

	settings, err := s.resolveSettings(req.Preset)
	if err != nil {
		return nil, err
	}

	workers := req.Workers
	if workers < 1 {
		workers = 1
	}

	r := runner.NewRunner(settings, req.Seed, false)
	return r.RunBatch(req.Games, strategies, workers), nil
}

// sessionInfo builds the transport view of a session
func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	state := sess.Engine.State()
	return &SessionInfo{
		ID:             sess.ID,
		Preset:         sess.Preset,
		Strategies:     sess.Strategies,
		Seed:           sess.Seed,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		TurnsPlayed:    sess.Collector.TurnCount(),
		GameEnded:      state.GameEnded,
		GameState:      state,
	}
}
