package service

import (
	"context"
	"time"

	"github.com/lakesidegames/tourbus/game/ai"
	"github.com/lakesidegames/tourbus/game/analytics"
	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/runner"
)

// GameService defines all simulation operations exposed to transports
type GameService interface {
	// Session management
	CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game operations
	PlayTurn(ctx context.Context, sessionID string) (*TurnReport, error)
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	ExportCSV(ctx context.Context, sessionID string) (string, error)

	// Strategies and presets
	ListStrategies(ctx context.Context) []string
	ListPresets(ctx context.Context) ([]*PresetInfo, error)
	LoadPreset(ctx context.Context, name string) (*engine.Settings, error)
	SavePreset(ctx context.Context, name string, settings *engine.Settings) error

	// Headless batches
	RunBatch(ctx context.Context, req BatchRequest) (*runner.BatchResult, error)
}

// SessionOptions carries everything needed to start a session's game
type SessionOptions struct {
	Settings   *engine.Settings
	Preset     string
	Strategies []string
	Seed       int64
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, opts SessionOptions) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// PresetManager handles rule preset loading
type PresetManager interface {
	LoadPreset(name string) (*engine.Settings, error)
	ListPresets() ([]*PresetInfo, error)
	GetDefault() *engine.Settings
	SavePreset(name string, settings *engine.Settings) error
}

// Session is one live game: its state-bound engine, the AI controller that
// plays every seat, and the collector recording the run.
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Controller     *ai.Controller
	Collector      *analytics.Collector
	Preset         string
	Strategies     []string
	Seed           int64
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
