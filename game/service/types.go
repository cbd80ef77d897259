package service

import (
	"time"

	"github.com/lakesidegames/tourbus/game/engine"
)

// SessionInfo is the transport-facing view of a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	Preset         string            `json:"preset"`
	Strategies     []string          `json:"strategies"`
	Seed           int64             `json:"seed"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	TurnsPlayed    int               `json:"turns_played"`
	GameEnded      bool              `json:"game_ended"`
	GameState      *engine.GameState `json:"game_state,omitempty"`
}

// TurnReport summarizes one played turn for transports and spectators
type TurnReport struct {
	SessionID  string `json:"session_id"`
	TurnNumber int    `json:"turn_number"`
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	Strategy   string `json:"strategy"`

	// Passed is true when the strategy found no movable bus
	Passed bool `json:"passed"`

	BusID              int                  `json:"bus_id"`
	StartCity          string               `json:"start_city,omitempty"`
	EndCity            string               `json:"end_city,omitempty"`
	MorningAction      engine.MorningAction `json:"morning_action,omitempty"`
	AllDayAction       engine.AllDayAction  `json:"all_day_action,omitempty"`
	AttractionsVisited int                  `json:"attractions_visited"`
	MoneyEarned        int                  `json:"money_earned"`
	TouristsRuined     int                  `json:"tourists_ruined"`

	Scores    map[string]int `json:"scores"`
	GameEnded bool           `json:"game_ended"`
	Winner    string         `json:"winner,omitempty"`
}

// PresetInfo describes one stored rule preset
type PresetInfo struct {
	Filename    string `json:"filename"`
	PresetID    string `json:"preset_id"` // identifier used for session creation
	Name        string `json:"name"`      // display name
	Description string `json:"description"`
	Seats       int    `json:"seats"`
	Language    string `json:"language"`
}

// CreateSessionRequest configures a new session. An empty preset means the
// default rules; empty strategies mean the four stock strategies; a zero
// seed draws a time-based one.
type CreateSessionRequest struct {
	Preset     string   `json:"preset,omitempty"`
	Strategies []string `json:"strategies,omitempty"`
	Seed       int64    `json:"seed,omitempty"`
}

// BatchRequest configures a headless batch run
type BatchRequest struct {
	Games      int      `json:"games"`
	Strategies []string `json:"strategies,omitempty"`
	Preset     string   `json:"preset,omitempty"`
	Seed       int64    `json:"seed,omitempty"`
	Workers    int      `json:"workers,omitempty"`
}
