package session

import (
	"time"

	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData represents the JSON structure for persisted sessions.
// The analytics record is not persisted; a restored session starts a fresh
// collector from the current turn onward.
type PersistedSessionData struct {
	ID             string            `json:"id"`
	Preset         string            `json:"preset,omitempty"`
	Strategies     []string          `json:"strategies"`
	Seed           int64             `json:"seed"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}
