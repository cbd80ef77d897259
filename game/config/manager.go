package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/service"
	"github.com/lakesidegames/tourbus/validate"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Preset is the on-disk format for a rule preset: the settings plus a
// display name and description.
type Preset struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Settings    *engine.Settings `json:"settings"`
}

// Manager handles rule preset loading and caching
type Manager struct {
	presetDir     string
	defaultPreset *engine.Settings
	presets       map[string]*Preset
	mu            sync.RWMutex
}

// NewManager creates a new preset manager
func NewManager(presetDir string) (*Manager, error) {
	// Ensure preset directory exists
	if _, err := os.Stat(presetDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("preset directory does not exist: %s", presetDir)
	}

	m := &Manager{
		presetDir: presetDir,
		presets:   make(map[string]*Preset),
	}

	// Load default preset
	if err := m.loadDefaultPreset(); err != nil {
		return nil, fmt.Errorf("failed to load default preset: %w", err)
	}

	return m, nil
}

// LoadPreset loads a preset's settings by name
func (m *Manager) LoadPreset(name string) (*engine.Settings, error) {
	preset, err := m.loadPreset(name)
	if err != nil {
		return nil, err
	}
	return preset.Settings, nil
}

func (m *Manager) loadPreset(name string) (*Preset, error) {
	m.mu.RLock()
	// Check cache first
	if preset, exists := m.presets[name]; exists {
		m.mu.RUnlock()
		return preset, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if preset, exists := m.presets[name]; exists {
		return preset, nil
	}

	// Add .json extension if not present
	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	presetPath := filepath.Join(m.presetDir, filename)

	// Read preset file
	data, err := os.ReadFile(presetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	// Parse preset
	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}
	if preset.Settings == nil {
		return nil, fmt.Errorf("%w: preset has no settings", ErrInvalidPreset)
	}

	// Validate settings
	if result := validate.Settings(preset.Settings); !result.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, result.Errors)
	}

	// Cache the preset
	m.presets[name] = &preset
	return &preset, nil
}

// ListPresets returns information about all available presets
func (m *Manager) ListPresets() ([]*service.PresetInfo, error) {
	entries, err := os.ReadDir(m.presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}

	var presets []*service.PresetInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		// Remove .json extension for preset name
		name := strings.TrimSuffix(entry.Name(), ".json")

		// Try to load the preset to get details
		preset, err := m.loadPreset(name)
		if err != nil {
			// Skip invalid presets
			continue
		}

		presets = append(presets, &service.PresetInfo{
			Filename:    entry.Name(),
			PresetID:    name, // This is the identifier to use for session creation
			Name:        preset.Name,
			Description: preset.Description,
			Seats:       len(preset.Settings.PlayerStartMoney),
			Language:    preset.Settings.Language,
		})
	}

	return presets, nil
}

// GetDefault returns the default preset's settings
func (m *Manager) GetDefault() *engine.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultPreset
}

// SetDefault sets the default preset by name
func (m *Manager) SetDefault(name string) error {
	settings, err := m.LoadPreset(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultPreset = settings
	return nil
}

// RefreshCache reloads all cached presets from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.presets = make(map[string]*Preset)
	m.mu.Unlock()

	// Reload default preset
	return m.loadDefaultPreset()
}

// loadDefaultPreset loads the default preset
func (m *Manager) loadDefaultPreset() error {
	// Try to load standard.json as default
	settings, err := m.LoadPreset("standard")
	if err != nil {
		// Try to load the first available preset
		presets, listErr := m.ListPresets()
		if listErr != nil || len(presets) == 0 {
			// Fall back to the built-in rules
			m.mu.Lock()
			m.defaultPreset = engine.DefaultSettings()
			m.mu.Unlock()
			return nil
		}

		settings, err = m.LoadPreset(presets[0].PresetID)
		if err != nil {
			m.mu.Lock()
			m.defaultPreset = engine.DefaultSettings()
			m.mu.Unlock()
			return nil
		}
	}

	m.mu.Lock()
	m.defaultPreset = settings
	m.mu.Unlock()
	return nil
}

// SavePreset saves a preset's settings to disk
func (m *Manager) SavePreset(name string, settings *engine.Settings) error {
	// Validate settings before saving
	if result := validate.Settings(settings); !result.Valid {
		return fmt.Errorf("%w: %v", ErrInvalidPreset, result.Errors)
	}

	// Add .json extension if not present
	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	preset := &Preset{
		Name:     strings.TrimSuffix(name, ".json"),
		Settings: settings,
	}

	presetPath := filepath.Join(m.presetDir, filename)

	// Marshal preset to JSON with indentation
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	// Write to file
	if err := os.WriteFile(presetPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}

	// Update cache
	m.mu.Lock()
	m.presets[strings.TrimSuffix(name, ".json")] = preset
	m.mu.Unlock()

	return nil
}
