package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/lakesidegames/tourbus/game/engine"
)

func createTestPresetDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "preset-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	return dir
}

func createValidPreset(name string) *Preset {
	return &Preset{
		Name:        name,
		Description: "Test preset",
		Settings:    engine.DefaultSettings(),
	}
}

func writePresetFile(t *testing.T, dir, name string, preset *Preset) {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal preset: %v", err)
	}

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	path := filepath.Join(dir, filename)
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("Failed to write preset file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := createTestPresetDir(t)
		defer os.RemoveAll(dir)

		writePresetFile(t, dir, "standard", createValidPreset("Standard"))

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Error("Expected manager to be non-nil")
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		_, err := NewManager("/non/existent/path")
		if err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("empty directory falls back to built-in rules", func(t *testing.T) {
		dir := createTestPresetDir(t)
		defer os.RemoveAll(dir)

		manager, err := NewManager(dir)
		if err != nil {
			t.Errorf("NewManager should succeed even without preset files, got error: %v", err)
		}
		if manager == nil {
			t.Fatal("Expected manager to be created")
		}

		defaults := manager.GetDefault()
		if defaults == nil {
			t.Fatal("Expected default settings to be available")
		}
		if defaults.TouristPoolSizePerCategory != engine.DefaultSettings().TouristPoolSizePerCategory {
			t.Error("Expected the built-in default rules")
		}
	})
}

func TestManager_LoadPreset(t *testing.T) {
	dir := createTestPresetDir(t)
	defer os.RemoveAll(dir)

	writePresetFile(t, dir, "standard", createValidPreset("Standard"))

	quick := createValidPreset("Quick")
	quick.Settings.PlayerStartMoney = []int{3, 3}
	writePresetFile(t, dir, "quick", quick)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load existing preset", func(t *testing.T) {
		settings, err := manager.LoadPreset("quick")
		if err != nil {
			t.Fatalf("Failed to load preset: %v", err)
		}
		if len(settings.PlayerStartMoney) != 2 {
			t.Errorf("Expected 2 seats, got %d", len(settings.PlayerStartMoney))
		}
	})

	t.Run("load with .json extension", func(t *testing.T) {
		settings, err := manager.LoadPreset("quick.json")
		if err != nil {
			t.Fatalf("Failed to load preset with extension: %v", err)
		}
		if settings.PlayerStartMoney[0] != 3 {
			t.Errorf("Expected start money 3, got %d", settings.PlayerStartMoney[0])
		}
	})

	t.Run("load from cache", func(t *testing.T) {
		settings1, _ := manager.LoadPreset("quick")
		settings2, err := manager.LoadPreset("quick")
		if err != nil {
			t.Fatalf("Failed to load preset from cache: %v", err)
		}

		// Should be the same pointer (cached)
		if settings1 != settings2 {
			t.Error("Expected preset to be loaded from cache")
		}
	})

	t.Run("load non-existent preset", func(t *testing.T) {
		_, err := manager.LoadPreset("non-existent")
		if err != ErrPresetNotFound {
			t.Errorf("Expected ErrPresetNotFound, got %v", err)
		}
	})

	t.Run("load preset without settings", func(t *testing.T) {
		invalidData := []byte(`{"name": "Empty"}`)
		err := os.WriteFile(filepath.Join(dir, "empty.json"), invalidData, 0644)
		if err != nil {
			t.Fatalf("Failed to write invalid preset: %v", err)
		}

		_, err = manager.LoadPreset("empty")
		if err == nil {
			t.Error("Expected error for preset without settings")
		}
	})

	t.Run("load preset with invalid settings", func(t *testing.T) {
		bad := createValidPreset("Bad")
		bad.Settings.TouristPoolSizePerCategory = 0
		writePresetFile(t, dir, "bad", bad)

		_, err := manager.LoadPreset("bad")
		if err == nil {
			t.Error("Expected error for invalid settings")
		}
	})

	t.Run("load malformed JSON", func(t *testing.T) {
		malformedData := []byte(`{"name": "Malformed", invalid json}`)
		err := os.WriteFile(filepath.Join(dir, "malformed.json"), malformedData, 0644)
		if err != nil {
			t.Fatalf("Failed to write malformed preset: %v", err)
		}

		_, err = manager.LoadPreset("malformed")
		if err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestManager_GetDefault(t *testing.T) {
	dir := createTestPresetDir(t)
	defer os.RemoveAll(dir)

	standard := createValidPreset("Standard")
	standard.Settings.CasinoRerollsPerBus = 4
	writePresetFile(t, dir, "standard", standard)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	settings := manager.GetDefault()
	if settings == nil {
		t.Fatal("Expected default settings to be non-nil")
	}
	if settings.CasinoRerollsPerBus != 4 {
		t.Errorf("Expected standard.json to be the default, got %d rerolls", settings.CasinoRerollsPerBus)
	}
}

func TestManager_ListPresets(t *testing.T) {
	dir := createTestPresetDir(t)
	defer os.RemoveAll(dir)

	presets := []struct {
		filename string
		name     string
	}{
		{"standard", "Standard"},
		{"quick", "Quick"},
		{"marathon", "Marathon"},
		{"casino", "Casino"},
	}

	for _, p := range presets {
		writePresetFile(t, dir, p.filename, createValidPreset(p.name))
	}

	// Also add a non-JSON file that should be ignored
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("readme"), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	presetList, err := manager.ListPresets()
	if err != nil {
		t.Fatalf("Failed to list presets: %v", err)
	}
	if len(presetList) != 4 {
		t.Errorf("Expected 4 presets, got %d", len(presetList))
	}

	foundPresets := make(map[string]bool)
	for _, info := range presetList {
		foundPresets[info.Name] = true
		if info.Seats == 0 {
			t.Errorf("Expected seat count for %s", info.Name)
		}
		if info.Language == "" {
			t.Errorf("Expected language for %s", info.Name)
		}
	}

	for _, p := range presets {
		if !foundPresets[p.name] {
			t.Errorf("Preset '%s' not found in list", p.name)
		}
	}
}

func TestManager_SavePreset(t *testing.T) {
	dir := createTestPresetDir(t)
	defer os.RemoveAll(dir)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("save and reload", func(t *testing.T) {
		settings := engine.DefaultSettings()
		settings.ZentrumPipsBonus = 3
		if err := manager.SavePreset("custom", settings); err != nil {
			t.Fatalf("Failed to save preset: %v", err)
		}

		if _, err := os.Stat(filepath.Join(dir, "custom.json")); err != nil {
			t.Error("Expected the preset file on disk")
		}

		loaded, err := manager.LoadPreset("custom")
		if err != nil {
			t.Fatalf("Failed to load saved preset: %v", err)
		}
		if loaded.ZentrumPipsBonus != 3 {
			t.Errorf("Expected the saved settings back, got bonus %d", loaded.ZentrumPipsBonus)
		}
	})

	t.Run("reject invalid settings", func(t *testing.T) {
		settings := engine.DefaultSettings()
		settings.Language = "latin"
		if err := manager.SavePreset("broken", settings); err == nil {
			t.Error("Expected invalid settings to be rejected")
		}
	})
}

func TestManager_RefreshCache(t *testing.T) {
	dir := createTestPresetDir(t)
	defer os.RemoveAll(dir)

	preset := createValidPreset("Changeable")
	preset.Settings.MarketRefillAmount = 1
	writePresetFile(t, dir, "standard", preset)
	writePresetFile(t, dir, "changeable", preset)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	loaded, _ := manager.LoadPreset("changeable")
	if loaded.MarketRefillAmount != 1 {
		t.Errorf("Expected initial refill amount 1, got %d", loaded.MarketRefillAmount)
	}

	// Modify preset file
	preset.Settings = engine.DefaultSettings()
	preset.Settings.MarketRefillAmount = 2
	writePresetFile(t, dir, "changeable", preset)

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("Failed to refresh cache: %v", err)
	}

	reloaded, _ := manager.LoadPreset("changeable")
	if reloaded.MarketRefillAmount != 2 {
		t.Errorf("Expected reloaded refill amount 2, got %d", reloaded.MarketRefillAmount)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := createTestPresetDir(t)
	defer os.RemoveAll(dir)

	writePresetFile(t, dir, "standard", createValidPreset("Standard"))
	for i := 1; i <= 5; i++ {
		name := "preset" + string(rune('0'+i))
		writePresetFile(t, dir, name, createValidPreset(name))
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	errors := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			name := "preset" + string(rune('0'+((id%5)+1)))
			_, err := manager.LoadPreset(name)
			if err != nil {
				errors <- err
			}
		}(i)
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}

	if manager.cachedCount() < 5 {
		t.Errorf("Expected at least 5 presets in cache, got %d", manager.cachedCount())
	}
}

// cachedCount is a test helper reporting the cache size
func (m *Manager) cachedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.presets)
}
