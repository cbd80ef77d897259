// Package config provides rule preset management for the tour bus
// simulation.
//
// The config package handles:
//   - Loading rule presets from JSON files
//   - Preset validation and verification
//   - Default preset management
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets are stored as JSON files in the presets directory. Each preset
// carries a display name, an optional description, and the full rule
// settings:
//   - Per-seat starting money and attraction base costs
//   - Tourist pool sizing and refill behavior
//   - Special-attraction parameters (casino rerolls, center pip bonus,
//     contractor discount)
//   - Board language for city and attraction names
//
// Usage:
//
//	manager, err := config.NewManager("presets")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific preset
//	settings, err := manager.LoadPreset("standard")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default settings
//	defaults := manager.GetDefault()
//
//	// List available presets
//	presets, err := manager.ListPresets()
//
// Validation:
//
// All presets are validated with the validate package before use: positive
// costs and capacities, a known refill mode, a supported language, and a
// tourist pool large enough to seed the buses. Invalid presets are skipped
// when listing and rejected when loading or saving.
//
// When the preset directory holds no usable preset, the manager falls back
// to the built-in default rules so a bare install still runs.
package config
