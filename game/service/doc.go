// Package service provides the business logic layer for the tour bus
// simulation.
//
// The service package implements:
//   - Multi-session simulation management
//   - Rule preset loading and storage
//   - Turn-by-turn AI play with per-turn reports
//   - Headless batch runs
//   - CSV analytics export
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level simulation
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. PresetManager manages rule preset loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, preset management, and
// orchestration of the turn driver. Each session maintains its own engine,
// AI controller, and analytics collector with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	presetMgr := config.NewManager("presets")
//	gameService := service.NewGameService(sessionMgr, presetMgr)
//
//	// Create a new session
//	info, err := gameService.CreateSession(ctx, service.CreateSessionRequest{Seed: 42})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play turns until the game ends
//	report, err := gameService.PlayTurn(ctx, info.ID)
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different presets
// and lineups. Sessions track creation time, last access time, and the full
// analytics record of every turn played.
package service
