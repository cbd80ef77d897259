// Package websocket provides the spectator transport for the tour bus
// simulation.
//
// The websocket package implements:
//   - Real-time turn and state streaming to spectators
//   - Session-aware WebSocket connections
//   - Automatic broadcasting after each played turn
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded. Spectator connections are read-only; the
// server pushes:
//   - turn_report: the TurnReport for each turn played via the API
//   - state_update: the complete game state after mutations
//   - custom events (session_deleted, game_ended) with arbitrary data
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?sessionId=abc1) when establishing the connection.
// Updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a turn is played
//	hub.BroadcastTurn(sessionID, report)
//
// Concurrency:
//
// The hub serializes all registration, unregistration, and broadcasting
// through its event loop. Multiple clients can connect, disconnect, and
// receive messages simultaneously without blocking each other.
package websocket
