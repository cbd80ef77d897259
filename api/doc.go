// Package api provides HTTP REST API handlers for the tour bus simulation.
//
// The api package implements:
//   - RESTful endpoints for simulation operations
//   - Session management endpoints
//   - Strategy and rule preset listing
//   - Headless batch runs
//   - CSV analytics export
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Full game state
//   - POST /api/sessions/{id}/play-turn - Play one AI turn, returns a TurnReport
//   - GET /api/sessions/{id}/export - Download the analytics CSV
//
// Strategies and Presets:
//   - GET /api/strategies - List registered AI strategies
//   - GET /api/presets - List available rule presets
//   - GET /api/presets/{name} - Get a preset's settings
//   - POST /api/presets - Save a preset {name, settings}
//
// Batches:
//   - POST /api/batch - Run a headless batch {games, strategies, preset, seed, workers}
//
// Request/Response Format:
//
// All endpoints accept and return JSON except the CSV export. Errors are
// returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// Playing a turn on a finished game returns 409 Conflict.
//
// WebSocket:
//
// GET /ws?session={id} upgrades to a spectator connection; the server pushes
// a turn_report message after every played turn.
package api
