// Package mcp provides the Model Context Protocol server for the tour bus
// simulation.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for simulation operations
//   - A thin client that proxies every call to the REST API
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create a new game session (preset, strategies, seed)
//   - list_sessions: List all active sessions
//   - get_session: Get specific session details
//   - game_state: Full game state with players, buses, cities, and market
//   - play_turn: Advance the game by one AI turn
//   - play_turns: Advance the game by several turns at once
//   - export_csv: Download the per-turn analytics
//   - list_strategies: List the registered AI strategies
//   - list_presets: List the available rule presets
//   - run_batch: Run headless games and compare strategy win rates
//   - game_instructions: Game rules and tool usage notes
//
// Architecture:
//
// The MCP server holds no game state of its own. Each tool call translates
// into an HTTP request against the REST API, so MCP clients and REST/WebSocket
// clients always observe the same sessions.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Drive simulated games turn by turn
//   - Compare strategies over large headless batches
//   - Analyze per-turn economics via the CSV export
//   - Manage multiple concurrent sessions
package mcp
