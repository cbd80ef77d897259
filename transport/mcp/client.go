package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/runner"
	"github.com/lakesidegames/tourbus/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Tour Bus Simulation",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Tour Bus Simulation - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
AI players run tour buses around a lake, visiting attractions to earn
money. The richest player when the tourist pool empties wins.

AVAILABLE TOOLS:
- create_session: Create a new simulated game session
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Get the full current game state
- play_turn: Advance the game by one AI turn
- play_turns: Advance the game by several AI turns at once
- export_csv: Download the per-turn analytics as CSV
- list_strategies: List the registered AI strategies
- list_presets: List the available rule presets
- run_batch: Run many headless games and compare strategies
- game_instructions: Get the game rules and tool usage notes`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional preset, strategies, and seed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"preset": map[string]interface{}{
					"type":        "string",
					"description": "Name of the rule preset to use (optional)",
				},
				"strategies": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "AI strategy per seat; defaults to the four stock strategies",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Random seed for a reproducible game (0 = time-based)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the full current game state: players, buses, cities, and market",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_turn",
		Description: "Advance the game by one AI turn and return the turn report",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePlayTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_turns",
		Description: "Advance the game by several AI turns, returning a compact report per turn",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"count": map[string]interface{}{
					"type":        "integer",
					"description": "Number of turns to play (stops early when the game ends)",
				},
			},
			Required: []string{"session_id", "count"},
		},
	}, c.handlePlayTurns)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "export_csv",
		Description: "Export the session's per-turn analytics as CSV",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleExportCSV)

	// Strategies, presets, batches
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_strategies",
		Description: "List the registered AI strategies",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListStrategies)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_presets",
		Description: "List the available rule presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListPresets)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "run_batch",
		Description: "Run many headless games and return a strategy win-rate comparison",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"games": map[string]interface{}{
					"type":        "integer",
					"description": "Number of games to simulate",
				},
				"strategies": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "AI strategy per seat; defaults to the four stock strategies",
				},
				"preset": map[string]interface{}{
					"type":        "string",
					"description": "Rule preset to use (optional)",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Base seed; game i plays with seed+i (0 = time-based)",
				},
				"workers": map[string]interface{}{
					"type":        "integer",
					"description": "Parallel workers (optional)",
				},
			},
			Required: []string{"games"},
		},
	}, c.handleRunBatch)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the game rules and tool usage notes",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// apiCallRaw fetches a non-JSON endpoint body (used for the CSV export)
func (c *Client) apiCallRaw(path string) (string, error) {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		if json.Unmarshal(data, &errResp) == nil {
			if msg, ok := errResp["error"]; ok {
				return "", fmt.Errorf("%s", msg)
			}
		}
		return "", fmt.Errorf("API error: %d", resp.StatusCode)
	}

	return string(data), nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	body := map[string]interface{}{}
	if preset, _ := args["preset"].(string); preset != "" {
		body["preset"] = preset
	}
	if raw, ok := args["strategies"].([]interface{}); ok {
		strategies := make([]string, 0, len(raw))
		for _, s := range raw {
			if name, ok := s.(string); ok {
				strategies = append(strategies, name)
			}
		}
		if len(strategies) > 0 {
			body["strategies"] = strategies
		}
	}
	if seed, ok := args["seed"].(float64); ok && seed != 0 {
		body["seed"] = int64(seed)
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nPreset: %s\nSeed: %d\nStrategies: %s\n",
		session.ID, presetLabel(session.Preset), session.Seed,
		strings.Join(session.Strategies, ", "))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		status := "running"
		if s.GameEnded {
			status = "finished"
		}
		result += fmt.Sprintf("- %s (Preset: %s, Turns: %d, %s, Created: %s)\n",
			s.ID, presetLabel(s.Preset), s.TurnsPlayed, status,
			s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlayTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var report service.TurnReport
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/play-turn", sessionID), nil, &report)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTurnReport(&report)), nil
}

func (c *Client) handlePlayTurns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	countRaw, _ := args["count"].(float64)
	count := int(countRaw)
	if count <= 0 {
		return mcp.NewToolResultError("count must be positive"), nil
	}
	if count > 200 {
		count = 200
	}

	var b strings.Builder
	for i := 0; i < count; i++ {
		var report service.TurnReport
		err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/play-turn", sessionID), nil, &report)
		if err != nil {
			// A finished game comes back as an error; surface what ran so far
			if b.Len() > 0 {
				b.WriteString(fmt.Sprintf("\nStopped after %d turns: %s\n", i, err.Error()))
				return mcp.NewToolResultText(b.String()), nil
			}
			return mcp.NewToolResultError(err.Error()), nil
		}

		b.WriteString(formatTurnLine(&report))

		if report.GameEnded {
			b.WriteString(fmt.Sprintf("\n🏆 Game over! Winner: %s\n", report.Winner))
			b.WriteString(formatScores(report.Scores))
			return mcp.NewToolResultText(b.String()), nil
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleExportCSV(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	csv, err := c.apiCallRaw(fmt.Sprintf("/api/sessions/%s/export", sessionID))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(csv), nil
}

func (c *Client) handleListStrategies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Strategies []string `json:"strategies"`
	}
	err := c.apiCall("GET", "/api/strategies", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Strategies:\n\n"
	for _, s := range response.Strategies {
		result += fmt.Sprintf("• %s\n", s)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListPresets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var presets []service.PresetInfo
	err := c.apiCall("GET", "/api/presets", nil, &presets)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Presets:\n\n"
	for _, preset := range presets {
		result += fmt.Sprintf("• %s\n  %s\n  Seats: %d, Language: %s\n\n",
			preset.PresetID, preset.Description, preset.Seats, preset.Language)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRunBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	games, _ := args["games"].(float64)
	body := map[string]interface{}{
		"games": int(games),
	}
	if raw, ok := args["strategies"].([]interface{}); ok {
		strategies := make([]string, 0, len(raw))
		for _, s := range raw {
			if name, ok := s.(string); ok {
				strategies = append(strategies, name)
			}
		}
		if len(strategies) > 0 {
			body["strategies"] = strategies
		}
	}
	if preset, _ := args["preset"].(string); preset != "" {
		body["preset"] = preset
	}
	if seed, ok := args["seed"].(float64); ok && seed != 0 {
		body["seed"] = int64(seed)
	}
	if workers, ok := args["workers"].(float64); ok && workers > 0 {
		body["workers"] = int(workers)
	}

	var result runner.BatchResult
	err := c.apiCall("POST", "/api/batch", body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBatchResult(&result)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🚌 Tour Bus Simulation - Game Rules

GAME OBJECTIVE:
Each AI player runs tour buses around a lake, carrying tourists to the
attractions they want to see. Tourists pay with the pips on their die;
the richest player when the tourist pool empties wins.

TURN STRUCTURE:
• Each turn, the current player's strategy picks a bus and a destination
• Morning actions (at the start city) can reroll tourist dice, swap
  tourists, or board new ones
• The bus then moves along a connection to a city with appeal: a port,
  or a city holding a built attraction matching a tourist aboard
• Tourists visit matching attractions in priority order, paying one pip
  each; the attraction owner collects the money
• Tourists whose die hits zero are ruined and leave the bus
• All-day actions let the player build attractions from the market,
  use ferries, or exercise special buildings

CATEGORIES:
• nature (green), water (blue), culture (red), gastronomy (yellow) -
  tourist categories with matching attraction decks
• gray - utility buildings; they grant actions but never appeal

GAME END:
The game ends when the tourist pool can no longer refill departing
buses. The player with the most money wins; ties break by attractions
built, then by seat order.

STRATEGIES:
• aggressive - chases the highest-paying route every turn
• defensive - protects income and avoids ruined tourists
• balanced - trades off earnings against board development
• opportunistic - exploits whatever the market and dice offer

TOOL USAGE:
• create_session, then play_turn (or play_turns with a count) to watch
  a game unfold; game_state shows the complete board at any time
• export_csv returns the per-turn analytics for offline analysis
• run_batch plays many headless games to compare strategy win rates
• Sessions have unique 4-character IDs and maintain independent state

Seeds make everything reproducible: two sessions created with the same
preset, strategies, and seed play identical games.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func presetLabel(preset string) string {
	if preset == "" {
		return "(default rules)"
	}
	return preset
}

func formatSessionInfo(session *service.SessionInfo) string {
	status := "running"
	if session.GameEnded {
		status = "finished"
	}
	header := fmt.Sprintf("Session: %s\nPreset: %s\nSeed: %d\nStrategies: %s\nTurns played: %d\nStatus: %s\nCreated: %s\n",
		session.ID, presetLabel(session.Preset), session.Seed,
		strings.Join(session.Strategies, ", "),
		session.TurnsPlayed, status,
		session.CreatedAt.Format("2006-01-02 15:04:05"))

	if session.GameState == nil {
		return header
	}
	return header + "\n" + formatGameState(session.GameState)
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Players
	result.WriteString("Players:\n")
	for i, p := range state.Players {
		marker := " "
		if i == state.CurrentPlayerIndex && !state.GameEnded {
			marker = ">"
		}
		result.WriteString(fmt.Sprintf("%s %s (%s): %d€\n", marker, p.Name, p.Strategy, p.Money))
	}

	// Buses
	if state.Board != nil && len(state.Board.Buses) > 0 {
		result.WriteString("\nBuses:\n")
		for _, bus := range state.Board.Buses {
			result.WriteString(fmt.Sprintf("• Bus %d at %s: %s\n",
				bus.ID, bus.CurrentCity, formatTourists(bus.Tourists)))
		}
	}

	// Built attractions per city, skipping empty cities to keep output short
	if state.Board != nil {
		var lines []string
		for _, name := range state.Board.CityNames {
			city := state.Board.Cities[name]
			var built []string
			for _, a := range city.Attractions {
				if a.Built() {
					built = append(built, fmt.Sprintf("%s (%s %d)", a.NameEnglish, a.Category, a.Value))
				}
			}
			if len(built) > 0 {
				lines = append(lines, fmt.Sprintf("• %s: %s", name, strings.Join(built, ", ")))
			}
		}
		if len(lines) > 0 {
			result.WriteString("\nBuilt attractions:\n")
			result.WriteString(strings.Join(lines, "\n"))
			result.WriteString("\n")
		}
	}

	// Market summary
	if state.Market != nil {
		result.WriteString("\nMarket:\n")
		for _, cat := range engine.Categories() {
			result.WriteString(fmt.Sprintf("• %s: %d available, %d in deck\n",
				cat, len(state.Market.Available[cat]), len(state.Market.Decks[cat])))
		}
	}

	result.WriteString(fmt.Sprintf("\nTourist pool: %d remaining\n", len(state.TouristPool)))

	if state.GameEnded {
		if winner := state.Winner(); winner != nil {
			result.WriteString(fmt.Sprintf("\n🏆 Game over! Winner: %s with %d€\n", winner.Name, winner.Money))
		} else {
			result.WriteString("\nGame over\n")
		}
	}

	return result.String()
}

func formatTourists(tourists []*engine.Tourist) string {
	if len(tourists) == 0 {
		return "(empty)"
	}
	parts := make([]string, 0, len(tourists))
	for _, t := range tourists {
		parts = append(parts, fmt.Sprintf("%s:%d", t.Category, t.Money))
	}
	return strings.Join(parts, " ")
}

func formatTurnReport(report *service.TurnReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Turn %d — %s (%s)\n", report.TurnNumber, report.PlayerName, report.Strategy))

	if report.Passed {
		b.WriteString("No movable bus; turn passed\n")
	} else {
		b.WriteString(fmt.Sprintf("Bus %d: %s → %s\n", report.BusID, report.StartCity, report.EndCity))
		if report.MorningAction != "" {
			b.WriteString(fmt.Sprintf("Morning action: %s\n", report.MorningAction))
		}
		if report.AllDayAction != "" {
			b.WriteString(fmt.Sprintf("All-day action: %s\n", report.AllDayAction))
		}
		b.WriteString(fmt.Sprintf("Visits: %d | Earned: %d€ | Tourists ruined: %d\n",
			report.AttractionsVisited, report.MoneyEarned, report.TouristsRuined))
	}

	b.WriteString("\n")
	b.WriteString(formatScores(report.Scores))

	if report.GameEnded {
		b.WriteString(fmt.Sprintf("\n🏆 Game over! Winner: %s\n", report.Winner))
	}

	return b.String()
}

// formatTurnLine renders a single compact turn line for play_turns output
func formatTurnLine(report *service.TurnReport) string {
	if report.Passed {
		return fmt.Sprintf("%d. %s PASS\n", report.TurnNumber, report.PlayerName)
	}
	return fmt.Sprintf("%d. %s bus %d %s→%s visits=%d earned=%d\n",
		report.TurnNumber, report.PlayerName, report.BusID,
		report.StartCity, report.EndCity,
		report.AttractionsVisited, report.MoneyEarned)
}

func formatScores(scores map[string]int) string {
	if len(scores) == 0 {
		return ""
	}
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})

	var b strings.Builder
	b.WriteString("Scores:\n")
	for _, name := range names {
		b.WriteString(fmt.Sprintf("• %s: %d€\n", name, scores[name]))
	}
	return b.String()
}

func formatBatchResult(result *runner.BatchResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Batch %s\n", result.BatchID))
	b.WriteString(fmt.Sprintf("Games: %d/%d completed in %s\n\n",
		result.CompletedGames, result.TotalGames, result.TotalDuration.Round(time.Millisecond)))

	if len(result.WinCounts) > 0 {
		names := make([]string, 0, len(result.WinCounts))
		for name := range result.WinCounts {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if result.WinCounts[names[i]] != result.WinCounts[names[j]] {
				return result.WinCounts[names[i]] > result.WinCounts[names[j]]
			}
			return names[i] < names[j]
		})

		b.WriteString("Win counts:\n")
		for _, name := range names {
			wins := result.WinCounts[name]
			pct := 0.0
			if result.CompletedGames > 0 {
				pct = float64(wins) / float64(result.CompletedGames) * 100
			}
			b.WriteString(fmt.Sprintf("• %s: %d (%.1f%%)\n", name, wins, pct))
		}
	}

	return b.String()
}
