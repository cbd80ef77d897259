// Command tourbus runs the tour bus simulation server.
//
// It supports three modes:
//  1. "serve" (default) – runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "batch" – runs headless games from the command line and prints a strategy comparison
//  3. "mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//
// Flags control host/port, preset and session directories, debug logging,
// and the batch parameters.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"

	"github.com/lakesidegames/tourbus/api"
	"github.com/lakesidegames/tourbus/game/config"
	"github.com/lakesidegames/tourbus/game/runner"
	"github.com/lakesidegames/tourbus/game/service"
	"github.com/lakesidegames/tourbus/game/session"
	"github.com/lakesidegames/tourbus/transport/mcp"
	"github.com/lakesidegames/tourbus/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Tour Bus Simulation Server"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:    "tourbus",
		Usage:   AppName,
		Version: Version,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP server with REST API, WebSocket, and MCP endpoint",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "port", Value: 8080, Usage: "HTTP server port", Sources: cli.EnvVars("PORT")},
					&cli.StringFlag{Name: "host", Value: "localhost", Usage: "HTTP server host", Sources: cli.EnvVars("HOST")},
					&cli.StringFlag{Name: "preset-dir", Value: "presets", Usage: "Directory containing rule presets", Sources: cli.EnvVars("PRESET_DIR")},
					&cli.StringFlag{Name: "sessions-dir", Value: "sessions", Usage: "Directory for persisted sessions", Sources: cli.EnvVars("SESSIONS_DIR")},
					&cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
				},
				Action: runServe,
			},
			{
				Name:  "batch",
				Usage: "Run headless games and print a strategy comparison",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Value: 100, Usage: "Number of games to simulate"},
					&cli.StringSliceFlag{Name: "strategy", Usage: "AI strategy per seat (repeatable; default: the four stock strategies)"},
					&cli.StringFlag{Name: "preset", Usage: "Rule preset name (requires --preset-dir)"},
					&cli.StringFlag{Name: "preset-dir", Value: "presets", Usage: "Directory containing rule presets"},
					&cli.IntFlag{Name: "seed", Usage: "Base seed; game i plays with seed+i (0 = time-based)"},
					&cli.IntFlag{Name: "workers", Usage: "Parallel workers (0 = one per CPU)"},
					&cli.BoolFlag{Name: "verbose", Usage: "Log every game as it finishes"},
					&cli.StringFlag{Name: "output", Usage: "Write the full batch result as JSON to this file"},
				},
				Action: runBatch,
			},
			{
				Name:  "mcp",
				Usage: "Run an MCP stdio server backed by the REST API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "Base URL of an already-running API server"},
					&cli.StringFlag{Name: "preset-dir", Value: "presets", Usage: "Directory containing rule presets (for the internal server)"},
					&cli.StringFlag{Name: "sessions-dir", Value: "sessions", Usage: "Directory for persisted sessions (for the internal server)"},
				},
				Action: runMCP,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// runServe starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy endpoint
func runServe(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	log.Printf("Starting %s v%s", AppName, Version)

	gameService, sessionManager, err := initializeServices(cmd.String("preset-dir"), cmd.String("sessions-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	addr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("port"))

	// MCP client for the /mcp endpoint proxies back into this server
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	if err := sessionManager.SaveAllSessions(); err != nil {
		log.Printf("Failed to persist sessions on shutdown: %v", err)
	}

	log.Println("Server stopped")
	return nil
}

// runBatch plays headless games directly, without a server
func runBatch(ctx context.Context, cmd *cli.Command) error {
	games := int(cmd.Int("games"))
	if games <= 0 {
		return fmt.Errorf("games must be positive, got %d", games)
	}

	strategies := cmd.StringSlice("strategy")
	if len(strategies) == 0 {
		strategies = []string{"aggressive", "defensive", "balanced", "opportunistic"}
	}

	batchRunner, err := newBatchRunner(cmd)
	if err != nil {
		return err
	}

	result := batchRunner.RunBatch(games, strategies, int(cmd.Int("workers")))

	printBatchSummary(result)

	if output := cmd.String("output"); output != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal batch result: %w", err)
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		log.Printf("Batch result written to %s", output)
	}
	return nil
}

// newBatchRunner resolves the preset and seed for a command-line batch
func newBatchRunner(cmd *cli.Command) (*runner.Runner, error) {
	seed := int64(cmd.Int("seed"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	preset := cmd.String("preset")
	if preset == "" {
		return runner.NewRunner(nil, seed, cmd.Bool("verbose")), nil
	}

	presetManager, err := config.NewManager(cmd.String("preset-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to open preset directory: %w", err)
	}
	settings, err := presetManager.LoadPreset(preset)
	if err != nil {
		return nil, err
	}
	return runner.NewRunner(settings, seed, cmd.Bool("verbose")), nil
}

// printBatchSummary renders the win-rate table on stdout
func printBatchSummary(result *runner.BatchResult) {
	fmt.Printf("\nBatch %s\n", result.BatchID)
	fmt.Printf("Games: %d/%d completed in %s\n\n",
		result.CompletedGames, result.TotalGames, result.TotalDuration.Round(time.Millisecond))

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

	fmt.Printf("%-20s %6s %8s %10s %12s\n", "PLAYER", "WINS", "RATE", "AVG SCORE", "MONEY/TURN")
	for _, name := range names {
		wins := result.WinCounts[name]
		rate := 0.0
		if result.CompletedGames > 0 {
			rate = float64(wins) / float64(result.CompletedGames) * 100
		}
		fmt.Printf("%-20s %6d %7.1f%% %10.1f %12.2f\n",
			name, wins, rate, result.AverageScores[name], result.AverageMoneyPerTurn[name])
	}
}

// runMCP runs an MCP stdio server. It tries to reuse an external API at the
// given URL; if unavailable, it starts a minimal internal HTTP API bound to a
// random loopback port and targets that.
func runMCP(ctx context.Context, cmd *cli.Command) error {
	externalURL := cmd.String("url")
	log.Printf("Checking for external API server at %s...", externalURL)

	baseURL := ""
	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Printf("External API server found at %s, using it for MCP", externalURL)
		baseURL = externalURL
	} else {
		log.Printf("No external API server found, starting internal HTTP server")

		gameService, _, err := initializeServices(cmd.String("preset-dir"), cmd.String("sessions-dir"))
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := fmt.Sprintf("127.0.0.1:%d", listener.Addr().(*net.TCPAddr).Port)
		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()

		httpServer := &http.Server{Handler: api.NewServer(gameService, hub)}
		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		// Give the listener a moment before the first proxy call
		time.Sleep(100 * time.Millisecond)
		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Println("MCP stdio server ready")

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

// initializeServices wires session/config managers and the game service.
// It also starts background routines that prune stale sessions and keep
// memory in sync with the session files on disk.
func initializeServices(presetDir, sessionsDir string) (service.GameService, *session.Manager, error) {
	if err := os.MkdirAll(presetDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create preset directory: %w", err)
	}

	presetManager, err := config.NewManager(presetDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create preset manager: %w", err)
	}

	persistence, err := session.NewFilePersistence(sessionsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	sessionManager := session.NewManagerWithPersistence(persistence)

	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Printf("Warning: Failed to load persisted sessions: %v", err)
	}

	gameService := service.NewGameService(sessionManager, presetManager)

	go sessionCleanupRoutine(sessionManager)
	go filesystemSyncRoutine(sessionManager, persistence)

	return gameService, sessionManager, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Printf("Cleaned up %d expired sessions", removed)
		}
	}
}

// filesystemSyncRoutine periodically syncs in-memory sessions with filesystem
// state. It removes sessions from memory when their files are deleted.
func filesystemSyncRoutine(manager *session.Manager, persistence session.SessionPersistence) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if persistence == nil {
			continue
		}

		pruned := 0
		for _, sess := range manager.List() {
			if !persistence.Exists(sess.ID) {
				if err := manager.DeleteFromMemory(sess.ID); err == nil {
					pruned++
					log.Printf("Pruned session %s from memory (file deleted)", sess.ID)
				}
			}
		}

		if pruned > 0 {
			log.Printf("Filesystem sync: pruned %d orphaned sessions from memory", pruned)
		}
	}
}
