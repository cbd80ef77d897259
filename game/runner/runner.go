package runner

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lakesidegames/tourbus/game/ai"
	"github.com/lakesidegames/tourbus/game/analytics"
	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/setup"
)

// Safety cap so a stalled game cannot loop forever
const turnLimit = 1000

// Runner executes headless games between AI strategies. It is safe for
// concurrent use: every game owns its state and its seeded random stream.
type Runner struct {
	settings *engine.Settings
	seed     int64
	verbose  bool
}

// NewRunner creates a runner. A zero seed makes every game draw a fresh
// time-based seed; any other value makes game N reproducible as seed+N-1.
func NewRunner(settings *engine.Settings, seed int64, verbose bool) *Runner {
	if settings == nil {
		settings = engine.DefaultSettings()
	}
	return &Runner{settings: settings, seed: seed, verbose: verbose}
}

// RunGame plays one full game between the named strategies and returns its
// result. A panic anywhere in the game marks the result as errored instead
// of taking the caller down.
func (r *Runner) RunGame(strategies []string, gameNumber int) (result *GameResult) {
	result = &GameResult{
		GameNumber:  gameNumber,
		Seed:        r.gameSeed(gameNumber),
		WinnerID:    -1,
		Winner:      "None",
		FinalScores: make(map[string]int),
		PlayerStats: make(map[string]*analytics.PlayerStatistics),
		Outcome:     OutcomeError,
	}
	startTime := time.Now()

	defer func() {
		result.Duration = time.Since(startTime)
		if rec := recover(); rec != nil {
			result.Outcome = OutcomeError
			result.ErrorMessage = fmt.Sprintf("panic: %v", rec)
			r.logf("[game %d] ERROR: %s", gameNumber, result.ErrorMessage)
		}
	}()

	players := make([]setup.PlayerConfig, 0, len(strategies))
	for _, strategy := range strategies {
		players = append(players, setup.PlayerConfig{
			Name:     "AI-" + strategy,
			IsAI:     true,
			Strategy: strategy,
		})
	}

	state := setup.CreateGame(players, r.settings, result.Seed)
	eng := engine.NewEngine(state)
	collector := analytics.NewCollector()
	collector.RecordSettings(r.settings)
	ctrl := ai.NewController()

	r.logf("[game %d] starting with strategies: %s", gameNumber, strings.Join(strategies, ", "))

	turnCount := 0
	for !state.GameEnded && turnCount < turnLimit {
		turnCount++
		PlayTurn(eng, ctrl, collector, r.verbose)
	}

	result.TotalTurns = turnCount
	if state.GameEnded {
		result.Outcome = OutcomeCompleted
	} else {
		result.Outcome = OutcomeTurnLimit
	}

	if winner := state.Winner(); winner != nil {
		result.Winner = winner.Name
		result.WinnerID = winner.ID
	}
	for _, player := range state.Players {
		result.FinalScores[player.Name] = player.Money
		result.PlayerStats[player.Name] = collector.PlayerStatistics(player.ID, state)
	}

	r.logf("[game %d] %s in %d turns, winner: %s", gameNumber, result.Outcome, turnCount, result.Winner)
	return result
}

// gameSeed derives the seed for game N from the runner's base seed
func (r *Runner) gameSeed(gameNumber int) int64 {
	if r.seed == 0 {
		return time.Now().UnixNano() + int64(gameNumber)
	}
	return r.seed + int64(gameNumber) - 1
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.verbose {
		log.Printf(format, args...)
	}
}
