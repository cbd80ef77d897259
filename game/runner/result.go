package runner

import (
	"time"

	"github.com/lakesidegames/tourbus/game/analytics"
)

// Outcome classifies how a headless game finished
type Outcome string

const (
	// OutcomeCompleted means the game reached a regular end condition
	OutcomeCompleted Outcome = "completed"
	// OutcomeTurnLimit means the safety cap fired before the game ended
	OutcomeTurnLimit Outcome = "turn_limit"
	// OutcomeError means the game aborted with a panic
	OutcomeError Outcome = "error"
)

// GameResult is the outcome of one headless game
type GameResult struct {
	GameNumber   int                                    `json:"game_number"`
	Seed         int64                                  `json:"seed"`
	Winner       string                                 `json:"winner"`
	WinnerID     int                                    `json:"winner_id"`
	FinalScores  map[string]int                         `json:"final_scores"`
	PlayerStats  map[string]*analytics.PlayerStatistics `json:"player_stats"`
	TotalTurns   int                                    `json:"total_turns"`
	Duration     time.Duration                          `json:"duration"`
	Outcome      Outcome                                `json:"outcome"`
	ErrorMessage string                                 `json:"error_message,omitempty"`
}

// Completed reports whether the game reached a regular end
func (r *GameResult) Completed() bool {
	return r.Outcome == OutcomeCompleted
}

// BatchResult aggregates a batch of headless games
type BatchResult struct {
	BatchID        string        `json:"batch_id"`
	TotalGames     int           `json:"total_games"`
	CompletedGames int           `json:"completed_games"`
	Games          []*GameResult `json:"games"`

	WinCounts           map[string]int     `json:"win_counts"`
	AverageScores       map[string]float64 `json:"average_scores"`
	AverageMoneyPerTurn map[string]float64 `json:"average_money_per_turn"`

	TotalDuration time.Duration `json:"total_duration"`
}

// aggregate fills the cross-game statistics from the collected results
func (b *BatchResult) aggregate() {
	for _, game := range b.Games {
		if !game.Completed() {
			continue
		}
		b.CompletedGames++
		b.WinCounts[game.Winner]++
	}
	if b.CompletedGames == 0 {
		return
	}

	scoreSums := make(map[string]float64)
	scoreCounts := make(map[string]int)
	moneySums := make(map[string]float64)
	moneyCounts := make(map[string]int)

	for _, game := range b.Games {
		if !game.Completed() {
			continue
		}
		for name, score := range game.FinalScores {
			scoreSums[name] += float64(score)
			scoreCounts[name]++
		}
		for name, stats := range game.PlayerStats {
			moneySums[name] += stats.AverageMoneyPerTurn()
			moneyCounts[name]++
		}
	}

	for name, sum := range scoreSums {
		b.AverageScores[name] = sum / float64(scoreCounts[name])
	}
	for name, sum := range moneySums {
		b.AverageMoneyPerTurn[name] = sum / float64(moneyCounts[name])
	}
}
