package runner

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// RunBatch plays gameCount games with the same strategy lineup and collects
// aggregate statistics. With workers > 1 the games run concurrently; results
// keep their game-number order either way.
func (r *Runner) RunBatch(gameCount int, strategies []string, workers int) *BatchResult {
	batch := &BatchResult{
		BatchID:             uuid.New().String(),
		TotalGames:          gameCount,
		Games:               make([]*GameResult, gameCount),
		WinCounts:           make(map[string]int),
		AverageScores:       make(map[string]float64),
		AverageMoneyPerTurn: make(map[string]float64),
	}
	startTime := time.Now()

	r.logf("[batch %s] starting %d games, %d workers", batch.BatchID, gameCount, workers)

	if workers <= 1 {
		for i := 0; i < gameCount; i++ {
			batch.Games[i] = r.RunGame(strategies, i+1)
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, workers)
		for i := 0; i < gameCount; i++ {
			wg.Add(1)
			go func(index int) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				batch.Games[index] = r.RunGame(strategies, index+1)
			}(i)
		}
		wg.Wait()
	}

	batch.TotalDuration = time.Since(startTime)
	batch.aggregate()

	r.logf("[batch %s] done: %d/%d games completed", batch.BatchID, batch.CompletedGames, gameCount)
	return batch
}
