// Package runner plays complete games without any transport attached: AI
// strategies decide every turn, the engine executes it, and the analytics
// collector records it. RunGame plays one seeded game to its end condition
// (with a hard turn cap as a safety net); RunBatch repeats that across many
// games, optionally in parallel, and aggregates win counts and score
// averages per player.
package runner
