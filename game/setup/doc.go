// Package setup builds ready-to-play game states: the fixed twenty-city
// lake board with bidirectional roads, the per-category shuffled attraction
// decks and opening market, the shared tourist pool, and four buses at their
// printed starting cities. All randomness flows through the game state's
// seeded stream so setups are reproducible.
package setup
