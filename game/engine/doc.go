// Package engine provides the core rule logic for the lakeside tourism game.
//
// The engine package implements the game mechanics including:
//   - Appeal-based reachability search and bus movement
//   - Tour execution with priority ordering and ruin payouts
//   - Attraction construction and the deck-backed market economy
//   - End-of-turn market and tourist refills
//   - Game-end detection and winner selection
//
// Core Types:
//
// The Engine interface defines the contract for rule operations, implemented
// by GameEngine over a single mutable GameState. Settings carries every
// tunable rule knob and is loaded from JSON presets by game/config.
// TurnContext is the ephemeral per-turn record tracking the selected bus,
// morning action effects, and this turn's visits and ruins.
//
// Usage:
//
//	state := setup.CreateGame(players, engine.DefaultSettings(), seed)
//	eng := engine.NewEngine(state)
//
//	ctx := engine.NewTurnContext(bus)
//	dests := eng.GetValidDestinations(bus, ctx)
//	if eng.MoveBus(bus, dests[0], ctx) {
//		result := eng.GiveBusTour(bus, ctx)
//		_ = result
//	}
//	eng.Refill(ctx)
//	eng.CheckGameEnd()
//
// Game Rules:
//
// Players drive buses between cities, stopping where an aboard tourist
// category finds an attraction with appeal. Tourists spend their pips on
// visits and are ruined at zero, paying a bonus to the attraction owner and
// the active player. Players build attractions from a shared market to grow
// their income. The game ends when the tourist pool or any attraction
// category runs out; the richest player wins.
package engine
