// Package ai implements the four scripted decision strategies that drive
// autoplay: aggressive, defensive, balanced, and opportunistic. All four
// share the same scoring utilities and differ only in bus selection, morning
// action preference, destination scoring, and build choice. A Controller
// maps strategy names to instances and falls back to balanced for unknown
// names. Strategies are stateless and only read the game state through the
// engine's queries; a nil bus in the returned Decision means pass.
package ai
