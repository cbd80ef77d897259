package engine

// Engine provides the rule operations over a game state
type Engine interface {
	// State access
	State() *GameState
	SetState(state *GameState) error

	// Movement
	GetValidDestinations(bus *Bus, ctx *TurnContext) []string
	CanBusMove(bus *Bus) bool
	MoveBus(bus *Bus, destination string, ctx *TurnContext) bool

	// Tours
	GiveBusTour(bus *Bus, ctx *TurnContext) *TourResult
	GiveSingleTouristTour(bus *Bus, tourist *Tourist, cityName string) *TourResult

	// Economy
	BuildAttraction(attraction *Attraction, cityName string, discount int) bool
	AttractionCost(attraction *Attraction, city *City, discount int) int

	// Turn lifecycle
	Refill(ctx *TurnContext)
	CheckGameEnd() bool
}

// GameEngine implements Engine over a single mutable GameState. It holds
// borrowed access only; the run loop owns the state.
type GameEngine struct {
	state *GameState
}

// NewEngine creates an engine bound to the given state
func NewEngine(state *GameState) *GameEngine {
	return &GameEngine{state: state}
}

// State returns the bound game state
func (e *GameEngine) State() *GameState {
	return e.state
}

// SetState rebinds the engine to a different state (used by persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return ErrNilState
	}
	e.state = state
	return nil
}

// CheckGameEnd evaluates the end conditions and latches the game-ended flag.
// Returns the flag so callers can branch without a second lookup.
func (e *GameEngine) CheckGameEnd() bool {
	if e.state.IsGameOver() {
		e.state.GameEnded = true
	}
	return e.state.GameEnded
}
