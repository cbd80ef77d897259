package setup

import "github.com/lakesidegames/tourbus/game/engine"

// PlayerConfig describes one seat at the table
type PlayerConfig struct {
	Name     string `json:"name"`
	IsAI     bool   `json:"is_ai"`
	Strategy string `json:"strategy,omitempty"`
}

// CreateGame builds a fully-populated game state: the fixed board graph,
// shuffled attraction decks with the opening market, the tourist pool, and
// four buses at their starting cities with dice-drawn tourists. Every random
// draw comes from the state's seeded stream, so equal seeds give equal games.
func CreateGame(players []PlayerConfig, settings *engine.Settings, seed int64) *engine.GameState {
	state := engine.NewGameState(seed)
	if settings != nil {
		state.Settings = settings
	}

	buildBoard(state)

	for i, cfg := range players {
		state.Players = append(state.Players, &engine.Player{
			ID:       i,
			Name:     cfg.Name,
			Money:    state.Settings.StartMoney(i),
			IsAI:     cfg.IsAI,
			Strategy: cfg.Strategy,
		})
	}

	buildMarket(state)
	buildTouristPool(state)
	placeBuses(state)

	return state
}

// buildTouristPool fills the shared pool with tourists of every category.
// Pips are rolled when a tourist boards a bus, not here.
func buildTouristPool(state *engine.GameState) {
	id := 1
	for _, category := range engine.TouristCategories() {
		for i := 0; i < state.Settings.TouristPoolSizePerCategory; i++ {
			state.TouristPool = append(state.TouristPool, &engine.Tourist{
				ID:       id,
				Category: category,
			})
			id++
		}
	}
}

// placeBuses puts the four buses at their fixed starting cities and deals
// each a random draw of starting tourists
func placeBuses(state *engine.GameState) {
	for i, startCity := range busStartCities {
		bus := &engine.Bus{ID: i, CurrentCity: startCity}

		for j := 0; j < state.Settings.StartingTouristsPerBus; j++ {
			if len(state.TouristPool) == 0 {
				break
			}
			idx := state.Rand.Intn(len(state.TouristPool))
			tourist := state.TouristPool[idx]
			state.TouristPool = append(state.TouristPool[:idx], state.TouristPool[idx+1:]...)

			tourist.Money = state.RollTouristDie()
			bus.Tourists = append(bus.Tourists, tourist)
		}

		state.Board.Buses = append(state.Board.Buses, bus)
	}
}
