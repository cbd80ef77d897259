package engine

// Shared constructors for engine tests.

func intPtr(i int) *int {
	return &i
}

func createTestState() *GameState {
	state := NewGameState(42)
	state.Players = []*Player{
		{ID: 0, Name: "Anna", Money: 10},
		{ID: 1, Name: "Ben", Money: 10},
	}
	// A non-empty pool keeps IsGameOver from tripping in unrelated tests
	state.TouristPool = []*Tourist{{ID: 900, Category: Nature, Money: 4}}
	for i, cat := range Categories() {
		state.Market.Decks[cat] = []*Attraction{
			{ID: 800 + i, Category: cat, Value: 2, Priority: 1},
		}
	}
	return state
}

func addTestCity(state *GameState, name string, isPort bool, connections ...string) *City {
	city := &City{
		Name:                name,
		IsPort:              isPort,
		CanBuildWater:       isPort,
		MaxAttractionSpaces: 3,
		Connections:         connections,
	}
	state.Board.AddCity(city)
	return city
}

func builtAttraction(id int, category Category, value, priority, owner int) *Attraction {
	return &Attraction{
		ID:       id,
		Category: category,
		Value:    value,
		Priority: priority,
		OwnerID:  intPtr(owner),
	}
}

func addTestBus(state *GameState, id int, city string, tourists ...*Tourist) *Bus {
	bus := &Bus{ID: id, CurrentCity: city, Tourists: tourists}
	state.Board.Buses = append(state.Board.Buses, bus)
	return bus
}
