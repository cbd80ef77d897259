package engine

import "testing"

func TestRefillMarketTopsUpVisitedCategories(t *testing.T) {
	state := createTestState()
	city := addTestCity(state, "Stadt", false)
	nature := builtAttraction(1, Nature, 2, 1, 1)
	city.Attractions = append(city.Attractions, nature)

	state.Market.Decks[Nature] = []*Attraction{
		{ID: 20, Category: Nature, Value: 2},
		{ID: 21, Category: Nature, Value: 3},
		{ID: 22, Category: Nature, Value: 4},
	}
	state.Market.Available[Nature] = nil

	bus := addTestBus(state, 1, "Stadt", &Tourist{ID: 1, Category: Nature, Money: 6})
	eng := NewEngine(state)

	ctx := NewTurnContext(bus)
	ctx.VisitedAttractions = []int{nature.ID}
	eng.Refill(ctx)

	if len(state.Market.Available[Nature]) != state.Settings.MarketRefillAmount {
		t.Errorf("Expected %d visible Nature attractions, got %d",
			state.Settings.MarketRefillAmount, len(state.Market.Available[Nature]))
	}
	if len(state.Market.Decks[Nature]) != 1 {
		t.Errorf("Expected 1 card left in the Nature deck, got %d", len(state.Market.Decks[Nature]))
	}
	// Culture was not visited, so its pool stays untouched
	if len(state.Market.Available[Culture]) != 0 {
		t.Error("Unvisited categories must not refill")
	}
}

func TestRefillFillMissingCapsAtRuinsAndCapacity(t *testing.T) {
	state := createTestState()
	state.Settings.TouristRefillMode = FillMissing
	addTestCity(state, "Stadt", false)
	state.TouristPool = []*Tourist{
		{ID: 10, Category: Nature},
		{ID: 11, Category: Water},
		{ID: 12, Category: Culture},
	}

	bus := addTestBus(state, 1, "Stadt",
		&Tourist{ID: 1, Category: Nature, Money: 3},
		&Tourist{ID: 2, Category: Water, Money: 3},
	)
	eng := NewEngine(state)

	ctx := NewTurnContext(bus)
	ctx.TouristsRuined = 1
	eng.Refill(ctx)

	if len(bus.Tourists) != 3 {
		t.Fatalf("Expected 3 tourists after refilling 1 ruin, got %d", len(bus.Tourists))
	}
	drawn := bus.Tourists[2]
	if drawn.ID != 10 {
		t.Errorf("Expected pool head tourist 10, got %d", drawn.ID)
	}
	if drawn.Money < MinTouristPips || drawn.Money > MaxTouristPips {
		t.Errorf("Expected rolled pips in [%d,%d], got %d", MinTouristPips, MaxTouristPips, drawn.Money)
	}
}

func TestRefillFillMissingNeverExceedsCapacity(t *testing.T) {
	state := createTestState()
	state.Settings.TouristRefillMode = FillMissing
	state.Settings.MaxTouristsPerBus = 2
	addTestCity(state, "Stadt", false)
	state.TouristPool = []*Tourist{{ID: 10, Category: Nature}, {ID: 11, Category: Water}}

	bus := addTestBus(state, 1, "Stadt",
		&Tourist{ID: 1, Category: Nature, Money: 3},
		&Tourist{ID: 2, Category: Water, Money: 3},
	)
	eng := NewEngine(state)

	ctx := NewTurnContext(bus)
	ctx.TouristsRuined = 2
	eng.Refill(ctx)

	if len(bus.Tourists) != 2 {
		t.Errorf("Expected bus to stay at capacity 2, got %d", len(bus.Tourists))
	}
}

func TestRefillFillWhenEmpty(t *testing.T) {
	state := createTestState()
	state.Settings.TouristRefillMode = FillWhenEmpty
	addTestCity(state, "Stadt", false)
	state.TouristPool = []*Tourist{
		{ID: 10, Category: Nature},
		{ID: 11, Category: Water},
		{ID: 12, Category: Culture},
		{ID: 13, Category: Gastronomy},
		{ID: 14, Category: Nature},
	}

	occupied := addTestBus(state, 1, "Stadt", &Tourist{ID: 1, Category: Nature, Money: 3})
	eng := NewEngine(state)

	ctx := NewTurnContext(occupied)
	ctx.TouristsRuined = 1
	eng.Refill(ctx)
	if len(occupied.Tourists) != 1 {
		t.Errorf("Non-empty bus must not refill in fill_when_empty mode, got %d tourists", len(occupied.Tourists))
	}

	occupied.Tourists = nil
	eng.Refill(NewTurnContext(occupied))
	if len(occupied.Tourists) != state.Settings.MaxTouristsPerBus {
		t.Errorf("Empty bus must refill to capacity %d, got %d",
			state.Settings.MaxTouristsPerBus, len(occupied.Tourists))
	}
}

func TestRefillStopsWhenPoolRunsDry(t *testing.T) {
	state := createTestState()
	state.Settings.TouristRefillMode = FillMissing
	addTestCity(state, "Stadt", false)
	state.TouristPool = []*Tourist{{ID: 10, Category: Nature}}

	bus := addTestBus(state, 1, "Stadt")
	eng := NewEngine(state)

	ctx := NewTurnContext(bus)
	ctx.TouristsRuined = 3
	eng.Refill(ctx)

	if len(bus.Tourists) != 1 {
		t.Errorf("Expected refill to stop at pool exhaustion with 1 tourist, got %d", len(bus.Tourists))
	}
	if len(state.TouristPool) != 0 {
		t.Errorf("Expected empty pool, got %d", len(state.TouristPool))
	}
}
