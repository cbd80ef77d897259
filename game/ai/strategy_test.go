package ai

import (
	"testing"

	"github.com/lakesidegames/tourbus/game/engine"
)

func intPtr(i int) *int { return &i }

// twoCityState builds a hub with two reachable stops: "Mine" holding the
// active player's attraction and "Theirs" holding an opponent's.
func twoCityState(t *testing.T) (*engine.GameState, *engine.GameEngine, *engine.Bus) {
	t.Helper()
	state := engine.NewGameState(1)
	state.Players = []*engine.Player{
		{ID: 0, Name: "Anna", Money: 10},
		{ID: 1, Name: "Ben", Money: 10},
	}
	state.TouristPool = []*engine.Tourist{{ID: 99, Category: engine.Nature}}
	for i, cat := range engine.Categories() {
		state.Market.Decks[cat] = []*engine.Attraction{{ID: 700 + i, Category: cat, Value: 2}}
	}

	hub := &engine.City{Name: "Hub", MaxAttractionSpaces: 3, Connections: []string{"Mine", "Theirs"}}
	mine := &engine.City{Name: "Mine", MaxAttractionSpaces: 3, Connections: []string{"Hub"}}
	theirs := &engine.City{Name: "Theirs", MaxAttractionSpaces: 3, Connections: []string{"Hub"}}
	mine.Attractions = []*engine.Attraction{{ID: 1, Category: engine.Nature, Value: 2, Priority: 1, OwnerID: intPtr(0)}}
	theirs.Attractions = []*engine.Attraction{{ID: 2, Category: engine.Nature, Value: 2, Priority: 1, OwnerID: intPtr(1)}}
	state.Board.AddCity(hub)
	state.Board.AddCity(mine)
	state.Board.AddCity(theirs)

	bus := &engine.Bus{ID: 0, CurrentCity: "Hub", Tourists: []*engine.Tourist{
		{ID: 1, Category: engine.Nature, Money: 5},
	}}
	state.Board.Buses = []*engine.Bus{bus}

	return state, engine.NewEngine(state), bus
}

func TestControllerFallsBackToBalanced(t *testing.T) {
	state, eng, _ := twoCityState(t)
	controller := NewController()

	decision := controller.Decide(state, eng, "no-such-strategy")
	if decision == nil || decision.Bus == nil {
		t.Fatal("Expected the fallback strategy to produce a move")
	}
}

func TestControllerStrategyList(t *testing.T) {
	names := NewController().Strategies()
	want := []string{StrategyAggressive, StrategyBalanced, StrategyDefensive, StrategyOpportunistic}
	if len(names) != len(want) {
		t.Fatalf("Expected %d strategies, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, names[i])
		}
	}
}

func TestAggressivePrefersOwnAttractions(t *testing.T) {
	state, eng, _ := twoCityState(t)
	state.CurrentPlayerIndex = 0

	decision := (&AggressiveStrategy{}).MakeDecision(state, eng)
	if decision.Bus == nil {
		t.Fatal("Expected a movable bus")
	}
	if decision.DestinationCity != "Mine" {
		t.Errorf("Expected aggressive to drive to its own attraction, got %q", decision.DestinationCity)
	}
}

func TestDefensiveAvoidsOpponentIncome(t *testing.T) {
	state, eng, _ := twoCityState(t)
	state.CurrentPlayerIndex = 0

	decision := (&DefensiveStrategy{}).MakeDecision(state, eng)
	if decision.DestinationCity != "Mine" {
		t.Errorf("Expected defensive to avoid the opponent city, got %q", decision.DestinationCity)
	}
}

func TestOpportunisticSelectsRichestBus(t *testing.T) {
	state, eng, _ := twoCityState(t)
	state.CurrentPlayerIndex = 0

	// A second movable bus with more tourists but less aboard money
	crowded := &engine.Bus{ID: 1, CurrentCity: "Theirs", Tourists: []*engine.Tourist{
		{ID: 2, Category: engine.Nature, Money: 2},
		{ID: 3, Category: engine.Nature, Money: 2},
	}}
	state.Board.Buses = append(state.Board.Buses, crowded)

	decision := (&OpportunisticStrategy{}).MakeDecision(state, eng)
	if decision.Bus == nil || decision.Bus.ID != 0 {
		t.Errorf("Expected the richer bus 0, got %+v", decision.Bus)
	}
}

func TestAllStrategiesPassWithoutMovableBus(t *testing.T) {
	state, eng, bus := twoCityState(t)
	bus.Tourists = nil // empty bus cannot move

	for _, strategy := range []Strategy{
		&AggressiveStrategy{}, &DefensiveStrategy{}, &BalancedStrategy{}, &OpportunisticStrategy{},
	} {
		decision := strategy.MakeDecision(state, eng)
		if decision.Bus != nil {
			t.Errorf("%s: expected a pass with no movable bus", strategy.Name())
		}
	}
}

func TestBuildChoicesDiffer(t *testing.T) {
	state, eng, _ := twoCityState(t)
	state.CurrentPlayerIndex = 0
	city := state.Board.GetCity("Hub")
	city.AllDayAction = engine.BuildAttractionAction

	cheapHigh := &engine.Attraction{ID: 10, Category: engine.Nature, Value: 3}
	dearLow := &engine.Attraction{ID: 11, Category: engine.Gastronomy, Value: 4}
	state.Market.Available[engine.Nature] = []*engine.Attraction{cheapHigh}
	state.Market.Available[engine.Gastronomy] = []*engine.Attraction{dearLow}

	// Aggressive: ROI 3/1 beats 4/3
	agg := (&AggressiveStrategy{}).chooseBuild(state, eng, city)
	if agg == nil || agg.ID != cheapHigh.ID {
		t.Errorf("Expected aggressive to pick attraction 10, got %+v", agg)
	}

	// Defensive: cheapest cost wins
	def := (&DefensiveStrategy{}).chooseBuild(state, eng, city)
	if def == nil || def.ID != cheapHigh.ID {
		t.Errorf("Expected defensive to pick the cheapest attraction 10, got %+v", def)
	}

	// Opportunistic: highest face value wins
	opp := (&OpportunisticStrategy{}).chooseBuild(state, eng, city)
	if opp == nil || opp.ID != dearLow.ID {
		t.Errorf("Expected opportunistic to pick attraction 11, got %+v", opp)
	}
}

func TestBalancedClearsBuildWhenBroke(t *testing.T) {
	state, eng, _ := twoCityState(t)
	state.CurrentPlayerIndex = 0
	state.Players[0].Money = 0

	mine := state.Board.GetCity("Mine")
	mine.AllDayAction = engine.BuildAttractionAction
	state.Market.Available[engine.Gastronomy] = []*engine.Attraction{
		{ID: 11, Category: engine.Gastronomy, Value: 4},
	}

	decision := (&BalancedStrategy{}).MakeDecision(state, eng)
	if decision.AllDayAction == engine.BuildAttractionAction {
		t.Error("Expected balanced to drop the build action when it cannot pay")
	}
	if decision.Build != nil {
		t.Error("Expected no build order when broke")
	}
}
