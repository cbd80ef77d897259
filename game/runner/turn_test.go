package runner

import (
	"testing"

	"github.com/lakesidegames/tourbus/game/ai"
	"github.com/lakesidegames/tourbus/game/analytics"
	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/setup"
)

// allDayGame builds a fresh two-player game for driving all-day actions
// directly against the engine.
func allDayGame(t *testing.T, seed int64) (*engine.GameState, *engine.GameEngine) {
	t.Helper()
	state := setup.CreateGame([]setup.PlayerConfig{
		{Name: "AI-balanced", IsAI: true, Strategy: ai.StrategyBalanced},
		{Name: "AI-defensive", IsAI: true, Strategy: ai.StrategyDefensive},
	}, nil, seed)
	return state, engine.NewEngine(state)
}

func allDayDecision(bus *engine.Bus, action engine.AllDayAction) (*ai.Decision, *engine.TurnContext) {
	decision := &ai.Decision{Bus: bus, AllDayAction: action}
	return decision, engine.NewTurnContext(bus)
}

func countActions(collector *analytics.Collector, kind analytics.ActionType) int {
	count := 0
	for _, action := range collector.Actions() {
		if action.Type == kind {
			count++
		}
	}
	return count
}

func TestColorPipBonusRespectsDieMax(t *testing.T) {
	cases := []struct {
		name  string
		pips  int
		bonus int
		want  int
	}{
		{"below cap", 3, 2, 5},
		{"reaches cap exactly", 4, 2, 6},
		{"clamped at cap", 5, 2, engine.MaxTouristPips},
		{"already at cap", engine.MaxTouristPips, 2, engine.MaxTouristPips},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, eng := allDayGame(t, 11)
			bus := state.Board.Buses[0]
			tourist := &engine.Tourist{ID: 900, Category: engine.Nature, Money: tc.pips}
			bus.Tourists = []*engine.Tourist{tourist}
			state.Settings.ZentrumPipsBonus = tc.bonus

			decision, ctx := allDayDecision(bus, engine.AddTwoPipsGreen)
			collector := analytics.NewCollector()
			executeAllDayAction(eng, decision, ctx, collector)

			if tourist.Money != tc.want {
				t.Errorf("Expected %d pips, got %d", tc.want, tourist.Money)
			}
			if count := countActions(collector, analytics.ActionAddPips); count != 1 {
				t.Errorf("Expected 1 add-pips record, got %d", count)
			}
		})
	}
}

func TestColorPipBonusTargetsFirstMatchingTourist(t *testing.T) {
	state, eng := allDayGame(t, 12)
	bus := state.Board.Buses[0]
	water := &engine.Tourist{ID: 901, Category: engine.Water, Money: 3}
	firstNature := &engine.Tourist{ID: 902, Category: engine.Nature, Money: 3}
	secondNature := &engine.Tourist{ID: 903, Category: engine.Nature, Money: 3}
	bus.Tourists = []*engine.Tourist{water, firstNature, secondNature}
	state.Settings.ZentrumPipsBonus = 2

	decision, ctx := allDayDecision(bus, engine.AddTwoPipsGreen)
	executeAllDayAction(eng, decision, ctx, analytics.NewCollector())

	if firstNature.Money != 5 {
		t.Errorf("Expected the first nature tourist at 5 pips, got %d", firstNature.Money)
	}
	if water.Money != 3 || secondNature.Money != 3 {
		t.Errorf("Expected other tourists untouched, got %d and %d", water.Money, secondNature.Money)
	}
}

func TestColorPipBonusNoMatchingTourist(t *testing.T) {
	state, eng := allDayGame(t, 13)
	bus := state.Board.Buses[0]
	water := &engine.Tourist{ID: 904, Category: engine.Water, Money: 3}
	bus.Tourists = []*engine.Tourist{water}

	decision, ctx := allDayDecision(bus, engine.AddTwoPipsGreen)
	collector := analytics.NewCollector()
	executeAllDayAction(eng, decision, ctx, collector)

	if water.Money != 3 {
		t.Errorf("Expected the water tourist untouched, got %d", water.Money)
	}
	if count := countActions(collector, analytics.ActionAddPips); count != 0 {
		t.Errorf("Expected no add-pips record, got %d", count)
	}
}

func TestZentrumBonusRaisesBusTotal(t *testing.T) {
	state, eng := allDayGame(t, 14)
	bus := state.Board.Buses[0]
	bus.Tourists = []*engine.Tourist{
		{ID: 905, Category: engine.Nature, Money: 2},
		{ID: 906, Category: engine.Water, Money: 2},
		{ID: 907, Category: engine.Culture, Money: 2},
	}
	state.Settings.ZentrumPipsBonus = 2

	decision, ctx := allDayDecision(bus, engine.AddTwoPips)
	executeAllDayAction(eng, decision, ctx, analytics.NewCollector())

	total := 0
	for _, tourist := range bus.Tourists {
		total += tourist.Money
	}
	if total != 8 {
		t.Errorf("Expected one tourist boosted for a total of 8 pips, got %d", total)
	}
}

func TestZentrumBonusEmptyBus(t *testing.T) {
	state, eng := allDayGame(t, 15)
	bus := state.Board.Buses[0]
	bus.Tourists = nil

	decision, ctx := allDayDecision(bus, engine.AddTwoPips)
	collector := analytics.NewCollector()
	executeAllDayAction(eng, decision, ctx, collector)

	if count := countActions(collector, analytics.ActionAddPips); count != 0 {
		t.Errorf("Expected no add-pips record for an empty bus, got %d", count)
	}
}

func TestCasinoRerollsPoorestAcrossParkedBuses(t *testing.T) {
	state, eng := allDayGame(t, 16)
	bus := state.Board.Buses[0]
	other := state.Board.Buses[1]
	other.CurrentCity = bus.CurrentCity
	away := state.Board.Buses[2]

	rich := &engine.Tourist{ID: 910, Category: engine.Nature, Money: 6}
	poor := &engine.Tourist{ID: 911, Category: engine.Water, Money: 2}
	distant := &engine.Tourist{ID: 912, Category: engine.Culture, Money: 2}
	bus.Tourists = []*engine.Tourist{rich}
	other.Tourists = []*engine.Tourist{poor}
	away.Tourists = []*engine.Tourist{distant}
	state.Settings.CasinoRerollsPerBus = 1

	decision, ctx := allDayDecision(bus, engine.RerollTouristAction)
	collector := analytics.NewCollector()
	executeAllDayAction(eng, decision, ctx, collector)

	if rich.Money != 6 {
		t.Errorf("Expected the richest tourist untouched, got %d", rich.Money)
	}
	if distant.Money != 2 {
		t.Errorf("Expected tourists in other cities untouched, got %d", distant.Money)
	}
	if poor.Money < engine.MinTouristPips || poor.Money > engine.MaxTouristPips {
		t.Errorf("Rerolled pips %d outside [%d,%d]", poor.Money, engine.MinTouristPips, engine.MaxTouristPips)
	}
	if count := countActions(collector, analytics.ActionRerollTourist); count != 1 {
		t.Errorf("Expected 1 reroll record, got %d", count)
	}
}

func TestCasinoRerollCountFollowsSetting(t *testing.T) {
	state, eng := allDayGame(t, 17)
	bus := state.Board.Buses[0]
	bus.Tourists = []*engine.Tourist{
		{ID: 913, Category: engine.Nature, Money: 2},
		{ID: 914, Category: engine.Water, Money: 4},
	}
	state.Settings.CasinoRerollsPerBus = 3

	decision, ctx := allDayDecision(bus, engine.RerollTouristAction)
	collector := analytics.NewCollector()
	executeAllDayAction(eng, decision, ctx, collector)

	if count := countActions(collector, analytics.ActionRerollTourist); count != 3 {
		t.Errorf("Expected 3 reroll records, got %d", count)
	}
}

func TestGiveTourRichestTouristOnly(t *testing.T) {
	state, eng := allDayGame(t, 18)
	state.Settings.GiveTourAffectsWholeBus = false
	bus := state.Board.Buses[0]

	ownerID := 1
	attraction := &engine.Attraction{
		ID: 950, NameEnglish: "Lakeside Museum", Category: engine.Water,
		Value: 2, Priority: 5, OwnerID: &ownerID,
	}
	city := state.Board.GetCity(bus.CurrentCity)
	city.Attractions = append(city.Attractions, attraction)

	poor := &engine.Tourist{ID: 920, Category: engine.Water, Money: 3}
	rich := &engine.Tourist{ID: 921, Category: engine.Water, Money: 5}
	bus.Tourists = []*engine.Tourist{poor, rich}
	ownerMoneyBefore := state.Players[ownerID].Money

	decision, ctx := allDayDecision(bus, engine.GiveTour)
	executeAllDayAction(eng, decision, ctx, analytics.NewCollector())

	if rich.Money != 3 {
		t.Errorf("Expected the richest tourist to pay 2, got %d pips left", rich.Money)
	}
	if poor.Money != 3 {
		t.Errorf("Expected the poorer tourist untouched, got %d", poor.Money)
	}
	if earned := state.Players[ownerID].Money - ownerMoneyBefore; earned != 2 {
		t.Errorf("Expected the owner to earn 2, got %d", earned)
	}
	if len(ctx.VisitedAttractions) != 1 || ctx.VisitedAttractions[0] != attraction.ID {
		t.Errorf("Expected attraction %d visited, got %v", attraction.ID, ctx.VisitedAttractions)
	}
}

func TestGiveTourWholeBus(t *testing.T) {
	state, eng := allDayGame(t, 19)
	state.Settings.GiveTourAffectsWholeBus = true
	bus := state.Board.Buses[0]

	ownerID := 1
	waterStop := &engine.Attraction{
		ID: 951, NameEnglish: "Harbor Cruise", Category: engine.Water,
		Value: 2, Priority: 4, OwnerID: &ownerID,
	}
	natureStop := &engine.Attraction{
		ID: 952, NameEnglish: "Cliff Walk", Category: engine.Nature,
		Value: 2, Priority: 3, OwnerID: &ownerID,
	}
	city := state.Board.GetCity(bus.CurrentCity)
	city.Attractions = append(city.Attractions, waterStop, natureStop)

	bus.Tourists = []*engine.Tourist{
		{ID: 922, Category: engine.Water, Money: 4},
		{ID: 923, Category: engine.Nature, Money: 4},
	}

	decision, ctx := allDayDecision(bus, engine.GiveTour)
	executeAllDayAction(eng, decision, ctx, analytics.NewCollector())

	if len(ctx.VisitedAttractions) != 2 {
		t.Fatalf("Expected both attractions visited, got %v", ctx.VisitedAttractions)
	}
	for _, tourist := range bus.Tourists {
		if tourist.Money != 2 {
			t.Errorf("Expected tourist %d to pay 2, got %d pips left", tourist.ID, tourist.Money)
		}
	}
}

func TestBusDispatchMovesAnotherBus(t *testing.T) {
	state, eng := allDayGame(t, 20)
	bus := state.Board.Buses[0]

	before := make(map[int]string)
	reachable := make(map[int]map[string]bool)
	for _, b := range state.Board.Buses {
		before[b.ID] = b.CurrentCity
		cities := make(map[string]bool)
		for _, name := range eng.GetValidDestinations(b, engine.NewTurnContext(b)) {
			cities[name] = true
		}
		reachable[b.ID] = cities
	}

	decision, ctx := allDayDecision(bus, engine.BusDispatch)
	collector := analytics.NewCollector()
	executeAllDayAction(eng, decision, ctx, collector)

	if bus.CurrentCity != before[bus.ID] {
		t.Errorf("Expected the acting bus to stay in %s, got %s", before[bus.ID], bus.CurrentCity)
	}

	var moved []*engine.Bus
	for _, b := range state.Board.Buses {
		if b.CurrentCity != before[b.ID] {
			moved = append(moved, b)
		}
	}
	if len(moved) != 1 {
		t.Fatalf("Expected exactly one bus dispatched, got %d", len(moved))
	}
	target := moved[0]
	if !reachable[target.ID][target.CurrentCity] {
		t.Errorf("Bus %d dispatched to %s, which it could not reach from %s",
			target.ID, target.CurrentCity, before[target.ID])
	}
	if count := countActions(collector, analytics.ActionMoveAnotherBus); count != 1 {
		t.Errorf("Expected 1 dispatch record, got %d", count)
	}
}

func TestBusDispatchNoOtherBuses(t *testing.T) {
	state, eng := allDayGame(t, 21)
	state.Board.Buses = state.Board.Buses[:1]
	bus := state.Board.Buses[0]
	startCity := bus.CurrentCity

	decision, ctx := allDayDecision(bus, engine.BusDispatch)
	collector := analytics.NewCollector()
	executeAllDayAction(eng, decision, ctx, collector)

	if bus.CurrentCity != startCity {
		t.Errorf("Expected the only bus to stay in %s, got %s", startCity, bus.CurrentCity)
	}
	if count := countActions(collector, analytics.ActionMoveAnotherBus); count != 0 {
		t.Errorf("Expected no dispatch record, got %d", count)
	}
}

func TestBuildActionsApplyContractorDiscount(t *testing.T) {
	cases := []struct {
		name     string
		action   engine.AllDayAction
		discount bool
	}{
		{"full price", engine.BuildAttractionAction, false},
		{"contractor discount", engine.BuildAttractionDiscount, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, eng := allDayGame(t, 22)
			bus := state.Board.Buses[0]
			player := state.CurrentPlayer()

			attraction := state.Market.Available[engine.Nature][0]
			city := state.Board.GetCity(bus.CurrentCity)
			discount := 0
			if tc.discount {
				discount = state.Settings.ContractorDiscountAmount
			}
			cost := eng.AttractionCost(attraction, city, discount)
			player.Money = cost + 1

			decision, ctx := allDayDecision(bus, tc.action)
			decision.Build = &ai.BuildOrder{Attraction: attraction, City: bus.CurrentCity}
			collector := analytics.NewCollector()
			executeAllDayAction(eng, decision, ctx, collector)

			if attraction.OwnerID == nil || *attraction.OwnerID != player.ID {
				t.Fatal("Expected the attraction to belong to the current player")
			}
			if player.Money != 1 {
				t.Errorf("Expected %d spent, leaving 1, got %d left", cost, player.Money)
			}
			if count := countActions(collector, analytics.ActionBuildAttraction); count != 1 {
				t.Errorf("Expected 1 build record, got %d", count)
			}
			for _, a := range state.Market.Available[engine.Nature] {
				if a.ID == attraction.ID {
					t.Error("Expected the built attraction removed from the market")
				}
			}
		})
	}
}

func TestBuildActionWithoutOrderIsNoOp(t *testing.T) {
	state, eng := allDayGame(t, 23)
	bus := state.Board.Buses[0]
	moneyBefore := state.CurrentPlayer().Money

	decision, ctx := allDayDecision(bus, engine.BuildAttractionAction)
	collector := analytics.NewCollector()
	executeAllDayAction(eng, decision, ctx, collector)

	if state.CurrentPlayer().Money != moneyBefore {
		t.Errorf("Expected no money spent, got %d -> %d", moneyBefore, state.CurrentPlayer().Money)
	}
	if count := countActions(collector, analytics.ActionBuildAttraction); count != 0 {
		t.Errorf("Expected no build record, got %d", count)
	}
}
