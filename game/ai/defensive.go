package ai

import "github.com/lakesidegames/tourbus/game/engine"

// DefensiveStrategy minimizes what it hands to opponents: it skips past
// their attractions when it can, routes toward cities that pay them the
// least, and blocks building spots with the cheapest card on offer.
type DefensiveStrategy struct{}

// Name returns the registry key
func (s *DefensiveStrategy) Name() string { return StrategyDefensive }

// MakeDecision plans one turn
func (s *DefensiveStrategy) MakeDecision(state *engine.GameState, eng engine.Engine) *Decision {
	decision := &Decision{}
	ctx := engine.NewTurnContext(nil)

	decision.Bus = selectFullestBus(state, eng)
	if decision.Bus == nil {
		return decision
	}
	currentCity := state.Board.GetCity(decision.Bus.CurrentCity)

	useFerry := shouldUseFerry(state, decision.Bus, currentCity, ctx)
	switch {
	case !useFerry && currentCity.MorningAction == engine.IgnoreFirstAppeal:
		decision.MorningAction = engine.IgnoreFirstAppeal
	case useFerry:
		decision.MorningAction = engine.Ferry
	}
	ctx.ApplyMorningAction(decision.MorningAction)

	// Least income to opponents first, own score as the tie-break
	var bestLeak int
	var bestScore float64
	for i, dest := range eng.GetValidDestinations(decision.Bus, ctx) {
		leak := s.opponentIncome(state, decision.Bus, dest, ctx)
		score := evaluateCity(state, decision.Bus, dest, ctx)
		if i == 0 || leak < bestLeak || (leak == bestLeak && score > bestScore) {
			bestLeak = leak
			bestScore = score
			decision.DestinationCity = dest
		}
	}

	if city := arrivalCity(state, decision); city != nil && city.AllDayAction == engine.BuildAttractionAction {
		if attraction := s.chooseBuild(state, eng, city); attraction != nil {
			decision.AllDayAction = engine.BuildAttractionAction
			decision.Build = &BuildOrder{Attraction: attraction, AttractionID: attraction.ID, City: city.Name}
		}
	}

	return decision
}

// opponentIncome totals what the bus would pay other players' attractions at
// the destination
func (s *DefensiveStrategy) opponentIncome(state *engine.GameState, bus *engine.Bus, cityName string, ctx *engine.TurnContext) int {
	city := state.Board.GetCity(cityName)
	if city == nil {
		return 0
	}
	me := state.CurrentPlayer()

	income := 0
	for _, attraction := range city.Attractions {
		if !attraction.Built() || *attraction.OwnerID == me.ID {
			continue
		}
		if hasEligibleTourist(bus, attraction, ctx) {
			income += attraction.Value
		}
	}
	return income
}

// chooseBuild picks the cheapest affordable attraction to block the spot
func (s *DefensiveStrategy) chooseBuild(state *engine.GameState, eng engine.Engine, city *engine.City) *engine.Attraction {
	var best *engine.Attraction
	var bestCost int
	for _, a := range availableForBuilding(state, city) {
		cost := eng.AttractionCost(a, city, 0)
		if cost > state.CurrentPlayer().Money {
			continue
		}
		if best == nil || cost < bestCost {
			best = a
			bestCost = cost
		}
	}
	return best
}
