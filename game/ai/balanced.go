package ai

import "github.com/lakesidegames/tourbus/game/engine"

// BalancedStrategy takes whatever the board offers: the current city's
// morning action, the highest-scoring destination, and builds only when the
// value justifies the cost.
type BalancedStrategy struct{}

// Name returns the registry key
func (s *BalancedStrategy) Name() string { return StrategyBalanced }

// MakeDecision plans one turn
func (s *BalancedStrategy) MakeDecision(state *engine.GameState, eng engine.Engine) *Decision {
	decision := &Decision{}
	ctx := engine.NewTurnContext(nil)

	decision.Bus = selectFullestBus(state, eng)
	if decision.Bus == nil {
		return decision
	}
	currentCity := state.Board.GetCity(decision.Bus.CurrentCity)

	if shouldUseFerry(state, decision.Bus, currentCity, ctx) {
		decision.MorningAction = engine.Ferry
	} else if currentCity.MorningAction != engine.MorningNone {
		decision.MorningAction = currentCity.MorningAction
	}
	ctx.ApplyMorningAction(decision.MorningAction)

	var bestScore float64
	for i, dest := range eng.GetValidDestinations(decision.Bus, ctx) {
		score := evaluateCity(state, decision.Bus, dest, ctx)
		if i == 0 || score > bestScore {
			bestScore = score
			decision.DestinationCity = dest
		}
	}

	if city := arrivalCity(state, decision); city != nil && city.AllDayAction != engine.AllDayNone {
		decision.AllDayAction = city.AllDayAction
		if decision.AllDayAction == engine.BuildAttractionAction {
			if attraction := s.chooseBuild(state, eng, city); attraction != nil {
				decision.Build = &BuildOrder{Attraction: attraction, AttractionID: attraction.ID, City: city.Name}
			} else {
				decision.AllDayAction = engine.AllDayNone // can't afford anything
			}
		}
	}

	return decision
}

// chooseBuild weighs value against cost, picking the best affordable
// attraction by value minus half its cost
func (s *BalancedStrategy) chooseBuild(state *engine.GameState, eng engine.Engine, city *engine.City) *engine.Attraction {
	var best *engine.Attraction
	var bestScore float64
	for _, a := range availableForBuilding(state, city) {
		cost := eng.AttractionCost(a, city, 0)
		if cost > state.CurrentPlayer().Money {
			continue
		}
		score := float64(a.Value) - float64(cost)/2
		if best == nil || score > bestScore {
			best = a
			bestScore = score
		}
	}
	return best
}
