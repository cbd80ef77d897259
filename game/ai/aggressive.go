package ai

import "github.com/lakesidegames/tourbus/game/engine"

// AggressiveStrategy maximizes immediate income: fullest bus, value-boosting
// morning actions, the highest-scoring destination, and the best return on
// investment when it can build.
type AggressiveStrategy struct{}

// Name returns the registry key
func (s *AggressiveStrategy) Name() string { return StrategyAggressive }

// MakeDecision plans one turn
func (s *AggressiveStrategy) MakeDecision(state *engine.GameState, eng engine.Engine) *Decision {
	decision := &Decision{}
	ctx := engine.NewTurnContext(nil)

	decision.Bus = selectFullestBus(state, eng)
	if decision.Bus == nil {
		return decision
	}
	currentCity := state.Board.GetCity(decision.Bus.CurrentCity)

	useFerry := shouldUseFerry(state, decision.Bus, currentCity, ctx)
	switch {
	case !useFerry && currentCity.MorningAction == engine.IncreaseValue:
		decision.MorningAction = engine.IncreaseValue
	case !useFerry && currentCity.MorningAction == engine.AllAttractionsAppeal:
		decision.MorningAction = engine.AllAttractionsAppeal
	case useFerry:
		decision.MorningAction = engine.Ferry
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

	if city := arrivalCity(state, decision); city != nil && city.AllDayAction == engine.BuildAttractionAction {
		if attraction := s.chooseBuild(state, eng, city); attraction != nil {
			decision.AllDayAction = engine.BuildAttractionAction
			decision.Build = &BuildOrder{Attraction: attraction, AttractionID: attraction.ID, City: city.Name}
		}
	}

	return decision
}

// chooseBuild picks the affordable attraction with the best value-per-cost ratio
func (s *AggressiveStrategy) chooseBuild(state *engine.GameState, eng engine.Engine, city *engine.City) *engine.Attraction {
	var best *engine.Attraction
	var bestROI float64
	for _, a := range availableForBuilding(state, city) {
		cost := eng.AttractionCost(a, city, 0)
		if cost > state.CurrentPlayer().Money {
			continue
		}
		denominator := cost
		if denominator < 1 {
			denominator = 1
		}
		roi := float64(a.Value) / float64(denominator)
		if best == nil || roi > bestROI {
			best = a
			bestROI = roi
		}
	}
	return best
}
