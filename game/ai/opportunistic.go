package ai

import "github.com/lakesidegames/tourbus/game/engine"

// OpportunisticStrategy chases the biggest single extraction: it drives the
// bus carrying the most tourist money toward whichever city lets its richest
// eligible tourist spend at an own attraction, and builds the highest face
// value it can afford.
type OpportunisticStrategy struct{}

// Name returns the registry key
func (s *OpportunisticStrategy) Name() string { return StrategyOpportunistic }

// MakeDecision plans one turn
func (s *OpportunisticStrategy) MakeDecision(state *engine.GameState, eng engine.Engine) *Decision {
	decision := &Decision{}
	ctx := engine.NewTurnContext(nil)

	// Richest bus, not fullest
	for _, bus := range state.Board.Buses {
		if !eng.CanBusMove(bus) {
			continue
		}
		if decision.Bus == nil || bus.TotalMoney() > decision.Bus.TotalMoney() {
			decision.Bus = bus
		}
	}
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

	var bestOpportunity float64
	for i, dest := range eng.GetValidDestinations(decision.Bus, ctx) {
		opportunity := s.opportunity(state, decision.Bus, dest, ctx)
		if i == 0 || opportunity > bestOpportunity {
			bestOpportunity = opportunity
			decision.DestinationCity = dest
		}
	}

	if city := arrivalCity(state, decision); city != nil && city.AllDayAction != engine.AllDayNone {
		decision.AllDayAction = city.AllDayAction
		if decision.AllDayAction == engine.BuildAttractionAction {
			if attraction := s.chooseBuild(state, eng, city); attraction != nil {
				decision.Build = &BuildOrder{Attraction: attraction, AttractionID: attraction.ID, City: city.Name}
			} else {
				decision.AllDayAction = engine.AllDayNone
			}
		}
	}

	return decision
}

// opportunity scores a destination by the richest tourist each own
// attraction could drain, plus a flat bonus for an affordable build stop
func (s *OpportunisticStrategy) opportunity(state *engine.GameState, bus *engine.Bus, cityName string, ctx *engine.TurnContext) float64 {
	city := state.Board.GetCity(cityName)
	if city == nil {
		return 0
	}
	me := state.CurrentPlayer()

	var opportunity float64
	for _, attraction := range city.Attractions {
		if !attraction.Built() || *attraction.OwnerID != me.ID {
			continue
		}
		richest := 0
		for _, t := range bus.Tourists {
			if !ctx.AllAttractionsAppeal && t.Category != attraction.Category {
				continue
			}
			if t.Money >= attraction.Value && t.Money > richest {
				richest = t.Money
			}
		}
		if richest > 0 {
			opportunity += float64(richest) * 1.5
		}
	}

	if city.AllDayAction == engine.BuildAttractionAction && me.Money >= 3 {
		opportunity += 10
	}
	return opportunity
}

// chooseBuild picks the highest face value the player can afford
func (s *OpportunisticStrategy) chooseBuild(state *engine.GameState, eng engine.Engine, city *engine.City) *engine.Attraction {
	var best *engine.Attraction
	for _, a := range availableForBuilding(state, city) {
		if eng.AttractionCost(a, city, 0) > state.CurrentPlayer().Money {
			continue
		}
		if best == nil || a.Value > best.Value {
			best = a
		}
	}
	return best
}
