package ai

import "github.com/lakesidegames/tourbus/game/engine"

// Scoring utilities shared by all strategies.

// evaluateCity scores a candidate destination for the active player: double
// credit for each own attraction an aboard tourist could visit, a half-value
// penalty for feeding opponents, plus the value of the city's all-day action.
func evaluateCity(state *engine.GameState, bus *engine.Bus, cityName string, ctx *engine.TurnContext) float64 {
	city := state.Board.GetCity(cityName)
	if city == nil {
		return 0
	}
	me := state.CurrentPlayer()

	var score float64
	for _, attraction := range city.Attractions {
		if !attraction.Built() {
			continue
		}
		if !hasEligibleTourist(bus, attraction, ctx) {
			continue
		}
		if *attraction.OwnerID == me.ID {
			score += float64(attraction.Value) * 2
		} else {
			score -= float64(attraction.Value) * 0.5
		}
	}

	if city.AllDayAction != engine.AllDayNone {
		score += evaluateAllDayAction(city.AllDayAction)
	}
	return score
}

// evaluateAllDayAction is the base valuation table for city actions
func evaluateAllDayAction(action engine.AllDayAction) float64 {
	switch action {
	case engine.BuildAttractionAction:
		return 15
	case engine.AddTwoPips:
		return 8
	case engine.RerollTouristAction:
		return 5
	case engine.GiveTour:
		return 7
	default:
		return 0
	}
}

// hasEligibleTourist reports whether anyone aboard could pay for a visit
func hasEligibleTourist(bus *engine.Bus, attraction *engine.Attraction, ctx *engine.TurnContext) bool {
	for _, t := range bus.Tourists {
		if !ctx.AllAttractionsAppeal && t.Category != attraction.Category {
			continue
		}
		if t.Money >= attraction.Value {
			return true
		}
	}
	return false
}

// selectFullestBus picks the movable bus carrying the most tourists, first
// bus winning ties
func selectFullestBus(state *engine.GameState, eng engine.Engine) *engine.Bus {
	var best *engine.Bus
	for _, bus := range state.Board.Buses {
		if !eng.CanBusMove(bus) {
			continue
		}
		if best == nil || len(bus.Tourists) > len(best.Tourists) {
			best = bus
		}
	}
	return best
}

// shouldUseFerry reports whether the ferry opens a port unreachable by road
// whose score beats the best normally reachable neighbor
func shouldUseFerry(state *engine.GameState, bus *engine.Bus, currentCity *engine.City, ctx *engine.TurnContext) bool {
	if currentCity.MorningAction != engine.Ferry || !currentCity.IsPort {
		return false
	}

	connected := make(map[string]bool, len(currentCity.Connections))
	for _, name := range currentCity.Connections {
		connected[name] = true
	}

	var bestExtraPort float64
	foundExtra := false
	for _, name := range state.Board.CityNames {
		city := state.Board.Cities[name]
		if !city.IsPort || city.Name == currentCity.Name || connected[city.Name] {
			continue
		}
		score := evaluateCity(state, bus, city.Name, ctx)
		if !foundExtra || score > bestExtraPort {
			bestExtraPort = score
			foundExtra = true
		}
	}
	if !foundExtra {
		return false
	}

	var bestNormal float64
	for i, name := range currentCity.Connections {
		score := evaluateCity(state, bus, name, ctx)
		if i == 0 || score > bestNormal {
			bestNormal = score
		}
	}
	return bestExtraPort > bestNormal
}

// availableForBuilding lists every market attraction buildable in the city,
// in fixed category order
func availableForBuilding(state *engine.GameState, city *engine.City) []*engine.Attraction {
	var attractions []*engine.Attraction
	for _, category := range engine.Categories() {
		for _, a := range state.Market.Available[category] {
			if a.Category == engine.Water && !city.CanBuildWater {
				continue
			}
			attractions = append(attractions, a)
		}
	}
	return attractions
}

// arrivalCity resolves where the bus ends the turn under the decision so far
func arrivalCity(state *engine.GameState, decision *Decision) *engine.City {
	name := decision.DestinationCity
	if name == "" {
		name = decision.Bus.CurrentCity
	}
	return state.Board.GetCity(name)
}
