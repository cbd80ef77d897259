package engine

import "sort"

// GiveBusTour runs the arrival tour at the bus's current city. Built
// attractions are visited in priority order (highest first, id ascending as
// a stable tie-break), each at most once, by the first eligible tourist
// aboard. Mutates tourist pips and player balances and returns what was paid.
//
// When a visit empties a tourist's last pip the tourist is ruined: removed
// from the bus, with the earned amount paid a second time to the owner and
// once to the active player. This bonus applies even when the owner is the
// active player, so one player can collect three times on a single visit.
func (e *GameEngine) GiveBusTour(bus *Bus, ctx *TurnContext) *TourResult {
	result := NewTourResult()
	city := e.state.Board.GetCity(bus.CurrentCity)
	if city == nil {
		return result
	}

	var attractions []*Attraction
	for _, a := range city.Attractions {
		if a.Built() {
			attractions = append(attractions, a)
		}
	}
	sort.SliceStable(attractions, func(i, j int) bool {
		if attractions[i].Priority != attractions[j].Priority {
			return attractions[i].Priority > attractions[j].Priority
		}
		return attractions[i].ID < attractions[j].ID
	})

	visited := make(map[int]bool)

	for _, attraction := range attractions {
		if visited[attraction.ID] {
			continue
		}

		// First tourist whose category matches (or any, with the
		// all-attractions-appeal flag) and who can afford the visit
		var tourist *Tourist
		for _, t := range bus.Tourists {
			if !ctx.AllAttractionsAppeal && t.Category != attraction.Category {
				continue
			}
			if t.Money < attraction.Value {
				continue
			}
			tourist = t
			break
		}
		if tourist == nil {
			continue
		}

		tourist.Money -= attraction.Value

		earned := attraction.Value
		if ctx.IncreaseValue {
			earned += e.state.Settings.IncreaseValueBonus
		}

		owner := e.state.PlayerByID(*attraction.OwnerID)
		if owner != nil {
			owner.Money += earned
			result.MoneyEarned[owner.ID] += earned
		}

		result.AttractionsVisited = append(result.AttractionsVisited, attraction.ID)
		visited[attraction.ID] = true

		if tourist.Money == 0 {
			bus.RemoveTourist(tourist)
			e.payRuinBonus(owner, earned, result)
		}
	}

	return result
}

// GiveSingleTouristTour runs a tour for one tourist at the named city,
// restricted to matching-category attractions, in priority order. The loop
// stops as soon as the tourist cannot pay or is ruined. Payment goes through
// the attraction's bonus-euro rule; the increase-value bonus never applies.
func (e *GameEngine) GiveSingleTouristTour(bus *Bus, tourist *Tourist, cityName string) *TourResult {
	result := NewTourResult()
	city := e.state.Board.GetCity(cityName)
	if city == nil {
		return result
	}

	var attractions []*Attraction
	for _, a := range city.Attractions {
		if a.Built() && a.Category == tourist.Category && tourist.Money >= a.Value {
			attractions = append(attractions, a)
		}
	}
	sort.SliceStable(attractions, func(i, j int) bool {
		return attractions[i].Priority > attractions[j].Priority
	})

	for _, attraction := range attractions {
		if tourist.Money < attraction.Value {
			break
		}

		tourist.Money -= attraction.Value

		earned := attraction.Payment(false, e.state.Settings.UseBonusEuro)

		owner := e.state.PlayerByID(*attraction.OwnerID)
		if owner != nil {
			owner.Money += earned
			result.MoneyEarned[owner.ID] += earned
		}

		result.AttractionsVisited = append(result.AttractionsVisited, attraction.ID)

		if tourist.Money == 0 {
			bus.RemoveTourist(tourist)
			e.payRuinBonus(owner, earned, result)
			break
		}
	}

	return result
}

// payRuinBonus pays the ruin bonus: the earned amount once more to the
// owner and once to the active player.
func (e *GameEngine) payRuinBonus(owner *Player, earned int, result *TourResult) {
	if owner != nil {
		owner.Money += earned
		result.MoneyEarned[owner.ID] += earned
	}
	active := e.state.CurrentPlayer()
	if active != nil {
		active.Money += earned
		result.MoneyEarned[active.ID] += earned
	}
	result.TouristsRuined++
	result.MoneyFromRuinedTourists += earned * 2
}
