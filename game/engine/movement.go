package engine

// GetValidDestinations returns the ordered set of city names the bus may
// stop in this turn.
//
// With the Ferry morning action active from a port, destinations are every
// other unoccupied port and no graph walk happens. Otherwise a breadth-first
// search runs outward from the current city: cities with appeal are stops
// and dead ends, cities without appeal are passed through, occupied cities
// are neither. The ignore-first-appeal flag turns the first appealing city
// found into a pass-through and is then spent.
func (e *GameEngine) GetValidDestinations(bus *Bus, ctx *TurnContext) []string {
	destinations := []string{}
	city := e.state.Board.GetCity(bus.CurrentCity)
	if city == nil {
		return destinations
	}

	busCategories := bus.Categories()

	if ctx.UsedMorningAction == Ferry && city.IsPort {
		for _, name := range e.state.Board.CityNames {
			port := e.state.Board.Cities[name]
			if !port.IsPort || port.Name == city.Name {
				continue
			}
			if e.state.Board.OccupiedBy(port.Name, bus.ID) {
				continue
			}
			destinations = append(destinations, port.Name)
		}
		return destinations
	}

	visited := map[string]bool{bus.CurrentCity: true}
	queue := []string{bus.CurrentCity}
	firstAppealSkipped := false

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, nextName := range e.state.Board.Cities[current].Connections {
			if visited[nextName] {
				continue
			}
			next := e.state.Board.GetCity(nextName)
			if next == nil {
				continue
			}
			if e.state.Board.OccupiedBy(nextName, bus.ID) {
				continue
			}

			hasAppeal := true
			if e.state.Settings.UseAppealSystem {
				hasAppeal = next.HasAppeal(busCategories)
			}

			if hasAppeal {
				if ctx.IgnoreNextAppeal && !firstAppealSkipped {
					firstAppealSkipped = true
					visited[nextName] = true
					queue = append(queue, nextName)
					continue
				}
				// A stop, and a dead end for this branch
				visited[nextName] = true
				destinations = append(destinations, nextName)
			} else {
				visited[nextName] = true
				queue = append(queue, nextName)
			}
		}
	}

	return destinations
}

// CanBusMove reports whether the bus has any legal move this turn. A morning
// action can open movement not visible under the default context, so three
// probes run: plain, ignore-first-appeal, and ferry when docked at a port.
func (e *GameEngine) CanBusMove(bus *Bus) bool {
	city := e.state.Board.GetCity(bus.CurrentCity)
	if city == nil {
		return false
	}
	if len(bus.Tourists) == 0 {
		return false
	}

	if len(e.GetValidDestinations(bus, &TurnContext{})) > 0 {
		return true
	}
	if len(e.GetValidDestinations(bus, &TurnContext{IgnoreNextAppeal: true})) > 0 {
		return true
	}
	if city.IsPort {
		if len(e.GetValidDestinations(bus, &TurnContext{UsedMorningAction: Ferry})) > 0 {
			return true
		}
	}
	return false
}

// MoveBus relocates the bus to one of its valid destinations. Returns false
// and mutates nothing if the destination is not legal under the context.
func (e *GameEngine) MoveBus(bus *Bus, destination string, ctx *TurnContext) bool {
	for _, valid := range e.GetValidDestinations(bus, ctx) {
		if valid == destination {
			bus.CurrentCity = destination
			ctx.HasMoved = true
			return true
		}
	}
	return false
}
