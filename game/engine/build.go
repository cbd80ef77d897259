package engine

// AttractionCost computes what building the attraction in the city would
// cost. Gray attractions have a flat base cost. Everything else pays its
// category base cost plus one per already-built non-gray attraction that
// shares the category; ports count every built non-gray attraction toward
// the crowding surcharge regardless of category. The discount floors at 0.
func (e *GameEngine) AttractionCost(attraction *Attraction, city *City, discount int) int {
	var cost int
	if attraction.Category == Gray {
		cost = e.state.Settings.GrayBaseCost
	} else {
		cost = e.state.Settings.BaseCost(attraction.Category)
		for _, built := range city.Attractions {
			if !built.Built() || built.Category == Gray {
				continue
			}
			if built.Category == attraction.Category || city.IsPort {
				cost++
			}
		}
	}
	cost -= discount
	if cost < 0 {
		cost = 0
	}
	return cost
}

// BuildAttraction purchases an attraction from the market for the current
// player and places it in the named city. Fails silently with no partial
// mutation when the city is unknown, water building is disallowed, the city
// is full, or the player cannot pay.
func (e *GameEngine) BuildAttraction(attraction *Attraction, cityName string, discount int) bool {
	city := e.state.Board.GetCity(cityName)
	if city == nil {
		return false
	}

	if attraction.Category == Water && !city.CanBuildWater {
		return false
	}
	if city.BuiltCount() >= city.MaxAttractionSpaces {
		return false
	}

	cost := e.AttractionCost(attraction, city, discount)

	player := e.state.CurrentPlayer()
	if player == nil || player.Money < cost {
		return false
	}

	player.Money -= cost
	ownerID := player.ID
	attraction.OwnerID = &ownerID
	city.Attractions = append(city.Attractions, attraction)
	e.state.Market.RemoveAvailable(attraction)

	return true
}
