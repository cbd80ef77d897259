package engine

// Refill runs the end-of-turn replenishment: the market tops up every
// attraction category visited this turn, then the acting bus draws
// replacement tourists from the shared pool according to the refill mode.
func (e *GameEngine) Refill(ctx *TurnContext) {
	for _, category := range e.visitedCategories(ctx) {
		if category == Gray {
			e.state.Market.RefillGray()
			continue
		}
		e.state.Market.Refill(category, e.state.Settings.MarketRefillAmount)
	}

	if ctx.SelectedBus == nil {
		return
	}

	toRefill := 0
	switch e.state.Settings.TouristRefillMode {
	case FillWhenEmpty:
		if len(ctx.SelectedBus.Tourists) == 0 {
			toRefill = e.state.Settings.MaxTouristsPerBus
		}
	default: // FillMissing
		toRefill = ctx.TouristsRuined
		if missing := e.state.Settings.MaxTouristsPerBus - len(ctx.SelectedBus.Tourists); toRefill > missing {
			toRefill = missing
		}
	}

	for i := 0; i < toRefill; i++ {
		tourist := e.state.PopTourist()
		if tourist == nil {
			break
		}
		tourist.Money = e.state.RollTouristDie()
		ctx.SelectedBus.Tourists = append(ctx.SelectedBus.Tourists, tourist)
	}
}

// visitedCategories maps this turn's visited attraction ids back to their
// categories, deduplicated in visit order
func (e *GameEngine) visitedCategories(ctx *TurnContext) []Category {
	var categories []Category
	seen := make(map[Category]bool)
	for _, id := range ctx.VisitedAttractions {
		a := e.findBuiltAttraction(id)
		if a == nil || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		categories = append(categories, a.Category)
	}
	return categories
}

// findBuiltAttraction scans the board for an attraction by id
func (e *GameEngine) findBuiltAttraction(id int) *Attraction {
	for _, name := range e.state.Board.CityNames {
		for _, a := range e.state.Board.Cities[name].Attractions {
			if a.ID == id {
				return a
			}
		}
	}
	return nil
}
