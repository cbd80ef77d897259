package runner

import (
	"log"

	"github.com/lakesidegames/tourbus/game/ai"
	"github.com/lakesidegames/tourbus/game/analytics"
	"github.com/lakesidegames/tourbus/game/engine"
)

// PlayTurn advances the game by exactly one player turn: asks the current
// player's strategy for a decision, executes the morning action, the move,
// the arrival tour, the all-day action and the refill, checks the end
// condition and hands the seat to the next player. A decision with a nil bus
// is a pass. Returns the decision so callers can report it.
func PlayTurn(eng engine.Engine, ctrl *ai.Controller, collector *analytics.Collector, verbose bool) *ai.Decision {
	state := eng.State()
	player := state.CurrentPlayer()
	if player == nil {
		return nil
	}

	collector.StartTurn(player.ID, player.Name, state)
	decision := ctrl.Decide(state, eng, player.Strategy)

	if decision.Bus == nil {
		if verbose {
			log.Printf("[turn %d] %s cannot move any bus", collector.TurnCount(), player.Name)
		}
		collector.EndTurn(state)
		state.NextPlayer()
		return decision
	}

	ctx := engine.NewTurnContext(decision.Bus)
	collector.LogAction(player.ID, player.Name, analytics.ActionSelectBus, map[string]interface{}{
		analytics.DetailBusID: decision.Bus.ID,
		analytics.DetailCity:  decision.Bus.CurrentCity,
	})

	if decision.MorningAction != engine.MorningNone {
		ctx.ApplyMorningAction(decision.MorningAction)
		collector.LogAction(player.ID, player.Name, analytics.ActionUseMorningAction, map[string]interface{}{
			analytics.DetailAction: decision.MorningAction,
		})
	}

	if decision.DestinationCity != "" && eng.MoveBus(decision.Bus, decision.DestinationCity, ctx) {
		collector.LogAction(player.ID, player.Name, analytics.ActionMoveBus, map[string]interface{}{
			analytics.DetailCity:   ctx.StartCity,
			analytics.DetailToCity: decision.DestinationCity,
		})

		tourResult := eng.GiveBusTour(decision.Bus, ctx)
		recordTour(state, collector, player, ctx, tourResult)
	}

	if decision.AllDayAction != engine.AllDayNone {
		executeAllDayAction(eng, decision, ctx, collector)
		ctx.UsedAllDayAction = true
	}

	eng.Refill(ctx)
	eng.CheckGameEnd()

	collector.EndTurn(state)
	state.NextPlayer()
	return decision
}

// recordTour folds one tour payout into the turn context and the action log
func recordTour(state *engine.GameState, collector *analytics.Collector, player *engine.Player, ctx *engine.TurnContext, result *engine.TourResult) {
	ctx.VisitedAttractions = append(ctx.VisitedAttractions, result.AttractionsVisited...)
	ctx.TouristsRuined += result.TouristsRuined

	for _, id := range result.AttractionsVisited {
		details := map[string]interface{}{analytics.DetailAttractionID: id}
		if a := findAttraction(state, id); a != nil {
			earned := a.Value
			if ctx.IncreaseValue {
				earned += state.Settings.IncreaseValueBonus
			}
			details[analytics.DetailMoneyEarned] = earned
		}
		collector.LogAction(player.ID, player.Name, analytics.ActionVisitAttraction, details)
	}

	// The payout total rides on the first record; the rest only count
	for i := 0; i < result.TouristsRuined; i++ {
		details := map[string]interface{}{}
		if i == 0 {
			details[analytics.DetailMoneyEarned] = result.MoneyFromRuinedTourists
		}
		collector.LogAction(player.ID, player.Name, analytics.ActionTouristRuined, details)
	}
}

// executeAllDayAction carries out the decided all-day action against the
// live state. Unknown or inapplicable actions are silent no-ops.
func executeAllDayAction(eng engine.Engine, decision *ai.Decision, ctx *engine.TurnContext, collector *analytics.Collector) {
	state := eng.State()
	player := state.CurrentPlayer()
	settings := state.Settings
	bus := decision.Bus

	collector.LogAction(player.ID, player.Name, analytics.ActionUseAllDayAction, map[string]interface{}{
		analytics.DetailAction: decision.AllDayAction,
	})

	switch decision.AllDayAction {
	case engine.BuildAttractionAction, engine.BuildAttractionDiscount:
		if decision.Build == nil || decision.Build.Attraction == nil {
			return
		}
		discount := 0
		if decision.AllDayAction == engine.BuildAttractionDiscount {
			discount = settings.ContractorDiscountAmount
		}
		attraction := decision.Build.Attraction
		city := state.Board.GetCity(decision.Build.City)
		cost := eng.AttractionCost(attraction, city, discount)
		if !eng.BuildAttraction(attraction, decision.Build.City, discount) {
			return
		}
		collector.LogAction(player.ID, player.Name, analytics.ActionBuildAttraction, map[string]interface{}{
			analytics.DetailAttractionID: attraction.ID,
			analytics.DetailCategory:     attraction.Category,
			analytics.DetailCity:         decision.Build.City,
			analytics.DetailCost:         cost,
		})
		if attraction.Category == engine.Gray {
			state.Market.RefillGray()
		} else {
			state.Market.Refill(attraction.Category, settings.MarketRefillAmount)
		}

	case engine.AddTwoPips:
		if len(bus.Tourists) == 0 {
			return
		}
		tourist := bus.Tourists[state.Rand.Intn(len(bus.Tourists))]
		addPips(tourist, settings.ZentrumPipsBonus, collector, player)

	case engine.AddTwoPipsGreen, engine.AddTwoPipsBlue, engine.AddTwoPipsRed, engine.AddTwoPipsYellow:
		category, _ := engine.PipCategory(decision.AllDayAction)
		for _, tourist := range bus.Tourists {
			if tourist.Category == category {
				addPips(tourist, settings.ZentrumPipsBonus, collector, player)
				break
			}
		}

	case engine.RerollTouristAction:
		// The casino rerolls the poorest tourist across every bus parked here
		var tourists []*engine.Tourist
		for _, b := range state.Board.Buses {
			if b.CurrentCity == bus.CurrentCity {
				tourists = append(tourists, b.Tourists...)
			}
		}
		if len(tourists) == 0 {
			return
		}
		for i := 0; i < settings.CasinoRerollsPerBus; i++ {
			poorest := tourists[0]
			for _, t := range tourists[1:] {
				if t.Money < poorest.Money {
					poorest = t
				}
			}
			oldMoney := poorest.Money
			poorest.Money = state.RollTouristDie()
			collector.LogAction(player.ID, player.Name, analytics.ActionRerollTourist, map[string]interface{}{
				"old_value": oldMoney,
				"new_value": poorest.Money,
			})
		}

	case engine.GiveTour:
		if settings.GiveTourAffectsWholeBus {
			result := eng.GiveBusTour(bus, ctx)
			recordTour(state, collector, player, ctx, result)
			return
		}
		if len(bus.Tourists) == 0 {
			return
		}
		richest := bus.Tourists[0]
		for _, t := range bus.Tourists[1:] {
			if t.Money > richest.Money {
				richest = t
			}
		}
		result := eng.GiveSingleTouristTour(bus, richest, bus.CurrentCity)
		recordTour(state, collector, player, ctx, result)

	case engine.BusDispatch:
		var others []*engine.Bus
		for _, b := range state.Board.Buses {
			if b.ID != bus.ID {
				others = append(others, b)
			}
		}
		if len(others) == 0 {
			return
		}
		target := others[state.Rand.Intn(len(others))]
		destinations := eng.GetValidDestinations(target, engine.NewTurnContext(target))
		if len(destinations) == 0 {
			return
		}
		oldCity := target.CurrentCity
		target.CurrentCity = destinations[state.Rand.Intn(len(destinations))]
		collector.LogAction(player.ID, player.Name, analytics.ActionMoveAnotherBus, map[string]interface{}{
			analytics.DetailBusID:  target.ID,
			analytics.DetailCity:   oldCity,
			analytics.DetailToCity: target.CurrentCity,
		})
	}
}

// addPips raises a tourist's pips by the bonus, capped at the die maximum
func addPips(tourist *engine.Tourist, bonus int, collector *analytics.Collector, player *engine.Player) {
	oldMoney := tourist.Money
	tourist.Money += bonus
	if tourist.Money > engine.MaxTouristPips {
		tourist.Money = engine.MaxTouristPips
	}
	collector.LogAction(player.ID, player.Name, analytics.ActionAddPips, map[string]interface{}{
		"old_value":              oldMoney,
		"new_value":              tourist.Money,
		analytics.DetailCategory: tourist.Category,
	})
}

// findAttraction looks up a built attraction anywhere on the board
func findAttraction(state *engine.GameState, id int) *engine.Attraction {
	for _, name := range state.Board.CityNames {
		for _, a := range state.Board.Cities[name].Attractions {
			if a.ID == id {
				return a
			}
		}
	}
	return nil
}
