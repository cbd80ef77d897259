package analytics

import "github.com/lakesidegames/tourbus/game/engine"

// PlayerStatistics aggregates one player's whole game
type PlayerStatistics struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	IsAI       bool   `json:"is_ai"`
	Strategy   string `json:"strategy,omitempty"`

	// Financial
	TotalMoneyEarned int `json:"total_money_earned"`
	TotalMoneySpent  int `json:"total_money_spent"`
	FinalMoney       int `json:"final_money"`

	// Building
	AttractionsBuilt      int                     `json:"attractions_built"`
	AttractionsByCategory map[engine.Category]int `json:"attractions_by_category"`
	TotalBuildingCost     int                     `json:"total_building_cost"`

	// Tourists
	TouristsRuined          int `json:"tourists_ruined"`
	MoneyFromRuinedTourists int `json:"money_from_ruined_tourists"`

	// Action usage
	MorningActionsUsed map[engine.MorningAction]int `json:"morning_actions_used"`
	AllDayActionsUsed  map[engine.AllDayAction]int  `json:"all_day_actions_used"`

	// Income from owned attractions visited by other players' turns
	AttractionsVisitedByOthers int `json:"attractions_visited_by_others"`
	IncomeFromAttractions      int `json:"income_from_attractions"`

	TurnCount               int `json:"turn_count"`
	TotalAttractionsVisited int `json:"total_attractions_visited"`
}

// NetProfit is earned minus spent over the whole game
func (s *PlayerStatistics) NetProfit() int {
	return s.TotalMoneyEarned - s.TotalMoneySpent
}

// AverageMoneyPerTurn is total earnings divided by turns taken
func (s *PlayerStatistics) AverageMoneyPerTurn() float64 {
	if s.TurnCount == 0 {
		return 0
	}
	return float64(s.TotalMoneyEarned) / float64(s.TurnCount)
}

// AverageAttractionsVisitedPerTurn is total visits divided by turns taken
func (s *PlayerStatistics) AverageAttractionsVisitedPerTurn() float64 {
	if s.TurnCount == 0 {
		return 0
	}
	return float64(s.TotalAttractionsVisited) / float64(s.TurnCount)
}

// PlayerStatistics builds the aggregate view of one player from the recorded
// turns and actions plus the final state. Returns nil for an unknown player.
func (c *Collector) PlayerStatistics(playerID int, finalState *engine.GameState) *PlayerStatistics {
	player := finalState.PlayerByID(playerID)
	if player == nil {
		return nil
	}

	stats := &PlayerStatistics{
		PlayerID:              playerID,
		PlayerName:            player.Name,
		IsAI:                  player.IsAI,
		Strategy:              player.Strategy,
		FinalMoney:            player.Money,
		AttractionsByCategory: make(map[engine.Category]int),
		MorningActionsUsed:    make(map[engine.MorningAction]int),
		AllDayActionsUsed:     make(map[engine.AllDayAction]int),
	}
	for _, cat := range engine.Categories() {
		stats.AttractionsByCategory[cat] = 0
	}

	for _, turn := range c.turns {
		if turn.PlayerID != playerID {
			continue
		}
		stats.TurnCount++
		stats.TotalMoneyEarned += turn.MoneyEarned
		stats.TotalMoneySpent += turn.MoneySpent
		stats.TotalAttractionsVisited += turn.AttractionsVisited
		stats.TouristsRuined += turn.TouristsRuined
		if turn.MorningActionUsed != engine.MorningNone {
			stats.MorningActionsUsed[turn.MorningActionUsed]++
		}
		if turn.AllDayActionUsed != engine.AllDayNone {
			stats.AllDayActionsUsed[turn.AllDayActionUsed]++
		}
	}

	owned := make(map[int]bool)
	for _, name := range finalState.Board.CityNames {
		for _, a := range finalState.Board.Cities[name].Attractions {
			if a.OwnerID != nil && *a.OwnerID == playerID {
				owned[a.ID] = true
			}
		}
	}

	for _, action := range c.actions {
		switch action.Type {
		case ActionBuildAttraction:
			if action.PlayerID != playerID {
				continue
			}
			stats.AttractionsBuilt++
			if cat, ok := action.Details[DetailCategory].(engine.Category); ok {
				stats.AttractionsByCategory[cat]++
			}
			if cost, ok := action.Details[DetailCost].(int); ok {
				stats.TotalBuildingCost += cost
			}
		case ActionVisitAttraction:
			if action.PlayerID == playerID {
				continue
			}
			id, ok := action.Details[DetailAttractionID].(int)
			if !ok || !owned[id] {
				continue
			}
			stats.AttractionsVisitedByOthers++
			if earned, ok := action.Details[DetailMoneyEarned].(int); ok {
				stats.IncomeFromAttractions += earned
			}
		case ActionTouristRuined:
			if action.PlayerID != playerID {
				continue
			}
			if earned, ok := action.Details[DetailMoneyEarned].(int); ok {
				stats.MoneyFromRuinedTourists += earned
			}
		}
	}

	return stats
}

// GameSummary builds the top-level report map for a finished game
func (c *Collector) GameSummary(finalState *engine.GameState) map[string]interface{} {
	summary := map[string]interface{}{
		"TotalTurns":   c.turnCounter,
		"TotalActions": len(c.actions),
	}

	winner := "None"
	if w := finalState.Winner(); w != nil {
		winner = w.Name
	}
	summary["Winner"] = winner

	scores := make(map[string]int, len(finalState.Players))
	for _, p := range finalState.Players {
		scores[p.Name] = p.Money
	}
	summary["FinalScores"] = scores

	counts := make(map[string]int)
	for _, action := range c.actions {
		counts[string(action.Type)]++
	}
	summary["ActionCounts"] = counts

	return summary
}
