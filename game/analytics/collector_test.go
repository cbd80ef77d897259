package analytics

import (
	"strings"
	"testing"

	"github.com/lakesidegames/tourbus/game/engine"
)

func intPtr(i int) *int { return &i }

func createTestState() *engine.GameState {
	state := engine.NewGameState(1)
	state.Players = []*engine.Player{
		{ID: 0, Name: "Anna", Money: 10, IsAI: true, Strategy: "balanced"},
		{ID: 1, Name: "Ben", Money: 8, IsAI: true, Strategy: "aggressive"},
	}
	city := &engine.City{Name: "Stadt", MaxAttractionSpaces: 3}
	city.Attractions = []*engine.Attraction{
		{ID: 7, Category: engine.Nature, Value: 2, OwnerID: intPtr(0)},
	}
	state.Board.AddCity(city)
	state.Board.Buses = []*engine.Bus{{ID: 0, CurrentCity: "Stadt"}}
	return state
}

func TestTurnSummaryAggregation(t *testing.T) {
	state := createTestState()
	c := NewCollector()

	c.StartTurn(0, "Anna", state)
	c.LogAction(0, "Anna", ActionSelectBus, map[string]interface{}{
		DetailBusID: 0, DetailCity: "Stadt",
	})
	c.LogAction(0, "Anna", ActionUseMorningAction, map[string]interface{}{
		DetailAction: engine.IncreaseValue,
	})
	c.LogAction(0, "Anna", ActionMoveBus, map[string]interface{}{
		DetailToCity: "Hafen",
	})
	c.LogAction(0, "Anna", ActionVisitAttraction, map[string]interface{}{
		DetailAttractionID: 7, DetailMoneyEarned: 3,
	})
	c.LogAction(0, "Anna", ActionTouristRuined, map[string]interface{}{
		DetailMoneyEarned: 6,
	})
	c.LogAction(0, "Anna", ActionRefillTourist, nil)
	c.EndTurn(state)

	turns := c.Turns()
	if len(turns) != 1 {
		t.Fatalf("Expected 1 turn, got %d", len(turns))
	}
	turn := turns[0]
	if turn.BusID != 0 || turn.StartCity != "Stadt" || turn.EndCity != "Hafen" {
		t.Errorf("Unexpected route: bus %d %s -> %s", turn.BusID, turn.StartCity, turn.EndCity)
	}
	if turn.MorningActionUsed != engine.IncreaseValue {
		t.Errorf("Expected morning action recorded, got %q", turn.MorningActionUsed)
	}
	if turn.AttractionsVisited != 1 || turn.MoneyEarned != 9 {
		t.Errorf("Expected 1 visit earning 9 total, got %d/%d", turn.AttractionsVisited, turn.MoneyEarned)
	}
	if turn.TouristsRuined != 1 || turn.TouristsAdded != 1 {
		t.Errorf("Expected 1 ruin and 1 refill, got %d/%d", turn.TouristsRuined, turn.TouristsAdded)
	}
	if turn.StateBeforeTurn == nil || turn.StateAfterTurn == nil {
		t.Error("Expected state snapshots on both sides of the turn")
	}
}

func TestPlayerStatistics(t *testing.T) {
	state := createTestState()
	c := NewCollector()

	c.StartTurn(0, "Anna", state)
	c.LogAction(0, "Anna", ActionBuildAttraction, map[string]interface{}{
		DetailCategory: engine.Nature, DetailCost: 2,
	})
	c.LogAction(0, "Anna", ActionVisitAttraction, map[string]interface{}{
		DetailAttractionID: 7, DetailMoneyEarned: 2,
	})
	c.EndTurn(state)

	// Ben's turn visits Anna's attraction 7
	c.StartTurn(1, "Ben", state)
	c.LogAction(1, "Ben", ActionVisitAttraction, map[string]interface{}{
		DetailAttractionID: 7, DetailMoneyEarned: 2,
	})
	c.EndTurn(state)

	stats := c.PlayerStatistics(0, state)
	if stats == nil {
		t.Fatal("Expected statistics for player 0")
	}
	if stats.TurnCount != 1 {
		t.Errorf("Expected 1 turn, got %d", stats.TurnCount)
	}
	if stats.AttractionsBuilt != 1 || stats.AttractionsByCategory[engine.Nature] != 1 {
		t.Errorf("Expected 1 Nature build, got %d (%v)", stats.AttractionsBuilt, stats.AttractionsByCategory)
	}
	if stats.TotalBuildingCost != 2 {
		t.Errorf("Expected building cost 2, got %d", stats.TotalBuildingCost)
	}
	if stats.AttractionsVisitedByOthers != 1 || stats.IncomeFromAttractions != 2 {
		t.Errorf("Expected 1 visit by others earning 2, got %d/%d",
			stats.AttractionsVisitedByOthers, stats.IncomeFromAttractions)
	}

	if c.PlayerStatistics(99, state) != nil {
		t.Error("Expected nil statistics for an unknown player")
	}
}

func TestGameSummary(t *testing.T) {
	state := createTestState()
	state.GameEnded = true
	c := NewCollector()

	c.StartTurn(0, "Anna", state)
	c.LogAction(0, "Anna", ActionMoveBus, map[string]interface{}{DetailToCity: "Stadt"})
	c.EndTurn(state)

	summary := c.GameSummary(state)
	if summary["TotalTurns"] != 1 {
		t.Errorf("Expected 1 total turn, got %v", summary["TotalTurns"])
	}
	if summary["Winner"] != "Anna" {
		t.Errorf("Expected winner Anna, got %v", summary["Winner"])
	}
}

func TestExportCSVSections(t *testing.T) {
	state := createTestState()
	c := NewCollector()
	c.RecordSettings(state.Settings)

	c.StartTurn(0, "Anna", state)
	c.LogAction(0, "Anna", ActionVisitAttraction, map[string]interface{}{
		DetailAttractionID: 7, DetailMoneyEarned: 2,
	})
	c.EndTurn(state)

	out := c.ExportCSV()
	for _, section := range []string{
		"=== GAME SETTINGS ===",
		"=== TURN SUMMARY ===",
		"=== BUS STATE PER TURN ===",
		"=== PLAYER STATE PER TURN ===",
		"=== GAME ACTIONS ===",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("Expected section %q in export", section)
		}
	}
	if !strings.Contains(out, "visit_attraction") {
		t.Error("Expected the logged action in the export")
	}

	// Identical inputs must export identical bytes
	if out != c.ExportCSV() {
		t.Error("Expected a stable export for unchanged data")
	}
}
