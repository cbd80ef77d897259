package validate

import (
	"strings"
	"testing"

	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/setup"
)

func TestSettingsDefaultValid(t *testing.T) {
	result := Settings(engine.DefaultSettings())
	if !result.Valid {
		t.Fatalf("Default settings should validate, got: %v", result.Errors)
	}
	if len(result.Notes) == 0 {
		t.Error("Expected informational notes for a valid result")
	}
}

func TestSettingsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*engine.Settings)
		want   string
	}{
		{"nil start money", func(s *engine.Settings) { s.PlayerStartMoney = nil }, "player_start_money"},
		{"negative cost", func(s *engine.Settings) { s.GrayBaseCost = -1 }, "base cost"},
		{"bad refill mode", func(s *engine.Settings) { s.TouristRefillMode = "sometimes" }, "tourist_refill_mode"},
		{"too many starters", func(s *engine.Settings) { s.StartingTouristsPerBus = 9 }, "starting_tourists_per_bus"},
		{"zero pool", func(s *engine.Settings) { s.TouristPoolSizePerCategory = 0 }, "tourist_pool_size"},
		{"bad language", func(s *engine.Settings) { s.Language = "latin" }, "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := engine.DefaultSettings()
			tt.mutate(settings)
			result := Settings(settings)
			if result.Valid {
				t.Fatal("Expected validation to fail")
			}
			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected an error mentioning %q, got %v", tt.want, result.Errors)
			}
		})
	}
}

func TestSettingsNil(t *testing.T) {
	if result := Settings(nil); result.Valid {
		t.Error("Expected nil settings to fail validation")
	}
}

func TestBoardFullGameValid(t *testing.T) {
	state := setup.CreateGame([]setup.PlayerConfig{{Name: "Anna"}}, nil, 1)

	var starts []string
	for _, bus := range state.Board.Buses {
		starts = append(starts, bus.CurrentCity)
	}

	result := Board(state.Board, starts)
	if !result.Valid {
		t.Fatalf("The standard board should validate, got: %v", result.Errors)
	}
}

func TestBoardDetectsOneWayRoad(t *testing.T) {
	board := engine.NewBoard()
	board.AddCity(&engine.City{Name: "A", Connections: []string{"B"}})
	board.AddCity(&engine.City{Name: "B"})

	result := Board(board, []string{"A"})
	if result.Valid {
		t.Fatal("Expected a one-way road to fail validation")
	}
}

func TestBoardDetectsUnreachableCity(t *testing.T) {
	board := engine.NewBoard()
	board.AddCity(&engine.City{Name: "A", Connections: []string{"B"}})
	board.AddCity(&engine.City{Name: "B", Connections: []string{"A"}})
	board.AddCity(&engine.City{Name: "Island"})

	result := Board(board, []string{"A"})
	if result.Valid {
		t.Fatal("Expected an isolated city to fail validation")
	}

	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Island") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the isolated city to be named, got %v", result.Errors)
	}
}

func TestBoardFerryLinksPorts(t *testing.T) {
	board := engine.NewBoard()
	board.AddCity(&engine.City{Name: "A", IsPort: true, Connections: []string{"B"}})
	board.AddCity(&engine.City{Name: "B", Connections: []string{"A"}})
	// No roads, but reachable over water
	board.AddCity(&engine.City{Name: "Harbor", IsPort: true})

	result := Board(board, []string{"A"})
	if !result.Valid {
		t.Fatalf("Expected ferry links to make the harbor reachable, got: %v", result.Errors)
	}
}

func TestBoardUnknownConnectionAndStart(t *testing.T) {
	board := engine.NewBoard()
	board.AddCity(&engine.City{Name: "A", Connections: []string{"Nowhere"}})

	result := Board(board, []string{"Elsewhere"})
	if result.Valid {
		t.Fatal("Expected unknown references to fail validation")
	}
	if len(result.Errors) < 2 {
		t.Errorf("Expected errors for both the connection and the start city, got %v", result.Errors)
	}
}
