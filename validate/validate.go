// Package validate checks game settings and board graphs for structural
// problems before play: positive costs and capacities, consistent refill
// configuration, bidirectional road links, and reachability of every city
// from the bus starting positions (counting ferry links between ports).
package validate

import (
	"fmt"

	"github.com/lakesidegames/tourbus/game/engine"
)

// Result captures the outcome of validating one subject. When Valid is true,
// Notes carries informational lines; otherwise Errors lists what failed.
type Result struct {
	Subject string   `json:"subject"`
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors,omitempty"`
	Notes   []string `json:"notes,omitempty"`
}

func (r *Result) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) note(format string, args ...interface{}) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Settings validates a rule configuration
func Settings(s *engine.Settings) Result {
	result := Result{Subject: "settings", Valid: true}
	if s == nil {
		result.fail("settings cannot be nil")
		return result
	}

	if len(s.PlayerStartMoney) == 0 {
		result.fail("player_start_money must list at least one value")
	}
	for i, money := range s.PlayerStartMoney {
		if money < 0 {
			result.fail("player_start_money[%d] is negative: %d", i, money)
		}
	}

	for _, cat := range engine.Categories() {
		if cost := s.BaseCost(cat); cost < 0 {
			result.fail("base cost for %s is negative: %d", cat, cost)
		}
	}

	if s.TouristRefillMode != engine.FillMissing && s.TouristRefillMode != engine.FillWhenEmpty {
		result.fail("unknown tourist_refill_mode: %q", s.TouristRefillMode)
	}
	if s.StartingTouristsPerBus < 0 || s.StartingTouristsPerBus > s.MaxTouristsPerBus {
		result.fail("starting_tourists_per_bus (%d) must be between 0 and max_tourists_per_bus (%d)",
			s.StartingTouristsPerBus, s.MaxTouristsPerBus)
	}
	if s.MaxTouristsPerBus <= 0 {
		result.fail("max_tourists_per_bus must be positive, got %d", s.MaxTouristsPerBus)
	}
	if s.TouristPoolSizePerCategory <= 0 {
		result.fail("tourist_pool_size_per_category must be positive, got %d", s.TouristPoolSizePerCategory)
	}
	if s.MarketRefillAmount <= 0 {
		result.fail("market_refill_amount must be positive, got %d", s.MarketRefillAmount)
	}
	if s.IncreaseValueBonus < 0 {
		result.fail("increase_value_bonus is negative: %d", s.IncreaseValueBonus)
	}
	if s.ZentrumPipsBonus < 0 {
		result.fail("zentrum_pips_bonus is negative: %d", s.ZentrumPipsBonus)
	}
	if s.CasinoRerollsPerBus < 0 {
		result.fail("casino_rerolls_per_bus is negative: %d", s.CasinoRerollsPerBus)
	}
	if s.ContractorDiscountAmount < 0 {
		result.fail("contractor_discount_amount is negative: %d", s.ContractorDiscountAmount)
	}
	if s.Language != "german" && s.Language != "english" {
		result.fail("language must be \"german\" or \"english\", got %q", s.Language)
	}

	if result.Valid {
		result.note("players: %d seats configured", len(s.PlayerStartMoney))
		result.note("tourist pool: %d per category", s.TouristPoolSizePerCategory)
		result.note("refill mode: %s", s.TouristRefillMode)
	}
	return result
}

// Board validates a board graph: link symmetry, connection targets, and
// reachability of every city from the given start cities. Ports connect to
// each other by ferry, so a city with no roads is still reachable when it
// is a port.
func Board(board *engine.Board, startCities []string) Result {
	result := Result{Subject: "board", Valid: true}
	if board == nil || len(board.CityNames) == 0 {
		result.fail("board has no cities")
		return result
	}

	portCount := 0
	for _, name := range board.CityNames {
		city := board.Cities[name]
		if city.IsPort {
			portCount++
		}
		if city.MaxAttractionSpaces < 0 {
			result.fail("%s: negative attraction spaces", name)
		}
		for _, conn := range city.Connections {
			neighbor := board.GetCity(conn)
			if neighbor == nil {
				result.fail("%s: connection to unknown city %q", name, conn)
				continue
			}
			if !contains(neighbor.Connections, name) {
				result.fail("%s -> %s: road is not bidirectional", name, conn)
			}
		}
	}

	for _, start := range startCities {
		if board.GetCity(start) == nil {
			result.fail("start city %q is not on the board", start)
		}
	}

	if !result.Valid {
		return result
	}

	unreachable := unreachableCities(board, startCities)
	if len(unreachable) > 0 {
		result.fail("%d cities unreachable from the start cities", len(unreachable))
		for _, name := range unreachable {
			result.fail("unreachable: %s", name)
		}
	} else {
		result.note("connectivity: all %d cities reachable", len(board.CityNames))
	}
	result.note("ports: %d", portCount)
	return result
}

// unreachableCities flood-fills from the start cities over roads and ferry
// links and returns every city the fill never touched, in board order.
func unreachableCities(board *engine.Board, startCities []string) []string {
	visited := make(map[string]bool)
	queue := append([]string{}, startCities...)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		city := board.GetCity(name)
		if city == nil {
			continue
		}
		visited[name] = true

		queue = append(queue, city.Connections...)
		if city.IsPort {
			for _, other := range board.CityNames {
				if other != name && board.Cities[other].IsPort && !visited[other] {
					queue = append(queue, other)
				}
			}
		}
	}

	var unreachable []string
	for _, name := range board.CityNames {
		if !visited[name] {
			unreachable = append(unreachable, name)
		}
	}
	return unreachable
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
