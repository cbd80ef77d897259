// Command analyze prints quick, human-readable heuristics about the board
// graph and the attraction catalog. It summarizes city and port counts,
// connection degrees, building capacity, per-category deck sizes, and flags
// structural problems the validation pass finds.
package main

import (
	"fmt"
	"sort"

	"github.com/lakesidegames/tourbus/game/engine"
	"github.com/lakesidegames/tourbus/game/setup"
	"github.com/lakesidegames/tourbus/validate"
)

func main() {
	state := setup.CreateGame([]setup.PlayerConfig{
		{Name: "AI-aggressive", IsAI: true, Strategy: "aggressive"},
		{Name: "AI-defensive", IsAI: true, Strategy: "defensive"},
		{Name: "AI-balanced", IsAI: true, Strategy: "balanced"},
		{Name: "AI-opportunistic", IsAI: true, Strategy: "opportunistic"},
	}, nil, 1)

	fmt.Println("=== Board ===")
	analyzeBoard(state.Board)

	fmt.Println("\n=== Attraction Catalog ===")
	analyzeCatalog(state)

	fmt.Println("\n=== Validation ===")
	printResult(validate.Settings(state.Settings))
	printResult(validate.Board(state.Board, startCities(state.Board)))
}

// startCities reads the bus starting positions off the freshly-built board
func startCities(board *engine.Board) []string {
	var cities []string
	for _, bus := range board.Buses {
		cities = append(cities, bus.CurrentCity)
	}
	return cities
}

func analyzeBoard(board *engine.Board) {
	ports := 0
	waterSpots := 0
	totalSpaces := 0
	totalRoads := 0
	degrees := make(map[string]int)

	for _, name := range board.CityNames {
		city := board.Cities[name]
		if city.IsPort {
			ports++
		}
		if city.CanBuildWater {
			waterSpots++
		}
		totalSpaces += city.MaxAttractionSpaces
		totalRoads += len(city.Connections)
		degrees[name] = len(city.Connections)
	}

	fmt.Printf("Cities: %d (%d ports, %d allow water builds)\n",
		len(board.CityNames), ports, waterSpots)
	fmt.Printf("Road links: %d (each counted from both ends)\n", totalRoads)
	fmt.Printf("Attraction spaces: %d total\n", totalSpaces)

	// Dead ends and hubs are the interesting extremes for route planning
	var deadEnds, hubs []string
	for _, name := range board.CityNames {
		switch {
		case degrees[name] == 0:
			deadEnds = append(deadEnds, name+" (ferry only)")
		case degrees[name] == 1:
			deadEnds = append(deadEnds, name)
		case degrees[name] >= 4:
			hubs = append(hubs, fmt.Sprintf("%s (%d roads)", name, degrees[name]))
		}
	}
	if len(deadEnds) > 0 {
		fmt.Printf("Dead ends: %s\n", joinNames(deadEnds))
	}
	if len(hubs) > 0 {
		fmt.Printf("Hubs: %s\n", joinNames(hubs))
	}

	// Morning and all-day action distribution across cities
	morning := make(map[engine.MorningAction]int)
	allDay := make(map[engine.AllDayAction]int)
	for _, name := range board.CityNames {
		city := board.Cities[name]
		if city.MorningAction != "" {
			morning[city.MorningAction]++
		}
		if city.AllDayAction != "" {
			allDay[city.AllDayAction]++
		}
	}
	fmt.Println("Morning actions:")
	for _, line := range sortedActionCounts(morning) {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println("All-day actions:")
	for _, line := range sortedAllDayCounts(allDay) {
		fmt.Printf("  %s\n", line)
	}
}

func analyzeCatalog(state *engine.GameState) {
	market := state.Market
	for _, cat := range engine.Categories() {
		deck := market.Decks[cat]
		available := market.Available[cat]

		total := len(deck) + len(available)
		if total == 0 {
			fmt.Printf("%-10s: no cards\n", cat)
			continue
		}

		valueSum := 0
		minValue, maxValue := 999, 0
		for _, a := range append(append([]*engine.Attraction{}, deck...), available...) {
			valueSum += a.Value
			if a.Value < minValue {
				minValue = a.Value
			}
			if a.Value > maxValue {
				maxValue = a.Value
			}
		}

		fmt.Printf("%-10s: %d cards (%d visible), value %d-%d, avg %.1f, base cost %d\n",
			cat, total, len(available), minValue, maxValue,
			float64(valueSum)/float64(total), state.Settings.BaseCost(cat))
	}
}

func printResult(result validate.Result) {
	if result.Valid {
		fmt.Printf("✅ %s OK\n", result.Subject)
		for _, note := range result.Notes {
			fmt.Printf("   %s\n", note)
		}
		return
	}
	fmt.Printf("⚠️  %s has %d problems:\n", result.Subject, len(result.Errors))
	for _, e := range result.Errors {
		fmt.Printf("   %s\n", e)
	}
}

func sortedActionCounts(counts map[engine.MorningAction]int) []string {
	var lines []string
	for action, n := range counts {
		lines = append(lines, fmt.Sprintf("%s: %d", action, n))
	}
	sort.Strings(lines)
	return lines
}

func sortedAllDayCounts(counts map[engine.AllDayAction]int) []string {
	var lines []string
	for action, n := range counts {
		lines = append(lines, fmt.Sprintf("%s: %d", action, n))
	}
	sort.Strings(lines)
	return lines
}

func joinNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}
