package setup

import "github.com/lakesidegames/tourbus/game/engine"

// cityDef describes one board city. Connections list only the solid road
// links; ferry crossings between ports are handled by the ferry morning
// action, not the graph.
type cityDef struct {
	name          string
	isPort        bool
	canBuildWater bool
	spaces        int
	morning       engine.MorningAction
	allDay        engine.AllDayAction
	connections   []string
}

// boardLayout is the fixed lake board. Order matters: it fixes the city
// iteration order for every deterministic whole-board walk.
var boardLayout = []cityDef{
	// Northwest shore
	{"Bodman-Ludwigshafen", false, false, 3, engine.IncreaseValue, engine.BuildAttractionAction,
		[]string{"Überlingen", "Radolfzell"}},
	{"Überlingen", false, false, 3, engine.IgnoreFirstAppeal, engine.AddTwoPips,
		[]string{"Bodman-Ludwigshafen", "Meersburg", "Ravensburg"}},
	{"Radolfzell", false, false, 3, engine.IgnoreFirstAppeal, engine.RerollTouristAction,
		[]string{"Bodman-Ludwigshafen", "Konstanz"}},
	{"Konstanz", true, true, 4, engine.Ferry, engine.GiveTour,
		[]string{"Radolfzell", "Kreuzlingen"}},
	{"Kreuzlingen", true, true, 4, engine.AllAttractionsAppeal, engine.BuildAttractionAction,
		[]string{"Konstanz", "Weinfelden"}},

	// North central
	{"Ravensburg", false, false, 3, engine.AllAttractionsAppeal, engine.GiveTour,
		[]string{"Überlingen", "Wangen"}},
	{"Wangen", false, false, 3, engine.IgnoreFirstAppeal, engine.BuildAttractionAction,
		[]string{"Ravensburg", "Lindau"}},

	// Lake ports
	{"Meersburg", true, true, 3, engine.Ferry, engine.BuildAttractionAction,
		[]string{"Überlingen"}},
	// Ferry-only access, no road connections
	{"Friedrichshafen", true, true, 5, engine.Ferry, engine.GiveTour, nil},
	{"Lindau", true, true, 4, engine.Ferry, engine.RerollTouristAction,
		[]string{"Wangen", "Bregenz"}},
	{"Bregenz", true, true, 3, engine.IncreaseValue, engine.GiveTour,
		[]string{"Lindau", "Hard", "Dornbirn"}},
	{"Hard", true, true, 3, engine.IgnoreFirstAppeal, engine.RerollTouristAction,
		[]string{"Bregenz", "Rorschach"}},
	{"Rorschach", true, true, 3, engine.Ferry, engine.AddTwoPips,
		[]string{"Hard", "St. Gallen", "Arbon"}},
	{"Arbon", true, true, 3, engine.IncreaseValue, engine.BuildAttractionAction,
		[]string{"Rorschach", "Romanshorn"}},
	{"Romanshorn", true, true, 3, engine.Ferry, engine.GiveTour,
		[]string{"Arbon", "Amriswil"}},

	// Southern hinterland
	{"Weinfelden", false, false, 3, engine.IgnoreFirstAppeal, engine.AddTwoPips,
		[]string{"Kreuzlingen", "Amriswil"}},
	{"Amriswil", false, false, 3, engine.AllAttractionsAppeal, engine.RerollTouristAction,
		[]string{"Weinfelden", "Romanshorn", "St. Gallen", "Wil"}},
	{"St. Gallen", false, false, 3, engine.IgnoreFirstAppeal, engine.AddTwoPips,
		[]string{"Amriswil", "Rorschach", "Wil"}},
	{"Wil", false, false, 3, engine.IncreaseValue, engine.BuildAttractionAction,
		[]string{"St. Gallen", "Amriswil"}},
	{"Dornbirn", false, false, 3, engine.AllAttractionsAppeal, engine.BuildAttractionAction,
		[]string{"Bregenz"}},
}

// busStartCities are the fixed bus starting positions
var busStartCities = []string{"Bodman-Ludwigshafen", "Friedrichshafen", "Lindau", "Rorschach"}

// buildBoard populates the board graph and makes every road bidirectional
func buildBoard(state *engine.GameState) {
	for _, def := range boardLayout {
		city := &engine.City{
			Name:                def.name,
			IsPort:              def.isPort,
			CanBuildWater:       def.canBuildWater,
			MaxAttractionSpaces: def.spaces,
			MorningAction:       def.morning,
			AllDayAction:        def.allDay,
			Connections:         append([]string{}, def.connections...),
		}
		state.Board.AddCity(city)
	}

	for _, name := range state.Board.CityNames {
		city := state.Board.Cities[name]
		for _, connected := range city.Connections {
			other := state.Board.Cities[connected]
			if other == nil {
				continue
			}
			if !containsString(other.Connections, city.Name) {
				other.Connections = append(other.Connections, city.Name)
			}
		}
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
