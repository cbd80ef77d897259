package analytics

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ExportCSV renders the full sectioned report: game settings, turn-by-turn
// summary, bus and player state per turn, and the raw action log. Map-backed
// sections are sorted by key so two identical games export identical bytes.
func (c *Collector) ExportCSV() string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if len(c.settings) > 0 {
		w.Write([]string{"=== GAME SETTINGS ==="})
		w.Write([]string{"Setting", "Value"})
		keys := make([]string, 0, len(c.settings))
		for key := range c.settings {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			w.Write([]string{key, fmt.Sprintf("%v", c.settings[key])})
		}
		w.Write([]string{})
	}

	w.Write([]string{"=== TURN SUMMARY ==="})
	w.Write([]string{
		"Turn", "Player", "BusId", "FromCity", "ToCity", "MorningAction", "AllDayAction",
		"AttractionsVisited", "MoneyBefore", "MoneyAfter", "NetChange", "TouristsRuined",
	})
	for _, turn := range c.turns {
		w.Write([]string{
			strconv.Itoa(turn.TurnNumber),
			turn.PlayerName,
			strconv.Itoa(turn.BusID),
			turn.StartCity,
			turn.EndCity,
			string(turn.MorningActionUsed),
			string(turn.AllDayActionUsed),
			strconv.Itoa(turn.AttractionsVisited),
			strconv.Itoa(turn.MoneyBefore),
			strconv.Itoa(turn.MoneyAfter),
			strconv.Itoa(turn.MoneyAfter - turn.MoneyBefore),
			strconv.Itoa(turn.TouristsRuined),
		})
	}
	w.Write([]string{})

	w.Write([]string{"=== BUS STATE PER TURN ==="})
	header := []string{"Turn", "BusId", "Location"}
	for i := 1; i <= 4; i++ {
		header = append(header,
			fmt.Sprintf("Tourist%d_Category", i),
			fmt.Sprintf("Tourist%d_Money", i))
	}
	w.Write(header)
	for _, turn := range c.turns {
		if turn.StateAfterTurn == nil {
			continue
		}
		for _, bus := range turn.StateAfterTurn.Buses {
			row := []string{strconv.Itoa(turn.TurnNumber), strconv.Itoa(bus.BusID), bus.Location}
			for i := 0; i < 4; i++ {
				if i < len(bus.Tourists) {
					row = append(row, string(bus.Tourists[i].Category), strconv.Itoa(bus.Tourists[i].Money))
				} else {
					row = append(row, "", "")
				}
			}
			w.Write(row)
		}
	}
	w.Write([]string{})

	w.Write([]string{"=== PLAYER STATE PER TURN ==="})
	w.Write([]string{"Turn", "PlayerId", "PlayerName", "Money", "AttractionCount"})
	for _, turn := range c.turns {
		if turn.StateAfterTurn == nil {
			continue
		}
		for _, player := range turn.StateAfterTurn.Players {
			w.Write([]string{
				strconv.Itoa(turn.TurnNumber),
				strconv.Itoa(player.PlayerID),
				player.PlayerName,
				strconv.Itoa(player.Money),
				strconv.Itoa(player.AttractionCount),
			})
		}
	}
	w.Write([]string{})

	w.Write([]string{"=== GAME ACTIONS ==="})
	w.Write([]string{"TurnNumber", "PlayerId", "PlayerName", "ActionType", "Details"})
	for _, action := range c.actions {
		keys := make([]string, 0, len(action.Details))
		for key := range action.Details {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", key, action.Details[key]))
		}
		w.Write([]string{
			strconv.Itoa(action.TurnNumber),
			strconv.Itoa(action.PlayerID),
			action.PlayerName,
			string(action.Type),
			strings.Join(pairs, ";"),
		})
	}

	w.Flush()
	return sb.String()
}
