package analytics

import (
	"time"

	"github.com/lakesidegames/tourbus/game/engine"
)

// ActionType tags a recorded game event
type ActionType string

const (
	ActionSelectBus        ActionType = "select_bus"
	ActionUseMorningAction ActionType = "use_morning_action"
	ActionMoveBus          ActionType = "move_bus"
	ActionVisitAttraction  ActionType = "visit_attraction"
	ActionUseAllDayAction  ActionType = "use_all_day_action"
	ActionBuildAttraction  ActionType = "build_attraction"
	ActionRerollTourist    ActionType = "reroll_tourist"
	ActionAddPips          ActionType = "add_pips"
	ActionGiveTour         ActionType = "give_tour"
	ActionTouristRuined    ActionType = "tourist_ruined"
	ActionRefillTourist    ActionType = "refill_tourist"
	ActionMoveAnotherBus   ActionType = "move_another_bus"
)

// Detail keys used in action records
const (
	DetailBusID        = "bus_id"
	DetailCity         = "city"
	DetailToCity       = "to_city"
	DetailAction       = "action"
	DetailAttractionID = "attraction_id"
	DetailCategory     = "category"
	DetailMoneyEarned  = "money_earned"
	DetailCost         = "cost"
)

// Action is one discrete recorded event with a key/value detail bag
type Action struct {
	TurnNumber int                    `json:"turn_number"`
	PlayerID   int                    `json:"player_id"`
	PlayerName string                 `json:"player_name"`
	Type       ActionType             `json:"type"`
	Details    map[string]interface{} `json:"details"`
}

// TouristSnapshot captures one tourist at a point in time
type TouristSnapshot struct {
	Category engine.Category `json:"category"`
	Money    int             `json:"money"`
}

// BusSnapshot captures one bus at a point in time
type BusSnapshot struct {
	BusID    int               `json:"bus_id"`
	Location string            `json:"location"`
	Tourists []TouristSnapshot `json:"tourists"`
}

// PlayerSnapshot captures one player at a point in time
type PlayerSnapshot struct {
	PlayerID        int    `json:"player_id"`
	PlayerName      string `json:"player_name"`
	Money           int    `json:"money"`
	AttractionCount int    `json:"attraction_count"`
}

// StateSnapshot captures the whole table at a point in time
type StateSnapshot struct {
	TurnNumber int              `json:"turn_number"`
	Players    []PlayerSnapshot `json:"players"`
	Buses      []BusSnapshot    `json:"buses"`
}

// TurnSummary aggregates everything one turn did
type TurnSummary struct {
	TurnNumber         int                  `json:"turn_number"`
	PlayerID           int                  `json:"player_id"`
	PlayerName         string               `json:"player_name"`
	BusID              int                  `json:"bus_id"`
	StartCity          string               `json:"start_city"`
	EndCity            string               `json:"end_city"`
	MorningActionUsed  engine.MorningAction `json:"morning_action_used,omitempty"`
	AllDayActionUsed   engine.AllDayAction  `json:"all_day_action_used,omitempty"`
	AttractionsVisited int                  `json:"attractions_visited"`
	MoneyEarned        int                  `json:"money_earned"`
	MoneySpent         int                  `json:"money_spent"`
	TouristsRuined     int                  `json:"tourists_ruined"`
	TouristsAdded      int                  `json:"tourists_added"`
	MoneyBefore        int                  `json:"money_before"`
	MoneyAfter         int                  `json:"money_after"`
	StartTime          time.Time            `json:"start_time"`
	EndTime            time.Time            `json:"end_time"`

	Actions []*Action `json:"actions"`

	StateBeforeTurn *StateSnapshot `json:"state_before_turn,omitempty"`
	StateAfterTurn  *StateSnapshot `json:"state_after_turn,omitempty"`
}

// NetMoney is what the turn earned minus what it spent
func (t *TurnSummary) NetMoney() int {
	return t.MoneyEarned - t.MoneySpent
}

// Collector receives one-way event notifications from the turn driver and
// aggregates them into turn summaries and per-player statistics. The engine
// never reads collector state back.
type Collector struct {
	actions     []*Action
	turns       []*TurnSummary
	currentTurn *TurnSummary
	turnCounter int
	settings    map[string]interface{}
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{settings: make(map[string]interface{})}
}

// RecordSettings stores the rule configuration for the export header
func (c *Collector) RecordSettings(settings *engine.Settings) {
	c.settings = settings.ExportForAnalytics()
}

// StartTurn opens a new turn record for the player
func (c *Collector) StartTurn(playerID int, playerName string, state *engine.GameState) {
	c.turnCounter++
	c.currentTurn = &TurnSummary{
		TurnNumber: c.turnCounter,
		PlayerID:   playerID,
		PlayerName: playerName,
		StartTime:  time.Now(),
	}
	if state != nil {
		c.currentTurn.StateBeforeTurn = captureState(state, c.turnCounter)
		if p := state.CurrentPlayer(); p != nil {
			c.currentTurn.MoneyBefore = p.Money
		}
	}
}

// EndTurn closes the open turn record
func (c *Collector) EndTurn(state *engine.GameState) {
	if c.currentTurn == nil {
		return
	}
	c.currentTurn.EndTime = time.Now()
	if state != nil {
		c.currentTurn.StateAfterTurn = captureState(state, c.turnCounter)
		if p := state.CurrentPlayer(); p != nil {
			c.currentTurn.MoneyAfter = p.Money
		}
	}
	c.turns = append(c.turns, c.currentTurn)
	c.currentTurn = nil
}

// LogAction records one event and folds it into the open turn summary
func (c *Collector) LogAction(playerID int, playerName string, actionType ActionType, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	action := &Action{
		TurnNumber: c.turnCounter,
		PlayerID:   playerID,
		PlayerName: playerName,
		Type:       actionType,
		Details:    details,
	}
	c.actions = append(c.actions, action)

	if c.currentTurn == nil {
		return
	}
	c.currentTurn.Actions = append(c.currentTurn.Actions, action)

	switch actionType {
	case ActionSelectBus:
		if id, ok := details[DetailBusID].(int); ok {
			c.currentTurn.BusID = id
		}
		if city, ok := details[DetailCity].(string); ok {
			c.currentTurn.StartCity = city
		}
	case ActionUseMorningAction:
		if a, ok := details[DetailAction].(engine.MorningAction); ok {
			c.currentTurn.MorningActionUsed = a
		}
	case ActionMoveBus:
		if city, ok := details[DetailToCity].(string); ok {
			c.currentTurn.EndCity = city
		}
	case ActionVisitAttraction:
		c.currentTurn.AttractionsVisited++
		if earned, ok := details[DetailMoneyEarned].(int); ok {
			c.currentTurn.MoneyEarned += earned
		}
	case ActionUseAllDayAction:
		if a, ok := details[DetailAction].(engine.AllDayAction); ok {
			c.currentTurn.AllDayActionUsed = a
		}
	case ActionBuildAttraction:
		if cost, ok := details[DetailCost].(int); ok {
			c.currentTurn.MoneySpent += cost
		}
	case ActionTouristRuined:
		c.currentTurn.TouristsRuined++
		if earned, ok := details[DetailMoneyEarned].(int); ok {
			c.currentTurn.MoneyEarned += earned
		}
	case ActionRefillTourist:
		c.currentTurn.TouristsAdded++
	}
}

// Turns returns a copy of the closed turn summaries
func (c *Collector) Turns() []*TurnSummary {
	return append([]*TurnSummary{}, c.turns...)
}

// PlayerTurns returns the closed turns for one player
func (c *Collector) PlayerTurns(playerID int) []*TurnSummary {
	var turns []*TurnSummary
	for _, t := range c.turns {
		if t.PlayerID == playerID {
			turns = append(turns, t)
		}
	}
	return turns
}

// Actions returns a copy of every recorded action
func (c *Collector) Actions() []*Action {
	return append([]*Action{}, c.actions...)
}

// TurnCount returns how many turns have started
func (c *Collector) TurnCount() int {
	return c.turnCounter
}

// captureState snapshots players and buses for a turn record
func captureState(state *engine.GameState, turnNumber int) *StateSnapshot {
	snapshot := &StateSnapshot{TurnNumber: turnNumber}

	for _, player := range state.Players {
		snapshot.Players = append(snapshot.Players, PlayerSnapshot{
			PlayerID:        player.ID,
			PlayerName:      player.Name,
			Money:           player.Money,
			AttractionCount: state.AttractionCount(player.ID),
		})
	}

	for _, bus := range state.Board.Buses {
		busSnap := BusSnapshot{BusID: bus.ID, Location: bus.CurrentCity}
		for _, tourist := range bus.Tourists {
			busSnap.Tourists = append(busSnap.Tourists, TouristSnapshot{
				Category: tourist.Category,
				Money:    tourist.Money,
			})
		}
		snapshot.Buses = append(snapshot.Buses, busSnap)
	}

	return snapshot
}
