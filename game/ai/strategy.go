package ai

import (
	"sort"

	"github.com/lakesidegames/tourbus/game/engine"
)

// Strategy names accepted by the controller
const (
	StrategyAggressive    = "aggressive"
	StrategyDefensive     = "defensive"
	StrategyBalanced      = "balanced"
	StrategyOpportunistic = "opportunistic"
)

// BuildOrder carries the target of a build decision
type BuildOrder struct {
	Attraction   *engine.Attraction `json:"-"`
	AttractionID int                `json:"attraction_id"`
	City         string             `json:"city"`
}

// Decision is a strategy's complete plan for one turn. A nil Bus means the
// strategy found no movable bus and passes; the caller advances to the next
// player.
type Decision struct {
	Bus             *engine.Bus          `json:"-"`
	MorningAction   engine.MorningAction `json:"morning_action,omitempty"`
	DestinationCity string               `json:"destination_city,omitempty"`
	AllDayAction    engine.AllDayAction  `json:"all_day_action,omitempty"`

	// Build is set only when AllDayAction is a build variant
	Build *BuildOrder `json:"build,omitempty"`
}

// Strategy decides a full turn from the current state and engine read-queries
type Strategy interface {
	Name() string
	MakeDecision(state *engine.GameState, eng engine.Engine) *Decision
}

// Controller maps strategy names to instances, falling back to balanced for
// anything unknown
type Controller struct {
	strategies map[string]Strategy
}

// NewController creates a controller with all four stock strategies registered
func NewController() *Controller {
	c := &Controller{strategies: make(map[string]Strategy)}
	for _, s := range []Strategy{
		&AggressiveStrategy{},
		&DefensiveStrategy{},
		&BalancedStrategy{},
		&OpportunisticStrategy{},
	} {
		c.strategies[s.Name()] = s
	}
	return c
}

// Decide runs the named strategy, or balanced when the name is unknown
func (c *Controller) Decide(state *engine.GameState, eng engine.Engine, strategyName string) *Decision {
	strategy, ok := c.strategies[strategyName]
	if !ok {
		strategy = c.strategies[StrategyBalanced]
	}
	return strategy.MakeDecision(state, eng)
}

// Strategies returns the registered strategy names, sorted
func (c *Controller) Strategies() []string {
	names := make([]string, 0, len(c.strategies))
	for name := range c.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
