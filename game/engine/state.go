package engine

import "math/rand"

// GameState is the single mutable root. All mutation goes through it or
// through Engine methods operating on it.
type GameState struct {
	Board              *Board     `json:"board"`
	Market             *Market    `json:"market"`
	Players            []*Player  `json:"players"`
	CurrentPlayerIndex int        `json:"current_player_index"`
	GameEnded          bool       `json:"game_ended"`
	TouristPool        []*Tourist `json:"tourist_pool"`
	Settings           *Settings  `json:"settings"`

	// Seed is the value the Rand stream was created from. Persisted so a
	// loaded game can restart its stream; Rand itself never serializes.
	Seed int64      `json:"seed"`
	Rand *rand.Rand `json:"-"`
}

// NewGameState creates an empty state with default settings and a seeded
// random stream
func NewGameState(seed int64) *GameState {
	return &GameState{
		Board:       NewBoard(),
		Market:      NewMarket(),
		Players:     []*Player{},
		TouristPool: []*Tourist{},
		Settings:    DefaultSettings(),
		Seed:        seed,
		Rand:        rand.New(rand.NewSource(seed)),
	}
}

// RestoreRand recreates the random stream from the stored seed. Used after
// loading a persisted state; the stream restarts from the beginning.
func (s *GameState) RestoreRand() {
	s.Rand = rand.New(rand.NewSource(s.Seed))
}

// CurrentPlayer returns the player whose turn it is
func (s *GameState) CurrentPlayer() *Player {
	if len(s.Players) == 0 {
		return nil
	}
	return s.Players[s.CurrentPlayerIndex]
}

// NextPlayer advances the turn to the next seat
func (s *GameState) NextPlayer() {
	if len(s.Players) > 0 {
		s.CurrentPlayerIndex = (s.CurrentPlayerIndex + 1) % len(s.Players)
	}
}

// PlayerByID looks up a player, nil if unknown
func (s *GameState) PlayerByID(id int) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AttractionCount returns how many built attractions the player owns
func (s *GameState) AttractionCount(playerID int) int {
	count := 0
	for _, name := range s.Board.CityNames {
		for _, a := range s.Board.Cities[name].Attractions {
			if a.OwnerID != nil && *a.OwnerID == playerID {
				count++
			}
		}
	}
	return count
}

// IsGameOver reports whether an end condition holds: the tourist pool is
// exhausted, or any attraction category has both deck and visible pool empty
func (s *GameState) IsGameOver() bool {
	if len(s.TouristPool) == 0 {
		return true
	}
	for _, cat := range Categories() {
		if s.Market.CategoryExhausted(cat) {
			return true
		}
	}
	return false
}

// Winner returns the winning player once the game has ended: most money,
// ties broken by built-attraction count, then first in seat order. The final
// tie-break is a deterministic simplification, not a real mechanism.
func (s *GameState) Winner() *Player {
	if !s.GameEnded || len(s.Players) == 0 {
		return nil
	}

	maxMoney := s.Players[0].Money
	for _, p := range s.Players[1:] {
		if p.Money > maxMoney {
			maxMoney = p.Money
		}
	}

	var richest []*Player
	for _, p := range s.Players {
		if p.Money == maxMoney {
			richest = append(richest, p)
		}
	}
	if len(richest) == 1 {
		return richest[0]
	}

	winner := richest[0]
	best := s.AttractionCount(winner.ID)
	for _, p := range richest[1:] {
		if count := s.AttractionCount(p.ID); count > best {
			winner, best = p, count
		}
	}
	return winner
}

// RollTouristDie rolls a die value for a tourist, rerolling away 1
func (s *GameState) RollTouristDie() int {
	for {
		roll := s.Rand.Intn(MaxTouristPips) + 1
		if roll != 1 {
			return roll
		}
	}
}

// PopTourist draws the next tourist from the shared pool, nil when empty
func (s *GameState) PopTourist() *Tourist {
	if len(s.TouristPool) == 0 {
		return nil
	}
	tourist := s.TouristPool[0]
	s.TouristPool = s.TouristPool[1:]
	return tourist
}
