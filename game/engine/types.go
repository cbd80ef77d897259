package engine

// Category classifies attractions and tourists
type Category string

const (
	Nature     Category = "nature"     // green
	Water      Category = "water"      // blue
	Culture    Category = "culture"    // red
	Gastronomy Category = "gastronomy" // yellow
	Gray       Category = "gray"       // utility buildings, no appeal, no category count
)

// Categories returns every attraction category in a fixed order
func Categories() []Category {
	return []Category{Nature, Water, Culture, Gastronomy, Gray}
}

// TouristCategories returns the categories tourists can have (everything but Gray)
func TouristCategories() []Category {
	return []Category{Nature, Water, Culture, Gastronomy}
}

// MorningAction is a once-per-turn city effect chosen before movement
type MorningAction string

const (
	MorningNone          MorningAction = ""
	IncreaseValue        MorningAction = "increase_value"
	IgnoreFirstAppeal    MorningAction = "ignore_first_appeal"
	Ferry                MorningAction = "ferry"
	AllAttractionsAppeal MorningAction = "all_attractions_appeal"
)

// AllDayAction is a once-per-turn city effect usable independent of movement
type AllDayAction string

const (
	AllDayNone              AllDayAction = ""
	BuildAttractionAction   AllDayAction = "build_attraction"
	RerollTouristAction     AllDayAction = "reroll_tourist"
	AddTwoPips              AllDayAction = "add_two_pips"
	GiveTour                AllDayAction = "give_tour"
	AddTwoPipsGreen         AllDayAction = "add_two_pips_green"
	AddTwoPipsBlue          AllDayAction = "add_two_pips_blue"
	AddTwoPipsRed           AllDayAction = "add_two_pips_red"
	AddTwoPipsYellow        AllDayAction = "add_two_pips_yellow"
	BusDispatch             AllDayAction = "bus_dispatch"
	BuildAttractionDiscount AllDayAction = "build_attraction_discount"
)

const (
	// MaxTouristPips is the highest die value a tourist can carry.
	MaxTouristPips = 6

	// MinTouristPips is the lowest valid die value; 1 is always rerolled away.
	MinTouristPips = 2
)

// PipCategory maps a color-specific pips action to the tourist category it
// affects. Returns false for anything that is not a Zentrum variant.
func PipCategory(action AllDayAction) (Category, bool) {
	switch action {
	case AddTwoPipsGreen:
		return Nature, true
	case AddTwoPipsBlue:
		return Water, true
	case AddTwoPipsRed:
		return Culture, true
	case AddTwoPipsYellow:
		return Gastronomy, true
	default:
		return "", false
	}
}

// Tourist is a passenger carrying pips that are spent on attraction visits
type Tourist struct {
	ID       int      `json:"id"`
	Category Category `json:"category"`
	Money    int      `json:"money"` // pips on the die, 0 means ruined
}

// Attraction is a purchasable card that lives in a deck, then the market,
// then a city once a player builds it
type Attraction struct {
	ID            int          `json:"id"`
	NameEnglish   string       `json:"name_english"`
	NameGerman    string       `json:"name_german"`
	Category      Category     `json:"category"`
	Value         int          `json:"value"`    // pips shown
	Priority      int          `json:"priority"` // visit order, higher first
	OwnerID       *int         `json:"owner_id,omitempty"`
	GrantedAction AllDayAction `json:"granted_action,omitempty"` // only set on gray attractions
	PaysBonusEuro bool         `json:"pays_bonus_euro,omitempty"`
}

// Built reports whether the attraction has been purchased by a player
func (a *Attraction) Built() bool {
	return a.OwnerID != nil
}

// Name returns the localized display name
func (a *Attraction) Name(language string) string {
	if language == "english" {
		return a.NameEnglish
	}
	return a.NameGerman
}

// Payment returns what a visit pays out. The bonus euro pays one more than
// the pips shown; the pips removed from the tourist stay at Value.
func (a *Attraction) Payment(increasedValue, useBonusEuro bool) int {
	payment := a.Value
	if a.PaysBonusEuro && useBonusEuro {
		payment++
	}
	if increasedValue {
		payment++
	}
	return payment
}

// City is a node on the board graph
type City struct {
	Name                string        `json:"name"`
	IsPort              bool          `json:"is_port"`
	CanBuildWater       bool          `json:"can_build_water"`
	MaxAttractionSpaces int           `json:"max_attraction_spaces"`
	MorningAction       MorningAction `json:"morning_action,omitempty"`
	AllDayAction        AllDayAction  `json:"all_day_action,omitempty"`
	Connections         []string      `json:"connections"`
	Attractions         []*Attraction `json:"attractions"`
}

// HasAppeal reports whether a bus carrying the given tourist categories may
// stop here. Ports appeal to every bus; gray attractions never contribute.
func (c *City) HasAppeal(busCategories []Category) bool {
	if c.IsPort {
		return true
	}
	for _, a := range c.Attractions {
		if !a.Built() || a.Category == Gray {
			continue
		}
		for _, cat := range busCategories {
			if a.Category == cat {
				return true
			}
		}
	}
	return false
}

// BuiltCount returns the number of owned attractions in the city
func (c *City) BuiltCount() int {
	count := 0
	for _, a := range c.Attractions {
		if a.Built() {
			count++
		}
	}
	return count
}

// AvailableAllDayActions returns the city's printed action plus any actions
// granted by built gray attractions
func (c *City) AvailableAllDayActions() []AllDayAction {
	var actions []AllDayAction
	if c.AllDayAction != AllDayNone {
		actions = append(actions, c.AllDayAction)
	}
	for _, a := range c.Attractions {
		if a.Category == Gray && a.Built() && a.GrantedAction != AllDayNone {
			actions = append(actions, a.GrantedAction)
		}
	}
	return actions
}

// Bus carries tourists between cities
type Bus struct {
	ID          int        `json:"id"`
	CurrentCity string     `json:"current_city"`
	Tourists    []*Tourist `json:"tourists"`
}

// Categories returns the distinct tourist categories aboard, in boarding order
func (b *Bus) Categories() []Category {
	var cats []Category
	seen := make(map[Category]bool)
	for _, t := range b.Tourists {
		if !seen[t.Category] {
			seen[t.Category] = true
			cats = append(cats, t.Category)
		}
	}
	return cats
}

// TotalMoney sums the pips of every tourist aboard
func (b *Bus) TotalMoney() int {
	total := 0
	for _, t := range b.Tourists {
		total += t.Money
	}
	return total
}

// RemoveTourist takes a tourist off the bus. Returns false if not aboard.
func (b *Bus) RemoveTourist(tourist *Tourist) bool {
	for i, t := range b.Tourists {
		if t == tourist {
			b.Tourists = append(b.Tourists[:i], b.Tourists[i+1:]...)
			return true
		}
	}
	return false
}

// Player is a participant, human or AI
type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Money    int    `json:"money"`
	IsAI     bool   `json:"is_ai"`
	Strategy string `json:"strategy,omitempty"`
}

// Market holds the per-category draw decks and the visible pools
type Market struct {
	Decks     map[Category][]*Attraction `json:"decks"`
	Available map[Category][]*Attraction `json:"available"`
}

// NewMarket creates an empty market with every category initialized
func NewMarket() *Market {
	m := &Market{
		Decks:     make(map[Category][]*Attraction),
		Available: make(map[Category][]*Attraction),
	}
	for _, cat := range Categories() {
		m.Decks[cat] = []*Attraction{}
		m.Available[cat] = []*Attraction{}
	}
	return m
}

// Refill tops up the visible pool for a category to the target count by
// drawing from its deck
func (m *Market) Refill(category Category, target int) {
	for len(m.Available[category]) < target && len(m.Decks[category]) > 0 {
		m.Available[category] = append(m.Available[category], m.Decks[category][0])
		m.Decks[category] = m.Decks[category][1:]
	}
}

// RefillGray moves the entire remaining gray deck into the visible pool.
// Gray attractions have no visibility cap.
func (m *Market) RefillGray() {
	m.Available[Gray] = append(m.Available[Gray], m.Decks[Gray]...)
	m.Decks[Gray] = m.Decks[Gray][:0]
}

// RemoveAvailable takes an attraction out of the visible pool after a
// purchase. Returns false if it was not on offer.
func (m *Market) RemoveAvailable(attraction *Attraction) bool {
	pool := m.Available[attraction.Category]
	for i, a := range pool {
		if a.ID == attraction.ID {
			m.Available[attraction.Category] = append(pool[:i], pool[i+1:]...)
			return true
		}
	}
	return false
}

// CategoryExhausted reports whether both the deck and the visible pool for a
// category are empty
func (m *Market) CategoryExhausted(category Category) bool {
	return len(m.Decks[category]) == 0 && len(m.Available[category]) == 0
}

// Board is the city graph plus the buses on it
type Board struct {
	Cities map[string]*City `json:"cities"`

	// CityNames preserves insertion order so every whole-board walk is
	// deterministic regardless of map iteration order.
	CityNames []string `json:"city_names"`

	Buses []*Bus `json:"buses"`
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{Cities: make(map[string]*City)}
}

// AddCity registers a city, preserving insertion order
func (b *Board) AddCity(city *City) {
	if _, exists := b.Cities[city.Name]; !exists {
		b.CityNames = append(b.CityNames, city.Name)
	}
	b.Cities[city.Name] = city
}

// GetCity looks up a city by name, nil if unknown
func (b *Board) GetCity(name string) *City {
	return b.Cities[name]
}

// OccupiedBy reports whether a bus other than busID currently sits in the city
func (b *Board) OccupiedBy(cityName string, busID int) bool {
	for _, bus := range b.Buses {
		if bus.ID != busID && bus.CurrentCity == cityName {
			return true
		}
	}
	return false
}

// TurnContext is the ephemeral per-turn record. Created fresh each turn and
// discarded at turn end.
type TurnContext struct {
	SelectedBus        *Bus          `json:"-"`
	StartCity          string        `json:"start_city"`
	UsedMorningAction  MorningAction `json:"used_morning_action,omitempty"`
	UsedAllDayAction   bool          `json:"used_all_day_action"`
	HasMoved           bool          `json:"has_moved"`
	VisitedAttractions []int         `json:"visited_attractions"`
	TouristsRuined     int           `json:"tourists_ruined"`

	// Morning action effect flags
	IgnoreNextAppeal     bool `json:"ignore_next_appeal"`
	AllAttractionsAppeal bool `json:"all_attractions_appeal"`
	IncreaseValue        bool `json:"increase_value"`
}

// NewTurnContext starts a turn for the given bus
func NewTurnContext(bus *Bus) *TurnContext {
	ctx := &TurnContext{SelectedBus: bus}
	if bus != nil {
		ctx.StartCity = bus.CurrentCity
	}
	return ctx
}

// ApplyMorningAction records the chosen morning action and sets its effect flags
func (ctx *TurnContext) ApplyMorningAction(action MorningAction) {
	ctx.UsedMorningAction = action
	switch action {
	case IgnoreFirstAppeal:
		ctx.IgnoreNextAppeal = true
	case AllAttractionsAppeal:
		ctx.AllAttractionsAppeal = true
	case IncreaseValue:
		ctx.IncreaseValue = true
	}
}

// TourResult records what a single tour call paid out
type TourResult struct {
	AttractionsVisited      []int       `json:"attractions_visited"`
	MoneyEarned             map[int]int `json:"money_earned"` // player id -> amount
	TouristsRuined          int         `json:"tourists_ruined"`
	MoneyFromRuinedTourists int         `json:"money_from_ruined_tourists"`
}

// NewTourResult creates an empty result
func NewTourResult() *TourResult {
	return &TourResult{
		AttractionsVisited: []int{},
		MoneyEarned:        make(map[int]int),
	}
}
