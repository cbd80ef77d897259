package engine

// RefillMode controls how ruined tourists are replaced at turn end
type RefillMode string

const (
	// FillMissing replaces this turn's ruined tourists up to bus capacity.
	FillMissing RefillMode = "fill_missing"

	// FillWhenEmpty refills to full capacity, but only once the bus is
	// completely empty.
	FillWhenEmpty RefillMode = "fill_when_empty"
)

// Settings holds every tunable rule knob. Presets are stored as JSON files
// managed by game/config.
type Settings struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Starting money per seat, indexed by player position
	PlayerStartMoney []int `json:"player_start_money"`

	// Attraction base costs
	NatureBaseCost     int `json:"nature_base_cost"`
	WaterBaseCost      int `json:"water_base_cost"`
	CultureBaseCost    int `json:"culture_base_cost"`
	GastronomyBaseCost int `json:"gastronomy_base_cost"`
	GrayBaseCost       int `json:"gray_base_cost"`

	// Appeal system; when disabled every city is a valid stop
	UseAppealSystem bool `json:"use_appeal_system"`

	// Tourist lifecycle
	TouristRefillMode          RefillMode `json:"tourist_refill_mode"`
	StartingTouristsPerBus     int        `json:"starting_tourists_per_bus"`
	MaxTouristsPerBus          int        `json:"max_tourists_per_bus"`
	TouristPoolSizePerCategory int        `json:"tourist_pool_size_per_category"`

	// Morning action tuning
	IncreaseValueBonus int `json:"increase_value_bonus"`

	// Gray attractions
	EnableGrayAttractions bool `json:"enable_gray_attractions"`
	ZentrumPipsBonus      int  `json:"zentrum_pips_bonus"`
	CasinoRerollsPerBus   int  `json:"casino_rerolls_per_bus"`

	// Payment tuning
	UseBonusEuro bool `json:"use_bonus_euro"`

	// All-day action tuning
	GiveTourAffectsWholeBus  bool `json:"give_tour_affects_whole_bus"`
	ContractorDiscountAmount int  `json:"contractor_discount_amount"`

	// Market
	MarketRefillAmount int `json:"market_refill_amount"`

	// Display name language: "german" or "english"
	Language string `json:"language"`
}

// DefaultSettings returns the standard rule set
func DefaultSettings() *Settings {
	return &Settings{
		Name:                       "default",
		Description:                "Standard rules",
		PlayerStartMoney:           []int{6, 7, 8, 9},
		NatureBaseCost:             1,
		WaterBaseCost:              1,
		CultureBaseCost:            2,
		GastronomyBaseCost:         3,
		GrayBaseCost:               2,
		UseAppealSystem:            true,
		TouristRefillMode:          FillMissing,
		StartingTouristsPerBus:     4,
		MaxTouristsPerBus:          4,
		TouristPoolSizePerCategory: 12,
		IncreaseValueBonus:         1,
		EnableGrayAttractions:      true,
		ZentrumPipsBonus:           1,
		CasinoRerollsPerBus:        1,
		UseBonusEuro:               true,
		GiveTourAffectsWholeBus:    false,
		ContractorDiscountAmount:   1,
		MarketRefillAmount:         2,
		Language:                   "german",
	}
}

// BaseCost returns the configured base cost for a category
func (s *Settings) BaseCost(category Category) int {
	switch category {
	case Nature:
		return s.NatureBaseCost
	case Water:
		return s.WaterBaseCost
	case Culture:
		return s.CultureBaseCost
	case Gastronomy:
		return s.GastronomyBaseCost
	case Gray:
		return s.GrayBaseCost
	default:
		return 0
	}
}

// StartMoney returns the starting balance for the player at the given seat.
// Seats beyond the configured list keep climbing by one per position.
func (s *Settings) StartMoney(playerIndex int) int {
	if playerIndex >= 0 && playerIndex < len(s.PlayerStartMoney) {
		return s.PlayerStartMoney[playerIndex]
	}
	if len(s.PlayerStartMoney) == 0 {
		return 0
	}
	return s.PlayerStartMoney[0] + playerIndex
}

// ExportForAnalytics flattens the settings into a key/value map for run reports
func (s *Settings) ExportForAnalytics() map[string]interface{} {
	return map[string]interface{}{
		"Name":                       s.Name,
		"PlayerStartMoney":           s.PlayerStartMoney,
		"NatureBaseCost":             s.NatureBaseCost,
		"WaterBaseCost":              s.WaterBaseCost,
		"CultureBaseCost":            s.CultureBaseCost,
		"GastronomyBaseCost":         s.GastronomyBaseCost,
		"GrayBaseCost":               s.GrayBaseCost,
		"UseAppealSystem":            s.UseAppealSystem,
		"TouristRefillMode":          string(s.TouristRefillMode),
		"StartingTouristsPerBus":     s.StartingTouristsPerBus,
		"MaxTouristsPerBus":          s.MaxTouristsPerBus,
		"TouristPoolSizePerCategory": s.TouristPoolSizePerCategory,
		"IncreaseValueBonus":         s.IncreaseValueBonus,
		"EnableGrayAttractions":      s.EnableGrayAttractions,
		"ZentrumPipsBonus":           s.ZentrumPipsBonus,
		"CasinoRerollsPerBus":        s.CasinoRerollsPerBus,
		"UseBonusEuro":               s.UseBonusEuro,
		"GiveTourAffectsWholeBus":    s.GiveTourAffectsWholeBus,
		"ContractorDiscountAmount":   s.ContractorDiscountAmount,
		"MarketRefillAmount":         s.MarketRefillAmount,
		"Language":                   s.Language,
	}
}
