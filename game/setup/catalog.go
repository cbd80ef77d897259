package setup

import "github.com/lakesidegames/tourbus/game/engine"

// attractionTemplate is one catalog entry before it becomes a deck card
type attractionTemplate struct {
	nameEnglish string
	nameGerman  string
	value       int
	priority    int
	bonusEuro   bool
	granted     engine.AllDayAction
}

// attractionCatalog returns the full per-category card list. Cards are
// instantiated with sequential ids in this order, then shuffled into decks.
func attractionCatalog() map[engine.Category][]attractionTemplate {
	return map[engine.Category][]attractionTemplate{
		engine.Water: {
			{"Open air pool", "Freibad", 1, 1, false, engine.AllDayNone},
			{"Paddle Board", "Stand-Up-Paddle", 1, 2, false, engine.AllDayNone},
			{"Surfboarding", "Wellenreiten", 1, 3, false, engine.AllDayNone},
			{"Beach bath", "Strandbad", 2, 4, true, engine.AllDayNone},
			{"Canoeing", "Kanufahren", 2, 5, false, engine.AllDayNone},
			{"Kayaking", "Kajakfahren", 2, 6, false, engine.AllDayNone},
			{"Pedalos", "Tretboot", 2, 7, false, engine.AllDayNone},
			{"Sailing", "Segeln", 2, 8, false, engine.AllDayNone},
			{"Boat Hire", "Bootsverleih", 3, 9, false, engine.AllDayNone},
			{"Water Park", "Wasserpark", 3, 10, true, engine.AllDayNone},
			{"Kite Surfing", "Kitesurfen", 4, 11, false, engine.AllDayNone},
			{"Water skiing", "Wasserski", 4, 12, false, engine.AllDayNone},
		},
		engine.Nature: {
			{"Bicycle Path", "Radweg", 1, 1, false, engine.AllDayNone},
			{"Cable Car", "Seilbahn", 1, 2, false, engine.AllDayNone},
			{"Flower park", "Blumenpark", 1, 3, false, engine.AllDayNone},
			{"Mountain Paths", "Bergpfade", 1, 4, false, engine.AllDayNone},
			{"Base Jumping", "Fallschirmspringen", 2, 5, false, engine.AllDayNone},
			{"Mountain Biking", "Mountainbike", 2, 6, false, engine.AllDayNone},
			{"Mountain Rail", "Bergbahn", 2, 7, false, engine.AllDayNone},
			{"Rodel", "Rodelbahn", 2, 8, false, engine.AllDayNone},
			{"Wine Path", "Weinpfad", 2, 9, true, engine.AllDayNone},
			{"Animal Park", "Tierpark", 3, 10, false, engine.AllDayNone},
			{"Paragliding", "Gleitschirmfliegen", 3, 11, false, engine.AllDayNone},
			{"Theme Park", "Freizeitpark", 3, 12, true, engine.AllDayNone},
			{"Zeppeliner ride", "Zeppelinflug", 4, 13, false, engine.AllDayNone},
		},
		engine.Culture: {
			{"Church", "Kirche", 1, 1, false, engine.AllDayNone},
			{"Town Hall", "Rathaus", 1, 2, false, engine.AllDayNone},
			{"Historic Rail Way", "Historische Eisenbahn", 2, 3, false, engine.AllDayNone},
			{"Monastery", "Kloster", 2, 4, false, engine.AllDayNone},
			{"Old Town", "Altstadt", 2, 5, false, engine.AllDayNone},
			{"Open air museum", "Freilichtmuseum", 2, 6, false, engine.AllDayNone},
			{"Theatre", "Theater", 2, 7, true, engine.AllDayNone},
			{"Art Gallery", "Kunstgalerie", 3, 8, true, engine.AllDayNone},
			{"Historic Museum", "Historisches Museum", 3, 9, false, engine.AllDayNone},
			{"Castle", "Schloss", 4, 10, false, engine.AllDayNone},
			{"Opera", "Oper", 5, 11, false, engine.AllDayNone},
		},
		engine.Gastronomy: {
			{"Fast Food Stand", "Imbissbude", 1, 1, false, engine.AllDayNone},
			{"Bakery", "Bäckerei", 2, 2, false, engine.AllDayNone},
			{"Bierstube", "Bierstube", 2, 3, false, engine.AllDayNone},
			{"Brewery", "Brauerei", 2, 4, false, engine.AllDayNone},
			{"Orchards", "Obstgarten", 2, 5, true, engine.AllDayNone},
			{"Distillery", "Brennerei", 3, 6, true, engine.AllDayNone},
			{"Fish restaurant", "Fischrestaurant", 3, 7, false, engine.AllDayNone},
			{"Food Festival", "Foodfestival", 3, 8, false, engine.AllDayNone},
			{"Vineyard", "Weingut", 4, 9, false, engine.AllDayNone},
			{"Gourmet Restaurant", "Gourmetrestaurant", 5, 10, false, engine.AllDayNone},
		},
		engine.Gray: {
			{"Bus Dispatch", "Busbahnhof", 3, 1, false, engine.BusDispatch},
			{"Bus Dispatch", "Busbahnhof", 3, 1, false, engine.BusDispatch},
			{"Casino", "Casino", 2, 1, false, engine.RerollTouristAction},
			{"Casino", "Casino", 3, 1, false, engine.RerollTouristAction},
			{"Contractor", "Unternehmer", 3, 1, false, engine.BuildAttractionDiscount},
			{"Contractor", "Unternehmer", 3, 1, false, engine.BuildAttractionDiscount},
			{"Culture Center", "Kulturzentrum", 3, 2, false, engine.AddTwoPipsRed},
			{"Culture Center", "Kulturzentrum", 4, 2, false, engine.AddTwoPipsRed},
			{"Gourmet Center", "Genusszentrum", 3, 2, false, engine.AddTwoPipsYellow},
			{"Gourmet Center", "Genusszentrum", 4, 2, false, engine.AddTwoPipsYellow},
			{"Hotel", "Hotel", 3, 1, false, engine.GiveTour},
			{"Hotel", "Hotel", 3, 1, false, engine.GiveTour},
			{"Nature Center", "Naturzentrum", 3, 2, false, engine.AddTwoPipsGreen},
			{"Nature Center", "Naturzentrum", 3, 2, false, engine.AddTwoPipsGreen},
			{"Water Center", "Wasserzentrum", 3, 2, false, engine.AddTwoPipsBlue},
			{"Water Center", "Wasserzentrum", 4, 2, false, engine.AddTwoPipsBlue},
		},
	}
}

// buildMarket creates every attraction card, shuffles each category into its
// deck, and draws the opening market.
func buildMarket(state *engine.GameState) {
	catalog := attractionCatalog()
	id := 1

	for _, category := range engine.Categories() {
		if category == engine.Gray && !state.Settings.EnableGrayAttractions {
			continue
		}

		templates := catalog[category]
		cards := make([]*engine.Attraction, 0, len(templates))
		for _, tpl := range templates {
			cards = append(cards, &engine.Attraction{
				ID:            id,
				NameEnglish:   tpl.nameEnglish,
				NameGerman:    tpl.nameGerman,
				Category:      category,
				Value:         tpl.value,
				Priority:      tpl.priority,
				PaysBonusEuro: tpl.bonusEuro,
				GrantedAction: tpl.granted,
			})
			id++
		}

		state.Rand.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
		state.Market.Decks[category] = cards

		if category == engine.Gray {
			state.Market.RefillGray()
		} else {
			state.Market.Refill(category, state.Settings.MarketRefillAmount)
		}
	}
}
