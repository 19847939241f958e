package game

import "github.com/google/uuid"

// CardType identifies a card kind in the base set.
type CardType int

const (
	Copper CardType = iota
	Silver
	Gold
	Estate
	Duchy
	Province
	Curse
	Village
	Smithy
	Market
	Festival
	Laboratory
	Woodcutter
	Moat
	Militia
	Workshop
	Chapel

	NumCardTypes
)

// Category groups card types by how they are used during a turn.
type Category int

const (
	TreasureCard Category = iota
	VictoryCard
	ActionCard
	CurseCard
)

// Effect tags the action cards that put a choice in front of a player
// instead of resolving entirely on their own.
type Effect int

const (
	NoEffect           Effect = iota
	MilitiaAttack             // other players discard down to three cards
	WorkshopGainEffect        // gain a card costing up to four
	ChapelTrashEffect         // trash up to four cards from hand
)

type cardStats struct {
	name        string
	cost        int
	category    Category
	coins       int // treasure value, or +coins for action cards
	points      int // victory points
	plusCards   int
	plusActions int
	plusBuys    int
	effect      Effect
}

var stats = [NumCardTypes]cardStats{
	Copper:     {name: "Copper", cost: 0, category: TreasureCard, coins: 1},
	Silver:     {name: "Silver", cost: 3, category: TreasureCard, coins: 2},
	Gold:       {name: "Gold", cost: 6, category: TreasureCard, coins: 3},
	Estate:     {name: "Estate", cost: 2, category: VictoryCard, points: 1},
	Duchy:      {name: "Duchy", cost: 5, category: VictoryCard, points: 3},
	Province:   {name: "Province", cost: 8, category: VictoryCard, points: 6},
	Curse:      {name: "Curse", cost: 0, category: CurseCard, points: -1},
	Village:    {name: "Village", cost: 3, category: ActionCard, plusCards: 1, plusActions: 2},
	Smithy:     {name: "Smithy", cost: 4, category: ActionCard, plusCards: 3},
	Market:     {name: "Market", cost: 5, category: ActionCard, plusCards: 1, plusActions: 1, plusBuys: 1, coins: 1},
	Festival:   {name: "Festival", cost: 5, category: ActionCard, plusActions: 2, plusBuys: 1, coins: 2},
	Laboratory: {name: "Laboratory", cost: 5, category: ActionCard, plusCards: 2, plusActions: 1},
	Woodcutter: {name: "Woodcutter", cost: 3, category: ActionCard, plusBuys: 1, coins: 2},
	Moat:       {name: "Moat", cost: 2, category: ActionCard, plusCards: 2},
	Militia:    {name: "Militia", cost: 4, category: ActionCard, coins: 2, effect: MilitiaAttack},
	Workshop:   {name: "Workshop", cost: 3, category: ActionCard, effect: WorkshopGainEffect},
	Chapel:     {name: "Chapel", cost: 2, category: ActionCard, effect: ChapelTrashEffect},
}

func (t CardType) String() string {
	if t < 0 || t >= NumCardTypes {
		return "Unknown"
	}
	return stats[t].name
}

func (t CardType) Cost() int           { return stats[t].cost }
func (t CardType) Category() Category  { return stats[t].category }
func (t CardType) CoinValue() int      { return stats[t].coins }
func (t CardType) VictoryPoints() int  { return stats[t].points }
func (t CardType) IsAction() bool      { return stats[t].category == ActionCard }
func (t CardType) IsTreasure() bool    { return stats[t].category == TreasureCard }
func (t CardType) PlusCards() int      { return stats[t].plusCards }
func (t CardType) PlusActions() int    { return stats[t].plusActions }
func (t CardType) PlusBuys() int       { return stats[t].plusBuys }
func (t CardType) SpecialEffect() Effect { return stats[t].effect }

// ParseCardType resolves a card name as it appears in configuration files.
func ParseCardType(name string) (CardType, bool) {
	for t := CardType(0); t < NumCardTypes; t++ {
		if stats[t].name == name {
			return t, true
		}
	}
	return 0, false
}

// Card is an immutable card instance. The ID distinguishes instances of
// the same type; all rules logic keys off Type only.
type Card struct {
	ID   uuid.UUID
	Type CardType
}

// NewCard mints a fresh card instance. Cards are only created during game
// setup; afterwards they move between zones.
func NewCard(t CardType) Card {
	return Card{ID: uuid.New(), Type: t}
}

func (c Card) String() string {
	return c.Type.String()
}
