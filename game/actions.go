package game

import "fmt"

// The move variants below form a closed set of commands over primitive
// parameters. Every variant is a comparable value struct: two moves built
// from the same parameters compare equal with == and hash identically as
// map keys, which the searcher relies on to deduplicate candidates and to
// key child nodes.

// DiscardCard moves the first card of the given type from the player's
// hand to their discard pile.
type DiscardCard struct {
	Type   CardType
	Player int
}

func (a DiscardCard) Execute(gs *GameState) bool {
	hand := gs.Deck(ZoneHand, a.Player)
	card, ok := hand.FirstOfType(a.Type)
	if !ok {
		gs.fail("DiscardCard", fmt.Sprintf("cannot discard %s: not in hand of player %d", a.Type, a.Player))
	}
	gs.MoveCard(card, a.Player, ZoneHand, a.Player, ZoneDiscard)
	gs.record(a)

	// A militia interrupt is satisfied once the hand is down to size.
	if len(gs.pending) > 0 {
		c := gs.pending[0]
		if c.Type == MilitiaDiscard && c.Player == a.Player && hand.Size() <= MilitiaHandSize {
			gs.popChoice()
		}
	}
	return true
}

func (a DiscardCard) Copy() Move            { return a }
func (a DiscardCard) IsDeterministic() bool { return true }

func (a DiscardCard) String() string {
	return fmt.Sprintf("%s discards %s", PlayerName(a.Player), a.Type)
}

// DrawCard moves the top card of the player's draw pile to their hand,
// reshuffling the discard pile into the draw pile if needed. Drawing from
// an exhausted deck is a legal no-op.
type DrawCard struct {
	Player int
}

func (a DrawCard) Execute(gs *GameState) bool {
	gs.drawOne(a.Player)
	gs.record(a)
	return true
}

func (a DrawCard) Copy() Move            { return a }
func (a DrawCard) IsDeterministic() bool { return false }

func (a DrawCard) String() string {
	return fmt.Sprintf("%s draws a card", PlayerName(a.Player))
}

// PlayCard moves an action card from the player's hand into play and
// applies its effect.
type PlayCard struct {
	Type   CardType
	Player int
}

func (a PlayCard) Execute(gs *GameState) bool {
	if !a.Type.IsAction() {
		gs.fail("PlayCard", fmt.Sprintf("%s is not an action card", a.Type))
	}
	hand := gs.Deck(ZoneHand, a.Player)
	card, ok := hand.FirstOfType(a.Type)
	if !ok {
		gs.fail("PlayCard", fmt.Sprintf("cannot play %s: not in hand of player %d", a.Type, a.Player))
	}
	gs.ActionsLeft--
	if gs.ActionsLeft < 0 {
		gs.fail("PlayCard", "no actions left")
	}
	gs.MoveCard(card, a.Player, ZoneHand, a.Player, ZoneInPlay)
	gs.record(a)

	gs.ActionsLeft += a.Type.PlusActions()
	gs.BuysLeft += a.Type.PlusBuys()
	gs.Coins += a.Type.CoinValue()
	gs.drawCards(a.Player, a.Type.PlusCards())

	switch a.Type.SpecialEffect() {
	case MilitiaAttack:
		for i := range gs.players {
			if i != a.Player && gs.players[i].hand.Size() > MilitiaHandSize {
				gs.pushChoice(Choice{Type: MilitiaDiscard, Player: i})
			}
		}
	case WorkshopGainEffect:
		if gs.anySupplyCostingUpTo(WorkshopMaxCost) {
			gs.pushChoice(Choice{Type: WorkshopGain, Player: a.Player})
		}
	case ChapelTrashEffect:
		if gs.players[a.Player].hand.Size() > 0 {
			gs.pushChoice(Choice{Type: ChapelTrash, Player: a.Player, Remaining: ChapelMaxTrash})
		}
	}
	return true
}

func (a PlayCard) Copy() Move { return a }

func (a PlayCard) IsDeterministic() bool {
	return a.Type.PlusCards() == 0
}

func (a PlayCard) String() string {
	return fmt.Sprintf("%s plays %s", PlayerName(a.Player), a.Type)
}

// BuyCard moves a card from the supply to the player's discard pile,
// spending one buy and the card's cost in coins.
type BuyCard struct {
	Type   CardType
	Player int
}

func (a BuyCard) Execute(gs *GameState) bool {
	card, ok := gs.supply.FirstOfType(a.Type)
	if !ok {
		gs.fail("BuyCard", fmt.Sprintf("cannot buy %s: supply pile empty", a.Type))
	}
	if gs.BuysLeft < 1 {
		gs.fail("BuyCard", "no buys left")
	}
	if gs.Coins < a.Type.Cost() {
		gs.fail("BuyCard", fmt.Sprintf("cannot afford %s: have %d coins, cost %d", a.Type, gs.Coins, a.Type.Cost()))
	}
	gs.Coins -= a.Type.Cost()
	gs.BuysLeft--
	gs.MoveCard(card, -1, ZoneSupply, a.Player, ZoneDiscard)
	gs.record(a)
	return true
}

func (a BuyCard) Copy() Move            { return a }
func (a BuyCard) IsDeterministic() bool { return true }

func (a BuyCard) String() string {
	return fmt.Sprintf("%s buys %s", PlayerName(a.Player), a.Type)
}

// GainCard moves a card from the supply to the player's discard pile
// without cost, resolving a pending gain choice if one is owed.
type GainCard struct {
	Type   CardType
	Player int
}

func (a GainCard) Execute(gs *GameState) bool {
	card, ok := gs.supply.FirstOfType(a.Type)
	if !ok {
		gs.fail("GainCard", fmt.Sprintf("cannot gain %s: supply pile empty", a.Type))
	}
	gs.MoveCard(card, -1, ZoneSupply, a.Player, ZoneDiscard)
	gs.record(a)

	if len(gs.pending) > 0 {
		c := gs.pending[0]
		if c.Type == WorkshopGain && c.Player == a.Player {
			gs.popChoice()
		}
	}
	return true
}

func (a GainCard) Copy() Move            { return a }
func (a GainCard) IsDeterministic() bool { return true }

func (a GainCard) String() string {
	return fmt.Sprintf("%s gains %s", PlayerName(a.Player), a.Type)
}

// TrashCard moves the first card of the given type from the player's hand
// to the shared trash.
type TrashCard struct {
	Type   CardType
	Player int
}

func (a TrashCard) Execute(gs *GameState) bool {
	hand := gs.Deck(ZoneHand, a.Player)
	card, ok := hand.FirstOfType(a.Type)
	if !ok {
		gs.fail("TrashCard", fmt.Sprintf("cannot trash %s: not in hand of player %d", a.Type, a.Player))
	}
	gs.MoveCard(card, a.Player, ZoneHand, -1, ZoneTrash)
	gs.record(a)

	if len(gs.pending) > 0 {
		c := &gs.pending[0]
		if c.Type == ChapelTrash && c.Player == a.Player {
			c.Remaining--
			if c.Remaining == 0 || hand.Size() == 0 {
				gs.popChoice()
			}
		}
	}
	return true
}

func (a TrashCard) Copy() Move            { return a }
func (a TrashCard) IsDeterministic() bool { return true }

func (a TrashCard) String() string {
	return fmt.Sprintf("%s trashes %s", PlayerName(a.Player), a.Type)
}

// EndChoice declines the rest of an optional pending choice.
type EndChoice struct {
	Player int
}

func (a EndChoice) Execute(gs *GameState) bool {
	if len(gs.pending) == 0 {
		gs.fail("EndChoice", "no pending choice")
	}
	c := gs.pending[0]
	if c.Player != a.Player || c.Type != ChapelTrash {
		gs.fail("EndChoice", fmt.Sprintf("pending choice %d is not declinable by player %d", c.Type, a.Player))
	}
	gs.popChoice()
	gs.record(a)
	return true
}

func (a EndChoice) Copy() Move            { return a }
func (a EndChoice) IsDeterministic() bool { return true }

func (a EndChoice) String() string {
	return fmt.Sprintf("%s stops trashing", PlayerName(a.Player))
}

// EndPhase advances the turn: out of the action phase it starts the buy
// phase and plays all treasures, out of the buy phase it runs cleanup and
// passes the turn.
type EndPhase struct {
	Player int
	Phase  Phase
}

func (a EndPhase) Execute(gs *GameState) bool {
	if gs.Phase != a.Phase {
		gs.fail("EndPhase", fmt.Sprintf("move ends phase %d but state is in phase %d", a.Phase, gs.Phase))
	}
	if len(gs.pending) > 0 {
		gs.fail("EndPhase", "pending choices unresolved")
	}
	gs.record(a)
	switch a.Phase {
	case ActionPhase:
		gs.Phase = BuyPhase
		gs.playTreasures()
	case BuyPhase:
		gs.cleanup()
	}
	return true
}

func (a EndPhase) Copy() Move { return a }

func (a EndPhase) IsDeterministic() bool {
	// Cleanup draws a fresh hand, which may reshuffle.
	return a.Phase != BuyPhase
}

func (a EndPhase) String() string {
	if a.Phase == ActionPhase {
		return fmt.Sprintf("%s ends action phase", PlayerName(a.Player))
	}
	return fmt.Sprintf("%s ends turn", PlayerName(a.Player))
}

// anySupplyCostingUpTo reports whether the supply still holds a card
// costing at most max.
func (gs *GameState) anySupplyCostingUpTo(max int) bool {
	for _, t := range gs.piles {
		if t.Cost() <= max && gs.supply.Contains(t) {
			return true
		}
	}
	return false
}
