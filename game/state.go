package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Phase is the part of the current player's turn being played.
type Phase int

const (
	ActionPhase Phase = iota
	BuyPhase
)

// ZoneType identifies a logical pile. Hand, Draw, Discard and InPlay are
// scoped per player; Supply and Trash are shared.
type ZoneType int

const (
	ZoneHand ZoneType = iota
	ZoneDraw
	ZoneDiscard
	ZoneInPlay
	ZoneSupply
	ZoneTrash
)

// ChoiceType identifies an interrupt that must be resolved before regular
// turn play continues.
type ChoiceType int

const (
	MilitiaDiscard ChoiceType = iota // discard down to three cards
	WorkshopGain                     // gain a card costing up to four
	ChapelTrash                      // trash up to four cards, may stop early
)

// Choice is a pending decision owed by a player, queued by a card effect.
type Choice struct {
	Type      ChoiceType
	Player    int
	Remaining int // trashes still allowed for ChapelTrash
}

const (
	MilitiaHandSize = 3
	WorkshopMaxCost = 4
	ChapelMaxTrash  = 4
	HandSize        = 5
)

type playerZones struct {
	hand    Zone
	draw    Zone
	discard Zone
	inPlay  Zone
}

// GameState owns every zone for every player plus the shared supply and
// trash, and is the only component permitted to move cards between zones.
// It is mutated in place by Move.Execute and branched via Copy for
// speculative search.
type GameState struct {
	players []playerZones
	supply  Zone
	trash   Zone
	piles   []CardType // supply pile kinds at setup, for empty-pile checks

	Turn          int
	CurrentPlayer int
	Phase         Phase
	ActionsLeft   int
	BuysLeft      int
	Coins         int

	pending []Choice
	history []string
	won     string

	src rand.PCGSource
	rng *rand.Rand
}

// NumPlayers returns how many players the state was set up with.
func (gs *GameState) NumPlayers() int {
	return len(gs.players)
}

// Deck returns the live zone for in-place modification by moves. The
// player index is ignored for the shared zones.
func (gs *GameState) Deck(zt ZoneType, player int) *Zone {
	switch zt {
	case ZoneSupply:
		return &gs.supply
	case ZoneTrash:
		return &gs.trash
	}
	if player < 0 || player >= len(gs.players) {
		gs.fail("Deck", fmt.Sprintf("no player %d", player))
	}
	p := &gs.players[player]
	switch zt {
	case ZoneHand:
		return &p.hand
	case ZoneDraw:
		return &p.draw
	case ZoneDiscard:
		return &p.discard
	case ZoneInPlay:
		return &p.inPlay
	}
	gs.fail("Deck", fmt.Sprintf("unknown zone %d", zt))
	return nil
}

// MoveCard removes card from the source zone and appends it to the
// destination zone. A card missing from the claimed source is an
// unrecoverable inconsistency: it means a move was constructed or
// validated incorrectly upstream.
func (gs *GameState) MoveCard(card Card, fromPlayer int, from ZoneType, toPlayer int, to ZoneType) {
	if !gs.Deck(from, fromPlayer).Remove(card) {
		gs.fail("MoveCard", fmt.Sprintf("card %s not in %s of player %d", card, zoneName(from), fromPlayer))
	}
	gs.Deck(to, toPlayer).Add(card)
}

// Copy returns a structurally independent state: every zone and every
// bookkeeping slice is freshly constructed, and the RNG source is copied
// by value so both states replay identical shuffles. This is the hot path
// of search branching.
func (gs *GameState) Copy() *GameState {
	next := &GameState{
		piles:         slices.Clone(gs.piles),
		Turn:          gs.Turn,
		CurrentPlayer: gs.CurrentPlayer,
		Phase:         gs.Phase,
		ActionsLeft:   gs.ActionsLeft,
		BuysLeft:      gs.BuysLeft,
		Coins:         gs.Coins,
		pending:       slices.Clone(gs.pending),
		history:       slices.Clone(gs.history),
		won:           gs.won,
		src:           gs.src,
	}
	next.players = make([]playerZones, len(gs.players))
	for i := range gs.players {
		next.players[i] = playerZones{
			hand:    gs.players[i].hand.Copy(),
			draw:    gs.players[i].draw.Copy(),
			discard: gs.players[i].discard.Copy(),
			inPlay:  gs.players[i].inPlay.Copy(),
		}
	}
	next.supply = gs.supply.Copy()
	next.trash = gs.trash.Copy()
	next.rng = rand.New(&next.src)
	return next
}

// Determinize returns a copy whose shuffle randomness is reseeded.
func (gs *GameState) Determinize(seed uint64) State {
	next := gs.Copy()
	next.src.Seed(seed)
	return next
}

// Play applies a move to a copy of the state and returns the copy. The
// receiver is never mutated.
func (gs *GameState) Play(move Move) State {
	next := gs.Copy()
	m := move.Copy()
	if !m.Execute(next) {
		next.fail("Play", fmt.Sprintf("move %s reported failure", m))
	}
	next.checkGameEnd()
	return next
}

// HistoryAsText returns the append-only record of executed move
// descriptions. Diagnostics only, never rules logic.
func (gs *GameState) HistoryAsText() []string {
	return slices.Clone(gs.history)
}

func (gs *GameState) record(m Move) {
	gs.history = append(gs.history, m.String())
}

// ActivePlayer is the player expected to move next: the owner of the
// front pending choice if one is queued, otherwise the turn player.
func (gs *GameState) ActivePlayer() int {
	if len(gs.pending) > 0 {
		return gs.pending[0].Player
	}
	return gs.CurrentPlayer
}

func (gs *GameState) Player() string {
	return PlayerName(gs.ActivePlayer())
}

// PlayerName formats a zero-based player index the way agents and the
// engine identify players.
func PlayerName(player int) string {
	return fmt.Sprintf("Player%d", player+1)
}

// Winner returns the winning player's name once the game has ended,
// "Draw" on a tie, and "" while the game is still running.
func (gs *GameState) Winner() string {
	return gs.won
}

// PendingChoices returns the queued choices front first.
func (gs *GameState) PendingChoices() []Choice {
	return slices.Clone(gs.pending)
}

func (gs *GameState) pushChoice(c Choice) {
	gs.pending = append(gs.pending, c)
}

func (gs *GameState) popChoice() {
	gs.pending = gs.pending[1:]
}

// drawCards moves up to n cards from the player's draw pile to their hand,
// reshuffling the discard pile into the draw pile when it runs out.
func (gs *GameState) drawCards(player, n int) {
	for i := 0; i < n; i++ {
		if !gs.drawOne(player) {
			return
		}
	}
}

func (gs *GameState) drawOne(player int) bool {
	p := &gs.players[player]
	if p.draw.Size() == 0 {
		if p.discard.Size() == 0 {
			return false
		}
		for _, c := range p.discard.RemoveAll() {
			p.draw.Add(c)
		}
		p.draw.Shuffle(gs.rng)
	}
	card, ok := p.draw.RemoveTop()
	if !ok {
		gs.fail("drawOne", "draw pile empty after reshuffle")
	}
	p.hand.Add(card)
	return true
}

// playTreasures moves every treasure in the turn player's hand into play
// and adds their coin value to the turn budget. Runs when the buy phase
// starts.
func (gs *GameState) playTreasures() {
	hand := &gs.players[gs.CurrentPlayer].hand
	for _, c := range hand.Cards() {
		if c.Type.IsTreasure() {
			gs.MoveCard(c, gs.CurrentPlayer, ZoneHand, gs.CurrentPlayer, ZoneInPlay)
			gs.Coins += c.Type.CoinValue()
		}
	}
}

// cleanup discards the turn player's hand and in-play cards, draws a new
// hand, and passes the turn.
func (gs *GameState) cleanup() {
	p := &gs.players[gs.CurrentPlayer]
	for _, c := range p.inPlay.RemoveAll() {
		p.discard.Add(c)
	}
	for _, c := range p.hand.RemoveAll() {
		p.discard.Add(c)
	}
	gs.drawCards(gs.CurrentPlayer, HandSize)

	gs.CurrentPlayer = (gs.CurrentPlayer + 1) % len(gs.players)
	gs.Turn++
	gs.Phase = ActionPhase
	gs.ActionsLeft = 1
	gs.BuysLeft = 1
	gs.Coins = 0
}

// SupplyPileEmpty reports whether a pile that started in the supply has
// been exhausted.
func (gs *GameState) SupplyPileEmpty(t CardType) bool {
	return !gs.supply.Contains(t)
}

// VictoryPoints tallies a player's points across all zones they own.
func (gs *GameState) VictoryPoints(player int) int {
	p := &gs.players[player]
	points := 0
	for _, z := range []*Zone{&p.hand, &p.draw, &p.discard, &p.inPlay} {
		for _, c := range z.Cards() {
			points += c.Type.VictoryPoints()
		}
	}
	return points
}

// checkGameEnd ends the game when the Province pile or any three supply
// piles are exhausted, awarding the win to the highest victory point
// total.
func (gs *GameState) checkGameEnd() {
	if gs.won != "" {
		return
	}
	empty := 0
	for _, t := range gs.piles {
		if gs.SupplyPileEmpty(t) {
			empty++
		}
	}
	if !gs.SupplyPileEmpty(Province) && empty < 3 {
		return
	}

	best, winner, tied := -1<<31, -1, false
	for i := range gs.players {
		points := gs.VictoryPoints(i)
		if points > best {
			best, winner, tied = points, i, false
		} else if points == best {
			tied = true
		}
	}
	if tied {
		gs.won = "Draw"
	} else {
		gs.won = PlayerName(winner)
	}
}

// Hash folds the type-level state into a 64-bit fnv-1a digest: zone
// contents in order, turn bookkeeping, and pending choices. Card instance
// IDs are excluded so that structurally equal states hash equally.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Phase))
	binary.Write(hasher, binary.LittleEndian, int64(gs.ActionsLeft))
	binary.Write(hasher, binary.LittleEndian, int64(gs.BuysLeft))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Coins))

	hashZone := func(z *Zone) {
		binary.Write(hasher, binary.LittleEndian, int64(z.Size()))
		for _, c := range z.Cards() {
			binary.Write(hasher, binary.LittleEndian, int64(c.Type))
		}
	}
	for i := range gs.players {
		p := &gs.players[i]
		hashZone(&p.hand)
		hashZone(&p.draw)
		hashZone(&p.discard)
		hashZone(&p.inPlay)
	}
	hashZone(&gs.supply)
	hashZone(&gs.trash)

	for _, c := range gs.pending {
		binary.Write(hasher, binary.LittleEndian, int64(c.Type))
		binary.Write(hasher, binary.LittleEndian, int64(c.Player))
		binary.Write(hasher, binary.LittleEndian, int64(c.Remaining))
	}

	return StateHash(hasher.Sum64())
}

func zoneName(zt ZoneType) string {
	switch zt {
	case ZoneHand:
		return "hand"
	case ZoneDraw:
		return "draw"
	case ZoneDiscard:
		return "discard"
	case ZoneInPlay:
		return "in-play"
	case ZoneSupply:
		return "supply"
	case ZoneTrash:
		return "trash"
	}
	return fmt.Sprintf("zone(%d)", zt)
}
