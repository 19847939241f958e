package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, seed uint64) *GameState {
	t.Helper()
	gs, err := NewGameState(DefaultSetup(seed))
	require.NoError(t, err)
	return gs
}

// cardCensus tallies every card in every zone by type.
func cardCensus(gs *GameState) map[CardType]int {
	census := map[CardType]int{}
	count := func(z *Zone) {
		for _, c := range z.Cards() {
			census[c.Type]++
		}
	}
	for i := 0; i < gs.NumPlayers(); i++ {
		count(gs.Deck(ZoneHand, i))
		count(gs.Deck(ZoneDraw, i))
		count(gs.Deck(ZoneDiscard, i))
		count(gs.Deck(ZoneInPlay, i))
	}
	count(gs.Deck(ZoneSupply, -1))
	count(gs.Deck(ZoneTrash, -1))
	return census
}

func TestNewGameStateDeal(t *testing.T) {
	gs := newTestState(t, 1)

	for i := 0; i < gs.NumPlayers(); i++ {
		require.Equal(t, 5, gs.Deck(ZoneHand, i).Size(), "opening hand is five cards")
		require.Equal(t, 5, gs.Deck(ZoneDraw, i).Size(), "five cards remain in the draw pile")
		require.Equal(t, 0, gs.Deck(ZoneDiscard, i).Size())
	}

	census := cardCensus(gs)
	require.Equal(t, 60, census[Copper], "46 supply + 2x7 starting Coppers")
	require.Equal(t, 8+2*3, census[Estate], "8 supply + 2x3 starting Estates")
	require.Equal(t, 8, census[Province])
	require.Equal(t, 10, census[Smithy])

	require.Equal(t, 1, gs.Turn)
	require.Equal(t, 0, gs.CurrentPlayer)
	require.Equal(t, ActionPhase, gs.Phase)
	require.Equal(t, "Player1", gs.Player())
	require.Empty(t, gs.Winner())
}

func TestCopyIndependence(t *testing.T) {
	gs := newTestState(t, 2)

	clone := gs.Copy()
	require.Equal(t, gs.Hash(), clone.Hash(), "copy starts structurally equal")

	// Mutate the copy: discard the whole hand.
	for _, c := range clone.Deck(ZoneHand, 0).Cards() {
		clone.MoveCard(c, 0, ZoneHand, 0, ZoneDiscard)
	}

	require.Equal(t, 5, gs.Deck(ZoneHand, 0).Size(), "original hand unchanged")
	require.Equal(t, 0, gs.Deck(ZoneDiscard, 0).Size(), "original discard unchanged")
	require.Equal(t, 0, clone.Deck(ZoneHand, 0).Size())
	require.NotEqual(t, gs.Hash(), clone.Hash())

	// And the other direction.
	card, ok := gs.Deck(ZoneHand, 0).FirstOfType(Copper)
	if !ok {
		card = gs.Deck(ZoneHand, 0).Cards()[0]
	}
	gs.MoveCard(card, 0, ZoneHand, 0, ZoneDiscard)
	require.Equal(t, 0, clone.Deck(ZoneHand, 0).Size(), "mutating the original must not affect the copy")
}

func TestMoveCardMissingIsFatal(t *testing.T) {
	gs := newTestState(t, 3)
	stray := NewCard(Province) // never placed in any zone

	defer func() {
		r := recover()
		require.NotNil(t, r, "moving a card absent from its source zone must panic")
		violation, ok := r.(*InvariantViolation)
		require.True(t, ok, "panic payload should be an *InvariantViolation, got %T", r)
		require.Equal(t, "MoveCard", violation.Op)
	}()
	gs.MoveCard(stray, 0, ZoneHand, 0, ZoneDiscard)
}

func TestConservationUnderPlay(t *testing.T) {
	gs := newTestState(t, 4)
	before := cardCensus(gs)

	state := State(gs)
	for i := 0; i < 200; i++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}
		state = state.Play(moves[i%len(moves)])
	}

	after := cardCensus(state.(*GameState))
	require.Equal(t, before, after, "the multiset of cards across all zones never changes")
}

func TestPlayLeavesReceiverUntouched(t *testing.T) {
	gs := newTestState(t, 5)
	hashBefore := gs.Hash()

	moves := gs.LegalMoves()
	require.NotEmpty(t, moves)
	next := gs.Play(moves[0])

	require.Equal(t, hashBefore, gs.Hash(), "Play must branch, not mutate")
	require.NotSame(t, gs, next)
}

func TestDeterministicReplay(t *testing.T) {
	play := func(seed uint64, steps int) StateHash {
		var state State = newTestState(t, seed)
		for i := 0; i < steps; i++ {
			moves := state.LegalMoves()
			if len(moves) == 0 {
				break
			}
			state = state.Play(moves[i%len(moves)])
		}
		return state.Hash()
	}

	require.Equal(t, play(42, 120), play(42, 120),
		"same seed and move sequence must reproduce the same state bit for bit")
	require.NotEqual(t, play(42, 120), play(43, 120),
		"a different seed should diverge")
}

func TestDeterminize(t *testing.T) {
	gs := newTestState(t, 6)

	// Force an immediate reshuffle on the next draw.
	draw := gs.Deck(ZoneDraw, 0)
	for _, c := range draw.Cards() {
		gs.MoveCard(c, 0, ZoneDraw, 0, ZoneDiscard)
	}
	for _, c := range gs.Deck(ZoneHand, 0).Cards() {
		gs.MoveCard(c, 0, ZoneHand, 0, ZoneDiscard)
	}

	a := gs.Determinize(100).(*GameState)
	b := gs.Determinize(100).(*GameState)
	c := gs.Determinize(200).(*GameState)
	a.drawCards(0, 5)
	b.drawCards(0, 5)
	c.drawCards(0, 5)

	order := func(s *GameState) []CardType {
		var types []CardType
		for _, card := range s.Deck(ZoneHand, 0).Cards() {
			types = append(types, card.Type)
		}
		return types
	}
	require.Equal(t, order(a), order(b), "equal seeds reshuffle identically")
	require.Equal(t, 10, a.Deck(ZoneHand, 0).Size()+a.Deck(ZoneDraw, 0).Size())
	_ = c // different seeds may or may not reorder a 10 card pile identically
}

func TestHistoryRecordsDescriptions(t *testing.T) {
	gs := newTestState(t, 7)
	gs.Deck(ZoneHand, 0).Add(NewCard(Smithy))

	next := gs.Play(PlayCard{Type: Smithy, Player: 0}).(*GameState)

	history := next.HistoryAsText()
	require.Len(t, history, 1)
	require.Equal(t, "Player1 plays Smithy", history[0])
	require.Empty(t, gs.HistoryAsText(), "history belongs to the branch, not the source")
}

func TestHashIgnoresCardIdentity(t *testing.T) {
	// Two independently created games share no card instance IDs but are
	// structurally identical apart from shuffle order, so equal seeds give
	// equal hashes.
	gs1 := newTestState(t, 8)
	gs2 := newTestState(t, 8)
	require.Equal(t, gs1.Hash(), gs2.Hash())
}
