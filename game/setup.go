package game

import (
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Setup describes the initial population of all zones. It is consumed
// once by NewGameState; afterwards cards only move between zones.
type Setup struct {
	Players int
	Kingdom []CardType
	Seed    uint64
}

// DefaultKingdom is the ten-pile kingdom used when no configuration is
// supplied.
func DefaultKingdom() []CardType {
	return []CardType{Village, Smithy, Market, Festival, Laboratory, Woodcutter, Moat, Militia, Workshop, Chapel}
}

// DefaultSetup returns a two-player game with the default kingdom.
func DefaultSetup(seed uint64) Setup {
	return Setup{Players: 2, Kingdom: DefaultKingdom(), Seed: seed}
}

func (s Setup) validate() error {
	if s.Players < 2 {
		return fmt.Errorf("need at least two players, got %d", s.Players)
	}
	for _, t := range s.Kingdom {
		if !t.IsAction() {
			return fmt.Errorf("kingdom pile %s is not an action card", t)
		}
	}
	return nil
}

// NewGameState creates a game start: supply piles filled, every player
// dealt seven Coppers and three Estates shuffled into their draw pile,
// and an opening hand of five drawn.
func NewGameState(setup Setup) (*GameState, error) {
	if err := setup.validate(); err != nil {
		return nil, err
	}

	gs := &GameState{
		players:       make([]playerZones, setup.Players),
		Turn:          1,
		CurrentPlayer: 0,
		Phase:         ActionPhase,
		ActionsLeft:   1,
		BuysLeft:      1,
	}
	gs.src.Seed(setup.Seed)
	gs.rng = rand.New(&gs.src)

	victoryCount := 8
	if setup.Players > 2 {
		victoryCount = 12
	}
	addPile := func(t CardType, n int) {
		gs.piles = append(gs.piles, t)
		for i := 0; i < n; i++ {
			gs.supply.Add(NewCard(t))
		}
	}
	addPile(Copper, 60-7*setup.Players)
	addPile(Silver, 40)
	addPile(Gold, 30)
	addPile(Estate, victoryCount)
	addPile(Duchy, victoryCount)
	addPile(Province, victoryCount)
	addPile(Curse, 10*(setup.Players-1))
	for _, t := range setup.Kingdom {
		if slices.Contains(gs.piles, t) {
			return nil, fmt.Errorf("duplicate kingdom pile %s", t)
		}
		addPile(t, 10)
	}

	for i := range gs.players {
		draw := &gs.players[i].draw
		for j := 0; j < 7; j++ {
			draw.Add(NewCard(Copper))
		}
		for j := 0; j < 3; j++ {
			draw.Add(NewCard(Estate))
		}
		draw.Shuffle(gs.rng)
		gs.drawCards(i, HandSize)
	}

	return gs, nil
}
