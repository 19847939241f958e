package game

import "math"

// EvaluateVictory tallies each player's victory points to produce a
// relative score between -1 and 1 from the current player's perspective.
func EvaluateVictory(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	player := gs.ActivePlayer()
	return normalize(shifted(gs.victoryScore(player)), shifted(gs.bestOpponent(player, gs.victoryScore)))
}

// EvaluateDeckValue also weighs treasure density, rewarding economies
// that can still buy the remaining victory cards.
func EvaluateDeckValue(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	player := gs.ActivePlayer()
	victory := normalize(shifted(gs.victoryScore(player)), shifted(gs.bestOpponent(player, gs.victoryScore)))
	economy := normalize(gs.treasureScore(player), gs.bestOpponent(player, gs.treasureScore))
	return (victory + economy) / 2
}

func (gs *GameState) victoryScore(player int) float64 {
	return float64(gs.VictoryPoints(player))
}

func (gs *GameState) treasureScore(player int) float64 {
	p := &gs.players[player]
	coins := 0
	for _, z := range []*Zone{&p.hand, &p.draw, &p.discard, &p.inPlay} {
		for _, c := range z.Cards() {
			if c.Type.IsTreasure() {
				coins += c.Type.CoinValue()
			}
		}
	}
	return float64(coins)
}

func (gs *GameState) bestOpponent(player int, score func(int) float64) float64 {
	best := math.Inf(-1)
	for i := range gs.players {
		if i == player {
			continue
		}
		if s := score(i); s > best {
			best = s
		}
	}
	return best
}

// shifted keeps curse-heavy scores non-negative so normalize stays in
// range.
func shifted(points float64) float64 {
	const curseFloor = 30
	return points + curseFloor
}

// normalize converts two non-negative values into a single score between
// -1 and 1: (a-b)/(a+b).
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
