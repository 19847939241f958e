package game

// LegalMoves returns every move the active player may take. Execute
// assumes it is only ever handed moves from this set; anything else is a
// defect, not a recoverable condition.
func (gs *GameState) LegalMoves() []Move {
	if gs.won != "" {
		return nil
	}
	if len(gs.pending) > 0 {
		return gs.choiceMoves(gs.pending[0])
	}
	switch gs.Phase {
	case ActionPhase:
		return gs.actionMoves()
	case BuyPhase:
		return gs.buyMoves()
	}
	return nil
}

func (gs *GameState) actionMoves() []Move {
	var moves []Move
	if gs.ActionsLeft > 0 {
		for _, t := range gs.handTypes(gs.CurrentPlayer) {
			if t.IsAction() {
				moves = append(moves, PlayCard{Type: t, Player: gs.CurrentPlayer})
			}
		}
	}
	moves = append(moves, EndPhase{Player: gs.CurrentPlayer, Phase: ActionPhase})
	return moves
}

func (gs *GameState) buyMoves() []Move {
	var moves []Move
	if gs.BuysLeft > 0 {
		for _, t := range gs.piles {
			if t.Cost() <= gs.Coins && gs.supply.Contains(t) {
				moves = append(moves, BuyCard{Type: t, Player: gs.CurrentPlayer})
			}
		}
	}
	moves = append(moves, EndPhase{Player: gs.CurrentPlayer, Phase: BuyPhase})
	return moves
}

func (gs *GameState) choiceMoves(c Choice) []Move {
	var moves []Move
	switch c.Type {
	case MilitiaDiscard:
		for _, t := range gs.handTypes(c.Player) {
			moves = append(moves, DiscardCard{Type: t, Player: c.Player})
		}
	case WorkshopGain:
		for _, t := range gs.piles {
			if t.Cost() <= WorkshopMaxCost && gs.supply.Contains(t) {
				moves = append(moves, GainCard{Type: t, Player: c.Player})
			}
		}
	case ChapelTrash:
		for _, t := range gs.handTypes(c.Player) {
			moves = append(moves, TrashCard{Type: t, Player: c.Player})
		}
		moves = append(moves, EndChoice{Player: c.Player})
	}
	return moves
}

// handTypes returns the distinct card types in a player's hand, in first
// appearance order.
func (gs *GameState) handTypes(player int) []CardType {
	var seen [NumCardTypes]bool
	var types []CardType
	for _, c := range gs.players[player].hand.Cards() {
		if !seen[c.Type] {
			seen[c.Type] = true
			types = append(types, c.Type)
		}
	}
	return types
}
