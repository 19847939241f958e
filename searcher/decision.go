package searcher

import (
	"math"
	"sync"

	"dominion/game"
)

// decision is a node where one player picks among legal moves. Children
// are keyed by move value, which is what makes move comparability load
// bearing for the searcher.
type decision struct {
	sync.RWMutex
	parent     Node
	player     string
	hash       game.StateHash
	unexplored []game.Move
	children   map[game.Move]Node
	rewards    float64
	visits     float64
}

func newDecision(parent Node, state game.State) *decision {
	return &decision{
		parent:     parent,
		player:     state.Player(),
		hash:       state.Hash(),
		unexplored: state.LegalMoves(),
		children:   map[game.Move]Node{},
	}
}

func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		move := d.unexplored[len(d.unexplored)-1]
		d.unexplored = d.unexplored[:len(d.unexplored)-1]
		childState := state.Play(move)
		var child Node
		if move.IsDeterministic() {
			child = newDecision(d, childState)
		} else {
			child = newChance(d)
		}
		d.children[move] = child
		child.ApplyLoss()
		return child, childState, false
	}

	// Fully expanded node
	move := d.pickChild()
	child := d.children[move]
	child.ApplyLoss()
	return child, state.Play(move), true
}

// pickChild returns the move whose child maximizes UCB1 from this node's
// player's perspective: rewards of a child owned by the opponent count
// inverted.
func (d *decision) pickChild() game.Move {
	if d.visits == 0 {
		panic("node has children but no visits")
	}
	normalizer := CSquared * math.Log(d.visits)

	var best game.Move
	bestScore := math.Inf(-1)
	for move, child := range d.children {
		childPlayer, rewards, visits := child.stats()
		if visits == 0 {
			return move
		}
		if childPlayer != d.player {
			rewards = visits*Win - rewards
		}
		if score := ucb1(rewards, visits, normalizer); score > bestScore {
			bestScore = score
			best = move
		}
	}
	return best
}

func (d *decision) ApplyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) Backup(player string, score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Virtual loss is only applied below the root
		d.reverseLoss()
	}
	d.rewards += computeReward(player, score, d.player)
	d.visits++
	return d.parent
}

func (d *decision) stats() (string, float64, float64) {
	d.RLock()
	defer d.RUnlock()

	return d.player, d.rewards, d.visits
}

// Policy returns the visit count per move, the searcher's output for the
// agent layer to argmax or sample from.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.children))
	for move, child := range d.children {
		_, _, visits := child.stats()
		policy[move] = visits
	}
	return policy
}
