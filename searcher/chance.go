package searcher

import (
	"sync"

	"dominion/game"
)

// chance is a node below a stochastic move. Its children are the observed
// outcomes, identified by state hash.
type chance struct {
	sync.RWMutex
	parent   Node
	player   string
	children []*decision
	rewards  float64
	visits   float64
}

func newChance(parent *decision) *chance {
	return &chance{
		parent: parent,
		player: parent.player,
	}
}

func (c *chance) SelectOrExpand(state game.State) (Node, game.State, bool) {
	c.Lock()
	defer c.Unlock()

	// Select if explored outcome
	selected := true
	child := c.selects(state.Hash())
	// Expand if unexplored outcome
	if child == nil {
		child = c.expands(state)
		selected = false
	}

	child.ApplyLoss()
	return child, state, selected
}

func (c *chance) selects(hash game.StateHash) *decision {
	for _, child := range c.children {
		if child.hash == hash {
			return child
		}
	}
	return nil
}

func (c *chance) expands(state game.State) *decision {
	child := newDecision(c, state)
	c.children = append(c.children, child)
	return child
}

func (c *chance) ApplyLoss() {
	c.Lock()
	defer c.Unlock()

	c.rewards += Loss
	c.visits++
}

func (c *chance) reverseLoss() {
	c.rewards -= Loss
	c.visits--
}

func (c *chance) Backup(player string, score float64) Node {
	c.Lock()
	defer c.Unlock()

	c.reverseLoss()
	c.rewards += computeReward(player, score, c.player)
	c.visits++
	return c.parent
}

func (c *chance) stats() (string, float64, float64) {
	c.RLock()
	defer c.RUnlock()

	return c.player, c.rewards, c.visits
}
