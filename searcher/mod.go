package searcher

import (
	"math"

	"dominion/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Rewards estimate the chance of winning
const (
	Win  = 1.0
	Loss = 0.0
)

// MaxCutoff effectively disables the rollout depth cutoff.
const MaxCutoff = math.MaxInt32

type Node interface {
	// SelectOrExpand descends one level: it either selects an existing
	// child (selected=true) or adds a new one (selected=false), applying a
	// temporary loss to the returned child for tree parallelization.
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	// Backup folds an episode outcome into the node and returns its parent.
	Backup(player string, score float64) Node
	ApplyLoss()
	stats() (player string, rewards float64, visits float64)
}

func ucb1(rewards, visits, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/visits + math.Sqrt(c2LnN/visits)
}

// computeReward scores an episode outcome from nodePlayer's perspective:
// score goes to player, the complement to everyone else.
func computeReward(player string, score float64, nodePlayer string) float64 {
	if nodePlayer == player {
		return score
	}
	return Win - score
}
