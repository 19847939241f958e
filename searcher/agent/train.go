package agent

import (
	"math"

	"golang.org/x/exp/rand"

	"dominion/experiments/metrics"
	"dominion/game"
	"dominion/searcher"
)

type trainingAgent struct {
	mcts *searcher.MCTS
}

// NewTrainingAgent returns an agent for self-play during training: it samples
// moves in proportion to their visit counts to keep the games varied.
func NewTrainingAgent(mcts *searcher.MCTS) Agent {
	return trainingAgent{mcts: mcts}
}

func (a trainingAgent) FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	// TODO: apply a temperature schedule as training progresses
	policy = adjustTemperature(policy, 1.0)
	return sample(policy), metric
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

func sample(policy map[game.Move]float64) game.Move {
	sampled := rand.Float64()
	cumulative := 0.0
	var lastMove game.Move
	for move, prob := range policy {
		lastMove = move
		cumulative += prob
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}
