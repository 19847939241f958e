package agent

import (
	"dominion/experiments/metrics"
	"dominion/game"
	"dominion/searcher"
)

type Agent interface {
	// FindMove returns the move to play from state, plus performance metrics
	// from the search (if collected). updates lists the moves played since
	// this agent's previous search.
	FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric)
}
