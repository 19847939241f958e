package engine

import "dominion/experiments/metrics"

// MaxMoves aborts games that fail to terminate.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game to completion or to MaxMoves, whichever comes first.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
