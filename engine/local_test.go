package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dominion/game"
	"dominion/searcher"
	"dominion/searcher/agent"
)

// fastSearch keeps self-play tests quick.
func fastSearch() []searcher.Option {
	return []searcher.Option{
		searcher.WithEpisodes(16),
		searcher.WithCutoff(20),
		searcher.WithSeed(3),
	}
}

func TestNewLocalEngine(t *testing.T) {
	mcts := searcher.NewMCTS(1, fastSearch()...)
	_, err := NewLocalEngine([]agent.Agent{agent.NewEvaluationAgent(mcts)}, game.DefaultSetup(1))
	require.Error(t, err, "One agent cannot seat a two player game")
}

func TestLocalEngineRun(t *testing.T) {
	agents := []agent.Agent{
		agent.NewEvaluationAgent(searcher.NewMCTS(1, fastSearch()...)),
		agent.NewEvaluationAgent(searcher.NewMCTS(1, fastSearch()...)),
	}
	e, err := NewLocalEngine(agents, game.DefaultSetup(5))
	require.NoError(t, err)

	winner, gameMetric, moveMetrics := e.Run()

	require.Contains(t, []string{"Player1", "Player2", "Draw"}, winner)
	require.Equal(t, winner, gameMetric.Winner)
	require.Len(t, gameMetric.Scores, 2)
	require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
	require.Greater(t, gameMetric.TotalMoves, 0)
	require.Less(t, gameMetric.TotalMoves, MaxMoves, "A game should end well before the abort limit")
	for _, m := range moveMetrics {
		require.Contains(t, []int{0, 1}, m.Player)
	}
}
