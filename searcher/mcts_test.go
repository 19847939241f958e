package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"dominion/experiments/metrics"
	"dominion/game"
)

func TestNewMCTS(t *testing.T) {
	require.Panics(t, func() {
		NewMCTS(1)
	}, "Should require search episodes or duration")

	m := NewMCTS(2, WithEpisodes(10), WithCutoff(50))
	require.Equal(t, 2, m.goroutines)
	require.Equal(t, 10, m.episodes)
	require.Equal(t, 50, m.cutoff)

	m = NewMCTS(1, WithDuration(time.Millisecond))
	require.Equal(t, MaxCutoff, m.cutoff, "Cutoff should default to no cutoff")
}

func TestSimulate(t *testing.T) {
	state, err := game.NewGameState(game.DefaultSetup(7))
	require.NoError(t, err)

	m := NewMCTS(2, WithEpisodes(64), WithCutoff(30), WithSeed(11), WithMetrics())
	policy, metric := m.Simulate(state, nil)

	require.NotEmpty(t, policy, "Search should produce a policy")
	legal := state.LegalMoves()
	total := 0.0
	for move, visits := range policy {
		require.Contains(t, legal, move, "Policy should only cover legal moves")
		total += visits
	}
	require.Greater(t, total, 0.0, "Search should visit the root's children")
	require.Equal(t, 64, metric.Episodes)
	require.LessOrEqual(t, metric.FullPlayouts, 64)
	require.True(t, metric.IsTreeReset, "First search starts a fresh tree")
}

func TestFindRoot(t *testing.T) {
	t.Run("reusing the subtree along the lineage", func(t *testing.T) {
		grand := &decision{hash: 9}
		child := &decision{
			hash:     5,
			children: map[game.Move]Node{mockMove{id: 2}: grand},
		}
		root := &decision{
			children: map[game.Move]Node{mockMove{id: 1}: child},
		}
		grand.parent = child
		child.parent = root
		m := &MCTS{root: root, metrics: metrics.NewDummyCollector()}

		m.findRoot([]Segment{
			{Move: mockMove{id: 1}, StateHash: 5},
			{Move: mockMove{id: 2}, StateHash: 9},
		}, mockState{})

		require.Equal(t, grand, m.root, "Root should move to the lineage's end")
		require.Nil(t, grand.parent, "New root should drop its parent")
	})

	t.Run("traversing through a chance node by outcome hash", func(t *testing.T) {
		outcome := &decision{hash: 9}
		node := &chance{children: []*decision{outcome}}
		root := &decision{
			children: map[game.Move]Node{mockMove{id: 1, stochastic: true}: node},
		}
		m := &MCTS{root: root, metrics: metrics.NewDummyCollector()}

		m.findRoot([]Segment{{Move: mockMove{id: 1, stochastic: true}, StateHash: 9}}, mockState{})

		require.Equal(t, outcome, m.root, "Root should move to the observed outcome")
	})

	t.Run("resetting on unexplored move", func(t *testing.T) {
		root := &decision{children: map[game.Move]Node{}}
		m := &MCTS{root: root, metrics: metrics.NewDummyCollector()}
		state := mockState{player: "Player1", moves: []game.Move{mockMove{id: 3}}}

		m.findRoot([]Segment{{Move: mockMove{id: 1}, StateHash: 5}}, state)

		require.NotEqual(t, root, m.root, "Root should be rebuilt")
		require.Equal(t, "Player1", m.root.player)
		require.Equal(t, state.moves, m.root.unexplored)
	})

	t.Run("resetting on hash mismatch", func(t *testing.T) {
		child := &decision{hash: 5}
		root := &decision{
			children: map[game.Move]Node{mockMove{id: 1}: child},
		}
		m := &MCTS{root: root, metrics: metrics.NewDummyCollector()}

		m.findRoot([]Segment{{Move: mockMove{id: 1}, StateHash: 6}}, mockState{})

		require.NotEqual(t, child, m.root, "A diverged game line should reset the tree")
	})
}

func TestRollout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("terminal state", func(t *testing.T) {
		collector := metrics.NewCollector()
		collector.Start(1, MaxCutoff)
		state := mockState{winner: "Player1"}

		player, score := rollout(state, MaxCutoff, game.EvaluateVictory, rng, collector)

		require.Equal(t, "Player1", player)
		require.Equal(t, Win, score)
		require.Equal(t, 1, collector.Complete().FullPlayouts,
			"Reaching a terminal state counts as a full playout")
	})

	t.Run("cutoff state", func(t *testing.T) {
		collector := metrics.NewCollector()
		collector.Start(1, 10)
		evaluate := func(s game.State) float64 { return 0 }
		state := mockState{player: "Player1", moves: []game.Move{mockMove{id: 0}}}

		player, score := rollout(state, 10, evaluate, rng, collector)

		require.Equal(t, "Player1", player)
		require.Equal(t, 0.5, score, "An even evaluation maps to the middle of the reward range")
		require.Zero(t, collector.Complete().FullPlayouts)
	})
}

func TestBackup(t *testing.T) {
	root := &decision{player: "Player1"}
	child := &decision{parent: root, player: "Player2", rewards: Loss, visits: 1}

	backup(child, "Player1", Win)

	require.Equal(t, Loss, child.rewards, "The opponent's node should record a loss")
	require.Equal(t, 1.0, child.visits)
	require.Equal(t, Win, root.rewards, "The root should record a win")
	require.Equal(t, 1.0, root.visits)
}
