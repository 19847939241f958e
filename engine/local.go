package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"dominion/experiments/metrics"
	"dominion/game"
	"dominion/searcher"
	"dominion/searcher/agent"
)

// LocalEngine plays one game between in-process agents, one per seat.
type LocalEngine struct {
	state  *game.GameState
	agents []agent.Agent
}

func NewLocalEngine(agents []agent.Agent, setup game.Setup) (*LocalEngine, error) {
	if len(agents) != setup.Players {
		return nil, fmt.Errorf("%d agents for %d players", len(agents), setup.Players)
	}
	state, err := game.NewGameState(setup)
	if err != nil {
		return nil, err
	}
	return &LocalEngine{state: state, agents: agents}, nil
}

func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	startingPlayer := e.state.CurrentPlayer

	// Each agent accumulates the moves played since its last search so its
	// searcher can relocate inside the previous tree.
	updates := make([][]searcher.Segment, len(e.agents))

	var moveMetrics []metrics.MoveMetric
	step := 0
	for e.state.Winner() == "" && step < MaxMoves {
		seat := e.state.ActivePlayer()

		move, searchMetric := e.agents[seat].FindMove(e.state, updates[seat])
		updates[seat] = nil

		next := e.state.Play(move).(*game.GameState)
		segment := searcher.Segment{Move: move, StateHash: next.Hash()}
		for i := range updates {
			updates[i] = append(updates[i], segment)
		}
		e.state = next

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       seat,
			SearchMetric: searchMetric,
		})
		step++
	}

	winner := e.state.Winner()
	if winner == "" {
		log.Warn().Int("moves", step).Msg("game aborted without a winner")
	}

	scores := make([]int, e.state.NumPlayers())
	for i := range scores {
		scores[i] = e.state.VictoryPoints(i)
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         winner,
		Scores:         scores,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     step,
	}
	return winner, gameMetric, moveMetrics
}
