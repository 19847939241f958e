package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dominion/config"
	"dominion/engine"
	"dominion/experiments"
	"dominion/searcher"
	"dominion/searcher/agent"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	games := flag.Int("games", 1, "number of self-play games")
	experiment := flag.String("experiment", "", "run a named experiment (parallelization, cutoff)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	switch *experiment {
	case "":
	case "parallelization":
		experiments.RunParallelizationExperiment()
		return
	case "cutoff":
		experiments.RunCutoffExperiment()
		return
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setup, err := cfg.Setup()
	if err != nil {
		log.Fatal().Err(err).Msg("bad game configuration")
	}

	for i := 0; i < *games; i++ {
		setup.Seed = cfg.Game.Seed + uint64(i)

		agents := make([]agent.Agent, setup.Players)
		for p := range agents {
			agents[p] = agent.NewEvaluationAgent(createMCTS(cfg.Search, setup.Seed+uint64(p)))
		}
		e, err := engine.NewLocalEngine(agents, setup)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create engine")
		}

		log.Info().Int("game", i+1).Uint64("seed", setup.Seed).Msg("game started")
		winner, gameMetric, _ := e.Run()
		log.Info().
			Int("game", i+1).
			Str("winner", winner).
			Ints("scores", gameMetric.Scores).
			Int("moves", gameMetric.TotalMoves).
			Dur("duration", gameMetric.Duration).
			Msg("game over")
	}
}

func createMCTS(search config.SearchConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}
	if search.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(search.Episodes))
	}
	if search.Duration > 0 {
		options = append(options, searcher.WithDuration(search.Duration))
	}
	if search.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(search.Cutoff))
	}
	return searcher.NewMCTS(search.Goroutines, options...)
}
