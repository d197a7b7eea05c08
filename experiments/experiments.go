package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Options tune how games are played
type Options struct {
	MaxTurns int // 0 keeps the engine default
}

// RunExperiment plays numGames games per match up and stores agent configs,
// game records and move records under outDir/name/<timestamp>. The first agent
// of a match up plays black in odd games and white in even ones. It returns
// the directory the results were written to.
func RunExperiment(name, outDir string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, numGames int, opts Options) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			count++
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, numGames)

			// Alternate colors, agent1 is black in the first game
			black, white := config1, config2
			agent1Color := game.Black
			if i%2 == 1 {
				black, white = config2, config1
				agent1Color = game.White
			}

			winner, gameMetric, moveMetrics, err := runGame(black, white, uint64(count), opts)
			if err != nil {
				return "", fmt.Errorf("failed to run game %d: %w", count, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:          count,
				Agent1:      config1.ID,
				Agent2:      config2.ID,
				Agent1Color: agent1Color.String(),
				GameMetric:  gameMetric,
			})
			for _, mm := range moveMetrics {
				mover := black.ID
				if mm.Player == game.White.String() {
					mover = white.ID
				}
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      mover,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(name, outDir, configs, gameRecords, moveRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("stored results in %s", dir)
	return dir, nil
}

func store(name, outDir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	err = writer.WriteMoveRecordsParquet(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records parquet: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game with black moving first
func runGame(black, white metrics.AgentConfig, gameID uint64, opts Options) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := make([]engine.Agent, 0, 2)
	for _, config := range []metrics.AgentConfig{black, white} {
		agent, err := createAgent(config, gameID)
		if err != nil {
			return game.Empty, metrics.GameMetric{}, nil, err
		}
		agents = append(agents, agent)
	}

	e := engine.LocalEngine(agents)
	if opts.MaxTurns > 0 {
		e.MaxTurns = opts.MaxTurns
	}
	return e.Run()
}

// createAgent builds the strategy described by config with a live collector.
// A seeded config gets a different but reproducible stream for every game.
func createAgent(config metrics.AgentConfig, gameID uint64) (engine.Agent, error) {
	collector := metrics.NewCollector()
	params := searcher.Params{
		MaxDepth:   config.MaxDepth,
		Iterations: config.Iterations,
		Epsilon:    config.Epsilon,
		Metrics:    collector,
	}
	if config.Evaluator != "" {
		evaluate, ok := game.Evaluators[config.Evaluator]
		if !ok {
			return engine.Agent{}, fmt.Errorf("agent %d: unknown evaluator %q", config.ID, config.Evaluator)
		}
		params.Evaluator = evaluate
	}
	if config.Seed != 0 {
		params.Rand = rand.New(rand.NewSource(config.Seed + gameID))
	}

	strategy, err := searcher.New(config.Strategy, params)
	if err != nil {
		return engine.Agent{}, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	return engine.Agent{ID: config.ID, Strategy: strategy, Metrics: collector}, nil
}
