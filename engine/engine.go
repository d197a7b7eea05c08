package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Agent is an automated player in a local game
type Agent struct {
	ID       int // AgentConfig.ID, 0 when not part of an experiment
	Strategy searcher.Strategy
	Metrics  metrics.Collector // shared with Strategy, nil when not collected
}

type policyReporter interface {
	Policy() map[game.Cell]int
}

// findMove asks the strategy for a move and falls back to the first legal
// destination when the answer is not one of moves
func (a *Agent) findMove(board *game.Board, self, opponent game.Color, moves game.Moves) (game.Cell, metrics.MoveMetric, error) {
	collector := a.Metrics
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}

	candidate, ok, err := a.Strategy.ComputerMove(board, self, opponent)
	if err != nil {
		return game.Cell{}, metrics.MoveMetric{}, err
	}
	metric := metrics.MoveMetric{SearchMetric: collector.Complete()}
	if reporter, isReporter := a.Strategy.(policyReporter); isReporter {
		metric.Policy = searcher.FormatPolicy(reporter.Policy())
	}

	if _, legal := moves[candidate]; !ok || !legal {
		fallback := moves.Destinations()[0]
		log.Warn().Msgf("agent %d returned invalid move %v (ok=%t) for %s, playing %v", a.ID, candidate, ok, self, fallback)
		return fallback, metric, nil
	}
	return candidate, metric, nil
}
