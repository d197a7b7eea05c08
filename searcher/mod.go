package searcher

import (
	"errors"
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownStrategy      = errors.New("unknown strategy")
)

// Strategy chooses a move for an automated player.
type Strategy interface {
	// ComputerMove returns the destination self should play on board, or
	// ok == false when self has no legal move and must pass. The board is never
	// modified.
	ComputerMove(board *game.Board, self, opponent game.Color) (move game.Cell, ok bool, err error)
}

// Params configures the strategies built by New. Zero values fall back to the
// strategy defaults.
type Params struct {
	MaxDepth   int            // minimax, >= 2
	Iterations int            // mcts, >= 0
	Epsilon    float64        // greedy, in [0, 1]
	Evaluator  game.Evaluator // minimax leaves and greedy scoring
	Rand       *rand.Rand
	Metrics    metrics.Collector
}

func (p Params) collector() metrics.Collector {
	if p.Metrics == nil {
		return metrics.NewDummyCollector()
	}
	return p.Metrics
}

func (p Params) evaluator() game.Evaluator {
	if p.Evaluator == nil {
		return game.EvaluateWeights
	}
	return p.Evaluator
}

func (p Params) random() *rand.Rand {
	if p.Rand == nil {
		return newRand()
	}
	return p.Rand
}
