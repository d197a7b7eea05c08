package searcher

import (
	"fmt"
	"othello/game"
)

const (
	KindMinimax = "minimax"
	KindMCTS    = "mcts"
	KindGreedy  = "greedy"
)

// Kinds lists every strategy New can build
var Kinds = []string{KindMinimax, KindMCTS, KindGreedy}

// New builds the strategy named by kind. Params fields the strategy does not use
// are ignored.
func New(kind string, params Params) (Strategy, error) {
	switch kind {
	case KindMinimax:
		return NewMinimax(
			params.MaxDepth,
			WithEvaluator(params.evaluator()),
			WithMinimaxMetrics(params.collector()),
		)
	case KindMCTS:
		return NewMCTS(
			params.Iterations,
			WithRand(params.random()),
			WithMetrics(params.collector()),
		)
	case KindGreedy:
		return NewGreedy(
			WithGreedyEvaluator(params.evaluator()),
			WithEpsilon(params.Epsilon),
			WithGreedyRand(params.random()),
			WithGreedyMetrics(params.collector()),
		)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
}

// ComputerMove builds a strategy and asks it for a single move
func ComputerMove(kind string, board *game.Board, self, opponent game.Color, params Params) (game.Cell, bool, error) {
	strategy, err := New(kind, params)
	if err != nil {
		return game.Cell{}, false, err
	}
	return strategy.ComputerMove(board, self, opponent)
}
