package searcher

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type GreedyOption func(g *Greedy)

// Greedy plays the move whose resulting board scores best for the acting
// player, or a random legal move with probability epsilon.
type Greedy struct {
	evaluate game.Evaluator
	epsilon  float64
	rand     *rand.Rand
	metrics  metrics.Collector
}

func WithGreedyEvaluator(evaluate game.Evaluator) GreedyOption {
	return func(g *Greedy) {
		if evaluate != nil {
			g.evaluate = evaluate
		}
	}
}

func WithEpsilon(epsilon float64) GreedyOption {
	return func(g *Greedy) {
		g.epsilon = epsilon
	}
}

func WithGreedyRand(r *rand.Rand) GreedyOption {
	return func(g *Greedy) {
		if r != nil {
			g.rand = r
		}
	}
}

func WithGreedyMetrics(collector metrics.Collector) GreedyOption {
	return func(g *Greedy) {
		if collector != nil {
			g.metrics = collector
		}
	}
}

func NewGreedy(options ...GreedyOption) (*Greedy, error) {
	g := &Greedy{ // Default values
		evaluate: game.EvaluateWeights,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	if g.epsilon < 0 || g.epsilon > 1 {
		return nil, fmt.Errorf("%w: epsilon %v is outside [0, 1]", ErrInvalidConfiguration, g.epsilon)
	}
	if g.rand == nil {
		g.rand = newRand()
	}
	return g, nil
}

func (g *Greedy) ComputerMove(board *game.Board, self, opponent game.Color) (game.Cell, bool, error) {
	moves := game.LegalMoves(board, self)
	if len(moves) == 0 {
		return game.Cell{}, false, nil
	}
	g.metrics.Start("greedy")
	dests := moves.Destinations()

	if g.epsilon > 0 && g.rand.Float64() < g.epsilon {
		move := dests[g.rand.Intn(len(dests))]
		log.Debug().Stringer("move", move).Msg("greedy exploring")
		return move, true, nil
	}

	i := utils.Argmax(dests, func(dest game.Cell) float64 {
		next, err := moves.Play(board, dest, self)
		if err != nil {
			panic(fmt.Sprintf("generated move %v could not be played: %v", dest, err))
		}
		g.metrics.AddNode()
		g.metrics.AddLeaf()
		return g.evaluate(&next, self)
	})
	return dests[i], true, nil
}
