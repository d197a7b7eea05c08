package searcher

import (
	"fmt"
	"math"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type MinimaxOption func(m *Minimax)

// Minimax searches a depth-bounded game tree with alpha-beta pruning. Leaves are
// scored from the acting player's point of view by a single evaluator.
type Minimax struct {
	maxDepth int
	evaluate game.Evaluator
	pruning  bool
	metrics  metrics.Collector
}

func WithEvaluator(evaluate game.Evaluator) MinimaxOption {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithoutPruning searches every branch, the result is the same as with pruning
func WithoutPruning() MinimaxOption {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func WithMinimaxMetrics(collector metrics.Collector) MinimaxOption {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// NewMinimax counts maxDepth in tree levels with the root as the first one, so
// 2 looks at the acting player's moves only and 3 adds the opponent's replies.
func NewMinimax(maxDepth int, options ...MinimaxOption) (*Minimax, error) {
	if err := checkDepth(maxDepth); err != nil {
		return nil, err
	}
	m := &Minimax{ // Default values
		maxDepth: maxDepth,
		evaluate: game.EvaluateWeights,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m, nil
}

func checkDepth(maxDepth int) error {
	if maxDepth < 2 {
		return fmt.Errorf("%w: max depth %d is below 2", ErrInvalidConfiguration, maxDepth)
	}
	return nil
}

func (m *Minimax) ComputerMove(board *game.Board, self, opponent game.Color) (game.Cell, bool, error) {
	if err := checkDepth(m.maxDepth); err != nil {
		return game.Cell{}, false, err
	}
	m.metrics.Start("minimax")

	root := m.buildTree(board, self, opponent)
	value := m.search(root)

	if root.best == nil {
		return game.Cell{}, false, nil
	}
	log.Debug().
		Int("depth", m.maxDepth).
		Int("children", len(root.children)).
		Float64("value", value).
		Stringer("move", root.best.move).
		Msg("minimax decision")
	return root.best.move, true, nil
}

// buildTree grows the whole tree below a copy of board
func (m *Minimax) buildTree(board *game.Board, self, opponent game.Color) *node {
	root := &node{isRoot: true, isMax: true}
	m.metrics.AddNode()
	m.expand(root, *board, self, opponent)
	return root
}

// expand adds the children of n, or scores n when it is a leaf. The side to
// move alternates by depth parity: self on even depths, opponent on odd ones.
func (m *Minimax) expand(n *node, board game.Board, self, opponent game.Color) {
	mover := self
	if n.depth%2 != 0 {
		mover = opponent
	}

	moves := game.LegalMoves(&board, mover)
	if len(moves) == 0 || n.depth+1 >= m.maxDepth {
		n.weight = m.evaluate(&board, self)
		m.metrics.AddLeaf()
		return
	}

	n.children = make([]*node, 0, len(moves))
	for _, dest := range moves.Destinations() {
		next, err := moves.Play(&board, dest, mover)
		if err != nil { // Anchors come straight from the generator
			panic(fmt.Sprintf("generated move %v could not be played: %v", dest, err))
		}
		child := &node{
			move:  dest,
			depth: n.depth + 1,
			isMax: mover != self,
		}
		n.children = append(n.children, child)
		m.metrics.AddNode()
		m.expand(child, next, self, opponent)
	}
}

func (m *Minimax) search(root *node) float64 {
	return m.value(root, math.Inf(-1), math.Inf(1))
}

func (m *Minimax) value(n *node, alpha, beta float64) float64 {
	if n.isLeaf() {
		return n.weight
	}
	if n.isMax {
		return m.maxValue(n, alpha, beta)
	}
	return m.minValue(n, alpha, beta)
}

// maxValue keeps the last child among equals and stops once the best exceeds beta
func (m *Minimax) maxValue(n *node, alpha, beta float64) float64 {
	best := math.Inf(-1)
	for _, child := range n.children {
		if v := m.value(child, alpha, beta); v >= best {
			best = v
			n.best = child
		}
		if m.pruning && best > beta {
			m.metrics.AddCutoff()
			break
		}
		alpha = math.Max(alpha, best)
	}
	n.weight = best
	return best
}

// minValue keeps the last child among equals and stops once the best falls below alpha
func (m *Minimax) minValue(n *node, alpha, beta float64) float64 {
	best := math.Inf(1)
	for _, child := range n.children {
		if v := m.value(child, alpha, beta); v <= best {
			best = v
			n.best = child
		}
		if m.pruning && best < alpha {
			m.metrics.AddCutoff()
			break
		}
		beta = math.Min(beta, best)
	}
	n.weight = best
	return best
}
