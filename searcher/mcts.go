package searcher

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/utils"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS runs a fixed number of select, expand, simulate and backpropagate
// iterations from the current position and plays the most visited move.
type MCTS struct {
	iterations int
	rand       *rand.Rand
	root       *mctsNode
	metrics    metrics.Collector
}

func WithRand(r *rand.Rand) Option {
	return func(m *MCTS) {
		if r != nil {
			m.rand = r
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

func NewMCTS(iterations int, options ...Option) (*MCTS, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d iterations", ErrInvalidConfiguration, iterations)
	}
	m := &MCTS{ // Default values
		iterations: iterations,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rand == nil {
		m.rand = newRand()
	}
	return m, nil
}

func (m *MCTS) ComputerMove(board *game.Board, self, opponent game.Color) (game.Cell, bool, error) {
	moves := game.LegalMoves(board, self)
	if len(moves) == 0 {
		return game.Cell{}, false, nil
	}
	m.metrics.Start("mcts")

	m.root = newMCTSNode(nil, *board, game.Cell{})
	m.metrics.AddNode()
	for i := 0; i < m.iterations; i++ {
		m.simulate(self, opponent)
		m.metrics.AddEpisode()
	}

	best := m.root.findBestChild()
	if best == nil { // Never expanded
		log.Debug().Int("iterations", m.iterations).Msg("mcts root not expanded, playing first legal move")
		return moves.Destinations()[0], true, nil
	}
	log.Debug().
		Int("iterations", m.iterations).
		Int("visits", best.visits).
		Int("wins", best.wins).
		Stringer("move", best.move).
		Msg("mcts decision")
	return best.move, true, nil
}

func (m *MCTS) simulate(self, opponent game.Color) {
	leaf := selectLeaf(m.root)
	newNode := m.expand(leaf, self, opponent)
	win := m.rollout(newNode, self, opponent)
	backup(newNode, win)
}

// selectLeaf descends by UCT until it reaches a node without children
func selectLeaf(root *mctsNode) *mctsNode {
	node := root
	for len(node.children) > 0 {
		node = node.pickChild()
	}
	return node
}

// pickChild returns the child with the highest UCT score, the later one on ties
func (n *mctsNode) pickChild() *mctsNode {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	policy := newUCT(CSquared, float64(n.visits))
	i := utils.Argmax(n.children, func(child *mctsNode) float64 {
		return policy.score(child.wins, child.visits)
	})
	return n.children[i]
}

// expand grows every legal child of node and returns one at random to simulate.
// A node that already has children hands back one of them at random instead of
// selecting further, and a node whose side to move cannot play returns itself.
func (m *MCTS) expand(node *mctsNode, self, opponent game.Color) *mctsNode {
	if len(node.children) > 0 {
		return node.children[m.rand.Intn(len(node.children))]
	}

	mover := sideToMove(node.depth, self, opponent)
	moves := game.LegalMoves(&node.board, mover)
	if len(moves) == 0 {
		return node
	}

	node.children = make([]*mctsNode, 0, len(moves))
	for _, dest := range moves.Destinations() {
		next, err := moves.Play(&node.board, dest, mover)
		if err != nil { // Anchors come straight from the generator
			panic(fmt.Sprintf("generated move %v could not be played: %v", dest, err))
		}
		node.children = append(node.children, newMCTSNode(node, next, dest))
		m.metrics.AddNode()
	}
	return node.children[m.rand.Intn(len(node.children))]
}

// rollout plays uniformly random moves from node's position until neither side
// can move. A side without moves passes. It reports whether self ends with more
// discs than the opponent.
func (m *MCTS) rollout(node *mctsNode, self, opponent game.Color) bool {
	board := node.board
	turn := sideToMove(node.depth, self, opponent)
	passes := 0
	for passes < 2 {
		moves := game.LegalMoves(&board, turn)
		if len(moves) == 0 {
			passes++
			turn = turn.Opponent()
			continue
		}
		passes = 0

		dests := moves.Destinations()
		dest := dests[m.rand.Intn(len(dests))] // Random rollout policy
		next, err := moves.Play(&board, dest, turn)
		if err != nil {
			panic(fmt.Sprintf("generated move %v could not be played: %v", dest, err))
		}
		board = next
		turn = turn.Opponent()
	}
	m.metrics.AddFullPlayout()

	return board.Count(self) > board.Count(opponent)
}

func backup(newNode *mctsNode, win bool) {
	node := newNode
	for node != nil {
		parent := node.Backup(win)
		node = parent
	}
}

func sideToMove(depth int, self, opponent game.Color) game.Color {
	if depth%2 == 0 {
		return self
	}
	return opponent
}

// findBestChild returns the most visited child, the later one on ties, or nil
// when the node has no children
func (n *mctsNode) findBestChild() *mctsNode {
	i := utils.Argmax(n.children, func(child *mctsNode) float64 {
		return float64(child.visits)
	})
	if i < 0 {
		return nil
	}
	return n.children[i]
}

// Policy returns the visit count of every root child from the last search
func (m *MCTS) Policy() map[game.Cell]int {
	policy := map[game.Cell]int{}
	if m.root == nil {
		return policy
	}
	for _, child := range m.root.children {
		policy[child.move] = child.visits
	}
	return policy
}

// FormatPolicy renders a policy as "(r,c):visits" pairs in row-major order
func FormatPolicy(policy map[game.Cell]int) string {
	cells := make([]game.Cell, 0, len(policy))
	for c := range policy {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%v:%d", c, policy[c])
	}
	return strings.Join(parts, " ")
}
