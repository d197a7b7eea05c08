package searcher

import "othello/game"

// node is a minimax tree node. Children are owned exclusively by their parent
// and the whole tree is dropped after the decision.
type node struct {
	move     game.Cell // move that led here, unset on the root
	depth    int
	isMax    bool
	isRoot   bool
	weight   float64 // evaluation on leaves, backed-up value once searched
	children []*node
	best     *node // child that produced weight
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// mctsNode is a Monte Carlo tree node. parent is a navigation link used for
// UCT and backpropagation; ownership runs from parent to children only.
type mctsNode struct {
	parent   *mctsNode
	children []*mctsNode
	board    game.Board // snapshot after move
	move     game.Cell
	depth    int
	wins     int
	visits   int
}

func newMCTSNode(parent *mctsNode, board game.Board, move game.Cell) *mctsNode {
	depth := 0
	if parent != nil {
		depth = parent.depth + 1
	}
	return &mctsNode{
		parent: parent,
		board:  board,
		move:   move,
		depth:  depth,
	}
}

// Backup records one simulation and returns the parent to continue with
func (n *mctsNode) Backup(win bool) *mctsNode {
	n.visits++
	if win {
		n.wins += WIN
	}
	return n.parent
}
