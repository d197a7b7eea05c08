package searcher

import "othello/meta"

// Hyperparameters for MCTS

// CSquared is the square of the UCT exploration constant (C = sqrt(2))
const CSquared = meta.EXPLORATION_SQUARED

// A rollout is scored as a win only when the engine ends with strictly more
// discs than its opponent; a draw counts as a loss.
const WIN = 1
const LOSS = 0
