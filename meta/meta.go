// meta/meta.go
package meta

// MAX_DEPTH defines the default minimax search depth, the root counting as one level.
const MAX_DEPTH = 4

// ITERATIONS defines the default number of iterations for MCTS.
const ITERATIONS = 500

// NUM_GAMES defines the default number of games per match up.
const NUM_GAMES = 10

// MAX_TURNS caps a game loop. A game has at most 60 placements plus passes.
const MAX_TURNS = 200

// EXPLORATION_SQUARED is C^2 in the UCT exploration term.
const EXPLORATION_SQUARED = 2.0

// EVALUATOR names the default board evaluator.
const EVALUATOR = "weights"

// OUT_DIR is where experiment results are written by default.
const OUT_DIR = "results"
