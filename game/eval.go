package game

// Weights is the positional value of each cell. Corners are worth the most,
// cells next to corners are penalized since they give the corner away.
var Weights = [Size][Size]float64{
	{200, -70, 30, 25, 25, 30, -70, 200},
	{-70, -100, -10, -10, -10, -10, -100, -70},
	{30, -10, 2, 2, 2, 2, -10, 30},
	{25, -10, 2, 2, 2, 2, -10, 25},
	{25, -10, 2, 2, 2, 2, -10, 25},
	{30, -10, 2, 2, 2, 2, -10, 30},
	{-70, -100, -10, -10, -10, -10, -100, -70},
	{200, -70, 30, 25, 25, 30, -70, 200},
}

// EvaluateWeights sums the positional weights of player's cells minus those of
// the opponent's cells. Empty cells contribute nothing.
func EvaluateWeights(board *Board, player Color) float64 {
	opponent := player.Opponent()
	self, other := 0.0, 0.0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch board[row][col] {
			case Empty:
			case player:
				self += Weights[row][col]
			case opponent:
				other += Weights[row][col]
			}
		}
	}
	return self - other
}

// EvaluateDiscs is the plain disc differential from player's perspective
func EvaluateDiscs(board *Board, player Color) float64 {
	return float64(board.Count(player) - board.Count(player.Opponent()))
}

// EvaluateMobility scores the difference in legal move counts, normalized to [-1, 1]
func EvaluateMobility(board *Board, player Color) float64 {
	self := float64(len(LegalMoves(board, player)))
	other := float64(len(LegalMoves(board, player.Opponent())))
	return normalize(self, other)
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

// Evaluators names the built-in evaluators for configuration files
var Evaluators = map[string]Evaluator{
	"weights":  EvaluateWeights,
	"discs":    EvaluateDiscs,
	"mobility": EvaluateMobility,
}
