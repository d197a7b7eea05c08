package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluateWeights(t *testing.T) {
	t.Run("adding a disc raises the score by its weight", func(t *testing.T) {
		b := NewBoard()
		base := EvaluateWeights(&b, Black)

		b[2][3] = Black
		after := EvaluateWeights(&b, Black)

		require.Equal(t, Weights[2][3], after-base)
	})

	t.Run("empty board scores zero", func(t *testing.T) {
		b := Board{}

		require.Zero(t, EvaluateWeights(&b, Black))
		require.Zero(t, EvaluateWeights(&b, White))
	})

	t.Run("corner counts against the opponent", func(t *testing.T) {
		b := Board{}
		b[0][0] = White

		require.Equal(t, -200.0, EvaluateWeights(&b, Black))
		require.Equal(t, 200.0, EvaluateWeights(&b, White))
	})

	t.Run("scenario board prefers the longest vertical flip", func(t *testing.T) {
		b := mustParse(t, `
			........
			...B....
			...W....
			...WB...
			...WW...
			........
			........
			........`)
		moves := LegalMoves(&b, Black)

		best, bestScore := Cell{}, 0.0
		for i, dest := range moves.Destinations() {
			next, err := moves.Play(&b, dest, Black)
			require.NoError(t, err)
			if score := EvaluateWeights(&next, Black); i == 0 || score > bestScore {
				best, bestScore = dest, score
			}
		}

		require.Equal(t, Cell{5, 3}, best, "Flipping the whole column should score highest")
	})

	t.Run("table is symmetric", func(t *testing.T) {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				require.Equal(t, Weights[row][col], Weights[col][row])
				require.Equal(t, Weights[row][col], Weights[Size-1-row][col])
				require.Equal(t, Weights[row][col], Weights[row][Size-1-col])
			}
		}
	})
}

func TestEvaluatorsAreAntisymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	colors := []Color{Empty, Black, White}

	for i := 0; i < 50; i++ {
		var b Board
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				b[row][col] = colors[r.Intn(len(colors))]
			}
		}
		for name, evaluate := range Evaluators {
			require.Equal(t, evaluate(&b, Black), -evaluate(&b, White),
				"%s should score the same board with opposite signs", name)
		}
	}
}

func TestEvaluateMobility(t *testing.T) {
	t.Run("opening is balanced", func(t *testing.T) {
		b := NewBoard()

		require.Zero(t, EvaluateMobility(&b, Black))
	})

	t.Run("no moves for anyone scores zero", func(t *testing.T) {
		b := Board{}

		require.Zero(t, EvaluateMobility(&b, Black))
	})
}
