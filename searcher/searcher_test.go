package searcher

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, s string) game.Board {
	t.Helper()
	b, err := game.ParseBoard(s)
	require.NoError(t, err, "Board literal should parse")
	return b
}

// scenarioBoard has a column of three white discs under a black one, so black
// flips the whole column by playing (5,3)
func scenarioBoard(t *testing.T) game.Board {
	return mustParse(t, `
		........
		...B....
		...W....
		...WB...
		...WW...
		........
		........
		........`)
}

// blockedBoard has discs of both colors but no legal move for either side
func blockedBoard(t *testing.T) game.Board {
	return mustParse(t, `
		B.......
		........
		........
		........
		........
		........
		........
		.......W`)
}

// randomPositions plays seeded random games and returns the positions reached
// along the way together with the side to move in each
func randomPositions(seed uint64, games int) ([]game.Board, []game.Color) {
	r := rand.New(rand.NewSource(seed))
	var boards []game.Board
	var movers []game.Color
	for i := 0; i < games; i++ {
		board := game.NewBoard()
		turn := game.Black
		passes := 0
		for passes < 2 {
			moves := game.LegalMoves(&board, turn)
			if len(moves) == 0 {
				passes++
				turn = turn.Opponent()
				continue
			}
			passes = 0
			boards = append(boards, board)
			movers = append(movers, turn)

			dests := moves.Destinations()
			next, err := moves.Play(&board, dests[r.Intn(len(dests))], turn)
			if err != nil {
				panic(err)
			}
			board = next
			turn = turn.Opponent()
		}
	}
	return boards, movers
}
