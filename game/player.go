package game

import "othello/utils"

// Player is a color plus the cells it owns. The owned list is bookkeeping only,
// the board stays the source of truth.
type Player struct {
	Color Color
	Owned []Cell
}

func NewPlayer(color Color) *Player {
	return &Player{Color: color, Owned: []Cell{}}
}

// LegalMoves returns this player's legal moves on board
func (p *Player) LegalMoves(board *Board) Moves {
	return LegalMoves(board, p.Color)
}

// Sync rebuilds the owned list from the board
func (p *Player) Sync(board *Board) {
	p.Owned = board.Owned(p.Color)
}

// Take records a cell as owned. Owning it already is a no-op.
func (p *Player) Take(c Cell) {
	if utils.FindIndex(p.Owned, c) < 0 {
		p.Owned = append(p.Owned, c)
	}
}

// Release drops a cell from the owned list
func (p *Player) Release(c Cell) {
	if i := utils.FindIndex(p.Owned, c); i >= 0 {
		p.Owned = append(p.Owned[:i], p.Owned[i+1:]...)
	}
}

// TakeSpaces plays dest for actor on board in place and moves every captured
// cell from the opponent's owned list to the actor's.
func TakeSpaces(board *Board, actor, opponent *Player, moves Moves, dest Cell) error {
	next, err := moves.Play(board, dest, actor.Color)
	if err != nil {
		return err
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c := Cell{Row: row, Col: col}
			if board.At(c) != next.At(c) {
				opponent.Release(c)
				actor.Take(c)
			}
		}
	}
	*board = next
	return nil
}
