package game

import "fmt"

// Compass directions scanned when looking for anchors
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Moves maps each legal destination to the anchors that justify it. An anchor
// is a cell of the mover's color at the far end of an unbroken run of
// opponent discs starting next to the destination.
type Moves map[Cell][]Cell

// LegalMoves computes the legal moves of color on board. An empty result means
// the player must pass.
func LegalMoves(board *Board, color Color) Moves {
	moves := Moves{}
	opponent := color.Opponent()
	if opponent == Empty {
		return moves
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if board[row][col] != Empty {
				continue
			}
			var anchors []Cell
			for _, d := range directions {
				next := Cell{Row: row + d[0], Col: col + d[1]}
				run := 0
				for next.InBounds() && board.At(next) == opponent {
					run++
					next = Cell{Row: next.Row + d[0], Col: next.Col + d[1]}
				}
				if run > 0 && next.InBounds() && board.At(next) == color {
					anchors = append(anchors, next)
				}
			}
			if len(anchors) > 0 {
				moves[Cell{Row: row, Col: col}] = anchors
			}
		}
	}
	return moves
}

// Destinations returns the legal destinations in row-major order. Searches use
// this order so their tie-breaks are reproducible.
func (m Moves) Destinations() []Cell {
	cells := make([]Cell, 0, len(m))
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c := Cell{Row: row, Col: col}
			if _, ok := m[c]; ok {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// Play applies the move to dest using the anchors recorded for it
func (m Moves) Play(board *Board, dest Cell, mover Color) (Board, error) {
	anchors, ok := m[dest]
	if !ok {
		return *board, fmt.Errorf("%w: %v is not a legal destination", ErrInvalidMove, dest)
	}
	return board.Apply(dest, anchors, mover)
}

// Apply returns a copy of the board with dest claimed by mover and every cell
// between dest and each anchor flipped. The receiver is never modified.
func (b Board) Apply(dest Cell, anchors []Cell, mover Color) (Board, error) {
	original := b
	if mover.Opponent() == Empty {
		return original, fmt.Errorf("%w: no mover", ErrInvalidMove)
	}
	if len(anchors) == 0 {
		return original, fmt.Errorf("%w: %v has no anchors", ErrInvalidMove, dest)
	}
	if !dest.InBounds() || b.At(dest) != Empty {
		return original, fmt.Errorf("%w: %v is not an empty cell", ErrInvalidMove, dest)
	}

	for _, anchor := range anchors {
		dr, dc, err := step(anchor, dest)
		if err != nil {
			return original, err
		}
		cell := anchor
		for {
			b.Set(cell, mover)
			if cell == dest {
				break
			}
			cell = Cell{Row: cell.Row + dr, Col: cell.Col + dc}
		}
	}
	return b, nil
}

// step returns the unit direction from anchor towards dest
func step(anchor, dest Cell) (int, int, error) {
	if !anchor.InBounds() || anchor == dest {
		return 0, 0, fmt.Errorf("%w: bad anchor %v for %v", ErrInvalidMove, anchor, dest)
	}
	dr, dc := dest.Row-anchor.Row, dest.Col-anchor.Col
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return 0, 0, fmt.Errorf("%w: anchor %v is not in line with %v", ErrInvalidMove, anchor, dest)
	}
	return sign(dr), sign(dc), nil
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
