package game

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of rows and columns of an Othello board
const Size = 8

// Cells is the number of cells on a board
const Cells = Size * Size

var ErrInvalidMove = errors.New("invalid move")

// Color is the occupancy state of a cell, and the tag of a player
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other player's color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Empty, fmt.Errorf("unknown color %q", s)
	}
}

// Cell identifies a position on the board. Its occupancy lives on the Board.
type Cell struct {
	Row int
	Col int
}

func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Evaluates a board to a score from player's perspective, higher is better.
// Implementations must not modify the board.
type Evaluator func(board *Board, player Color) float64
