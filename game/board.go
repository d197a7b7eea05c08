package game

import "strings"

// Board is a fixed 8x8 grid of cell occupancies. It is a value type: assigning
// or passing a Board by value makes a deep copy.
type Board [Size][Size]Color

// NewBoard returns the standard opening position
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// Copy returns a deep copy of the board
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) At(c Cell) Color {
	return b[c.Row][c.Col]
}

func (b *Board) Set(c Cell, color Color) {
	b[c.Row][c.Col] = color
}

// Count returns the number of cells holding color
func (b *Board) Count(color Color) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == color {
				n++
			}
		}
	}
	return n
}

// Owned lists the cells holding color in row-major order
func (b *Board) Owned(color Color) []Cell {
	cells := []Cell{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == color {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Full reports whether no empty cell remains
func (b *Board) Full() bool {
	return b.Count(Empty) == 0
}

// Winner compares disc counts. Empty means a draw.
func (b *Board) Winner() Color {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the String format back. Rows may be separated by newlines
// or spaces; any other rune than B, W or . is rejected.
func ParseBoard(s string) (Board, error) {
	var b Board
	rows := strings.Fields(s)
	if len(rows) != Size {
		return b, errBoardFormat("expected 8 rows")
	}
	for row, line := range rows {
		if len(line) != Size {
			return b, errBoardFormat("expected 8 columns")
		}
		for col, r := range line {
			switch r {
			case 'B':
				b[row][col] = Black
			case 'W':
				b[row][col] = White
			case '.':
				b[row][col] = Empty
			default:
				return b, errBoardFormat("unexpected cell " + string(r))
			}
		}
	}
	return b, nil
}

type errBoardFormat string

func (e errBoardFormat) Error() string {
	return "malformed board: " + string(e)
}
