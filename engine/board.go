// Package engine implements the 2048 board mechanics.
//
// Boards are flat comparable value types: every simulation produces a new
// Board, so a caller can rank several hypothetical futures against the same
// starting position without defensive copies or locking.
package engine

// BoardSize is the side length of the square grid.
const BoardSize = 4

// Board is a 4x4 grid of tile values. 0 marks an empty cell; every non-zero
// cell holds a power of two. Board is comparable, so b1 == b2 tests exact
// cell-for-cell equality.
type Board [BoardSize][BoardSize]int

// Direction identifies one of the four swipe directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	NumDirections = 4
)

// Directions lists the four directions in their fixed evaluation order.
var Directions = [NumDirections]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four enumerated directions.
func (d Direction) Valid() bool { return d < NumDirections }

// String returns the lowercase wire name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// Transpose returns the board with rows and columns swapped. It is its own
// inverse; composing it with ReverseRows reduces vertical moves to
// horizontal ones.
func Transpose(b Board) Board {
	var out Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			out[c][r] = b[r][c]
		}
	}
	return out
}

// ReverseRows returns the board with every row's cells in reverse order.
// Like Transpose it is an involution.
func ReverseRows(b Board) Board {
	var out Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			out[r][BoardSize-1-c] = b[r][c]
		}
	}
	return out
}

// Highest returns the largest tile value on the board, 0 for an empty board.
func (b Board) Highest() int {
	highest := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] > highest {
				highest = b[r][c]
			}
		}
	}
	return highest
}

// EmptyCount returns the number of empty cells.
func (b Board) EmptyCount() int {
	count := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == 0 {
				count++
			}
		}
	}
	return count
}
