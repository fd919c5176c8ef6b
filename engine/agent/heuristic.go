package agent

import "github.com/yuvnahr/RL-2048-agent/engine"

// Heuristic weights. These are fixed hand-picked constants, not learned
// parameters; they are named here so the heuristic stays swappable.
const (
	weightCorner = 100 // highest tile sits in the bottom-right corner
	weightEmpty  = 2   // per empty cell
	weightMono   = 50  // bottom row is non-increasing left to right
)

// Score estimates how favorable a board is for continued play. It is a
// pure function of the board with no game history: highest tile plus
// bonuses for open space, corner placement of the highest tile, and a
// monotone bottom row.
func Score(b engine.Board) int {
	highest := b.Highest()
	score := highest + weightEmpty*b.EmptyCount()
	if b[engine.BoardSize-1][engine.BoardSize-1] == highest {
		score += weightCorner
	}
	if bottomRowMonotonic(b) {
		score += weightMono
	}
	return score
}

// bottomRowMonotonic reports whether every bottom-row cell is >= its right
// neighbour.
func bottomRowMonotonic(b engine.Board) bool {
	row := b[engine.BoardSize-1]
	for c := 0; c < engine.BoardSize-1; c++ {
		if row[c] < row[c+1] {
			return false
		}
	}
	return true
}
