package engine

import "errors"

// ErrInvalidDirection reports a direction value outside the four-member
// enumeration. It is a programming-contract violation, not a recoverable
// runtime condition; callers should propagate it, never retry.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// MoveResult is the outcome of simulating one move.
type MoveResult struct {
	Board     Board
	ScoreGain int
	// Moved is false when the move left the board unchanged. An unmoved
	// direction is illegal this turn and must be excluded from search.
	Moved bool
}

// mergeRowLeft compresses a row toward index 0 and merges equal neighbours,
// returning the merged row and the score gained. A tile merges with at most
// one neighbour per move: [2 2 2 2] becomes [4 4 0 0], never [8 0 0 0].
func mergeRowLeft(row [BoardSize]int) ([BoardSize]int, int) {
	var compact [BoardSize]int
	n := 0
	for _, v := range row {
		if v != 0 {
			compact[n] = v
			n++
		}
	}

	var out [BoardSize]int
	gain := 0
	w := 0
	for i := 0; i < n; i++ {
		if i+1 < n && compact[i] == compact[i+1] {
			merged := compact[i] * 2
			out[w] = merged
			gain += merged
			i++ // partner tile consumed by the merge
		} else {
			out[w] = compact[i]
		}
		w++
	}
	return out, gain
}

// moveTransforms maps each direction to the geometric normalization that
// reduces it to a left merge, and the inverse transforms applied afterwards.
// Down composes transpose then row reversal, so its inverse runs in the
// opposite order.
var moveTransforms = [NumDirections]struct {
	pre, post []func(Board) Board
}{
	Left:  {},
	Right: {pre: []func(Board) Board{ReverseRows}, post: []func(Board) Board{ReverseRows}},
	Up:    {pre: []func(Board) Board{Transpose}, post: []func(Board) Board{Transpose}},
	Down: {
		pre:  []func(Board) Board{Transpose, ReverseRows},
		post: []func(Board) Board{ReverseRows, Transpose},
	},
}

// Move simulates one move of the board in direction d. The input board is
// never mutated; the result carries the new board, the score gained from
// merges, and whether the board changed at all.
func Move(b Board, d Direction) (MoveResult, error) {
	if !d.Valid() {
		return MoveResult{}, ErrInvalidDirection
	}

	work := b
	for _, f := range moveTransforms[d].pre {
		work = f(work)
	}

	gain := 0
	for r := 0; r < BoardSize; r++ {
		merged, g := mergeRowLeft(work[r])
		work[r] = merged
		gain += g
	}

	for _, f := range moveTransforms[d].post {
		work = f(work)
	}

	return MoveResult{Board: work, ScoreGain: gain, Moved: work != b}, nil
}

// Terminal reports whether no direction can change the board, i.e. the
// game is over.
func Terminal(b Board) bool {
	for _, d := range Directions {
		res, _ := Move(b, d)
		if res.Moved {
			return false
		}
	}
	return true
}
