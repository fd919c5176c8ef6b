// Package agent implements the decision layer for the 2048 player:
// heuristic board scoring, depth-bounded lookahead over the agent's own
// moves, move selection, and the reward signal computed from observed
// state transitions.
//
// The package is pure: it reads observed states and simulates boards, but
// never talks to the server and never mutates a caller's board.
package agent

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/yuvnahr/RL-2048-agent/engine"
)

// ErrMalformedState reports an observed GameState whose fields fail
// validation. The agent fails fast on these instead of substituting
// defaults that would silently corrupt heuristic scoring.
var ErrMalformedState = errors.New("agent: malformed game state")

// GameState is one observation of the remote game. The agent only reads
// these fields; the server owns the board, the cumulative score, the
// highest-tile record and the terminal flag.
type GameState struct {
	Board    engine.Board
	Score    int
	Highest  int
	GameOver bool
}

// Validate checks the invariants an observed state must hold: every cell
// is empty or a power of two, and score and highest are non-negative.
func (s GameState) Validate() error {
	if s.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrMalformedState, s.Score)
	}
	if s.Highest < 0 {
		return fmt.Errorf("%w: negative highest tile %d", ErrMalformedState, s.Highest)
	}
	for r := 0; r < engine.BoardSize; r++ {
		for c := 0; c < engine.BoardSize; c++ {
			v := s.Board[r][c]
			if v == 0 {
				continue
			}
			if v < 2 || bits.OnesCount(uint(v)) != 1 {
				return fmt.Errorf("%w: cell (%d,%d) = %d is neither empty nor a power of two",
					ErrMalformedState, r, c, v)
			}
		}
	}
	return nil
}
