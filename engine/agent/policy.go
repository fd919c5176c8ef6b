package agent

import (
	"math/rand/v2"

	"github.com/yuvnahr/RL-2048-agent/engine"
)

// DefaultLookahead is the number of additional own-move plies explored
// beyond the immediate candidate move (three plies total).
const DefaultLookahead = 2

// Policy selects moves by simulating all four directions from the observed
// board and ranking the legal ones with lookahead search.
type Policy struct {
	depth int
	rng   *rand.Rand
}

// NewPolicy returns a policy searching depth extra plies beyond each
// candidate move. The rng feeds only the dead-state fallback; passing nil
// seeds a fresh generator.
func NewPolicy(depth int, rng *rand.Rand) *Policy {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Policy{depth: depth, rng: rng}
}

// ChooseMove picks the direction whose simulated outcome has the best
// reachable heuristic score. Directions are tried in Up, Down, Left, Right
// order and ties keep the first one found.
//
// When no direction is legal the state is already terminal; ChooseMove
// then degrades to a uniformly random direction so the caller always has
// a move to submit. The server will reject it as a no-op — the fallback is
// dead-state plumbing, not part of decision quality.
func (p *Policy) ChooseMove(state GameState) (engine.Direction, error) {
	if err := state.Validate(); err != nil {
		return 0, err
	}

	var bestDir engine.Direction
	bestScore := 0
	found := false
	for _, d := range engine.Directions {
		res, _ := engine.Move(state.Board, d)
		if !res.Moved {
			continue
		}
		if s := BestReachableScore(res.Board, p.depth); !found || s > bestScore {
			bestDir, bestScore = d, s
			found = true
		}
	}
	if !found {
		return engine.Directions[p.rng.IntN(len(engine.Directions))], nil
	}
	return bestDir, nil
}
