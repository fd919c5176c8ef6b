package agent

import "github.com/yuvnahr/RL-2048-agent/engine"

// terminalScore is returned when a searched position has no legal move.
// It must dominate every legitimate heuristic value so that dead branches
// are never preferred over live ones.
const terminalScore = -10000

// BestReachableScore explores the agent's own move choices depth plies
// ahead and returns the best heuristic score found. Depth 0 scores the
// board as-is; illegal (no-op) moves are never explored.
//
// The random tile spawned between moves is deliberately not modeled: this
// is a best-case lookahead over own-move sequences, not an expectimax.
// The search also carries no transposition cache, so it expands up to
// 4^depth boards; both are intentional tradeoffs at the shallow fixed
// depth the policy uses, not missing optimizations.
func BestReachableScore(b engine.Board, depth int) int {
	if depth <= 0 {
		return Score(b)
	}

	best := terminalScore
	for _, d := range engine.Directions {
		res, _ := engine.Move(b, d)
		if !res.Moved {
			continue
		}
		if s := BestReachableScore(res.Board, depth-1); s > best {
			best = s
		}
	}
	return best
}
