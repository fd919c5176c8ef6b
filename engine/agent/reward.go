package agent

import "fmt"

// Reward shaping constants.
const (
	rewardHighestBonus = 100  // per rewardHighestStep of a newly-reached highest tile
	rewardHighestStep  = 128  // highest-tile bonus scales with floor(highest/128)
	rewardEmptyWeight  = 2    // per empty cell in the new state
	rewardLossPenalty  = -500 // applied when the new state is terminal
	rewardMovePenalty  = -1   // flat cost per move, to discourage stalling
)

// Reward scores the transition between two consecutively observed states:
// score gained, a bonus for reaching a new record tile, a bonus for open
// space, a heavy penalty for losing, and a flat per-move cost. It performs
// no simulation and is a pure function of the two observations.
func Reward(newState, oldState GameState) (int, error) {
	if err := oldState.Validate(); err != nil {
		return 0, fmt.Errorf("old state: %w", err)
	}
	if err := newState.Validate(); err != nil {
		return 0, fmt.Errorf("new state: %w", err)
	}

	reward := newState.Score - oldState.Score
	if newState.Highest > oldState.Highest {
		reward += rewardHighestBonus * (newState.Highest / rewardHighestStep)
	}
	reward += rewardEmptyWeight * newState.Board.EmptyCount()
	if newState.GameOver {
		reward += rewardLossPenalty
	}
	return reward + rewardMovePenalty, nil
}
