// Package trainer drives full games against a remote 2048 server: it asks
// the policy for a move, submits it, scores the resulting transition, and
// accumulates the experience trace for each episode.
//
// The trace is held in memory only and handed back to the caller; nothing
// is persisted. Episodes run strictly one at a time.
package trainer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yuvnahr/RL-2048-agent/engine"
	"github.com/yuvnahr/RL-2048-agent/engine/agent"
)

// Server is the remote game the trainer plays against. The HTTP client in
// internal/client satisfies it; tests script it directly. Transport errors
// pass through unchanged — the trainer never retries.
type Server interface {
	Reset(ctx context.Context) error
	State(ctx context.Context) (agent.GameState, error)
	Move(ctx context.Context, d engine.Direction) (agent.GameState, error)
}

// ExperienceRecord captures one turn: the state observed before the move,
// the chosen direction, and the reward computed from the transition.
type ExperienceRecord struct {
	State  agent.GameState
	Action engine.Direction
	Reward int
}

// Episode is the ordered experience trace of one full game.
type Episode struct {
	ID          uuid.UUID
	Records     []ExperienceRecord
	Moves       int
	FinalScore  int
	HighestTile int
}

// Trainer plays episodes with a fixed policy against one server.
type Trainer struct {
	server Server
	policy *agent.Policy
	log    *logrus.Logger
}

// New returns a trainer. A nil logger falls back to the logrus standard
// logger.
func New(server Server, policy *agent.Policy, log *logrus.Logger) *Trainer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Trainer{server: server, policy: policy, log: log}
}

// PlayEpisode resets the server and plays one game to termination,
// collecting one ExperienceRecord per move.
func (t *Trainer) PlayEpisode(ctx context.Context) (Episode, error) {
	ep := Episode{ID: uuid.New()}

	if err := t.server.Reset(ctx); err != nil {
		return ep, fmt.Errorf("reset: %w", err)
	}
	state, err := t.server.State(ctx)
	if err != nil {
		return ep, fmt.Errorf("fetch state: %w", err)
	}

	for !state.GameOver {
		action, err := t.policy.ChooseMove(state)
		if err != nil {
			return ep, fmt.Errorf("choose move: %w", err)
		}
		next, err := t.server.Move(ctx, action)
		if err != nil {
			return ep, fmt.Errorf("submit %s: %w", action, err)
		}
		reward, err := agent.Reward(next, state)
		if err != nil {
			return ep, fmt.Errorf("reward: %w", err)
		}
		ep.Records = append(ep.Records, ExperienceRecord{
			State:  state,
			Action: action,
			Reward: reward,
		})
		ep.Moves++
		state = next
	}

	ep.FinalScore = state.Score
	ep.HighestTile = state.Highest
	t.log.WithFields(logrus.Fields{
		"episode": ep.ID,
		"moves":   ep.Moves,
		"score":   ep.FinalScore,
		"highest": ep.HighestTile,
	}).Info("game over")
	return ep, nil
}

// Train plays games episodes back to back and returns every collected
// trace. The caller decides what to do with the experience; the trainer
// only logs aggregate progress.
func (t *Trainer) Train(ctx context.Context, games int) ([]Episode, error) {
	episodes := make([]Episode, 0, games)
	experiences := 0
	for i := 0; i < games; i++ {
		t.log.WithFields(logrus.Fields{"game": i + 1, "of": games}).Info("playing game")
		ep, err := t.PlayEpisode(ctx)
		if err != nil {
			return episodes, fmt.Errorf("game %d: %w", i+1, err)
		}
		episodes = append(episodes, ep)
		experiences += len(ep.Records)
	}
	t.log.WithFields(logrus.Fields{
		"games":       games,
		"experiences": experiences,
	}).Info("training run complete")
	return episodes, nil
}
