package trainer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvnahr/RL-2048-agent/engine"
	"github.com/yuvnahr/RL-2048-agent/engine/agent"
)

// scriptedServer replays a fixed sequence of post-move observations. Reset
// rewinds the script so one server can serve several episodes.
type scriptedServer struct {
	initial    agent.GameState
	moveStates []agent.GameState
	moveErr    error

	resets int
	moves  []engine.Direction
	idx    int
}

func (s *scriptedServer) Reset(ctx context.Context) error {
	s.resets++
	s.idx = 0
	return nil
}

func (s *scriptedServer) State(ctx context.Context) (agent.GameState, error) {
	return s.initial, nil
}

func (s *scriptedServer) Move(ctx context.Context, d engine.Direction) (agent.GameState, error) {
	if s.moveErr != nil {
		return agent.GameState{}, s.moveErr
	}
	s.moves = append(s.moves, d)
	state := s.moveStates[s.idx]
	s.idx++
	return state, nil
}

// fullBoard has no legal move in any direction.
var fullBoard = engine.Board{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func newTestTrainer(srv Server) *Trainer {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(srv, agent.NewPolicy(0, nil), log)
}

func twoTurnScript() *scriptedServer {
	return &scriptedServer{
		initial: agent.GameState{
			Board: engine.Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 2, 0, 0},
			},
			Score:   0,
			Highest: 2,
		},
		moveStates: []agent.GameState{
			{
				Board: engine.Board{
					{0, 0, 0, 0},
					{0, 0, 0, 0},
					{0, 0, 0, 0},
					{0, 0, 0, 4},
				},
				Score:   4,
				Highest: 4,
			},
			{
				Board:    fullBoard,
				Score:    40,
				Highest:  4,
				GameOver: true,
			},
		},
	}
}

func TestPlayEpisodeCollectsExperience(t *testing.T) {
	srv := twoTurnScript()
	tr := newTestTrainer(srv)

	ep, err := tr.PlayEpisode(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, srv.resets)
	assert.NotEqual(t, uuid.Nil, ep.ID)
	assert.Equal(t, 2, ep.Moves)
	assert.Equal(t, 40, ep.FinalScore)
	assert.Equal(t, 4, ep.HighestTile)

	require.Len(t, ep.Records, 2)
	assert.Equal(t, srv.moves[0], ep.Records[0].Action)
	assert.Equal(t, srv.initial, ep.Records[0].State)

	// Turn 1: score gain 4, no highest bonus (4/128 = 0), 15 empty cells,
	// move penalty. Turn 2: score gain 36, board full, loss penalty.
	assert.Equal(t, 4+30-1, ep.Records[0].Reward)
	assert.Equal(t, 36-500-1, ep.Records[1].Reward)
}

func TestPlayEpisodeAlreadyTerminal(t *testing.T) {
	srv := &scriptedServer{
		initial: agent.GameState{Board: fullBoard, Score: 12, Highest: 4, GameOver: true},
	}
	tr := newTestTrainer(srv)

	ep, err := tr.PlayEpisode(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ep.Records)
	assert.Equal(t, 0, ep.Moves)
	assert.Equal(t, 12, ep.FinalScore)
}

func TestPlayEpisodeTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	srv := twoTurnScript()
	srv.moveErr = boom
	tr := newTestTrainer(srv)

	_, err := tr.PlayEpisode(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "submit")
}

func TestTrainPlaysRequestedGames(t *testing.T) {
	srv := twoTurnScript()
	tr := newTestTrainer(srv)

	episodes, err := tr.Train(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, episodes, 2)
	assert.Equal(t, 2, srv.resets)
	assert.Len(t, episodes[0].Records, 2)
	assert.NotEqual(t, episodes[0].ID, episodes[1].ID)
}
