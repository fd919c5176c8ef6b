package agent

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/yuvnahr/RL-2048-agent/engine"
)

func TestChooseMovePrefersBestFirstMove(t *testing.T) {
	// At depth 0 the policy ranks first moves by the immediate heuristic.
	// Moving right parks the merged 4 in the bottom-right corner (134),
	// beating left (84) and up (80); down is a no-op.
	p := NewPolicy(0, rand.New(rand.NewPCG(1, 2)))
	state := GameState{Board: engine.Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 2, 0, 0},
	}}
	got, err := p.ChooseMove(state)
	if err != nil {
		t.Fatalf("ChooseMove: %v", err)
	}
	if got != engine.Right {
		t.Fatalf("ChooseMove = %s, want right", got)
	}
}

func TestChooseMoveTieKeepsFirstDirection(t *testing.T) {
	// A lone tile in the top-left corner: up and left are no-ops, down and
	// right both score 82 at depth 0. The tie goes to down, which comes
	// first in the fixed up, down, left, right order.
	p := NewPolicy(0, rand.New(rand.NewPCG(1, 2)))
	state := GameState{Board: engine.Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}}
	got, err := p.ChooseMove(state)
	if err != nil {
		t.Fatalf("ChooseMove: %v", err)
	}
	if got != engine.Down {
		t.Fatalf("ChooseMove = %s, want down", got)
	}
}

func TestChooseMoveAlwaysLegalWhenAvailable(t *testing.T) {
	rng := rand.New(rand.NewPCG(33, 77))
	p := NewPolicy(DefaultLookahead, rng)
	for i := 0; i < 50; i++ {
		b := randomBoard(rng)
		if engine.Terminal(b) {
			continue
		}
		dir, err := p.ChooseMove(GameState{Board: b})
		if err != nil {
			t.Fatalf("ChooseMove(%v): %v", b, err)
		}
		res, err := engine.Move(b, dir)
		if err != nil {
			t.Fatalf("Move(%s): %v", dir, err)
		}
		if !res.Moved {
			t.Fatalf("ChooseMove(%v) = %s, which is a no-op", b, dir)
		}
	}
}

func TestChooseMoveTerminalFallback(t *testing.T) {
	p := NewPolicy(DefaultLookahead, rand.New(rand.NewPCG(3, 4)))
	state := GameState{Board: terminalBoard, GameOver: true}
	for i := 0; i < 20; i++ {
		dir, err := p.ChooseMove(state)
		if err != nil {
			t.Fatalf("ChooseMove(terminal): %v", err)
		}
		if !dir.Valid() {
			t.Fatalf("ChooseMove(terminal) = %d, outside the direction enum", dir)
		}
	}
}

func TestChooseMoveMalformedState(t *testing.T) {
	p := NewPolicy(DefaultLookahead, nil)
	state := GameState{Board: engine.Board{{3, 0, 0, 0}}}
	if _, err := p.ChooseMove(state); !errors.Is(err, ErrMalformedState) {
		t.Fatalf("ChooseMove error = %v, want ErrMalformedState", err)
	}
}
