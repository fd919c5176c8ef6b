// Package client implements the HTTP/JSON client for the remote 2048 game
// server. The server owns the authoritative board and the tile-spawn
// randomness; this client only carries observations and moves across the
// wire and never retries or interprets transport failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/yuvnahr/RL-2048-agent/engine"
	"github.com/yuvnahr/RL-2048-agent/engine/agent"
)

// Client talks to one game server over JSON/HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL (e.g.
// "http://localhost:4000"). A nil httpClient falls back to
// http.DefaultClient; timeouts and retries are the caller's policy.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// stateResponse mirrors the server's state payload. Pointer fields make
// missing keys detectable: a response without a board or score is a
// malformed state, never a defaulted one.
type stateResponse struct {
	Board    *engine.Board `json:"board"`
	Score    *int          `json:"score"`
	Highest  *int          `json:"highest"`
	GameOver bool          `json:"gameOver"`
}

// moveRequest is the body of a move submission.
type moveRequest struct {
	Direction string `json:"direction"`
}

func (r *stateResponse) toGameState() (agent.GameState, error) {
	if r.Board == nil || r.Score == nil || r.Highest == nil {
		return agent.GameState{}, fmt.Errorf("%w: response missing board, score or highest",
			agent.ErrMalformedState)
	}
	state := agent.GameState{
		Board:    *r.Board,
		Score:    *r.Score,
		Highest:  *r.Highest,
		GameOver: r.GameOver,
	}
	if err := state.Validate(); err != nil {
		return agent.GameState{}, err
	}
	return state, nil
}

// Reset clears the server-side game so a new episode can start.
func (c *Client) Reset(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/reset", nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// State fetches the current observation: board, cumulative score, highest
// tile seen and the terminal flag.
func (c *Client) State(ctx context.Context) (agent.GameState, error) {
	resp, err := c.do(ctx, http.MethodGet, "/state", nil)
	if err != nil {
		return agent.GameState{}, err
	}
	return decodeState(resp)
}

// Move submits a direction and returns the post-move observation.
func (c *Client) Move(ctx context.Context, d engine.Direction) (agent.GameState, error) {
	if !d.Valid() {
		return agent.GameState{}, engine.ErrInvalidDirection
	}
	body, err := json.Marshal(moveRequest{Direction: d.String()})
	if err != nil {
		return agent.GameState{}, fmt.Errorf("client: encode move: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/move", bytes.NewReader(body))
	if err != nil {
		return agent.GameState{}, err
	}
	return decodeState(resp)
}

// do issues one request and checks the status code. The caller owns the
// response body on success.
func (c *Client) do(ctx context.Context, method, path string, body *bytes.Reader) (*http.Response, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("client: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("client: %s %s: unexpected status %s", method, path, resp.Status)
	}
	return resp, nil
}

func decodeState(resp *http.Response) (agent.GameState, error) {
	defer resp.Body.Close()
	var sr stateResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return agent.GameState{}, fmt.Errorf("client: decode state: %w", err)
	}
	return sr.toGameState()
}
