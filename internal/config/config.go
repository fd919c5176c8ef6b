// Package config loads trainer settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/yuvnahr/RL-2048-agent/engine/agent"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultServerURL = "http://localhost:4000"
	DefaultGames     = 50
	DefaultLogLevel  = "info"
)

// Config holds the settings for one training run.
type Config struct {
	ServerURL string // RL2048_SERVER_URL — base URL of the game server
	Games     int    // RL2048_GAMES — number of episodes to play
	Lookahead int    // RL2048_LOOKAHEAD — extra plies beyond the first move
	LogLevel  string // RL2048_LOG_LEVEL — logrus level name
}

// Load reads .env if present, then the process environment. Unset values
// fall back to defaults; unparsable or out-of-range numbers are an error
// rather than a silent default.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Config{
		ServerURL: DefaultServerURL,
		Games:     DefaultGames,
		Lookahead: agent.DefaultLookahead,
		LogLevel:  DefaultLogLevel,
	}

	if v := os.Getenv("RL2048_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("RL2048_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	var err error
	if cfg.Games, err = intEnv("RL2048_GAMES", cfg.Games); err != nil {
		return Config{}, err
	}
	if cfg.Lookahead, err = intEnv("RL2048_LOOKAHEAD", cfg.Lookahead); err != nil {
		return Config{}, err
	}

	if cfg.Games < 1 {
		return Config{}, fmt.Errorf("config: RL2048_GAMES must be >= 1, got %d", cfg.Games)
	}
	if cfg.Lookahead < 0 {
		return Config{}, fmt.Errorf("config: RL2048_LOOKAHEAD must be >= 0, got %d", cfg.Lookahead)
	}
	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer", name, v)
	}
	return n, nil
}
