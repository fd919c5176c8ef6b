// Command rl2048 plays training games of 2048 against a remote game
// server, choosing moves with heuristic lookahead and logging the
// experience collected from each episode.
package main

import (
	"context"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/yuvnahr/RL-2048-agent/engine/agent"
	"github.com/yuvnahr/RL-2048-agent/internal/client"
	"github.com/yuvnahr/RL-2048-agent/internal/config"
	"github.com/yuvnahr/RL-2048-agent/internal/trainer"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("parse log level")
	}
	log.SetLevel(level)

	log.WithFields(logrus.Fields{
		"server":    cfg.ServerURL,
		"games":     cfg.Games,
		"lookahead": cfg.Lookahead,
	}).Info("starting training run")

	policy := agent.NewPolicy(cfg.Lookahead, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	srv := client.New(cfg.ServerURL, nil)
	tr := trainer.New(srv, policy, log)

	if _, err := tr.Train(context.Background(), cfg.Games); err != nil {
		log.WithError(err).Error("training run failed")
		os.Exit(1)
	}
}
