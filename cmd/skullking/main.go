// Command skullking runs headless batches of Skull King matches between
// the built-in bot strategies and prints a ranked summary.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TNTwise/SkullKingComeptition/bots"
	"github.com/TNTwise/SkullKingComeptition/internal/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "skullking:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := sim.LoadConfig()
	if err != nil {
		return err
	}

	players := flag.Int("players", cfg.Players, "seats per match (2-6)")
	games := flag.Int("games", cfg.Games, "matches to run")
	seed := flag.Uint64("seed", cfg.Seed, "base RNG seed; match i uses seed+i")
	budget := flag.Duration("budget", cfg.TurnBudget, "per-decision bot time budget (0 disables)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg.Players = *players
	cfg.Games = *games
	cfg.Seed = *seed
	cfg.TurnBudget = *budget
	if *verbose {
		cfg.LogLevel = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	runner, err := sim.NewRunner(cfg, log, bots.RosterFactory(cfg.Players))
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"players": cfg.Players,
		"games":   cfg.Games,
		"seed":    cfg.Seed,
		"budget":  cfg.TurnBudget,
	}).Info("starting batch")

	summary, err := runner.Run()
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(summary))
	return nil
}
