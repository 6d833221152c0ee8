// Package sim runs headless bot matches: it gives each registered bot a
// stable identity, enforces a per-decision time budget, fans independent
// matches out across goroutines, and aggregates win/score summaries.
package sim

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Defaults used when neither the environment nor flags override them.
const (
	DefaultPlayers    = 4
	DefaultGames      = 100
	DefaultSeed       = 1
	DefaultTurnBudget = 500 * time.Millisecond
)

// Config holds the headless runner settings.
type Config struct {
	Players    int           // seats per match, 2-6
	Games      int           // matches to run
	Seed       uint64        // base seed; match i uses Seed+i
	TurnBudget time.Duration // per-decision budget; 0 disables the guard
	LogLevel   logrus.Level
}

// LoadConfig reads configuration from the environment, honoring a .env
// file when present. Missing variables fall back to defaults; malformed
// values are an error rather than a silent fallback.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := Config{
		Players:    DefaultPlayers,
		Games:      DefaultGames,
		Seed:       DefaultSeed,
		TurnBudget: DefaultTurnBudget,
		LogLevel:   logrus.InfoLevel,
	}

	if v := os.Getenv("SKULLKING_PLAYERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("sim: bad SKULLKING_PLAYERS %q: %w", v, err)
		}
		cfg.Players = n
	}
	if v := os.Getenv("SKULLKING_GAMES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("sim: bad SKULLKING_GAMES %q: %w", v, err)
		}
		cfg.Games = n
	}
	if v := os.Getenv("SKULLKING_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("sim: bad SKULLKING_SEED %q: %w", v, err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("SKULLKING_TURN_BUDGET_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("sim: bad SKULLKING_TURN_BUDGET_MS %q: %w", v, err)
		}
		cfg.TurnBudget = time.Duration(n) * time.Millisecond
	}
	if v := os.Getenv("SKULLKING_LOG_LEVEL"); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("sim: bad SKULLKING_LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}
