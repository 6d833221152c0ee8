package sim

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/TNTwise/SkullKingComeptition/engine"
)

// RosterFactory builds a fresh roster of bots for one game. The runner
// calls it once per game so no bot instance — and no RNG inside one — is
// ever shared between concurrently running matches. The factory must
// return the same names in the same seat order on every call.
type RosterFactory func(seed uint64) []engine.Bot

// Entry is one seat's stable identity across the batch: the same ID and
// name key the seat in every game, while the bot instances themselves are
// rebuilt per game.
type Entry struct {
	ID   uuid.UUID
	Name string
}

// GameResult reports one completed match.
type GameResult struct {
	Game     int // 0-based index within the batch
	Seed     uint64
	Scores   map[uuid.UUID]int
	WinnerID uuid.UUID
	Duration time.Duration
}

// BotSummary aggregates one bot's results across the batch.
type BotSummary struct {
	ID         uuid.UUID
	Name       string
	Seat       int
	Wins       int
	TotalScore int
	MeanScore  float64
}

// Summary aggregates a whole batch run.
type Summary struct {
	Games   int
	Players int
	Seed    uint64
	Bots    []BotSummary // seating order
	Elapsed time.Duration
}

// Runner executes batches of independent matches for a fixed roster.
type Runner struct {
	cfg     Config
	log     *logrus.Logger
	factory RosterFactory
	roster  []Entry
}

// NewRunner registers the roster (seating order = factory slice order) and
// assigns each seat its batch-wide identity. The factory must produce
// exactly cfg.Players bots.
func NewRunner(cfg Config, log *logrus.Logger, factory RosterFactory) (*Runner, error) {
	if cfg.Players < engine.MinPlayers || cfg.Players > engine.MaxPlayers {
		return nil, fmt.Errorf("sim: player count %d outside %d-%d", cfg.Players, engine.MinPlayers, engine.MaxPlayers)
	}
	if cfg.Games < 1 {
		return nil, fmt.Errorf("sim: game count %d must be positive", cfg.Games)
	}
	reference := factory(cfg.Seed)
	if len(reference) != cfg.Players {
		return nil, fmt.Errorf("sim: roster has %d bots, config wants %d players", len(reference), cfg.Players)
	}

	roster := make([]Entry, len(reference))
	for i, b := range reference {
		roster[i] = Entry{ID: uuid.New(), Name: b.Name()}
	}
	return &Runner{cfg: cfg, log: log, factory: factory, roster: roster}, nil
}

// Roster returns the registered entries in seating order.
func (r *Runner) Roster() []Entry { return r.roster }

// Run executes the configured number of matches concurrently. Matches are
// fully independent — each gets its own engine.Match, deck, and RNG seeded
// with Seed+gameIndex — so the fan-out shares no mutable state.
func (r *Runner) Run() (Summary, error) {
	start := time.Now()
	results := make([]GameResult, r.cfg.Games)
	errs := make([]error, r.cfg.Games)

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Games; i++ {
		wg.Add(1)
		go func(game int) {
			defer wg.Done()
			results[game], errs[game] = r.runGame(game)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Summary{}, err
		}
	}
	return r.summarize(results, time.Since(start)), nil
}

// runGame plays one match to completion and maps seat results back onto
// bot identities. Every game builds its own bots from the factory, so
// nothing stateful crosses goroutines between concurrent games.
func (r *Runner) runGame(game int) (GameResult, error) {
	seed := r.cfg.Seed + uint64(game)
	log := r.log.WithFields(logrus.Fields{"game": game, "seed": seed})

	fresh := r.factory(seed)
	if len(fresh) != len(r.roster) {
		return GameResult{}, fmt.Errorf("sim: game %d: factory produced %d bots, want %d", game, len(fresh), len(r.roster))
	}
	bots := make([]engine.Bot, len(fresh))
	for seat, bot := range fresh {
		bots[seat] = newGuardedBot(bot, r.cfg.TurnBudget, log)
	}

	m, err := engine.NewMatch(bots, seed)
	if err != nil {
		return GameResult{}, err
	}

	start := time.Now()
	if err := m.Run(); err != nil {
		return GameResult{}, fmt.Errorf("sim: game %d: %w", game, err)
	}

	scores := m.Scores()
	result := GameResult{
		Game:     game,
		Seed:     seed,
		Scores:   make(map[uuid.UUID]int, len(scores)),
		Duration: time.Since(start),
	}
	for seat, entry := range r.roster {
		result.Scores[entry.ID] = scores[seat]
	}
	winnerSeat := m.Standings()[0].Seat
	result.WinnerID = r.roster[winnerSeat].ID

	for _, round := range m.Rounds() {
		for _, v := range round.Violations {
			log.WithFields(logrus.Fields{
				"bot":   r.roster[v.Seat].Name,
				"round": v.Round,
				"trick": v.Trick,
				"kind":  v.Kind.String(),
			}).Warn("repaired rule violation")
		}
	}
	log.WithFields(logrus.Fields{
		"winner":   r.roster[winnerSeat].Name,
		"duration": result.Duration,
	}).Info("match complete")
	return result, nil
}

// summarize folds per-game results into the batch summary.
func (r *Runner) summarize(results []GameResult, elapsed time.Duration) Summary {
	summary := Summary{
		Games:   len(results),
		Players: r.cfg.Players,
		Seed:    r.cfg.Seed,
		Elapsed: elapsed,
	}
	for seat, entry := range r.roster {
		bs := BotSummary{ID: entry.ID, Name: entry.Name, Seat: seat}
		for _, res := range results {
			bs.TotalScore += res.Scores[entry.ID]
			if res.WinnerID == entry.ID {
				bs.Wins++
			}
		}
		bs.MeanScore = float64(bs.TotalScore) / float64(len(results))
		summary.Bots = append(summary.Bots, bs)
	}
	return summary
}

// Ranked returns the bot summaries ordered by wins, then total score, then
// seating order — the same stable tie-break the engine uses.
func (s Summary) Ranked() []BotSummary {
	out := append([]BotSummary(nil), s.Bots...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].TotalScore > out[j].TotalScore
	})
	return out
}
