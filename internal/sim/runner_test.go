package sim

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TNTwise/SkullKingComeptition/bots"
	"github.com/TNTwise/SkullKingComeptition/engine"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig(players, games int) Config {
	return Config{
		Players:    players,
		Games:      games,
		Seed:       42,
		TurnBudget: time.Second,
		LogLevel:   logrus.WarnLevel,
	}
}

func TestNewRunnerValidatesRoster(t *testing.T) {
	cfg := testConfig(4, 1)
	_, err := NewRunner(cfg, quietLogger(), bots.RosterFactory(3))
	assert.Error(t, err, "roster size mismatch must fail")

	cfg.Players = 1
	_, err = NewRunner(cfg, quietLogger(), bots.RosterFactory(1))
	assert.Error(t, err, "too few players must fail")

	cfg = testConfig(4, 0)
	_, err = NewRunner(cfg, quietLogger(), bots.RosterFactory(4))
	assert.Error(t, err, "zero games must fail")
}

func TestRunBatchCompletes(t *testing.T) {
	cfg := testConfig(4, 8)
	r, err := NewRunner(cfg, quietLogger(), bots.RosterFactory(4))
	require.NoError(t, err)

	summary, err := r.Run()
	require.NoError(t, err)

	assert.Equal(t, 8, summary.Games)
	assert.Equal(t, 4, summary.Players)
	require.Len(t, summary.Bots, 4)

	totalWins := 0
	for _, b := range summary.Bots {
		totalWins += b.Wins
		assert.InDelta(t, float64(b.TotalScore)/8, b.MeanScore, 1e-9)
	}
	assert.Equal(t, 8, totalWins, "every game has exactly one winner")
}

func TestRunDeterministicForFixedSeed(t *testing.T) {
	run := func() Summary {
		cfg := testConfig(3, 5)
		r, err := NewRunner(cfg, quietLogger(), bots.RosterFactory(3))
		require.NoError(t, err)
		s, err := r.Run()
		require.NoError(t, err)
		return s
	}
	a, b := run(), run()
	for i := range a.Bots {
		assert.Equal(t, a.Bots[i].Wins, b.Bots[i].Wins)
		assert.Equal(t, a.Bots[i].TotalScore, b.Bots[i].TotalScore)
	}
}

// TestEachGameGetsFreshBots: the runner builds a new roster per game so no
// bot instance — and no RNG inside one — is shared between concurrently
// running matches.
func TestEachGameGetsFreshBots(t *testing.T) {
	const players, games = 3, 6

	var mu sync.Mutex
	built := make(map[engine.Bot]int) // bot instance -> times handed out
	factory := func(seed uint64) []engine.Bot {
		roster := bots.Roster(players, seed)
		mu.Lock()
		for _, b := range roster {
			built[b]++
		}
		mu.Unlock()
		return roster
	}

	cfg := testConfig(players, games)
	r, err := NewRunner(cfg, quietLogger(), factory)
	require.NoError(t, err)
	_, err = r.Run()
	require.NoError(t, err)

	// One factory call at registration plus one per game, all instances
	// distinct.
	assert.Len(t, built, players*(games+1))
	for b, n := range built {
		assert.Equal(t, 1, n, "bot %s reused across games", b.Name())
	}
}

func TestRankedOrdersByWinsThenScore(t *testing.T) {
	s := Summary{Bots: []BotSummary{
		{Name: "a", Seat: 0, Wins: 1, TotalScore: 10},
		{Name: "b", Seat: 1, Wins: 3, TotalScore: 5},
		{Name: "c", Seat: 2, Wins: 1, TotalScore: 40},
	}}
	ranked := s.Ranked()
	assert.Equal(t, "b", ranked[0].Name)
	assert.Equal(t, "c", ranked[1].Name)
	assert.Equal(t, "a", ranked[2].Name)
}

// slowBot blocks long enough to trip the decision guard.
type slowBot struct {
	delay time.Duration
}

func (b *slowBot) Name() string { return "slow" }

func (b *slowBot) MakeBid(req engine.BidRequest) int {
	time.Sleep(b.delay)
	return req.RoundNum
}

func (b *slowBot) PlayCard(req engine.PlayRequest) engine.Card {
	time.Sleep(b.delay)
	return req.Legal[len(req.Legal)-1]
}

func TestGuardForcesFallbackOnTimeout(t *testing.T) {
	log := quietLogger().WithField("test", true)
	guarded := newGuardedBot(&slowBot{delay: 200 * time.Millisecond}, 10*time.Millisecond, log)

	bid := guarded.MakeBid(engine.BidRequest{RoundNum: 5, Hand: []engine.Card{engine.NewSpecial(engine.TypeEscape)}})
	assert.Equal(t, 0, bid, "timed-out bid falls back to 0")

	legal := []engine.Card{
		engine.NewSpecial(engine.TypeEscape),
		engine.NewNumbered(engine.SuitRed, 9),
	}
	card := guarded.PlayCard(engine.PlayRequest{RoundNum: 5, Hand: legal, Legal: legal})
	assert.Equal(t, legal[0], card, "timed-out play falls back to first legal card")
}

func TestGuardPassesThroughFastDecisions(t *testing.T) {
	log := quietLogger().WithField("test", true)
	guarded := newGuardedBot(&slowBot{delay: 0}, time.Second, log)

	bid := guarded.MakeBid(engine.BidRequest{RoundNum: 3})
	assert.Equal(t, 3, bid)
}

func TestGuardDisabledWithZeroBudget(t *testing.T) {
	log := quietLogger().WithField("test", true)
	inner := &slowBot{delay: 0}
	assert.Same(t, engine.Bot(inner), newGuardedBot(inner, 0, log))
}

// TestMatchCompletesDespiteHungBot: a match with a permanently slow bot
// still runs to completion on fallbacks.
func TestMatchCompletesDespiteHungBot(t *testing.T) {
	cfg := testConfig(2, 1)
	cfg.TurnBudget = 5 * time.Millisecond
	factory := func(seed uint64) []engine.Bot {
		return []engine.Bot{
			&slowBot{delay: time.Hour},
			bots.NewConservative("ok"),
		}
	}
	r, err := NewRunner(cfg, quietLogger(), factory)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := r.Run()
		done <- err
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("match did not complete with a hung bot")
	}
}
