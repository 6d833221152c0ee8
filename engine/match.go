package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

// Match limits. A match always runs exactly NumRounds rounds.
const (
	MinPlayers = 2
	MaxPlayers = 6
	NumRounds  = 10
)

// ErrMatchComplete is returned by advance calls on a finished match.
// A Match is one-shot: construct a fresh one per game.
var ErrMatchComplete = errors.New("engine: match already complete")

// Match owns the full state of one game: the registered bots, the match
// RNG, the round in progress, all completed rounds, and cumulative scores.
// Execution is strictly sequential; a Match must not be shared across
// goroutines. Independent matches may run in parallel — each owns its own
// deck and RNG.
type Match struct {
	bots      []Bot
	rng       *rand.Rand
	round     *Round   // round in progress, nil between rounds
	completed []*Round // finalized rounds, ownership handed back per round
	scores    []int    // cumulative, by seat
	leader    int      // seat leading the next trick, carried across rounds
	done      bool
}

// NewMatch registers the bots in seating order and seeds the match RNG.
// Parallel batch runners should derive a distinct seed per match so
// shuffles are uncorrelated across games.
func NewMatch(bots []Bot, seed uint64) (*Match, error) {
	if len(bots) < MinPlayers || len(bots) > MaxPlayers {
		return nil, fmt.Errorf("engine: need %d-%d bots, got %d", MinPlayers, MaxPlayers, len(bots))
	}
	return &Match{
		bots:   bots,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		scores: make([]int, len(bots)),
	}, nil
}

// NumPlayers returns the number of seats at the table.
func (m *Match) NumPlayers() int { return len(m.bots) }

// RoundNum returns the 1-based number of the round in progress, or the
// number of the last completed round when no round is active.
func (m *Match) RoundNum() int {
	if m.round != nil {
		return m.round.Num
	}
	return len(m.completed)
}

// Done reports whether all rounds have been scored.
func (m *Match) Done() bool { return m.done }

// Scores returns a copy of the cumulative scores by seat.
func (m *Match) Scores() []int { return cloneInts(m.scores) }

// Rounds returns the completed rounds. Callers must treat them as
// read-only; Snapshot provides deep copies for presentation layers.
func (m *Match) Rounds() []*Round { return m.completed }

// startRound shuffles a fresh deck and deals the next round, then collects
// bids. Round 1's first trick is led by seat 0; afterwards the winner of
// the previous trick leads, carrying across round boundaries.
func (m *Match) startRound() error {
	num := len(m.completed) + 1
	deck := NewDeck()
	deck.Shuffle(m.rng)
	hands, err := deck.Deal(len(m.bots), num)
	if err != nil {
		return err
	}
	m.round = newRound(num, hands, m.leader)
	m.round.collectBids(m.bots)
	return nil
}

// AdvanceTrick plays exactly one trick, starting a new round first when
// none is in progress. When the trick completes its round, the round is
// scored and finalized. The only error paths are the deal invariant and
// advancing a finished match.
func (m *Match) AdvanceTrick() error {
	if m.done {
		return ErrMatchComplete
	}
	if m.round == nil {
		if err := m.startRound(); err != nil {
			return err
		}
	}
	m.round.playTrick(m.bots)
	m.leader = m.round.Leader
	if m.round.Phase == PhaseScoring {
		m.finishRound()
	}
	return nil
}

// AdvanceRound runs the next round to completion: deal, bids, every trick,
// and scoring.
func (m *Match) AdvanceRound() error {
	if m.done {
		return ErrMatchComplete
	}
	start := len(m.completed)
	for len(m.completed) == start {
		if err := m.AdvanceTrick(); err != nil {
			return err
		}
	}
	return nil
}

// Run drives the match to completion.
func (m *Match) Run() error {
	for !m.done {
		if err := m.AdvanceRound(); err != nil {
			return err
		}
	}
	return nil
}

// finishRound scores the active round, folds its deltas into the
// cumulative totals, and hands the finalized round back to the match.
func (m *Match) finishRound() {
	deltas := m.round.score()
	for seat, d := range deltas {
		m.scores[seat] += d
	}
	m.completed = append(m.completed, m.round)
	m.round = nil
	if len(m.completed) == NumRounds {
		m.done = true
	}
}

// Standing is one row of the final ranking.
type Standing struct {
	Seat  int
	Name  string
	Score int
}

// Standings ranks seats by cumulative score, highest first. Ties are
// broken by seating order, which keeps the ranking stable and
// reproducible.
func (m *Match) Standings() []Standing {
	out := make([]Standing, len(m.bots))
	for seat, bot := range m.bots {
		out[seat] = Standing{Seat: seat, Name: bot.Name(), Score: m.scores[seat]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
