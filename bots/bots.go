// Package bots provides example strategies implementing engine.Bot.
//
// Every strategy decides from the request's Legal set, so a well-behaved
// bot never triggers the engine's repair path. All randomness comes from a
// per-bot seeded source to keep matches reproducible.
package bots

import (
	"fmt"
	"math/rand/v2"

	"github.com/TNTwise/SkullKingComeptition/engine"
)

// Factory constructs a named, seeded bot.
type Factory func(name string, seed uint64) engine.Bot

// Factories lists the built-in strategies in roster order.
var Factories = map[string]Factory{
	"random":       func(name string, seed uint64) engine.Bot { return NewRandom(name, seed) },
	"conservative": func(name string, seed uint64) engine.Bot { return NewConservative(name) },
	"aggressive":   func(name string, seed uint64) engine.Bot { return NewAggressive(name, seed) },
	"smart":        func(name string, seed uint64) engine.Bot { return NewSmart(name, seed) },
}

// rosterOrder fixes the cycling order used by Roster.
var rosterOrder = []string{"smart", "aggressive", "conservative", "random"}

// Roster builds n bots by cycling through the built-in strategies,
// deriving each bot's seed from the base seed.
func Roster(n int, seed uint64) []engine.Bot {
	out := make([]engine.Bot, n)
	for i := 0; i < n; i++ {
		kind := rosterOrder[i%len(rosterOrder)]
		name := fmt.Sprintf("%s-%d", kind, i+1)
		out[i] = Factories[kind](name, seed+uint64(i)*7919)
	}
	return out
}

// RosterFactory returns a builder producing a fresh n-bot roster per seed.
// Batch runners call it once per game so bot state (including RNGs) is
// never shared between concurrent matches.
func RosterFactory(n int) func(seed uint64) []engine.Bot {
	return func(seed uint64) []engine.Bot { return Roster(n, seed) }
}

// cardStrength ranks cards for heuristic decisions: escapes weakest, then
// numbered by rank, then mermaid, pirate, skull king.
func cardStrength(c engine.Card) int {
	switch c.Type() {
	case engine.TypeSkullKing:
		return 100
	case engine.TypePirate:
		return 80
	case engine.TypeMermaid:
		return 70
	case engine.TypeNumbered:
		return int(c.Rank())
	default: // escape
		return 0
	}
}

// weakest returns the lowest-strength card of a non-empty set.
func weakest(cards []engine.Card) engine.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if cardStrength(c) < cardStrength(best) {
			best = c
		}
	}
	return best
}

// strongest returns the highest-strength card of a non-empty set.
func strongest(cards []engine.Card) engine.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if cardStrength(c) > cardStrength(best) {
			best = c
		}
	}
	return best
}

// wouldWin reports whether playing card onto the current trick would hold
// the trick as it stands, by resolving the hypothetical play sequence.
func wouldWin(req engine.PlayRequest, card engine.Card) bool {
	plays := make([]engine.Play, 0, len(req.Trick)+1)
	plays = append(plays, req.Trick...)
	plays = append(plays, engine.Play{Seat: req.Seat, Card: card})
	winner, _ := engine.ResolveTrick(plays)
	return winner == req.Seat
}

// Random bids uniformly in range and plays a uniformly random legal card.
type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom returns a seeded Random bot.
func NewRandom(name string, seed uint64) *Random {
	return &Random{name: name, rng: rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb))}
}

func (b *Random) Name() string { return b.name }

func (b *Random) MakeBid(req engine.BidRequest) int {
	return b.rng.IntN(req.RoundNum + 1)
}

func (b *Random) PlayCard(req engine.PlayRequest) engine.Card {
	return req.Legal[b.rng.IntN(len(req.Legal))]
}

// Conservative bids at most one trick and tries to stay out of the rest,
// shedding escapes first and low numbered cards after.
type Conservative struct {
	name string
}

// NewConservative returns a Conservative bot.
func NewConservative(name string) *Conservative {
	return &Conservative{name: name}
}

func (b *Conservative) Name() string { return b.name }

func (b *Conservative) MakeBid(req engine.BidRequest) int {
	escapes := 0
	for _, c := range req.Hand {
		if c.Type() == engine.TypeEscape {
			escapes++
		}
	}
	if escapes >= req.RoundNum {
		return 0
	}
	if req.RoundNum < 1 {
		return req.RoundNum
	}
	return 1
}

func (b *Conservative) PlayCard(req engine.PlayRequest) engine.Card {
	for _, c := range req.Legal {
		if c.Type() == engine.TypeEscape {
			return c
		}
	}
	return weakest(req.Legal)
}
