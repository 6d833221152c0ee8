package bots

import (
	"math/rand/v2"

	"github.com/TNTwise/SkullKingComeptition/engine"
)

// Aggressive bids on its strong cards and spends them to chase tricks,
// falling back to shedding once its bid is met.
type Aggressive struct {
	name string
	rng  *rand.Rand
}

// NewAggressive returns a seeded Aggressive bot.
func NewAggressive(name string, seed uint64) *Aggressive {
	return &Aggressive{name: name, rng: rand.New(rand.NewPCG(seed, seed^0x8f14e45fceea167a))}
}

func (b *Aggressive) Name() string { return b.name }

func (b *Aggressive) MakeBid(req engine.BidRequest) int {
	strong := 0
	for _, c := range req.Hand {
		switch c.Type() {
		case engine.TypePirate, engine.TypeMermaid, engine.TypeSkullKing:
			strong++
		case engine.TypeNumbered:
			if c.Rank() >= 11 {
				strong++
			}
		}
	}
	bid := strong
	if bid > req.RoundNum {
		bid = req.RoundNum
	}
	if bid < 1 {
		bid = 1 // always chases at least one trick
	}
	return bid
}

func (b *Aggressive) PlayCard(req engine.PlayRequest) engine.Card {
	need := req.Bids[req.Seat] - req.TricksWon[req.Seat]
	if need > 0 && len(req.Trick) > 0 {
		return strongest(req.Legal)
	}
	if need > 0 {
		// Leading: mix strong and weak leads so the table can't read it.
		if b.rng.IntN(2) == 0 {
			return strongest(req.Legal)
		}
		return weakest(req.Legal)
	}
	for _, c := range req.Legal {
		if c.Type() == engine.TypeEscape {
			return c
		}
	}
	return weakest(req.Legal)
}

// Smart tracks its bid and plays the weakest card that still takes the
// trick when it needs one, saving stronger cards unless every remaining
// trick is required. Its decisions are fully deterministic; the seed
// parameter exists for factory uniformity.
type Smart struct {
	name string
}

// NewSmart returns a Smart bot.
func NewSmart(name string, _ uint64) *Smart {
	return &Smart{name: name}
}

func (b *Smart) Name() string { return b.name }

func (b *Smart) MakeBid(req engine.BidRequest) int {
	strong := 0
	highCards := 0
	for _, c := range req.Hand {
		switch c.Type() {
		case engine.TypePirate, engine.TypeMermaid, engine.TypeSkullKing:
			strong++
		case engine.TypeNumbered:
			if c.Rank() >= 12 {
				highCards++
			}
		}
	}
	estimate := strong + highCards/2
	// Early rounds are too small to trust the estimate.
	if req.RoundNum <= 3 && estimate > 2 {
		estimate = 2
	}
	if estimate > req.RoundNum {
		estimate = req.RoundNum
	}
	return estimate
}

func (b *Smart) PlayCard(req engine.PlayRequest) engine.Card {
	need := req.Bids[req.Seat] - req.TricksWon[req.Seat]

	// Bid already met: dodge the trick.
	if need <= 0 {
		return b.shed(req)
	}

	// Need tricks: find cards that would hold the trick as it stands.
	// Escapes only "win" degenerate tricks, so they never count.
	var winning []engine.Card
	for _, c := range req.Legal {
		if c.Type() == engine.TypeEscape {
			continue
		}
		if wouldWin(req, c) {
			winning = append(winning, c)
		}
	}
	if len(winning) > 0 {
		remaining := req.RoundNum - len(req.Previous)
		if need >= remaining {
			// Every remaining trick is required — commit the strongest.
			return strongest(winning)
		}
		return weakest(winning)
	}

	// Cannot win this trick; lose it as cheaply as possible.
	return b.shed(req)
}

// shed picks the cheapest legal card: an escape if held, otherwise the
// weakest card.
func (b *Smart) shed(req engine.PlayRequest) engine.Card {
	for _, c := range req.Legal {
		if c.Type() == engine.TypeEscape {
			return c
		}
	}
	return weakest(req.Legal)
}
