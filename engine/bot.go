package engine

import (
	"slices"
	"sort"
)

// Bot is the capability interface every agent must implement. The engine
// is polymorphic over it and never depends on a concrete strategy. Both
// calls are synchronous; layers above may wrap a Bot to enforce a decision
// time budget.
//
// All request fields are copies — a bot can never reach engine-owned state.
type Bot interface {
	// Name identifies the bot in reports. It does not affect play.
	Name() string

	// MakeBid returns the number of tricks the bot expects to win this
	// round. Values outside [0, RoundNum] are clamped by the engine.
	MakeBid(req BidRequest) int

	// PlayCard returns the card to play. It must be in Hand and legal to
	// play; otherwise the engine substitutes the deterministic fallback.
	PlayCard(req PlayRequest) Card
}

// SeatBid pairs a seat with the bid it submitted.
type SeatBid struct {
	Seat int
	Bid  int
}

// BidRequest carries everything a bot may inspect at bid time. Bidding is
// sequential-revealed in seating order: PriorBids holds the bids already
// submitted this round.
type BidRequest struct {
	Seat       int
	NumPlayers int
	RoundNum   int
	Hand       []Card
	PriorBids  []SeatBid
}

// PlayRequest carries everything a bot may inspect when choosing a card.
type PlayRequest struct {
	Seat       int
	NumPlayers int
	RoundNum   int
	Hand       []Card
	Legal      []Card  // legal plays in canonical order; Legal[0] is the fallback
	Trick      []Play  // current trick so far, in play order
	Previous   []Trick // completed tricks this round
	Bids       []int   // all bids this round, by seat
	TricksWon  []int   // tricks won so far this round, by seat
}

// LegalPlays returns the cards of hand that may legally be played onto the
// current trick, in canonical order. Once a led suit is established, a
// player holding a numbered card of that suit may not play an off-suit
// numbered card; special cards are always legal. The first element is the
// engine's deterministic fallback play.
func LegalPlays(hand []Card, trick []Play) []Card {
	legal := make([]Card, 0, len(hand))
	led := LedSuitOf(trick)
	if led != nil && holdsSuit(hand, *led) {
		for _, c := range hand {
			if c.IsSpecial() || c.Suit() == *led {
				legal = append(legal, c)
			}
		}
	} else {
		legal = append(legal, hand...)
	}
	sort.Slice(legal, func(i, j int) bool {
		return canonicalOrder(legal[i]) < canonicalOrder(legal[j])
	})
	return legal
}

// ClampBid forces a bid into the valid [0, roundNum] range.
func ClampBid(bid, roundNum int) int {
	if bid < 0 {
		return 0
	}
	if bid > roundNum {
		return roundNum
	}
	return bid
}

// holdsSuit reports whether hand contains a numbered card of suit s.
func holdsSuit(hand []Card, s Suit) bool {
	for _, c := range hand {
		if c.Type() == TypeNumbered && c.Suit() == s {
			return true
		}
	}
	return false
}

// removeCard deletes the first occurrence of card from hand and reports
// whether it was present.
func removeCard(hand []Card, card Card) ([]Card, bool) {
	idx := slices.Index(hand, card)
	if idx < 0 {
		return hand, false
	}
	return slices.Delete(hand, idx, idx+1), true
}
