package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Fixed deck composition. These are game constants, not configuration.
const (
	NumSuits    = 4
	MaxRank     = 14
	NumEscapes  = 5
	NumMermaids = 2
	NumPirates  = 2

	// DeckSize = 56 numbered + 5 Escapes + 2 Mermaids + 2 Pirates + 1 Skull King.
	DeckSize = NumSuits*MaxRank + NumEscapes + NumMermaids + NumPirates + 1
)

// ErrInsufficientCards signals that a deal cannot be covered by the deck.
// With the fixed 66-card deck, 10 rounds and at most 6 players this is a
// programming-invariant violation, never a normal runtime path.
var ErrInsufficientCards = errors.New("engine: deck cannot cover deal")

// Deck is an ordered sequence of every card in the game, each exactly once.
type Deck []Card

// NewDeck builds the fixed Skull King card set in canonical order.
func NewDeck() Deck {
	d := make(Deck, 0, DeckSize)
	for suit := Suit(0); suit < NumSuits; suit++ {
		for rank := uint8(1); rank <= MaxRank; rank++ {
			d = append(d, NewNumbered(suit, rank))
		}
	}
	for i := 0; i < NumEscapes; i++ {
		d = append(d, NewSpecial(TypeEscape))
	}
	for i := 0; i < NumMermaids; i++ {
		d = append(d, NewSpecial(TypeMermaid))
	}
	for i := 0; i < NumPirates; i++ {
		d = append(d, NewSpecial(TypePirate))
	}
	d = append(d, NewSpecial(TypeSkullKing))
	return d
}

// Shuffle permutes the deck in place with a Fisher–Yates pass over the
// given source. Every round shuffles a fresh deck from the match RNG.
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal removes roundNum cards per player from the front of the deck and
// returns one hand per seat. Each hand is a fresh slice; no card appears
// in two hands.
func (d Deck) Deal(numPlayers, roundNum int) ([][]Card, error) {
	need := numPlayers * roundNum
	if need > len(d) {
		return nil, fmt.Errorf("%w: need %d cards for %d players in round %d, have %d",
			ErrInsufficientCards, need, numPlayers, roundNum, len(d))
	}
	hands := make([][]Card, numPlayers)
	for p := 0; p < numPlayers; p++ {
		hand := make([]Card, roundNum)
		copy(hand, d[p*roundNum:(p+1)*roundNum])
		hands[p] = hand
	}
	return hands, nil
}
