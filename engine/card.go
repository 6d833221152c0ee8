// Package engine implements the Skull King trick-taking rules.
//
// The package is pure and self-contained: it owns the card/deck model,
// trick resolution, the per-round state machine, scoring, and the match
// controller. Bots plug in through the Bot interface; anything concerning
// identity, logging, or concurrency across matches lives in the layers
// above.
package engine

// Suit identifies one of the four numbered-card suits.
type Suit uint8

const (
	SuitRed Suit = iota
	SuitYellow
	SuitBlue
	SuitGreen
)

// String returns the display name of the suit.
func (s Suit) String() string {
	switch s {
	case SuitRed:
		return "Red"
	case SuitYellow:
		return "Yellow"
	case SuitBlue:
		return "Blue"
	case SuitGreen:
		return "Green"
	default:
		return "?"
	}
}

// CardType classifies a card for trick resolution.
type CardType uint8

const (
	TypeNumbered CardType = iota
	TypeEscape
	TypeMermaid
	TypePirate
	TypeSkullKing
)

// String returns the display name of the card type.
func (t CardType) String() string {
	switch t {
	case TypeNumbered:
		return "Numbered"
	case TypeEscape:
		return "Escape"
	case TypeMermaid:
		return "Mermaid"
	case TypePirate:
		return "Pirate"
	case TypeSkullKing:
		return "Skull King"
	default:
		return "?"
	}
}

// Card is a packed uint8: upper 4 bits = suit nibble, lower 4 bits = rank.
// Suit nibbles 0–3 are the numbered suits; nibbles 4–7 encode the special
// cards (Escape, Mermaid, Pirate, Skull King) with a zero rank. Identity is
// structural: two cards with the same bits are interchangeable.
type Card uint8

// Suit-nibble values for the special cards.
const (
	nibbleEscape    uint8 = 4
	nibbleMermaid   uint8 = 5
	nibblePirate    uint8 = 6
	nibbleSkullKing uint8 = 7
)

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewNumbered constructs a numbered card of the given suit and rank (1–14).
func NewNumbered(suit Suit, rank uint8) Card {
	return Card(uint8(suit)<<4 | rank&0x0F)
}

// NewSpecial constructs one of the four special cards.
func NewSpecial(t CardType) Card {
	switch t {
	case TypeEscape:
		return Card(nibbleEscape << 4)
	case TypeMermaid:
		return Card(nibbleMermaid << 4)
	case TypePirate:
		return Card(nibblePirate << 4)
	case TypeSkullKing:
		return Card(nibbleSkullKing << 4)
	default:
		return EmptyCard
	}
}

// Type returns the card's classification.
func (c Card) Type() CardType {
	switch uint8(c) >> 4 {
	case nibbleEscape:
		return TypeEscape
	case nibbleMermaid:
		return TypeMermaid
	case nibblePirate:
		return TypePirate
	case nibbleSkullKing:
		return TypeSkullKing
	default:
		return TypeNumbered
	}
}

// IsSpecial reports whether the card is exempt from suit-following.
func (c Card) IsSpecial() bool { return c.Type() != TypeNumbered }

// Suit returns the suit of a numbered card. Only meaningful when
// Type() == TypeNumbered.
func (c Card) Suit() Suit { return Suit(uint8(c) >> 4) }

// Rank returns the rank (1–14) of a numbered card, 0 for specials.
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// String renders the card for logs and reports, e.g. "9 of Blue".
func (c Card) String() string {
	if c == EmptyCard {
		return "empty"
	}
	if t := c.Type(); t != TypeNumbered {
		return t.String()
	}
	return rankNames[c.Rank()] + " of " + c.Suit().String()
}

var rankNames = [16]string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "10", "11", "12", "13", "14", "15",
}

// canonicalOrder assigns every card a deterministic sort key used only for
// the fallback-play policy and stable presentation: Escapes first, then
// numbered cards by suit then rank, then Mermaids, Pirates, Skull King.
func canonicalOrder(c Card) int {
	switch c.Type() {
	case TypeEscape:
		return 0
	case TypeNumbered:
		return 1 + int(c.Suit())*16 + int(c.Rank())
	case TypeMermaid:
		return 1 + 4*16
	case TypePirate:
		return 2 + 4*16
	case TypeSkullKing:
		return 3 + 4*16
	default:
		return 1 << 16
	}
}

// beats reports whether challenger strictly beats incumbent given the led
// suit of the trick (nil when no numbered card has been played). Equal
// cards never beat each other, so the first-played card of a winning type
// holds the trick.
//
// The hierarchy is intentionally non-linear across contexts: an Escape
// loses to everything, a special beats any numbered card, and among the
// specials Pirate > Mermaid > Skull King — the Mermaid captures the Skull
// King, the Pirate captures both.
func beats(challenger, incumbent Card, led *Suit) bool {
	if challenger.Type() == TypeEscape {
		return false
	}
	if incumbent.Type() == TypeEscape {
		return true
	}

	cs, is := specialStrength(challenger.Type()), specialStrength(incumbent.Type())
	switch {
	case cs > 0 && is > 0:
		return cs > is
	case cs > 0:
		return true
	case is > 0:
		return false
	}

	// Both numbered.
	if challenger.Suit() == incumbent.Suit() {
		return challenger.Rank() > incumbent.Rank()
	}
	if led != nil && challenger.Suit() == *led {
		return true
	}
	return false
}

// specialStrength returns the relative strength of a trick-winning special
// card, 0 for cards outside that hierarchy.
func specialStrength(t CardType) int {
	switch t {
	case TypeSkullKing:
		return 1
	case TypeMermaid:
		return 2
	case TypePirate:
		return 3
	default:
		return 0
	}
}
