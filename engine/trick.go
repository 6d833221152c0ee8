package engine

// Capture bonus values for defeating the Skull King.
const (
	MermaidCaptureBonus = 100
	PirateCaptureBonus  = 50
)

// Play records a single card played by a seat within a trick.
type Play struct {
	Seat int
	Card Card
}

// CaptureBonus is awarded when the Skull King is played and loses the trick.
type CaptureBonus struct {
	Seat     int      // seat that earned the bonus
	Captured CardType // always TypeSkullKing
	Points   int
}

// Trick holds a completed trick: the plays in order, the led suit (nil when
// no numbered card was played), the winning seat, and the capture bonus if
// one was earned.
type Trick struct {
	Plays      []Play
	LedSuit    *Suit
	WinnerSeat int
	Bonus      *CaptureBonus
}

// LedSuitOf returns the suit of the first numbered card among the plays,
// or nil when none has been played. Special cards never set the led suit;
// a numbered card played after a special lead establishes it.
func LedSuitOf(plays []Play) *Suit {
	for _, p := range plays {
		if p.Card.Type() == TypeNumbered {
			s := p.Card.Suit()
			return &s
		}
	}
	return nil
}

// ResolveTrick determines the winner of a completed trick and any capture
// bonus. It is pure: same plays, same result.
//
// The scan keeps the first play as incumbent and replaces it only when a
// later play strictly beats it, so the first-played card of a winning type
// holds the trick, and an all-Escape trick falls to the first Escape.
func ResolveTrick(plays []Play) (winnerSeat int, bonus *CaptureBonus) {
	if len(plays) == 0 {
		return -1, nil
	}
	led := LedSuitOf(plays)

	best := plays[0]
	for _, p := range plays[1:] {
		if beats(p.Card, best.Card, led) {
			best = p
		}
	}

	// Capture bonus: Skull King played and lost, taken by a Mermaid (100)
	// or a Pirate (50). At most one bonus per trick.
	if best.Card.Type() != TypeSkullKing {
		for _, p := range plays {
			if p.Card.Type() != TypeSkullKing {
				continue
			}
			switch best.Card.Type() {
			case TypeMermaid:
				bonus = &CaptureBonus{Seat: best.Seat, Captured: TypeSkullKing, Points: MermaidCaptureBonus}
			case TypePirate:
				bonus = &CaptureBonus{Seat: best.Seat, Captured: TypeSkullKing, Points: PirateCaptureBonus}
			}
			break
		}
	}
	return best.Seat, bonus
}

// clonePlays returns a defensive copy of a play sequence.
func clonePlays(plays []Play) []Play {
	if plays == nil {
		return nil
	}
	out := make([]Play, len(plays))
	copy(out, plays)
	return out
}

// cloneTrick deep-copies a trick, including its led suit pointer.
func cloneTrick(t Trick) Trick {
	out := Trick{
		Plays:      clonePlays(t.Plays),
		WinnerSeat: t.WinnerSeat,
	}
	if t.LedSuit != nil {
		s := *t.LedSuit
		out.LedSuit = &s
	}
	if t.Bonus != nil {
		b := *t.Bonus
		out.Bonus = &b
	}
	return out
}

// cloneTricks deep-copies a slice of tricks.
func cloneTricks(ts []Trick) []Trick {
	if ts == nil {
		return nil
	}
	out := make([]Trick, len(ts))
	for i := range ts {
		out[i] = cloneTrick(ts[i])
	}
	return out
}
