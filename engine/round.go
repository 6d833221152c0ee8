package engine

// RoundPhase tracks the per-round state machine:
// Dealing → Bidding → Playing → Scoring → Complete.
type RoundPhase uint8

const (
	PhaseDealing RoundPhase = iota
	PhaseBidding
	PhasePlaying
	PhaseScoring
	PhaseComplete
)

// String returns the display name of the phase.
func (p RoundPhase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhaseBidding:
		return "bidding"
	case PhasePlaying:
		return "playing"
	case PhaseScoring:
		return "scoring"
	case PhaseComplete:
		return "complete"
	default:
		return "?"
	}
}

// ViolationKind classifies a repaired rule violation.
type ViolationKind uint8

const (
	ViolationInvalidBid ViolationKind = iota
	ViolationCardNotInHand
	ViolationFollowSuit
)

// String returns the display name of the violation kind.
func (k ViolationKind) String() string {
	switch k {
	case ViolationInvalidBid:
		return "invalid bid"
	case ViolationCardNotInHand:
		return "card not in hand"
	case ViolationFollowSuit:
		return "follow-suit violation"
	default:
		return "?"
	}
}

// RuleViolation records a bot decision the engine had to repair. Violations
// are resolved locally — only validated, legal state leaves the round — but
// they are kept as data so the layers above can log or penalize them.
type RuleViolation struct {
	Seat  int
	Round int
	Trick int // 0 during bidding
	Kind  ViolationKind
}

// Round bundles one round's state: the dealt hands, bids, completed tricks,
// the trick in progress, tricks-won counters, capture bonuses, and the
// score deltas produced at scoring time.
type Round struct {
	Num        int
	Phase      RoundPhase
	Hands      [][]Card
	Bids       []int
	Tricks     []Trick
	Current    []Play // trick in progress
	Leader     int    // seat leading the current trick
	TricksWon  []int
	Bonuses    []int // capture bonus points earned, by seat
	Deltas     []int // per-seat score deltas, set during scoring
	Violations []RuleViolation
}

// newRound deals hands for the given round number and returns the round in
// the Bidding phase.
func newRound(num int, hands [][]Card, leader int) *Round {
	n := len(hands)
	return &Round{
		Num:       num,
		Phase:     PhaseBidding,
		Hands:     hands,
		Bids:      make([]int, n),
		Leader:    leader,
		TricksWon: make([]int, n),
		Bonuses:   make([]int, n),
	}
}

// collectBids asks every bot for its bid in seating order. Each bidder sees
// the bids submitted before it (sequential-revealed). Out-of-range bids are
// clamped and recorded as violations; bidding never aborts the match.
func (r *Round) collectBids(bots []Bot) {
	prior := make([]SeatBid, 0, len(bots))
	for seat, bot := range bots {
		req := BidRequest{
			Seat:       seat,
			NumPlayers: len(bots),
			RoundNum:   r.Num,
			Hand:       cloneCards(r.Hands[seat]),
			PriorBids:  append([]SeatBid(nil), prior...),
		}
		bid := bot.MakeBid(req)
		if clamped := ClampBid(bid, r.Num); clamped != bid {
			r.Violations = append(r.Violations, RuleViolation{
				Seat: seat, Round: r.Num, Kind: ViolationInvalidBid,
			})
			bid = clamped
		}
		r.Bids[seat] = bid
		prior = append(prior, SeatBid{Seat: seat, Bid: bid})
	}
	r.Phase = PhasePlaying
}

// playTrick runs one complete trick: it asks each seat in rotation from the
// leader for a card, validates and repairs the choice, resolves the trick,
// and installs the winner as the next leader.
func (r *Round) playTrick(bots []Bot) Trick {
	n := len(bots)
	trickNum := len(r.Tricks) + 1
	r.Current = make([]Play, 0, n)

	for i := 0; i < n; i++ {
		seat := (r.Leader + i) % n
		legal := LegalPlays(r.Hands[seat], r.Current)
		req := PlayRequest{
			Seat:       seat,
			NumPlayers: n,
			RoundNum:   r.Num,
			Hand:       cloneCards(r.Hands[seat]),
			Legal:      cloneCards(legal),
			Trick:      clonePlays(r.Current),
			Previous:   cloneTricks(r.Tricks),
			Bids:       cloneInts(r.Bids),
			TricksWon:  cloneInts(r.TricksWon),
		}
		card := r.repairPlay(seat, trickNum, bots[seat].PlayCard(req), legal)

		hand, _ := removeCard(r.Hands[seat], card)
		r.Hands[seat] = hand
		r.Current = append(r.Current, Play{Seat: seat, Card: card})
	}

	winner, bonus := ResolveTrick(r.Current)
	trick := Trick{
		Plays:      r.Current,
		LedSuit:    LedSuitOf(r.Current),
		WinnerSeat: winner,
		Bonus:      bonus,
	}
	r.Tricks = append(r.Tricks, trick)
	r.Current = nil
	r.TricksWon[winner]++
	if bonus != nil {
		r.Bonuses[bonus.Seat] += bonus.Points
	}
	r.Leader = winner

	if len(r.Tricks) == r.Num {
		r.Phase = PhaseScoring
	}
	return trick
}

// repairPlay validates a bot's chosen card against its hand and the legal
// set, substituting the deterministic fallback (first legal card in
// canonical order) when the choice is invalid.
func (r *Round) repairPlay(seat, trickNum int, card Card, legal []Card) Card {
	if !containsCard(r.Hands[seat], card) {
		r.Violations = append(r.Violations, RuleViolation{
			Seat: seat, Round: r.Num, Trick: trickNum, Kind: ViolationCardNotInHand,
		})
		return legal[0]
	}
	if !containsCard(legal, card) {
		r.Violations = append(r.Violations, RuleViolation{
			Seat: seat, Round: r.Num, Trick: trickNum, Kind: ViolationFollowSuit,
		})
		return legal[0]
	}
	return card
}

// score converts bids, tricks-won and capture bonuses into per-seat deltas
// and moves the round to Complete.
func (r *Round) score() []int {
	r.Deltas = make([]int, len(r.Bids))
	for seat := range r.Bids {
		r.Deltas[seat] = ScoreRound(r.Bids[seat], r.TricksWon[seat], r.Num) + r.Bonuses[seat]
	}
	r.Phase = PhaseComplete
	return r.Deltas
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

func cloneInts(xs []int) []int {
	if xs == nil {
		return nil
	}
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}
