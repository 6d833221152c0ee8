package engine

// RoundView is a deep-copied, read-only view of one round for presentation
// layers. Mutating a view never touches engine state.
type RoundView struct {
	Num        int
	Phase      RoundPhase
	Bids       []int
	TricksWon  []int
	Tricks     []Trick
	Deltas     []int
	Bonuses    []int
	Violations []RuleViolation
}

// Snapshot is a point-in-time view of the whole match. The presentation
// boundary is read-only: a renderer gets snapshots plus the advance
// triggers (AdvanceTrick, AdvanceRound, Run) and nothing else.
type Snapshot struct {
	RoundNum     int
	Phase        RoundPhase
	Hands        [][]Card
	Bids         []int
	TricksWon    []int
	CurrentTrick []Play
	Tricks       []Trick // completed tricks of the round in progress
	Scores       []int   // cumulative, by seat
	Rounds       []RoundView
	Done         bool
}

// Snapshot deep-copies the current match state. Safe to retain across
// advance calls.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		RoundNum: m.RoundNum(),
		Phase:    PhaseComplete,
		Scores:   cloneInts(m.scores),
		Done:     m.done,
	}
	if m.round != nil {
		snap.Phase = m.round.Phase
		snap.Hands = cloneHands(m.round.Hands)
		snap.Bids = cloneInts(m.round.Bids)
		snap.TricksWon = cloneInts(m.round.TricksWon)
		snap.CurrentTrick = clonePlays(m.round.Current)
		snap.Tricks = cloneTricks(m.round.Tricks)
	}
	snap.Rounds = make([]RoundView, len(m.completed))
	for i, r := range m.completed {
		snap.Rounds[i] = RoundView{
			Num:        r.Num,
			Phase:      r.Phase,
			Bids:       cloneInts(r.Bids),
			TricksWon:  cloneInts(r.TricksWon),
			Tricks:     cloneTricks(r.Tricks),
			Deltas:     cloneInts(r.Deltas),
			Bonuses:    cloneInts(r.Bonuses),
			Violations: append([]RuleViolation(nil), r.Violations...),
		}
	}
	return snap
}

func cloneHands(hands [][]Card) [][]Card {
	if hands == nil {
		return nil
	}
	out := make([][]Card, len(hands))
	for i := range hands {
		out[i] = cloneCards(hands[i])
	}
	return out
}
