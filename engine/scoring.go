package engine

// Scoring constants.
const (
	CorrectBidPerTrick = 20 // per trick bid and won
	CorrectBidBonus    = 10 // flat bonus for an exact non-zero bid
	MissPenaltyPerUnit = 10 // per trick of bid/won difference
	ZeroBidPerRound    = 10 // per round number, for a successful zero bid
)

// ScoreRound converts a seat's bid and tricks won into its round delta,
// excluding capture bonuses (those are added by the round controller,
// independent of the bid outcome).
//
// An exact non-zero bid earns 20 per bid trick plus a flat 10. A successful
// zero bid earns 10 × the round number — the reward scales with round size
// rather than collapsing to the flat bonus. Any miss, including a failed
// zero bid, costs 10 per trick of difference between bid and actual.
func ScoreRound(bid, tricksWon, roundNum int) int {
	if bid == tricksWon {
		if bid == 0 {
			return ZeroBidPerRound * roundNum
		}
		return CorrectBidPerTrick*bid + CorrectBidBonus
	}
	diff := bid - tricksWon
	if diff < 0 {
		diff = -diff
	}
	return -MissPenaltyPerUnit * diff
}
