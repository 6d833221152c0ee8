package engine

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// TestDeckComposition verifies the fixed card set: 56 numbered, 5 escapes,
// 2 mermaids, 2 pirates, one skull king, no duplicates among numbered.
func TestDeckComposition(t *testing.T) {
	d := NewDeck()
	if len(d) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(d))
	}

	typeCounts := map[CardType]int{}
	numbered := map[Card]int{}
	for _, c := range d {
		typeCounts[c.Type()]++
		if c.Type() == TypeNumbered {
			numbered[c]++
		}
	}

	if typeCounts[TypeNumbered] != NumSuits*MaxRank {
		t.Errorf("expected %d numbered cards, got %d", NumSuits*MaxRank, typeCounts[TypeNumbered])
	}
	if typeCounts[TypeEscape] != NumEscapes {
		t.Errorf("expected %d escapes, got %d", NumEscapes, typeCounts[TypeEscape])
	}
	if typeCounts[TypeMermaid] != NumMermaids {
		t.Errorf("expected %d mermaids, got %d", NumMermaids, typeCounts[TypeMermaid])
	}
	if typeCounts[TypePirate] != NumPirates {
		t.Errorf("expected %d pirates, got %d", NumPirates, typeCounts[TypePirate])
	}
	if typeCounts[TypeSkullKing] != 1 {
		t.Errorf("expected exactly one skull king, got %d", typeCounts[TypeSkullKing])
	}
	for c, n := range numbered {
		if n != 1 {
			t.Errorf("numbered card %v appears %d times", c, n)
		}
	}
}

// TestShuffleDeterministic: the same seed produces the same permutation.
func TestShuffleDeterministic(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(rand.New(rand.NewPCG(7, 7)))
	b.Shuffle(rand.New(rand.NewPCG(7, 7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffles diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestShufflePreservesCards: shuffling is a permutation, not a mutation.
func TestShufflePreservesCards(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewPCG(3, 9)))
	counts := map[Card]int{}
	for _, c := range d {
		counts[c]++
	}
	for _, c := range NewDeck() {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %v count off by %d after shuffle", c, n)
		}
	}
}

// TestDealConsumption: dealing P hands of R cards consumes exactly P*R
// cards from the front and no card lands in two hands.
func TestDealConsumption(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewPCG(11, 2)))

	const players, round = 4, 7
	hands, err := d.Deal(players, round)
	if err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	if len(hands) != players {
		t.Fatalf("expected %d hands, got %d", players, len(hands))
	}

	seen := map[Card]bool{}
	total := 0
	for _, hand := range hands {
		if len(hand) != round {
			t.Errorf("expected hand of %d, got %d", round, len(hand))
		}
		for _, c := range hand {
			if c.Type() == TypeNumbered && seen[c] {
				t.Errorf("card %v dealt twice", c)
			}
			seen[c] = true
			total++
		}
	}
	if total != players*round {
		t.Errorf("expected %d cards dealt, got %d", players*round, total)
	}
}

// TestDealInsufficientCards: a deal the deck cannot cover fails loudly.
func TestDealInsufficientCards(t *testing.T) {
	d := NewDeck()
	if _, err := d.Deal(7, 10); !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("expected ErrInsufficientCards, got %v", err)
	}
	// Largest legal deal must succeed: 6 players x 10 rounds = 60 <= 66.
	if _, err := d.Deal(MaxPlayers, NumRounds); err != nil {
		t.Fatalf("max legal deal failed: %v", err)
	}
}
