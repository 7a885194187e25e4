package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cards     []Card
		wantTotal int
		wantSoft  bool
	}{
		{"empty", nil, 0, false},
		{"hard", []Card{c(Ten, Spades), c(Seven, Hearts)}, 17, false},
		{"soft", []Card{c(Ace, Spades), c(Six, Hearts)}, 17, true},
		{"two aces", []Card{c(Ace, Spades), c(Ace, Hearts)}, 12, true},
		{"ace falls back to one", []Card{c(Ace, Spades), c(Nine, Hearts), c(Five, Clubs)}, 15, false},
		{"faces count ten", []Card{c(King, Spades), c(Queen, Hearts)}, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, soft := Hand{Cards: tt.cards}.Value()
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantSoft, soft)
		})
	}
}

func TestHandBlackjack_NotAfterSplit(t *testing.T) {
	t.Parallel()

	h := Hand{Cards: []Card{c(Ace, Spades), c(King, Hearts)}}
	assert.True(t, h.Blackjack())
	h.FromSplit = true
	assert.False(t, h.Blackjack())
}

func TestHandString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", Hand{}.String())
	assert.Equal(t, "A♠ K♥ (21)", Hand{Cards: []Card{c(Ace, Spades), c(King, Hearts)}}.String())
	assert.Equal(t, "10♦ 2♣ (12)", Hand{Cards: []Card{c(Ten, Diamonds), c(Two, Clubs)}}.String())
}

func TestAmountString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", Amount(0).String())
	assert.Equal(t, "50", Dollars(50).String())
	assert.Equal(t, "150.50", Amount(15050).String())
	assert.Equal(t, "-12.05", Amount(-1205).String())
}

func TestShoe_DealsEveryCardThenReshuffles(t *testing.T) {
	t.Parallel()

	s := NewShoe(2, rand.New(rand.NewPCG(1, 2)))
	s.Shuffle()
	assert.Equal(t, 104, s.Size())

	seen := map[Card]int{}
	for i := 0; i < s.Size(); i++ {
		seen[s.Draw()]++
	}
	assert.Len(t, seen, 52)
	for card, n := range seen {
		assert.Equal(t, 2, n, "card %s", card)
	}
	assert.Equal(t, 0, s.Remaining())
	assert.True(t, s.PastCut())

	s.Draw()
	assert.Equal(t, s.Size()-1, s.Remaining())
}
