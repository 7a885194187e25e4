package engine

import "math/rand/v2"

// cutFraction is the share of the shoe dealt before a reshuffle is due.
const cutFraction = 0.75

// Shoe holds one or more decks dealt from the top.
type Shoe struct {
	cards []Card
	next  int
	cut   int
	rng   *rand.Rand
}

// NewShoe builds an unshuffled shoe of the given number of decks.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	if decks < 1 {
		decks = 1
	}
	cards := make([]Card, 0, decks*52)
	for d := 0; d < decks; d++ {
		for s := Spades; s <= Clubs; s++ {
			for r := Ace; r <= King; r++ {
				cards = append(cards, Card{Rank: r, Suit: s})
			}
		}
	}
	return &Shoe{
		cards: cards,
		cut:   int(float64(len(cards)) * cutFraction),
		rng:   rng,
	}
}

// Shuffle returns every card to the shoe and shuffles it.
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.next = 0
}

// Draw deals the top card, reshuffling first when the shoe is exhausted.
func (s *Shoe) Draw() Card {
	if s.next >= len(s.cards) {
		s.Shuffle()
	}
	c := s.cards[s.next]
	s.next++
	return c
}

// Remaining is the number of undealt cards.
func (s *Shoe) Remaining() int { return len(s.cards) - s.next }

// Size is the total number of cards in the shoe.
func (s *Shoe) Size() int { return len(s.cards) }

// PastCut reports whether the cut card has been reached.
func (s *Shoe) PastCut() bool { return s.next >= s.cut }

// stack puts the given cards on top of the shoe, first card dealt first.
// Tests use it to script rounds.
func (s *Shoe) stack(cards ...Card) {
	s.cards = append(append([]Card(nil), cards...), s.cards[s.next:]...)
	s.next = 0
	s.cut = len(s.cards)
}
