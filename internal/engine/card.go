// Package engine implements the blackjack table the terminal screens drive.
// Screens read a Phase snapshot and call actions; all rules live here.
package engine

import "fmt"

// Suit of a playing card.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitGlyphs = [...]string{"♠", "♥", "♦", "♣"}

func (s Suit) String() string {
	if int(s) < len(suitGlyphs) {
		return suitGlyphs[s]
	}
	return "?"
}

// Red reports whether the suit is drawn in red.
func (s Suit) Red() bool { return s == Hearts || s == Diamonds }

// Rank of a playing card, Ace=1 through King=13.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Points is the blackjack value of the rank with aces counted as one.
func (r Rank) Points() int {
	if r >= Ten {
		return 10
	}
	return int(r)
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string { return c.Rank.String() + c.Suit.String() }
