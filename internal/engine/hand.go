package engine

import (
	"fmt"
	"strings"
)

// Amount is money in cents.
type Amount int64

// Dollars converts a whole-dollar value to an Amount.
func Dollars(n int64) Amount { return Amount(n * 100) }

// String formats the amount as dollars, omitting zero cents.
func (a Amount) String() string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	if a%100 == 0 {
		return fmt.Sprintf("%s%d", sign, a/100)
	}
	return fmt.Sprintf("%s%d.%02d", sign, a/100, a%100)
}

// Outcome is the settlement result of a hand.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomePush
	OutcomeBlackjack
	OutcomeBust
	OutcomeForfeit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeLose:
		return "Lose"
	case OutcomePush:
		return "Push"
	case OutcomeBlackjack:
		return "Blackjack"
	case OutcomeBust:
		return "Bust"
	case OutcomeForfeit:
		return "Forfeit"
	}
	return ""
}

// Hand is one betting position's cards.
type Hand struct {
	Cards   []Card
	Bet     Amount
	Outcome Outcome
	Doubled bool
	Stood   bool
	// FromSplit marks hands created by a split; they never count as blackjack.
	FromSplit bool
}

// Resolved reports whether the hand has a settlement outcome.
func (h Hand) Resolved() bool { return h.Outcome != OutcomeNone }

// Value returns the best total and whether an ace is counted as eleven.
func (h Hand) Value() (total int, soft bool) {
	aces := 0
	for _, c := range h.Cards {
		total += c.Rank.Points()
		if c.Rank == Ace {
			aces++
		}
	}
	if aces > 0 && total+10 <= 21 {
		return total + 10, true
	}
	return total, false
}

// Total is the best total of the hand.
func (h Hand) Total() int {
	t, _ := h.Value()
	return t
}

// Blackjack reports a natural 21 on the first two cards.
func (h Hand) Blackjack() bool {
	return !h.FromSplit && len(h.Cards) == 2 && h.Total() == 21
}

// Busted reports a total over 21.
func (h Hand) Busted() bool { return h.Total() > 21 }

// Done reports whether the player can no longer act on the hand.
func (h Hand) Done() bool {
	return h.Stood || h.Resolved() || h.Total() >= 21
}

// CanSplit reports whether the first two cards share a rank.
func (h Hand) CanSplit() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

// String renders the cards followed by the total, e.g. "A♠ K♥ (21)".
func (h Hand) String() string {
	if len(h.Cards) == 0 {
		return "-"
	}
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), h.Total())
}

func (h Hand) clone() Hand {
	h.Cards = append([]Card(nil), h.Cards...)
	return h
}

func cloneHands(hands []Hand) []Hand {
	out := make([]Hand, len(hands))
	for i, h := range hands {
		out[i] = h.clone()
	}
	return out
}
