package engine

// Phase is a read-only snapshot of the round's current stage. It is one of
// WaitingForBet, WaitingToDeal, PlayerTurn, DealerTurn or RoundComplete.
type Phase interface {
	phase()
}

// WaitingForBet is the stage before a stake is placed.
type WaitingForBet struct {
	Bankroll Amount
}

// WaitingToDeal holds an accepted bet; the bankroll is already debited.
type WaitingToDeal struct {
	Bet      Amount
	Bankroll Amount
}

// PlayerTurn is the stage where the player acts on ActiveHand.
type PlayerTurn struct {
	Hands      []Hand
	ActiveHand int
	// Dealer holds only the face-up card while the hole card is hidden.
	Dealer   Hand
	Bankroll Amount
}

// DealerTurn is the stage where the dealer draws.
type DealerTurn struct {
	Hands    []Hand
	Dealer   Hand
	Bankroll Amount
}

// RoundComplete is the settled round.
type RoundComplete struct {
	Hands    []Hand
	Dealer   Hand
	Bankroll Amount
	// Net is the bankroll change over the round.
	Net Amount
}

func (WaitingForBet) phase() {}
func (WaitingToDeal) phase() {}
func (PlayerTurn) phase()    {}
func (DealerTurn) phase()    {}
func (RoundComplete) phase() {}

// Action is a player decision on a hand.
type Action uint8

const (
	Hit Action = iota
	Stand
	Double
	Split
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	}
	return "unknown"
}

// Stats summarizes play since the table opened.
type Stats struct {
	Rounds         int
	Wins           int
	Losses         int
	Pushes         int
	Blackjacks     int
	PeakBankroll   Amount
	CardsRemaining int
	ShoeSize       int
}
