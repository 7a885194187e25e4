package engine

import (
	"math/rand/v2"
	"time"
)

type stage uint8

const (
	stageBet stage = iota
	stageDeal
	stagePlayer
	stageDealer
	stageComplete
)

// DefaultMaxHands caps how many hands splitting can produce.
const DefaultMaxHands = 4

// Options configures a table.
type Options struct {
	Decks            int
	Bankroll         Amount
	DealerHitsSoft17 bool
	MaxHands         int
	// Seed makes shuffles reproducible; zero seeds from the clock.
	Seed uint64
}

// Game is a single-player blackjack table. It is not safe for concurrent use;
// the owning screen is its only caller.
type Game struct {
	opts     Options
	shoe     *Shoe
	stage    stage
	bankroll Amount
	bet      Amount
	hands    []Hand
	active   int
	dealer   Hand

	roundStart Amount
	net        Amount
	stats      Stats
}

// New opens a table with an unshuffled shoe; call Shuffle before dealing.
func New(opts Options) *Game {
	if opts.Decks < 1 {
		opts.Decks = 1
	}
	if opts.MaxHands < 1 {
		opts.MaxHands = DefaultMaxHands
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g := &Game{
		opts:     opts,
		shoe:     NewShoe(opts.Decks, rng),
		bankroll: opts.Bankroll,
	}
	g.stats.PeakBankroll = opts.Bankroll
	return g
}

// Phase returns a snapshot of the current stage. The snapshot does not alias
// the table's internal state.
func (g *Game) Phase() Phase {
	switch g.stage {
	case stageDeal:
		return WaitingToDeal{Bet: g.bet, Bankroll: g.bankroll}
	case stagePlayer:
		up := Hand{}
		if len(g.dealer.Cards) > 0 {
			up.Cards = []Card{g.dealer.Cards[0]}
		}
		return PlayerTurn{
			Hands:      cloneHands(g.hands),
			ActiveHand: g.active,
			Dealer:     up,
			Bankroll:   g.bankroll,
		}
	case stageDealer:
		return DealerTurn{Hands: cloneHands(g.hands), Dealer: g.dealer.clone(), Bankroll: g.bankroll}
	case stageComplete:
		return RoundComplete{
			Hands:    cloneHands(g.hands),
			Dealer:   g.dealer.clone(),
			Bankroll: g.bankroll,
			Net:      g.net,
		}
	}
	return WaitingForBet{Bankroll: g.bankroll}
}

// Shuffle returns all cards to the shoe and shuffles it.
func (g *Game) Shuffle() {
	g.shoe.Shuffle()
}

// AcceptBet debits the stake and moves to WaitingToDeal.
func (g *Game) AcceptBet(bet Amount) error {
	if g.stage != stageBet {
		return ErrWrongPhase
	}
	if bet <= 0 {
		return ErrInvalidBet
	}
	if bet > g.bankroll {
		return ErrInsufficientFunds
	}
	g.roundStart = g.bankroll
	g.bankroll -= bet
	g.bet = bet
	g.stage = stageDeal
	return nil
}

// DealInitialCards deals two cards each. A natural on either side settles
// the round immediately.
func (g *Game) DealInitialCards() error {
	if g.stage != stageDeal {
		return ErrWrongPhase
	}
	player := Hand{Bet: g.bet}
	g.dealer = Hand{}
	for i := 0; i < 2; i++ {
		player.Cards = append(player.Cards, g.shoe.Draw())
		g.dealer.Cards = append(g.dealer.Cards, g.shoe.Draw())
	}
	g.hands = []Hand{player}
	g.active = 0

	if player.Blackjack() || g.dealer.Blackjack() {
		g.settle()
		return nil
	}
	g.stage = stagePlayer
	return nil
}

// ApplyAction performs a player decision on the hand at index, which must be
// the active hand.
func (g *Game) ApplyAction(action Action, index int) error {
	if g.stage != stagePlayer {
		return ErrWrongPhase
	}
	if index != g.active || index < 0 || index >= len(g.hands) {
		return ErrNotActiveHand
	}

	switch action {
	case Hit:
		h := &g.hands[index]
		h.Cards = append(h.Cards, g.shoe.Draw())
		if h.Busted() {
			h.Outcome = OutcomeBust
		}
	case Stand:
		g.hands[index].Stood = true
	case Double:
		h := &g.hands[index]
		if len(h.Cards) != 2 {
			return ErrIllegalAction
		}
		if g.bankroll < h.Bet {
			return ErrInsufficientFunds
		}
		g.bankroll -= h.Bet
		h.Bet *= 2
		h.Doubled = true
		h.Cards = append(h.Cards, g.shoe.Draw())
		if h.Busted() {
			h.Outcome = OutcomeBust
		}
		h.Stood = true
	case Split:
		if err := g.split(index); err != nil {
			return err
		}
	default:
		return ErrIllegalAction
	}

	g.advance()
	return nil
}

func (g *Game) split(index int) error {
	h := g.hands[index]
	if !h.CanSplit() || len(g.hands) >= g.opts.MaxHands {
		return ErrIllegalAction
	}
	if g.bankroll < h.Bet {
		return ErrInsufficientFunds
	}
	g.bankroll -= h.Bet

	aces := h.Cards[0].Rank == Ace
	first := Hand{Cards: []Card{h.Cards[0], g.shoe.Draw()}, Bet: h.Bet, FromSplit: true, Stood: aces}
	second := Hand{Cards: []Card{h.Cards[1], g.shoe.Draw()}, Bet: h.Bet, FromSplit: true, Stood: aces}

	hands := make([]Hand, 0, len(g.hands)+1)
	hands = append(hands, g.hands[:index]...)
	hands = append(hands, first, second)
	hands = append(hands, g.hands[index+1:]...)
	g.hands = hands
	return nil
}

// advance moves the active index past finished hands and hands the table to
// the dealer once none are left.
func (g *Game) advance() {
	for g.active < len(g.hands) && g.hands[g.active].Done() {
		g.active++
	}
	if g.active < len(g.hands) {
		return
	}
	g.active = len(g.hands) - 1

	for _, h := range g.hands {
		if !h.Busted() {
			g.stage = stageDealer
			return
		}
	}
	g.settle()
}

// PlayDealer draws one dealer card, or settles the round once the dealer
// stands.
func (g *Game) PlayDealer() error {
	if g.stage != stageDealer {
		return ErrWrongPhase
	}
	if g.dealerMustHit() {
		g.dealer.Cards = append(g.dealer.Cards, g.shoe.Draw())
		return nil
	}
	g.settle()
	return nil
}

func (g *Game) dealerMustHit() bool {
	total, soft := g.dealer.Value()
	if total < 17 {
		return true
	}
	return total == 17 && soft && g.opts.DealerHitsSoft17
}

func (g *Game) settle() {
	dealerTotal := g.dealer.Total()
	dealerBlackjack := g.dealer.Blackjack()

	for i := range g.hands {
		h := &g.hands[i]
		total := h.Total()
		var payout Amount
		switch {
		case h.Busted():
			h.Outcome = OutcomeBust
		case h.Blackjack() && dealerBlackjack:
			h.Outcome = OutcomePush
			payout = h.Bet
		case h.Blackjack():
			h.Outcome = OutcomeBlackjack
			payout = h.Bet + h.Bet*3/2
		case dealerBlackjack:
			h.Outcome = OutcomeLose
		case g.dealer.Busted() || total > dealerTotal:
			h.Outcome = OutcomeWin
			payout = 2 * h.Bet
		case total == dealerTotal:
			h.Outcome = OutcomePush
			payout = h.Bet
		default:
			h.Outcome = OutcomeLose
		}
		g.bankroll += payout
		g.record(h.Outcome)
	}

	g.finishRound()
	g.stage = stageComplete
}

func (g *Game) record(o Outcome) {
	switch o {
	case OutcomeWin:
		g.stats.Wins++
	case OutcomeBlackjack:
		g.stats.Wins++
		g.stats.Blackjacks++
	case OutcomePush:
		g.stats.Pushes++
	default:
		g.stats.Losses++
	}
}

func (g *Game) finishRound() {
	g.net = g.bankroll - g.roundStart
	g.stats.Rounds++
	if g.bankroll > g.stats.PeakBankroll {
		g.stats.PeakBankroll = g.bankroll
	}
}

// NextRound clears the settled round and returns to betting, reshuffling
// once the cut card has been reached.
func (g *Game) NextRound() error {
	if g.stage != stageComplete {
		return ErrWrongPhase
	}
	g.reset()
	return nil
}

// AbandonRound forfeits every unresolved stake and returns to betting. An
// accepted bet that has not been dealt is refunded.
func (g *Game) AbandonRound() error {
	switch g.stage {
	case stageBet:
		return ErrWrongPhase
	case stageDeal:
		g.bankroll += g.bet
	case stagePlayer, stageDealer:
		for i := range g.hands {
			if !g.hands[i].Resolved() {
				g.hands[i].Outcome = OutcomeForfeit
				g.record(OutcomeForfeit)
			}
		}
		g.finishRound()
	}
	g.reset()
	return nil
}

func (g *Game) reset() {
	g.hands = nil
	g.dealer = Hand{}
	g.active = 0
	g.bet = 0
	g.net = 0
	if g.shoe.PastCut() {
		g.shoe.Shuffle()
	}
	g.stage = stageBet
}

// Stats reports table statistics.
func (g *Game) Stats() Stats {
	s := g.stats
	s.CardsRemaining = g.shoe.Remaining()
	s.ShoeSize = g.shoe.Size()
	return s
}

// Bankroll extracts the bankroll carried by any phase snapshot.
func Bankroll(p Phase) Amount {
	switch p := p.(type) {
	case WaitingForBet:
		return p.Bankroll
	case WaitingToDeal:
		return p.Bankroll
	case PlayerTurn:
		return p.Bankroll
	case DealerTurn:
		return p.Bankroll
	case RoundComplete:
		return p.Bankroll
	}
	return 0
}
