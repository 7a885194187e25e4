package tui

import (
	"errors"
	"log"
	"time"

	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/scores"

	"github.com/charmbracelet/bubbles/key"
)

// GameOptions configure a GameScreen.
type GameOptions struct {
	Player          string
	Decks           int
	MaxBet          engine.Amount
	BetPollInterval time.Duration
	DealerPace      time.Duration
	// Store records the session when the player leaves; nil disables it.
	Store ScoreStore
	Now   func() time.Time
}

// GameScreen bridges the table's phases to keys and frames. It never keeps
// its own copy of the phase: Wait, Update and Render each ask the table.
type GameScreen struct {
	table Engine
	opts  GameOptions

	bet    betBuffer
	notice string

	started       time.Time
	startBankroll engine.Amount
	recorded      bool
}

// NewGameScreen takes ownership of table, which should be waiting for a bet.
func NewGameScreen(table Engine, opts GameOptions) *GameScreen {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &GameScreen{
		table:         table,
		opts:          opts,
		bet:           betBuffer{blink: true},
		started:       opts.Now(),
		startBankroll: engine.Bankroll(table.Phase()),
	}
}

// BetText is the bet typed so far.
func (g *GameScreen) BetText() string { return g.bet.text() }

// Notice is the message from the last rejected action, if any.
func (g *GameScreen) Notice() string { return g.notice }

func (g *GameScreen) Wait() Wait {
	switch g.table.Phase().(type) {
	case engine.WaitingForBet:
		return PollWait(g.opts.BetPollInterval)
	case engine.WaitingToDeal:
		return NoWait()
	case engine.DealerTurn:
		return PollWait(g.opts.DealerPace)
	}
	return KeyWait()
}

func (g *GameScreen) Update(in Input) Response {
	if in.Released() {
		return refreshResponse
	}

	phase := g.table.Phase()
	if _, ok := phase.(engine.WaitingForBet); !ok {
		g.bet.clear()
	}

	msg, pressed := in.Pressed()
	if pressed {
		switch {
		case key.Matches(msg, keys.Quit):
			g.leave()
			return exitResponse
		case key.Matches(msg, keys.Menu):
			return Navigate(TargetMenu, Params{Bankroll: g.leave(), Resume: true})
		}
	}

	switch p := phase.(type) {
	case engine.WaitingForBet:
		return g.updateBet(in)
	case engine.WaitingToDeal:
		g.reject(g.table.DealInitialCards())
		return refreshResponse
	case engine.PlayerTurn:
		return g.updatePlayer(in, p)
	case engine.DealerTurn:
		if in.Kind == InputTimeout {
			g.reject(g.table.PlayDealer())
		}
		return refreshResponse
	case engine.RoundComplete:
		if pressed && key.Matches(msg, keys.Deal) {
			g.notice = ""
			g.reject(g.table.NextRound())
		}
		return refreshResponse
	}
	return refreshResponse
}

func (g *GameScreen) updateBet(in Input) Response {
	if in.Kind == InputTimeout {
		g.bet.tick()
		return refreshResponse
	}
	msg, ok := in.Pressed()
	if !ok {
		return continueResponse
	}

	switch {
	case key.Matches(msg, keys.Digit):
		digit := int64(msg.String()[0] - '0')
		if !g.bet.push(digit, g.opts.MaxBet) {
			g.notice = "Maximum bet is $" + g.opts.MaxBet.String()
		}
	case key.Matches(msg, keys.Backspace):
		g.bet.pop()
	case key.Matches(msg, keys.Enter):
		g.notice = ""
		if g.reject(g.table.AcceptBet(g.bet.amount())) {
			g.bet.clear()
		}
	}
	return refreshResponse
}

func (g *GameScreen) updatePlayer(in Input, p engine.PlayerTurn) Response {
	msg, ok := in.Pressed()
	if !ok {
		return continueResponse
	}

	var action engine.Action
	switch {
	case key.Matches(msg, keys.Forfeit):
		return quitRoundResponse
	case key.Matches(msg, keys.Hit):
		action = engine.Hit
	case key.Matches(msg, keys.Stand):
		action = engine.Stand
	case key.Matches(msg, keys.Double):
		action = engine.Double
	case key.Matches(msg, keys.Split):
		action = engine.Split
	default:
		return refreshResponse
	}
	g.notice = ""
	g.reject(g.table.ApplyAction(action, p.ActiveHand))
	return refreshResponse
}

// ResetRound abandons the round in progress and returns to betting.
func (g *GameScreen) ResetRound() {
	g.bet.clear()
	g.notice = ""
	if err := g.table.AbandonRound(); err != nil {
		g.reject(err)
		return
	}
	g.notice = "Round forfeited"
}

// reject turns an engine error into a notice. It reports whether err was nil.
func (g *GameScreen) reject(err error) bool {
	if err == nil {
		return true
	}
	log.Printf("tui: table rejected action: %v", err)
	g.notice = rejectionText(err)
	return false
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidBet):
		return "Enter a bet first"
	case errors.Is(err, engine.ErrInsufficientFunds):
		return "Not enough money"
	case errors.Is(err, engine.ErrIllegalAction):
		return "Not allowed on this hand"
	case errors.Is(err, engine.ErrNotActiveHand):
		return "That hand is not in play"
	case errors.Is(err, engine.ErrWrongPhase):
		return "Not now"
	}
	return err.Error()
}

// leave settles the table for the player walking away: stakes still in play
// are forfeited and the session is recorded once. It returns the bankroll
// the player leaves with.
func (g *GameScreen) leave() engine.Amount {
	if _, betting := g.table.Phase().(engine.WaitingForBet); !betting {
		if err := g.table.AbandonRound(); err != nil {
			log.Printf("tui: abandoning round: %v", err)
		}
	}
	bankroll := engine.Bankroll(g.table.Phase())
	g.record(bankroll)
	return bankroll
}

func (g *GameScreen) record(bankroll engine.Amount) {
	stats := g.table.Stats()
	if g.recorded || g.opts.Store == nil || stats.Rounds == 0 {
		return
	}
	g.recorded = true

	sess := scores.Session{
		Player:        g.opts.Player,
		StartedAt:     g.started,
		EndedAt:       g.opts.Now(),
		Decks:         g.opts.Decks,
		StartBankroll: g.startBankroll,
		EndBankroll:   bankroll,
		PeakBankroll:  max(stats.PeakBankroll, bankroll),
		Rounds:        stats.Rounds,
		Wins:          stats.Wins,
		Losses:        stats.Losses,
		Pushes:        stats.Pushes,
		Blackjacks:    stats.Blackjacks,
	}
	if _, err := g.opts.Store.RecordSession(sess); err != nil {
		log.Printf("tui: recording session: %v", err)
	}
}
