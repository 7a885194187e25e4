package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/scores"
	"github.com/freeside-software/jack/internal/settings"
	"github.com/freeside-software/jack/internal/surface"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type appliedAction struct {
	action engine.Action
	hand   int
}

// fakeTable is a scripted Engine. Tests set phase directly; mutating calls
// are recorded and move the phase along the happy path.
type fakeTable struct {
	phase engine.Phase
	stats engine.Stats
	// err, when set, is returned by the next mutating call instead of
	// changing anything.
	err error

	bets        []engine.Amount
	actions     []appliedAction
	dealt       int
	dealerPlays int
	nextRounds  int
	abandons    int
	shuffles    int
	opened      []engine.Options
}

func newFakeTable(bankroll engine.Amount) *fakeTable {
	return &fakeTable{
		phase: engine.WaitingForBet{Bankroll: bankroll},
		stats: engine.Stats{PeakBankroll: bankroll, CardsRemaining: 312, ShoeSize: 312},
	}
}

func (f *fakeTable) fail() error {
	err := f.err
	f.err = nil
	return err
}

func (f *fakeTable) Phase() engine.Phase { return f.phase }

func (f *fakeTable) AcceptBet(bet engine.Amount) error {
	f.bets = append(f.bets, bet)
	if err := f.fail(); err != nil {
		return err
	}
	bankroll := engine.Bankroll(f.phase)
	f.phase = engine.WaitingToDeal{Bet: bet, Bankroll: bankroll - bet}
	return nil
}

func (f *fakeTable) DealInitialCards() error {
	f.dealt++
	if err := f.fail(); err != nil {
		return err
	}
	deal := f.phase.(engine.WaitingToDeal)
	f.phase = engine.PlayerTurn{
		Hands:    []engine.Hand{{Cards: []engine.Card{card(engine.Ten, engine.Spades), card(engine.Six, engine.Hearts)}, Bet: deal.Bet}},
		Dealer:   engine.Hand{Cards: []engine.Card{card(engine.Nine, engine.Clubs)}},
		Bankroll: deal.Bankroll,
	}
	return nil
}

func (f *fakeTable) ApplyAction(action engine.Action, hand int) error {
	f.actions = append(f.actions, appliedAction{action: action, hand: hand})
	return f.fail()
}

func (f *fakeTable) Shuffle() { f.shuffles++ }

func (f *fakeTable) PlayDealer() error {
	f.dealerPlays++
	return f.fail()
}

func (f *fakeTable) NextRound() error {
	f.nextRounds++
	if err := f.fail(); err != nil {
		return err
	}
	f.phase = engine.WaitingForBet{Bankroll: engine.Bankroll(f.phase)}
	return nil
}

func (f *fakeTable) AbandonRound() error {
	f.abandons++
	if err := f.fail(); err != nil {
		return err
	}
	if _, ok := f.phase.(engine.WaitingForBet); ok {
		return engine.ErrWrongPhase
	}
	f.stats.Rounds++
	f.stats.Losses++
	f.phase = engine.WaitingForBet{Bankroll: engine.Bankroll(f.phase)}
	return nil
}

func (f *fakeTable) Stats() engine.Stats { return f.stats }

// fakeScores is an in-memory ScoreStore.
type fakeScores struct {
	sessions []scores.Session
	err      error
}

func (f *fakeScores) RecordSession(s scores.Session) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	s.ID = int64(len(f.sessions) + 1)
	f.sessions = append(f.sessions, s)
	return s.ID, nil
}

func (f *fakeScores) TopSessions(limit int) ([]scores.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[:min(limit, len(f.sessions))], nil
}

func (f *fakeScores) LastSession() (scores.Session, bool, error) {
	if f.err != nil || len(f.sessions) == 0 {
		return scores.Session{}, false, f.err
	}
	return f.sessions[len(f.sessions)-1], true, nil
}

type fakeSaver struct {
	saved []settings.Settings
}

func (f *fakeSaver) Save(s settings.Settings) error {
	f.saved = append(f.saved, s)
	return nil
}

func card(r engine.Rank, s engine.Suit) engine.Card { return engine.Card{Rank: r, Suit: s} }

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(s string) Input {
	switch s {
	case "enter":
		return KeyInput(tea.KeyMsg{Type: tea.KeyEnter})
	case "down":
		return KeyInput(tea.KeyMsg{Type: tea.KeyDown})
	case "up":
		return KeyInput(tea.KeyMsg{Type: tea.KeyUp})
	case "left":
		return KeyInput(tea.KeyMsg{Type: tea.KeyLeft})
	case "right":
		return KeyInput(tea.KeyMsg{Type: tea.KeyRight})
	case "backspace":
		return KeyInput(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	return KeyInput(runeKey(s))
}

func release(s string) Input {
	in := press(s)
	in.Key.Kind = Release
	return in
}

var timeout = Input{Kind: InputTimeout}

// frame renders sc into a w×h surface without styling.
func frame(sc Screen, w, h int) string {
	s := surface.New(w, h)
	sc.Render(s)
	return ansi.Strip(s.String())
}

// lineWith returns the first frame line containing sub.
func lineWith(frame, sub string) string {
	for _, line := range strings.Split(frame, "\n") {
		if strings.Contains(line, sub) {
			return line
		}
	}
	return ""
}

func testGameScreen(t *testing.T, table *fakeTable, store ScoreStore) *GameScreen {
	t.Helper()
	clock := time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)
	return NewGameScreen(table, GameOptions{
		Player:          "Ada",
		Decks:           6,
		MaxBet:          engine.Dollars(1000),
		BetPollInterval: 500 * time.Millisecond,
		DealerPace:      600 * time.Millisecond,
		Store:           store,
		Now:             func() time.Time { clock = clock.Add(time.Minute); return clock },
	})
}

func testRouter(table *fakeTable, store ScoreStore, saver SettingsSaver) *Router {
	r := NewRouter(DefaultConfig(), settings.Default(), store, saver)
	r.NewEngine = func(opts engine.Options) Engine {
		table.opened = append(table.opened, opts)
		if table.phase == nil {
			table.phase = engine.WaitingForBet{Bankroll: opts.Bankroll}
		}
		return table
	}
	return r
}
