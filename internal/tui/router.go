package tui

import (
	"log"
	"time"

	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/model"
	"github.com/freeside-software/jack/internal/scores"
	"github.com/freeside-software/jack/internal/settings"
)

// Engine is the blackjack table a GameScreen drives. engine.Game implements
// it.
type Engine interface {
	Phase() engine.Phase
	AcceptBet(bet engine.Amount) error
	DealInitialCards() error
	ApplyAction(action engine.Action, hand int) error
	Shuffle()
	PlayDealer() error
	NextRound() error
	AbandonRound() error
	Stats() engine.Stats
}

// ScoreStore records and reads back table sessions. scores.Store implements
// it.
type ScoreStore interface {
	RecordSession(sess scores.Session) (int64, error)
	TopSessions(limit int) ([]scores.Session, error)
	LastSession() (scores.Session, bool, error)
}

// SettingsSaver persists settings changed on the Settings screen.
type SettingsSaver interface {
	Save(s settings.Settings) error
}

// Config holds the timing and limits of the screens.
type Config struct {
	MaxBet          engine.Amount
	BetPollInterval time.Duration
	DealerPace      time.Duration
	HighScoreLimit  int
	// Seed makes every table reproducible; zero shuffles from the clock.
	Seed uint64
}

// DefaultConfig returns the built-in timings and limits.
func DefaultConfig() Config {
	return Config{
		MaxBet:          engine.Dollars(model.DefaultMaxBet),
		BetPollInterval: model.DefaultBetPollInterval,
		DealerPace:      model.DefaultDealerPace,
		HighScoreLimit:  model.DefaultHighScoreLimit,
	}
}

// Router builds the screen for a navigation target. It keeps the state that
// outlives a single screen: the session settings and the bankroll the player
// last left a table with.
type Router struct {
	cfg      Config
	settings settings.Settings
	store    ScoreStore
	saver    SettingsSaver

	// NewEngine opens a table; tests replace it with a fake.
	NewEngine func(opts engine.Options) Engine
	// Now is the clock used for session timestamps.
	Now func() time.Time

	lastBankroll engine.Amount
	hasLast      bool
}

// NewRouter creates a router. store and saver may be nil.
func NewRouter(cfg Config, s settings.Settings, store ScoreStore, saver SettingsSaver) *Router {
	if cfg.BetPollInterval <= 0 {
		cfg.BetPollInterval = model.DefaultBetPollInterval
	}
	if cfg.DealerPace <= 0 {
		cfg.DealerPace = model.DefaultDealerPace
	}
	if cfg.MaxBet <= 0 {
		cfg.MaxBet = engine.Dollars(model.DefaultMaxBet)
	}
	if cfg.HighScoreLimit <= 0 {
		cfg.HighScoreLimit = model.DefaultHighScoreLimit
	}
	return &Router{
		cfg:       cfg,
		settings:  s.Normalize(),
		store:     store,
		saver:     saver,
		NewEngine: func(opts engine.Options) Engine { return engine.New(opts) },
		Now:       time.Now,
	}
}

// Settings are the current session settings.
func (r *Router) Settings() settings.Settings { return r.settings }

// Build constructs a fresh screen for target. Unknown targets get the
// placeholder screen.
func (r *Router) Build(target Target, p Params) Screen {
	if p.Settings != nil {
		r.settings = p.Settings.Normalize()
	}

	switch target {
	case TargetMenu:
		if p.Bankroll > 0 || p.Resume {
			r.lastBankroll = p.Bankroll
			r.hasLast = true
		}
		return NewMenuScreen()
	case TargetGame:
		return r.buildGame(p)
	case TargetSettings:
		return NewSettingsScreen(r.settings, r.saver)
	case TargetTutorial:
		return NewTutorialScreen()
	case TargetHighScores:
		return r.buildHighScores()
	}
	log.Printf("tui: no screen for target %q", target)
	return NewPlaceholderScreen(string(target))
}

func (r *Router) buildGame(p Params) Screen {
	bankroll := engine.Dollars(r.settings.StartingBankroll)
	if p.Resume {
		if last, ok := r.continueBankroll(); ok {
			bankroll = last
		}
	}

	table := r.NewEngine(engine.Options{
		Decks:            r.settings.Decks,
		Bankroll:         bankroll,
		DealerHitsSoft17: r.settings.DealerHitsSoft17,
		Seed:             r.cfg.Seed,
	})
	table.Shuffle()

	return NewGameScreen(table, GameOptions{
		Player:          r.settings.PlayerName,
		Decks:           r.settings.Decks,
		MaxBet:          r.cfg.MaxBet,
		BetPollInterval: r.cfg.BetPollInterval,
		DealerPace:      r.cfg.DealerPace,
		Store:           r.store,
		Now:             r.Now,
	})
}

// continueBankroll is the balance Continue resumes with: the last table left
// in this run, else the last recorded session. A broke balance does not
// resume.
func (r *Router) continueBankroll() (engine.Amount, bool) {
	if r.hasLast {
		return r.lastBankroll, r.lastBankroll > 0
	}
	if r.store == nil {
		return 0, false
	}
	last, ok, err := r.store.LastSession()
	if err != nil {
		log.Printf("tui: reading last session: %v", err)
		return 0, false
	}
	if !ok || last.EndBankroll <= 0 {
		return 0, false
	}
	return last.EndBankroll, true
}

func (r *Router) buildHighScores() Screen {
	if r.store == nil {
		return NewPlaceholderScreen("High scores need a score database")
	}
	rows, err := r.store.TopSessions(r.cfg.HighScoreLimit)
	if err != nil {
		log.Printf("tui: reading high scores: %v", err)
	}
	return NewHighScoresScreen(rows, err)
}
