package model

import "time"

// Shared defaults used by the CLI, the settings file and the screens.
const (
	DefaultDecks            = 6
	DefaultStartingBankroll = 1000
	DefaultDealerHitsSoft17 = false
	DefaultPlayerName       = "Jack"
	DefaultMaxBet           = 1_000_000
	DefaultBetPollInterval  = 500 * time.Millisecond
	DefaultDealerPace       = 600 * time.Millisecond
	DefaultHighScoreLimit   = 10

	MinDecks            = 1
	MaxDecks            = 8
	MinStartingBankroll = 100
	MaxStartingBankroll = 100_000
	BankrollStep        = 100
)
