package tui

import (
	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/settings"
)

// ResponseKind is the outcome of a screen update.
type ResponseKind uint8

const (
	// Continue changes nothing.
	Continue ResponseKind = iota
	// Refresh redraws the same screen.
	Refresh
	// Exit ends the program successfully.
	Exit
	// NavigateTo replaces the screen with the one built for Target.
	NavigateTo
	// QuitRound asks the current screen to abandon its round.
	QuitRound
)

func (k ResponseKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Refresh:
		return "refresh"
	case Exit:
		return "exit"
	case NavigateTo:
		return "navigate"
	case QuitRound:
		return "quit-round"
	}
	return "unknown"
}

// Target names a screen the router can build.
type Target string

const (
	TargetMenu       Target = "menu"
	TargetGame       Target = "game"
	TargetSettings   Target = "settings"
	TargetTutorial   Target = "tutorial"
	TargetHighScores Target = "high-scores"
)

// Params carry state into the next screen.
type Params struct {
	// Bankroll is the balance the player leaves a table with.
	Bankroll engine.Amount
	// Settings replaces the session settings when set.
	Settings *settings.Settings
	// Resume, towards the game, starts the table from the last bankroll
	// instead of the starting one. Towards the menu it marks Bankroll as the
	// balance to resume, even when it is zero.
	Resume bool
}

// Response is returned once per update.
type Response struct {
	Kind   ResponseKind
	Target Target
	Params Params
}

var (
	continueResponse  = Response{Kind: Continue}
	refreshResponse   = Response{Kind: Refresh}
	exitResponse      = Response{Kind: Exit}
	quitRoundResponse = Response{Kind: QuitRound}
)

// Navigate builds a NavigateTo response.
func Navigate(target Target, params Params) Response {
	return Response{Kind: NavigateTo, Target: target, Params: params}
}
