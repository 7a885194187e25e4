package tui

import (
	"time"

	"github.com/freeside-software/jack/internal/surface"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one full-frame view of the application. The App owns exactly
// one at a time and drops it as soon as it is replaced.
type Screen interface {
	// Wait declares how the next input unit is obtained.
	Wait() Wait
	// Update consumes exactly one input unit.
	Update(in Input) Response
	// Render draws the whole frame. It must not change any state.
	Render(s *surface.Surface)
}

// RoundResetter is implemented by screens that can abandon a round in
// progress when the App receives QuitRound.
type RoundResetter interface {
	ResetRound()
}

// WaitMode selects how the App feeds the next Update.
type WaitMode uint8

const (
	// WaitKey blocks until a key arrives.
	WaitKey WaitMode = iota
	// WaitPoll delivers a key, or a timeout after Wait.Timeout.
	WaitPoll
	// WaitNone runs the next Update immediately with no input.
	WaitNone
)

// Wait is a screen's declaration of its next input read.
type Wait struct {
	Mode    WaitMode
	Timeout time.Duration
}

// KeyWait blocks for a key.
func KeyWait() Wait { return Wait{Mode: WaitKey} }

// PollWait waits for a key for at most d.
func PollWait(d time.Duration) Wait { return Wait{Mode: WaitPoll, Timeout: d} }

// NoWait runs the next update at once.
func NoWait() Wait { return Wait{Mode: WaitNone} }

// KeyKind distinguishes key presses from releases.
type KeyKind uint8

const (
	Press KeyKind = iota
	Release
)

// KeyEvent is one logical key with its kind.
type KeyEvent struct {
	Msg  tea.KeyMsg
	Kind KeyKind
}

// InputKind tells what woke an Update.
type InputKind uint8

const (
	InputNone InputKind = iota
	InputKey
	InputTimeout
)

// Input is the single unit of input an Update consumes.
type Input struct {
	Kind InputKind
	Key  KeyEvent
}

// KeyInput wraps a pressed key.
func KeyInput(msg tea.KeyMsg) Input {
	return Input{Kind: InputKey, Key: KeyEvent{Msg: msg, Kind: Press}}
}

// Pressed returns the key when the input is a key press.
func (in Input) Pressed() (tea.KeyMsg, bool) {
	if in.Kind != InputKey || in.Key.Kind != Press {
		return tea.KeyMsg{}, false
	}
	return in.Key.Msg, true
}

// Released reports a release-kind key event. Screens answer it with Refresh
// and change nothing.
func (in Input) Released() bool {
	return in.Kind == InputKey && in.Key.Kind == Release
}
