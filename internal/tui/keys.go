package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every binding with built-in help text. Some keys mean
// different things on different screens; each screen matches only its own
// bindings.
type KeyMap struct {
	// Global
	Quit key.Binding
	Menu key.Binding

	// Lists
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding

	// Settings values
	Increase key.Binding
	Decrease key.Binding

	// Table
	Hit       key.Binding
	Stand     key.Binding
	Double    key.Binding
	Split     key.Binding
	Forfeit   key.Binding
	Digit     key.Binding
	Backspace key.Binding
	Deal      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),

		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),

		Hit: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hit"),
		),
		Stand: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stand"),
		),
		Double: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "double"),
		),
		Split: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "split"),
		),
		Forfeit: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "forfeit"),
		),
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "bet"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "erase"),
		),
		Deal: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "deal"),
		),
	}
}

var keys = DefaultKeyMap()

// helpLine renders short help for bindings, e.g. "h hit · s stand".
func helpLine(bindings ...key.Binding) string {
	out := ""
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if out != "" {
			out += " · "
		}
		out += h.Key + " " + h.Desc
	}
	return out
}
