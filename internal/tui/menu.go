package tui

import (
	"github.com/freeside-software/jack/internal/surface"

	"github.com/charmbracelet/bubbles/key"
)

type menuItem struct {
	label  string
	target Target
	params Params
}

var menuItems = []menuItem{
	{label: "Play", target: TargetGame},
	{label: "Continue", target: TargetGame, params: Params{Resume: true}},
	{label: "Tutorial", target: TargetTutorial},
	{label: "High Scores", target: TargetHighScores},
	{label: "Settings", target: TargetSettings},
}

// MenuScreen is the main menu.
type MenuScreen struct {
	nav MenuNav
}

// NewMenuScreen opens the menu with the first item selected.
func NewMenuScreen() *MenuScreen {
	return &MenuScreen{nav: NewMenuNav(len(menuItems))}
}

// Selected is the index of the highlighted item.
func (m *MenuScreen) Selected() int { return m.nav.Index() }

func (m *MenuScreen) Wait() Wait { return KeyWait() }

func (m *MenuScreen) Update(in Input) Response {
	msg, ok := in.Pressed()
	if !ok {
		return refreshResponse
	}
	switch {
	case key.Matches(msg, keys.Quit):
		return exitResponse
	case key.Matches(msg, keys.Down):
		m.nav.Increment(1)
	case key.Matches(msg, keys.Up):
		m.nav.Increment(-1)
	case key.Matches(msg, keys.Enter):
		item := menuItems[m.nav.Index()]
		return Navigate(item.target, item.params)
	}
	return refreshResponse
}

func (m *MenuScreen) Render(s *surface.Surface) {
	area := s.Area()
	rows := surface.Split(area, surface.Vertical,
		surface.Ratio(1, 10),
		surface.Length(len(titleArt)),
		surface.Length(1),
		surface.Length(2),
		surface.Length(len(menuItems)),
		surface.Min(0),
		surface.Length(1),
	)

	s.Lines(rows[1], titleArt, surface.AlignCenter, titlePen)
	s.Text(rows[2], credit, surface.AlignCenter, helpPen)

	labels := make([]string, len(menuItems))
	for i, item := range menuItems {
		labels[i] = item.label
	}
	drawList(s, rows[4], labels, m.nav.Index())
	drawFooter(s, rows[6], helpLine(keys.Down, keys.Up, keys.Enter, keys.Quit))
}
