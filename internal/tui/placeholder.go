package tui

import (
	"github.com/freeside-software/jack/internal/surface"

	"github.com/charmbracelet/bubbles/key"
)

// PlaceholderScreen stands in for a target that has no screen.
type PlaceholderScreen struct {
	message string
}

func NewPlaceholderScreen(message string) *PlaceholderScreen {
	return &PlaceholderScreen{message: message}
}

func (p *PlaceholderScreen) Wait() Wait { return KeyWait() }

func (p *PlaceholderScreen) Update(in Input) Response {
	msg, ok := in.Pressed()
	if !ok {
		return refreshResponse
	}
	switch {
	case key.Matches(msg, keys.Quit):
		return exitResponse
	case key.Matches(msg, keys.Menu), key.Matches(msg, keys.Enter):
		return Navigate(TargetMenu, Params{})
	}
	return refreshResponse
}

func (p *PlaceholderScreen) Render(s *surface.Surface) {
	rows := surface.Split(s.Area(), surface.Vertical, surface.Min(5), surface.Length(1))
	box := rows[0].Shrink(rows[0].Width/4, rows[0].Height/3)
	s.Box(box, borderPen, "Nothing here yet", "", p.message)
	drawFooter(s, rows[1], helpLine(keys.Menu, keys.Quit))
}
