package tui

import (
	"fmt"

	"github.com/freeside-software/jack/internal/surface"

	"github.com/charmbracelet/bubbles/key"
)

type tutorialPage struct {
	title string
	lines []string
}

var tutorialPages = []tutorialPage{
	{
		title: "The Goal",
		lines: []string{
			"Beat the dealer by finishing closer to 21",
			"without going over.",
			"",
			"Number cards count their face value,",
			"J, Q and K count 10,",
			"an Ace counts 11 unless that would bust you, then 1.",
		},
	},
	{
		title: "A Round",
		lines: []string{
			"Type your bet with the digit keys and press enter.",
			"You and the dealer get two cards each;",
			"one dealer card stays face down.",
			"",
			"An Ace with a ten-point card is a blackjack.",
			"It pays 3 to 2 and ends the round at once.",
		},
	},
	{
		title: "Your Turn",
		lines: []string{
			"h  hit: take another card",
			"s  stand: keep the hand",
			"d  double: double the bet, take exactly one card",
			"p  split: play a pair as two hands, each with the bet",
			"x  forfeit: give up the stakes on the table",
			"",
			"Split Aces get one card each.",
		},
	},
	{
		title: "The Dealer",
		lines: []string{
			"The dealer draws until reaching 17 or more.",
			"With \"Dealer Hits Soft 17\" on, a soft 17 draws too.",
			"",
			"A win pays even money, a push returns your bet.",
			"Press enter after a round to bet again.",
		},
	},
	{
		title: "Getting Around",
		lines: []string{
			"j / ↓  next     k / ↑  previous",
			"l / →  raise    h / ←  lower a setting",
			"m  main menu    q  quit",
			"",
			"Your best sessions are kept under High Scores.",
		},
	},
}

// TutorialScreen pages through the rules and keys.
type TutorialScreen struct {
	nav MenuNav
}

// NewTutorialScreen opens on the first page.
func NewTutorialScreen() *TutorialScreen {
	return &TutorialScreen{nav: NewMenuNav(len(tutorialPages))}
}

// Page is the page being shown.
func (t *TutorialScreen) Page() int { return t.nav.Index() }

func (t *TutorialScreen) Wait() Wait { return KeyWait() }

func (t *TutorialScreen) Update(in Input) Response {
	msg, ok := in.Pressed()
	if !ok {
		return refreshResponse
	}
	switch {
	case key.Matches(msg, keys.Quit):
		return exitResponse
	case key.Matches(msg, keys.Menu):
		return Navigate(TargetMenu, Params{})
	case key.Matches(msg, keys.Down):
		t.nav.Increment(1)
	case key.Matches(msg, keys.Up):
		t.nav.Increment(-1)
	}
	return refreshResponse
}

func (t *TutorialScreen) Render(s *surface.Surface) {
	page := tutorialPages[t.nav.Index()]

	rows := surface.Split(s.Area(), surface.Vertical,
		surface.Length(1),
		surface.Min(3),
		surface.Length(1),
	)
	cols := surface.Split(rows[1], surface.Horizontal,
		surface.Ratio(1, 10),
		surface.Ratio(8, 10),
		surface.Ratio(1, 10),
	)
	box := cols[1]
	s.Border(box, borderPen)
	s.BorderText(box, surface.EdgeTop, surface.AlignCenter, " "+page.title+" ", titlePen)
	s.BorderText(box, surface.EdgeBottom, surface.AlignRight,
		fmt.Sprintf(" %d/%d ", t.nav.Index()+1, t.nav.Len()), helpPen)

	inner := box.Inner()
	top := inner.Y + max(0, (inner.Height-len(page.lines))/2)
	body := surface.Rect{X: inner.X + 2, Y: top, Width: max(0, inner.Width-4), Height: inner.Y + inner.Height - top}
	s.Lines(body, page.lines, surface.AlignLeft, textPen)

	drawFooter(s, rows[2], helpLine(keys.Down, keys.Up, keys.Menu, keys.Quit))
}
