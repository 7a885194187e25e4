package tui

import (
	"fmt"

	"github.com/freeside-software/jack/internal/scores"
	"github.com/freeside-software/jack/internal/surface"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HighScoresScreen lists the best sessions by peak bankroll next to a bar
// chart of their peaks.
type HighScoresScreen struct {
	rows []scores.Session
	err  error
	nav  MenuNav
}

// NewHighScoresScreen shows rows, best first. A non-nil err is shown in
// place of the table.
func NewHighScoresScreen(rows []scores.Session, err error) *HighScoresScreen {
	return &HighScoresScreen{rows: rows, err: err, nav: NewMenuNav(len(rows))}
}

// Selected is the highlighted row.
func (h *HighScoresScreen) Selected() int { return h.nav.Index() }

func (h *HighScoresScreen) Wait() Wait { return KeyWait() }

func (h *HighScoresScreen) Update(in Input) Response {
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
		h.nav.Increment(1)
	case key.Matches(msg, keys.Up):
		h.nav.Increment(-1)
	}
	return refreshResponse
}

func (h *HighScoresScreen) lines() []string {
	out := []string{fmt.Sprintf("%-3s %-12s %10s %10s %6s  %s", "#", "PLAYER", "PEAK", "END", "ROUNDS", "W-L-P")}
	for i, s := range h.rows {
		out = append(out, fmt.Sprintf("%-3d %-12.12s %10s %10s %6d  %d-%d-%d",
			i+1, s.Player, "$"+s.PeakBankroll.String(), "$"+s.EndBankroll.String(),
			s.Rounds, s.Wins, s.Losses, s.Pushes))
	}
	return out
}

func (h *HighScoresScreen) Render(s *surface.Surface) {
	rows := surface.Split(s.Area(), surface.Vertical,
		surface.Length(1),
		surface.Length(1),
		surface.Length(1),
		surface.Min(3),
		surface.Length(1),
	)
	s.Text(rows[1], "HIGH SCORES", surface.AlignCenter, titlePen)
	drawFooter(s, rows[4], helpLine(keys.Down, keys.Up, keys.Menu, keys.Quit))

	body := rows[3]
	switch {
	case h.err != nil:
		s.Text(body.Middle(), "Could not read scores: "+h.err.Error(), surface.AlignCenter, noticePen)
		return
	case len(h.rows) == 0:
		s.Text(body.Middle(), "No sessions yet. Play a table and leave it to record one.", surface.AlignCenter, helpPen)
		return
	}

	cols := surface.Split(body, surface.Horizontal,
		surface.Length(1),
		surface.Ratio(6, 10),
		surface.Length(1),
		surface.Min(0),
		surface.Length(1),
	)

	table := cols[1]
	s.Border(table, borderPen)
	lines := h.lines()
	inner := table.Inner().Shrink(1, 0)
	s.Text(inner.Row(0), lines[0], surface.AlignLeft, helpPen)
	for i, line := range lines[1:] {
		pen := textPen
		if i == h.nav.Index() {
			pen = selectedPen
		}
		s.Text(inner.Row(i+1), line, surface.AlignLeft, pen)
	}

	chart := cols[3]
	s.Border(chart, borderPen)
	s.BorderText(chart, surface.EdgeTop, surface.AlignLeft, " Peaks ", titlePen)
	if area := chart.Inner(); !area.Empty() {
		s.Block(area, h.chart(area.Width, area.Height))
	}
}

// chart draws one bar per session, the highlighted one in the accent color.
func (h *HighScoresScreen) chart(width, height int) string {
	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(max(1, min(3, (width-len(h.rows))/max(1, len(h.rows))))),
		barchart.WithNoAxis(),
	)
	normal := lipgloss.NewStyle().Foreground(ColorGold).Background(ColorGold)
	active := lipgloss.NewStyle().Foreground(ColorAccent).Background(ColorAccent)

	for i, s := range h.rows {
		style := normal
		if i == h.nav.Index() {
			style = active
		}
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: s.Player, Value: float64(s.PeakBankroll) / 100, Style: style},
			},
		})
	}
	bc.Draw()
	return bc.View()
}
