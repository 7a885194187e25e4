package tui

import (
	"fmt"

	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/surface"
)

const (
	activeMarker = " <"
	betPrompt    = "BET: $"
)

// gameLayout is the fixed partition of the table frame. It does not depend
// on the phase.
type gameLayout struct {
	header surface.Rect
	dealer surface.Rect
	player surface.Rect
	stats  []surface.Rect
	footer surface.Rect
}

func layoutGame(area surface.Rect) gameLayout {
	rows := surface.Split(area, surface.Vertical,
		surface.Length(1),
		surface.Ratio(4, 10),
		surface.Ratio(4, 10),
		surface.Ratio(1, 10),
		surface.Length(1),
	)
	section := func(r surface.Rect) surface.Rect {
		return surface.Split(r, surface.Horizontal,
			surface.Ratio(2, 10),
			surface.Ratio(6, 10),
			surface.Ratio(2, 10),
		)[1]
	}
	stats := surface.Split(rows[3], surface.Horizontal,
		surface.Ratio(1, 20),
		surface.Ratio(6, 20),
		surface.Ratio(6, 20),
		surface.Ratio(6, 20),
		surface.Ratio(1, 20),
	)
	footer := surface.Split(rows[4], surface.Horizontal,
		surface.Length(1),
		surface.Min(10),
		surface.Length(1),
	)
	return gameLayout{
		header: rows[0],
		dealer: section(rows[1]),
		player: section(rows[2]),
		stats:  stats[1:4],
		footer: footer[1],
	}
}

func (g *GameScreen) Render(s *surface.Surface) {
	phase := g.table.Phase()
	l := layoutGame(s.Area())

	s.Text(l.header, "JACK", surface.AlignCenter, titlePen)
	g.renderDealer(s, l.dealer, phase)
	g.renderPlayer(s, l.player, phase)
	g.renderStats(s, l.stats, phase)
	g.renderFooter(s, l.footer, phase)
}

// dealerMessage is the dealer's line for the phase.
func dealerMessage(phase engine.Phase) string {
	switch p := phase.(type) {
	case engine.WaitingForBet:
		return "PLACE YOUR BET"
	case engine.WaitingToDeal:
		return "DEALING..."
	case engine.PlayerTurn:
		return "YOUR MOVE"
	case engine.DealerTurn:
		return "DEALER PLAYS"
	case engine.RoundComplete:
		switch {
		case p.Net > 0:
			return "YOU WIN $" + p.Net.String()
		case p.Net < 0:
			return "YOU LOSE $" + (-p.Net).String()
		}
		return "PUSH"
	}
	return ""
}

func (g *GameScreen) renderDealer(s *surface.Surface, area surface.Rect, phase engine.Phase) {
	s.Border(area, borderPen)
	s.BorderText(area, surface.EdgeTop, surface.AlignLeft, " Dealer ", titlePen)

	inner := area.Inner()
	lines := []string{dealerMessage(phase)}
	switch p := phase.(type) {
	case engine.PlayerTurn:
		lines = append(lines, "", "Cards "+p.Dealer.String()+" ▒▒")
	case engine.DealerTurn:
		lines = append(lines, "", "Cards "+p.Dealer.String())
	case engine.RoundComplete:
		lines = append(lines, "", "Cards "+p.Dealer.String())
	}
	top := inner.Y + max(0, (inner.Height-len(lines))/2)
	s.Lines(surface.Rect{X: inner.X, Y: top, Width: inner.Width, Height: inner.Y + inner.Height - top},
		lines, surface.AlignCenter, textPen)
}

func (g *GameScreen) renderPlayer(s *surface.Surface, area surface.Rect, phase engine.Phase) {
	s.Border(area, borderPen)
	s.BorderText(area, surface.EdgeTop, surface.AlignLeft, " "+g.opts.Player+" ", titlePen)
	s.BorderText(area, surface.EdgeBottom, surface.AlignRight,
		fmt.Sprintf(" Bet $%s · Bank $%s ", g.staked(phase), engine.Bankroll(phase)), helpPen)

	inner := area.Inner().Shrink(1, 0)
	switch p := phase.(type) {
	case engine.WaitingForBet:
		s.Text(inner.Middle(), g.prompt(), surface.AlignCenter, promptPen)
	case engine.WaitingToDeal:
		s.Text(inner.Middle(), "Bet $"+p.Bet.String(), surface.AlignCenter, textPen)
	case engine.PlayerTurn:
		renderHands(s, inner, p.Hands, p.ActiveHand, true)
	case engine.DealerTurn:
		renderHands(s, inner, p.Hands, -1, false)
	case engine.RoundComplete:
		renderHands(s, inner, p.Hands, -1, false)
	}
}

// prompt is the bet line. An empty amount shows nothing between the prompt
// and the cursor.
func (g *GameScreen) prompt() string {
	return betPrompt + g.bet.text() + g.bet.cursor()
}

// staked is the money on the table for the phase.
func (g *GameScreen) staked(phase engine.Phase) engine.Amount {
	var hands []engine.Hand
	switch p := phase.(type) {
	case engine.WaitingForBet:
		return g.bet.amount()
	case engine.WaitingToDeal:
		return p.Bet
	case engine.PlayerTurn:
		hands = p.Hands
	case engine.DealerTurn:
		hands = p.Hands
	case engine.RoundComplete:
		hands = p.Hands
	}
	var total engine.Amount
	for _, h := range hands {
		total += h.Bet
	}
	return total
}

// handLine is one hand's row. The active marker is only drawn while the
// player is acting.
func handLine(h engine.Hand, active bool) string {
	line := "Cards " + h.String()
	if h.Resolved() {
		line += " - " + h.Outcome.String()
	}
	if active {
		line += activeMarker
	}
	return line
}

// handWindow picks which hands fit in slots rows, keeping active visible.
// When some are hidden the last row reports how many.
func handWindow(count, active, slots int) (start, shown, hidden int) {
	if count <= slots {
		return 0, count, 0
	}
	shown = max(slots-1, 1)
	if active >= 0 {
		start = min(max(active-shown+1, 0), count-shown)
	}
	return start, shown, count - shown
}

func renderHands(s *surface.Surface, area surface.Rect, hands []engine.Hand, active int, playerTurn bool) {
	if area.Empty() {
		return
	}
	start, shown, hidden := handWindow(len(hands), active, area.Height)
	slots := shown
	if hidden > 0 {
		slots++
	}

	top := area.Y + max(0, (area.Height-slots)/2)
	regions := surface.Split(
		surface.Rect{X: area.X, Y: top, Width: area.Width, Height: area.Y + area.Height - top},
		surface.Vertical,
		surface.Repeat(surface.Length(1), slots)...,
	)
	for i := 0; i < shown; i++ {
		idx := start + i
		isActive := playerTurn && idx == active
		pen := textPen
		if isActive {
			pen = selectedPen
		}
		s.Text(regions[i], handLine(hands[idx], isActive), surface.AlignCenter, pen)
	}
	if hidden > 0 {
		s.Text(regions[shown], fmt.Sprintf("(+%d more hands)", hidden), surface.AlignCenter, helpPen)
	}
}

func (g *GameScreen) renderStats(s *surface.Surface, cells []surface.Rect, phase engine.Phase) {
	st := g.table.Stats()
	peak := max(st.PeakBankroll, engine.Bankroll(phase))
	texts := []string{
		fmt.Sprintf("Rounds %d · Peak $%s", st.Rounds, peak),
		fmt.Sprintf("W %d · L %d · P %d · BJ %d", st.Wins, st.Losses, st.Pushes, st.Blackjacks),
		fmt.Sprintf("Shoe %d/%d", st.CardsRemaining, st.ShoeSize),
	}
	for i, cell := range cells {
		s.Text(cell.Middle(), texts[i], surface.AlignCenter, helpPen)
	}
}

func (g *GameScreen) renderFooter(s *surface.Surface, area surface.Rect, phase engine.Phase) {
	if g.notice != "" {
		s.Text(area, g.notice, surface.AlignCenter, noticePen)
		return
	}
	var help string
	switch phase.(type) {
	case engine.WaitingForBet:
		help = helpLine(keys.Digit, keys.Backspace, keys.Enter, keys.Menu, keys.Quit)
	case engine.PlayerTurn:
		help = helpLine(keys.Hit, keys.Stand, keys.Double, keys.Split, keys.Forfeit, keys.Menu, keys.Quit)
	case engine.RoundComplete:
		help = helpLine(keys.Deal, keys.Menu, keys.Quit)
	default:
		help = helpLine(keys.Menu, keys.Quit)
	}
	s.Text(area, help, surface.AlignCenter, helpPen)
}
