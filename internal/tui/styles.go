package tui

import (
	"github.com/freeside-software/jack/internal/surface"

	"github.com/charmbracelet/lipgloss"
)

// Table palette.
var (
	ColorFelt   = lipgloss.Color("#0B6623")
	ColorGold   = lipgloss.Color("#F2C14E")
	ColorCream  = lipgloss.Color("#F5F1E6")
	ColorRed    = lipgloss.Color("#E5484D")
	ColorMuted  = lipgloss.Color("#8A8F98")
	ColorAccent = lipgloss.Color("#00CAC7")
)

var (
	borderPen   = surface.Pen{FG: ColorFelt}
	titlePen    = surface.Pen{FG: ColorGold, Bold: true}
	textPen     = surface.Pen{FG: ColorCream}
	selectedPen = surface.Pen{FG: ColorAccent, Bold: true}
	helpPen     = surface.Pen{FG: ColorMuted, Faint: true}
	noticePen   = surface.Pen{FG: ColorRed, Bold: true}
	promptPen   = surface.Pen{FG: ColorGold, Bold: true}
)

// titleArt is the banner on the main menu.
var titleArt = []string{
	" ╦╔═╗╔═╗╦╔═",
	" ║╠═╣║  ╠╩╗",
	"╚╝╩ ╩╚═╝╩ ╩",
}

const credit = "Made by Freeside Software"

// drawFooter writes help text on the last row of area.
func drawFooter(s *surface.Surface, area surface.Rect, help string) {
	if area.Empty() {
		return
	}
	s.Text(area.Row(area.Height-1), help, surface.AlignCenter, helpPen)
}

// drawList renders items one per row, marking the selected one.
func drawList(s *surface.Surface, area surface.Rect, items []string, selected int) {
	for i, item := range items {
		if i >= area.Height {
			return
		}
		if i == selected {
			s.Text(area.Row(i), "> "+item+" <", surface.AlignCenter, selectedPen)
			continue
		}
		s.Text(area.Row(i), item, surface.AlignCenter, textPen)
	}
}
