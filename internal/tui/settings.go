package tui

import (
	"fmt"
	"log"

	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/model"
	"github.com/freeside-software/jack/internal/settings"
	"github.com/freeside-software/jack/internal/surface"

	"github.com/charmbracelet/bubbles/key"
)

const (
	settingDecks = iota
	settingBankroll
	settingSoft17
	settingCount
)

// SettingsScreen adjusts the table settings. Every value saturates at its
// bounds like the list selection does.
type SettingsScreen struct {
	nav    MenuNav
	values settings.Settings
	saver  SettingsSaver
}

// NewSettingsScreen edits a copy of s. saver may be nil.
func NewSettingsScreen(s settings.Settings, saver SettingsSaver) *SettingsScreen {
	return &SettingsScreen{
		nav:    NewMenuNav(settingCount),
		values: s.Normalize(),
		saver:  saver,
	}
}

// Values are the settings as currently edited.
func (s *SettingsScreen) Values() settings.Settings { return s.values }

// Selected is the highlighted setting.
func (s *SettingsScreen) Selected() int { return s.nav.Index() }

func (s *SettingsScreen) Wait() Wait { return KeyWait() }

func (s *SettingsScreen) Update(in Input) Response {
	msg, ok := in.Pressed()
	if !ok {
		return refreshResponse
	}
	switch {
	case key.Matches(msg, keys.Quit):
		s.save()
		return exitResponse
	case key.Matches(msg, keys.Menu):
		s.save()
		values := s.values
		return Navigate(TargetMenu, Params{Settings: &values})
	case key.Matches(msg, keys.Down):
		s.nav.Increment(1)
	case key.Matches(msg, keys.Up):
		s.nav.Increment(-1)
	case key.Matches(msg, keys.Increase):
		s.adjust(1)
	case key.Matches(msg, keys.Decrease):
		s.adjust(-1)
	}
	return refreshResponse
}

func (s *SettingsScreen) adjust(step int) {
	switch s.nav.Index() {
	case settingDecks:
		s.values.Decks = min(max(s.values.Decks+step, model.MinDecks), model.MaxDecks)
	case settingBankroll:
		b := s.values.StartingBankroll + int64(step)*model.BankrollStep
		s.values.StartingBankroll = min(max(b, model.MinStartingBankroll), model.MaxStartingBankroll)
	case settingSoft17:
		s.values.DealerHitsSoft17 = step > 0
	}
}

func (s *SettingsScreen) save() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.values); err != nil {
		log.Printf("tui: saving settings: %v", err)
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func (s *SettingsScreen) lines() []string {
	return []string{
		fmt.Sprintf("Number of Decks: %d", s.values.Decks),
		fmt.Sprintf("Starting Bankroll: $%s", engine.Dollars(s.values.StartingBankroll)),
		fmt.Sprintf("Dealer Hits Soft 17: %s", onOff(s.values.DealerHitsSoft17)),
	}
}

func (s *SettingsScreen) Render(surf *surface.Surface) {
	area := surf.Area()
	rows := surface.Split(area, surface.Vertical,
		surface.Ratio(1, 10),
		surface.Length(1),
		surface.Length(1),
		surface.Length(settingCount+2),
		surface.Min(0),
		surface.Length(1),
	)
	surf.Text(rows[1], "SETTINGS", surface.AlignCenter, titlePen)

	box := rows[3]
	width := min(box.Width, 44)
	box = surface.Rect{X: box.X + (box.Width-width)/2, Y: box.Y, Width: width, Height: box.Height}
	surf.Border(box, borderPen)
	surf.BorderText(box, surface.EdgeBottom, surface.AlignRight, s.values.PlayerName, helpPen)
	drawList(surf, box.Inner(), s.lines(), s.nav.Index())

	drawFooter(surf, rows[5], helpLine(keys.Down, keys.Up, keys.Increase, keys.Decrease, keys.Menu, keys.Quit))
}
