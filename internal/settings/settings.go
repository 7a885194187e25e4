// Package settings persists the table settings chosen on the Settings screen.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/freeside-software/jack/internal/model"

	"gopkg.in/yaml.v3"
)

// Settings are the player-adjustable table options.
type Settings struct {
	Decks            int    `yaml:"decks"`
	StartingBankroll int64  `yaml:"starting-bankroll"`
	DealerHitsSoft17 bool   `yaml:"dealer-hits-soft-17"`
	PlayerName       string `yaml:"player-name"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Decks:            model.DefaultDecks,
		StartingBankroll: model.DefaultStartingBankroll,
		DealerHitsSoft17: model.DefaultDealerHitsSoft17,
		PlayerName:       model.DefaultPlayerName,
	}
}

// Normalize clamps every value into its allowed range.
func (s Settings) Normalize() Settings {
	s.Decks = min(max(s.Decks, model.MinDecks), model.MaxDecks)
	s.StartingBankroll = min(max(s.StartingBankroll, model.MinStartingBankroll), model.MaxStartingBankroll)
	if s.PlayerName == "" {
		s.PlayerName = model.DefaultPlayerName
	}
	return s
}

// File stores settings as YAML at Path. An empty Path disables persistence.
type File struct {
	Path string
}

// Load reads the file over base. A missing file returns base unchanged.
func (f File) Load(base Settings) (Settings, error) {
	if f.Path == "" {
		return base, nil
	}
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("reading settings %s: %w", f.Path, err)
	}
	out := base
	if err := yaml.Unmarshal(data, &out); err != nil {
		return base, fmt.Errorf("parsing settings %s: %w", f.Path, err)
	}
	return out.Normalize(), nil
}

// Save writes the settings, replacing the file atomically.
func (f File) Save(s Settings) error {
	if f.Path == "" {
		return nil
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replacing settings: %w", err)
	}
	return nil
}
