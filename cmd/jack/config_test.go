package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/freeside-software/jack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := loadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, model.DefaultDecks, cfg.Decks)
	assert.Equal(t, int64(model.DefaultStartingBankroll), cfg.StartingBankroll)
	assert.Equal(t, model.DefaultBetPollInterval, cfg.BetPollInterval)
	assert.Equal(t, filepath.Join(home, ".local", "share", "jack", "scores.duckdb"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, ".config", "jack", "settings.yml"), cfg.SettingsPath)
	assert.Zero(t, cfg.Seed)
}

func TestLoadConfig_FileEnvAndFlags(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("JACK_PLAYER_NAME", "Grace")

	path := filepath.Join(home, "jack.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
decks: 2
dealer-hits-soft-17: true
dealer-pace: 250ms
db-path: ~/games/jack.duckdb
`), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--seed", "42"}))

	cfg, err := loadConfig(path, cmd.Flags())
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Decks)
	assert.True(t, cfg.DealerHitsSoft17)
	assert.Equal(t, 250*time.Millisecond, cfg.DealerPace)
	assert.Equal(t, "Grace", cfg.PlayerName)
	assert.Equal(t, filepath.Join(home, "games", "jack.duckdb"), cfg.DBPath)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoadConfig_DBFlagOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--db", "/tmp/other.duckdb"}))

	cfg, err := loadConfig("", cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.duckdb", cfg.DBPath)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "jack.yml")
	require.NoError(t, os.WriteFile(path, []byte("max-bet: -5\n"), 0o644))

	_, err := loadConfig(path, nil)
	assert.ErrorContains(t, err, "max-bet")
}

func TestTableSettings_Clamped(t *testing.T) {
	cfg := appConfig{Decks: 40, StartingBankroll: 5, PlayerName: ""}
	s := cfg.tableSettings()
	assert.Equal(t, model.MaxDecks, s.Decks)
	assert.Equal(t, int64(model.MinStartingBankroll), s.StartingBankroll)
	assert.Equal(t, model.DefaultPlayerName, s.PlayerName)
}
