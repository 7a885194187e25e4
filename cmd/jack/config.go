package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/freeside-software/jack/internal/model"
	"github.com/freeside-software/jack/internal/settings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultQueryTimeout = 5 * time.Second

// appConfig is the runtime configuration of the table.
type appConfig struct {
	Decks            int           `mapstructure:"decks"`
	StartingBankroll int64         `mapstructure:"starting-bankroll"`
	DealerHitsSoft17 bool          `mapstructure:"dealer-hits-soft-17"`
	PlayerName       string        `mapstructure:"player-name"`
	MaxBet           int64         `mapstructure:"max-bet"`
	BetPollInterval  time.Duration `mapstructure:"bet-poll-interval"`
	DealerPace       time.Duration `mapstructure:"dealer-pace"`
	HighScoreLimit   int           `mapstructure:"high-score-limit"`
	DBPath           string        `mapstructure:"db-path"`
	SettingsPath     string        `mapstructure:"settings-path"`
	QueryTimeout     time.Duration `mapstructure:"query-timeout"`
	LogFile          string        `mapstructure:"log-file"`
	Seed             uint64        `mapstructure:"seed"`
	ConfigPath       string        `mapstructure:"-"` // not from config file
}

// tableSettings are the configured defaults for the Settings screen.
func (c appConfig) tableSettings() settings.Settings {
	return settings.Settings{
		Decks:            c.Decks,
		StartingBankroll: c.StartingBankroll,
		DealerHitsSoft17: c.DealerHitsSoft17,
		PlayerName:       c.PlayerName,
	}.Normalize()
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"db":   "db-path",
	"seed": "seed",
}

func loadConfig(configPath string, flags *pflag.FlagSet) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	dataDir := filepath.Join(home, ".local", "share", "jack")

	v := viper.New()
	v.SetEnvPrefix("JACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("decks", model.DefaultDecks)
	v.SetDefault("starting-bankroll", model.DefaultStartingBankroll)
	v.SetDefault("dealer-hits-soft-17", model.DefaultDealerHitsSoft17)
	v.SetDefault("player-name", model.DefaultPlayerName)
	v.SetDefault("max-bet", model.DefaultMaxBet)
	v.SetDefault("bet-poll-interval", model.DefaultBetPollInterval)
	v.SetDefault("dealer-pace", model.DefaultDealerPace)
	v.SetDefault("high-score-limit", model.DefaultHighScoreLimit)
	v.SetDefault("db-path", filepath.Join(dataDir, "scores.duckdb"))
	v.SetDefault("settings-path", filepath.Join(home, ".config", "jack", "settings.yml"))
	v.SetDefault("query-timeout", defaultQueryTimeout)
	v.SetDefault("log-file", "")
	v.SetDefault("seed", 0)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "jack", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.MaxBet <= 0 {
		return cfg, fmt.Errorf("invalid max-bet: %d", cfg.MaxBet)
	}
	if cfg.BetPollInterval <= 0 || cfg.DealerPace <= 0 {
		return cfg, fmt.Errorf("bet-poll-interval and dealer-pace must be positive")
	}

	cfg.DBPath = expandHome(cfg.DBPath, home)
	cfg.SettingsPath = expandHome(cfg.SettingsPath, home)
	cfg.LogFile = expandHome(cfg.LogFile, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
