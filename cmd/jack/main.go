package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/freeside-software/jack/internal/engine"
	"github.com/freeside-software/jack/internal/scores"
	"github.com/freeside-software/jack/internal/settings"
	"github.com/freeside-software/jack/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "jack",
		Short: "Play blackjack in the terminal",
		Long: `jack is a single-player blackjack table for the terminal.
Settings are kept between runs and finished sessions are recorded
for the High Scores screen.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runTUI(cfg)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("jack %s (commit %s, built %s, %s)\n", version, commit, buildTime, goVersion))

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/jack/config.yml)")
	cmd.Flags().String("db", "", "score database path")
	cmd.Flags().Uint64("seed", 0, "shuffle seed for a reproducible shoe (0 = random)")
	return cmd
}

func runTUI(cfg appConfig) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "jack")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	settingsFile := settings.File{Path: cfg.SettingsPath}
	saved, err := settingsFile.Load(cfg.tableSettings())
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	var store tui.ScoreStore
	db, err := scores.NewStore(cfg.DBPath, cfg.QueryTimeout)
	if err != nil {
		log.Printf("scores: %v (high scores disabled)", err)
	} else {
		defer db.Close()
		store = db
	}

	router := tui.NewRouter(tui.Config{
		MaxBet:          engine.Dollars(cfg.MaxBet),
		BetPollInterval: cfg.BetPollInterval,
		DealerPace:      cfg.DealerPace,
		HighScoreLimit:  cfg.HighScoreLimit,
		Seed:            cfg.Seed,
	}, saved, store, settingsFile)
	log.Printf("jack %s starting (config %q, db %q)", version, cfg.ConfigPath, cfg.DBPath)

	p := tea.NewProgram(tui.NewApp(router, tui.TargetMenu), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("jack requires a real terminal")
		}
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
