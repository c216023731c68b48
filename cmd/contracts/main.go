// Command contracts opens the interactive contract tracker.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/contract-tracker/internal/app"
	"github.com/nhle/contract-tracker/internal/logging"
	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/store"
	"github.com/nhle/contract-tracker/internal/theme"
	"github.com/nhle/contract-tracker/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "contracts: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := model.DefaultConfigPath()
	cfg, err := model.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := theme.Apply(cfg.Display.Theme); err != nil {
		log.Warn().Err(err).Msg("falling back to default theme")
	}

	s, err := store.NewSQLiteStore(cfg.Database.Path, log)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Database.Path).Msg("opening store")
		return err
	}

	t := tracker.New(s, tracker.WithLogger(log))
	m := app.New(t, app.Options{
		RemindOnStartup: cfg.Reminders.OnStartup,
		Source:          s.Path(),
		Config:          *cfg,
		ConfigPath:      cfgPath,
		Logger:          log,
	})

	log.Info().Str("db", s.Path()).Msg("starting")
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
