package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbakit/internal/config"
	"github.com/theirongolddev/cbakit/internal/logging"
	"github.com/theirongolddev/cbakit/internal/tui"
	"github.com/theirongolddev/cbakit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	firstRun := !config.Exists()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// The dashboard owns the terminal, so logs go to a file.
	level := cfg.Log.Level
	if flagVerbose {
		level = "debug"
	}
	logger, err := logging.NewFile(config.LogPath(), level)
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Config:   cfg,
		Exporter: newExporter(cfg, logger),
		Logger:   logger,
		FirstRun: firstRun,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info("dashboard started", zap.Bool("first_run", firstRun))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
