package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/config"
	"todotui/internal/credits"
	"todotui/internal/engine"
	"todotui/internal/logging"
	"todotui/internal/storage"
	"todotui/internal/theme"
	"todotui/internal/update"
	"todotui/internal/views"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todotui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	logger, closeLog, err := logging.Open(cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := storage.MigrateUp(store.DB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ctx := context.Background()

	themes := theme.NewController(ctx, store, logger)
	themes.SetApplier(views.ThemeApplier{})
	themes.Resolve()

	var client *credits.Client
	if endpoint := cfg.CreditsEndpoint(); endpoint != "" {
		client = credits.NewClient(endpoint, cfg.Credits.Token)
	}

	m := update.NewModel(update.Deps{
		Engine:  engine.New(ctx, store, logger),
		Themes:  themes,
		Credits: client,
		Logger:  logger,
	})

	logger.Info("starting", "env", cfg.Environment, "db", cfg.DBPath)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
