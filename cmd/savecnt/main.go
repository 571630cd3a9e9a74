package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alexanderramin/savecnt/internal/cli"
	"github.com/alexanderramin/savecnt/internal/config"
	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/alexanderramin/savecnt/internal/db"
	"github.com/alexanderramin/savecnt/internal/export"
	"github.com/alexanderramin/savecnt/internal/repository"
	"github.com/alexanderramin/savecnt/internal/store"
	"github.com/alexanderramin/savecnt/internal/transport/telegram"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to a file only; the terminal belongs to the menu and the chat.
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	database, _, err := db.OpenOrReset(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	snapshots := repository.NewSQLiteSnapshotStore(database, db.NewSQLiteUnitOfWork(database))
	records := store.Open(ctx, snapshots, logger)
	renderer := export.NewRenderer()

	app := &cli.App{
		Config:   cfg,
		Store:    records,
		Renderer: renderer,
		Logger:   logger,
		Machine: conversation.New(records, renderer,
			conversation.WithPageSize(cfg.PageSize),
			conversation.WithObserver(conversation.NewSlogObserver(logger)),
		),
		Connect: func(token string) (telegram.API, string, error) {
			api, err := telegram.Connect(token)
			if err != nil {
				return nil, "", err
			}
			return api, api.Self.UserName, nil
		},
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
