// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/tovven/raido/internal/contactbook"
	"github.com/tovven/raido/internal/notebook"
	"github.com/tovven/raido/internal/shell"
	"github.com/tovven/raido/internal/storage"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.in == nil {
		app.in = os.Stdin
	}
	if app.out == nil {
		app.out = os.Stdout
	}

	cfg := app.config

	// Structured JSON logs go to stderr; the session owns stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("storage_backend", cfg.Storage.Backend),
		slog.Int("default_window", cfg.Birthdays.DefaultWindow),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Initialize the snapshot store.
	store, err := newProvider(cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer store.Close()

	// Load both books; a failure here is fatal.
	contacts := contactbook.New()
	notes := notebook.New()
	if err := shell.LoadBooks(store, contacts, notes); err != nil {
		return fmt.Errorf("load stores: %w", err)
	}
	logger.Info("stores loaded",
		slog.Int("contacts", contacts.Len()),
		slog.Int("notes", notes.Len()))

	sh := shell.New(shell.Params{
		Contacts:      contacts,
		Notes:         notes,
		Store:         store,
		In:            app.in,
		Out:           app.out,
		Logger:        logger,
		DefaultWindow: cfg.Birthdays.DefaultWindow,
	})

	g, gCtx := errgroup.WithContext(ctx)
	replCtx, stopRepl := context.WithCancel(gCtx)
	defer stopRepl()

	// Drive the interactive session.
	g.Go(func() error {
		defer stopRepl()
		if err := sh.Run(replCtx); err != nil {
			return fmt.Errorf("session error: %w", err)
		}
		return nil
	})

	// A shutdown signal takes the same save-and-exit path as the exit
	// command.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			stopRepl()
		case <-replCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Session ended")
	return nil
}

// newProvider builds the snapshot backend named by the config.
func newProvider(cfg *Config) (storage.Provider, error) {
	switch cfg.Storage.Backend {
	case BackendSQLite:
		return storage.OpenSQLite(cfg.Storage.Path)
	default:
		return storage.NewFS(cfg.Storage.Dir)
	}
}
