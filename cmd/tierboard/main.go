package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tierboard/internal/cli"
	"github.com/alexanderramin/tierboard/internal/config"
	"github.com/alexanderramin/tierboard/internal/db"
	"github.com/alexanderramin/tierboard/internal/gesture"
	"github.com/alexanderramin/tierboard/internal/repository"
	"github.com/alexanderramin/tierboard/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	app.Bootstrap = func(cfg config.Config) (func() error, error) {
		return wire(app, cfg)
	}
	return cli.Execute(app, nil)
}

// wire opens the catalog and log file named by cfg and fills in app.
func wire(app *cli.App, cfg config.Config) (func() error, error) {
	var closers []io.Closer
	cleanup := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i].Close())
		}
		return errors.Join(errs...)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	app.Gestures = gesture.NoopObserver{}
	if cfg.Log.File != "" {
		level, err := cfg.Log.SlogLevel()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		closers = append(closers, f)

		app.Logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		observer = service.NewLogUseCaseObserver(app.Logger)
		app.Gestures = gesture.NewLogObserver(app.Logger)
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	closers = append(closers, database)

	seedRepo := repository.NewSQLiteSeedRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app.Seeds = service.NewSeedService(seedRepo, uow, cfg.DefaultLabel(), observer)
	app.DefaultLabel = cfg.DefaultLabel()
	return cleanup, nil
}
