package cli

import (
	"errors"
	"log/slog"

	"github.com/alexanderramin/tierboard/internal/config"
	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/gesture"
	"github.com/alexanderramin/tierboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Seeds        service.SeedService
	DefaultLabel domain.LabelPosition

	// Gestures receives one record per board dispatch. Nil means no-op.
	Gestures gesture.DispatchObserver
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. The board refuses
	// to start without one.
	IsInteractive func() bool

	// RunBoard runs a board model to completion. Tests replace it to drive
	// the model without a real program.
	RunBoard func(m *boardModel) error

	// Bootstrap, when set, wires the fields above from the resolved
	// configuration before any command runs. The returned func releases
	// what it opened.
	Bootstrap func(cfg config.Config) (func() error, error)

	cleanup func() error
}

// NewRootCmd creates the top-level "tierboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tierboard",
		Short:         "Arrange items into tiers from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.bootstrap(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
	}

	flags := root.PersistentFlags()
	flags.String("db", "", "seed catalog database path")
	flags.String("log-file", "", "write structured logs to this file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newEditCmd(app),
		newSeedCmd(app),
		newReplayCmd(app),
	)

	return root
}

func (app *App) bootstrap(cmd *cobra.Command) error {
	if app.Bootstrap == nil {
		return nil
	}
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		return err
	}
	app.cleanup = cleanup
	return nil
}

func (app *App) close() error {
	if app.cleanup == nil {
		return nil
	}
	err := app.cleanup()
	app.cleanup = nil
	return err
}

// Execute runs the root command and releases bootstrapped resources even
// when a command fails.
func Execute(app *App, args []string) error {
	root := NewRootCmd(app)
	if args != nil {
		root.SetArgs(args)
	}
	err := root.Execute()
	return errors.Join(err, app.close())
}

func (app *App) labelFallback() domain.LabelPosition {
	return app.DefaultLabel.OrDefault()
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) logger() *slog.Logger {
	if app.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return app.Logger
}

func (app *App) dispatchObserver() gesture.DispatchObserver {
	if app.Gestures == nil {
		return gesture.NoopObserver{}
	}
	return app.Gestures
}
