package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/tierboard/internal/gesture"
	"github.com/alexanderramin/tierboard/internal/tierstore"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	var src boardSource

	cmd := &cobra.Command{
		Use:   "edit [SEED]",
		Short: "Open a seed on the interactive board",
		Long: `Open a seed on the interactive board.

Changes live only for the session; the catalogued seed is never modified.
With no SEED and no --file, pick one from the catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("edit needs an interactive terminal; use 'tierboard replay' for scripted runs")
			}
			ctx := context.Background()
			if len(args) == 1 {
				src.SeedName = args[0]
			}

			if src.SeedName == "" && src.File == "" {
				form, err := seedPickerForm(ctx, app, &src.SeedName)
				if err != nil {
					return err
				}
				if form == nil {
					return errors.New("no seeds yet; import one with 'tierboard seed import FILE'")
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			title, tiers, err := loadBoard(ctx, app, src)
			if err != nil {
				return err
			}

			interp := gesture.NewInterpreter(tierstore.New(tiers), app.dispatchObserver())
			err = app.runBoard(newBoardModel(title, interp))
			app.logger().Info("board_closed", "board", title, "commits", interp.Store().Version())
			return err
		},
	}

	cmd.Flags().StringVar(&src.File, "file", "", "open a seed file without importing it")
	return cmd
}

func (app *App) runBoard(m *boardModel) error {
	if app.RunBoard != nil {
		return app.RunBoard(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
