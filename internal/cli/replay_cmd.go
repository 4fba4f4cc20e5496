package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/tierboard/internal/cli/formatter"
	"github.com/alexanderramin/tierboard/internal/gesture"
	"github.com/alexanderramin/tierboard/internal/tierstore"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *App) *cobra.Command {
	var (
		src        boardSource
		eventsPath string
	)

	cmd := &cobra.Command{
		Use:   "replay [SEED]",
		Short: "Apply recorded gesture events to a seed and print the result",
		Long: `Apply recorded gesture events to a seed and print the result.

The events file holds a JSON array of gesture events:

  [{"source":{"droppableId":"s","index":0},
    "destination":{"droppableId":"a","index":1},
    "type":"DEFAULT"}]

A null destination is a cancelled gesture. "type":"TIER" swaps the contents
of the tiers at the source and destination indices. Use "-" to read events
from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				src.SeedName = args[0]
			}
			if src.SeedName == "" && src.File == "" {
				return errors.New("give a seed name or --file")
			}
			ctx := context.Background()

			events, err := readEvents(cmd.InOrStdin(), eventsPath)
			if err != nil {
				return err
			}
			title, tiers, err := loadBoard(ctx, app, src)
			if err != nil {
				return err
			}

			interp := gesture.NewInterpreter(tierstore.New(tiers), app.dispatchObserver())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Events"))
			applied := 0
			for i, ev := range events {
				outcome := interp.Dispatch(ctx, ev)
				if outcome == gesture.OutcomeApplied {
					applied++
				}
				fmt.Fprintf(out, "%3d  %s  %s\n", i+1, formatter.OutcomeIndicator(outcome), ev)
			}
			fmt.Fprintf(out, "%s\n\n", formatter.Dim(fmt.Sprintf("%d of %d applied", applied, len(events))))
			app.logger().Info("replay_finished", "board", title, "events", len(events), "applied", applied)

			fmt.Fprintln(out, formatter.Header(title))
			fmt.Fprint(out, formatter.RenderBoard(interp.Store().Snapshot(), formatter.Marks{}))
			return nil
		},
	}

	cmd.Flags().StringVar(&src.File, "file", "", "start from a seed file instead of the catalog")
	cmd.Flags().StringVar(&eventsPath, "events", "", "JSON file of gesture events (\"-\" for stdin)")
	_ = cmd.MarkFlagRequired("events")
	return cmd
}

func readEvents(stdin io.Reader, path string) ([]gesture.Event, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}

	var events []gesture.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}
	return events, nil
}
