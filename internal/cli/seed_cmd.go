package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/tierboard/internal/cli/formatter"
	"github.com/alexanderramin/tierboard/internal/service"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Manage the seed catalog",
	}

	cmd.AddCommand(
		newSeedImportCmd(app),
		newSeedListCmd(app),
		newSeedShowCmd(app),
		newSeedRemoveCmd(app),
	)

	return cmd
}

func newSeedImportCmd(app *App) *cobra.Command {
	var opts service.ImportOptions

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a seed file (JSON or YAML, optionally .xz)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Seeds.Import(context.Background(), args[0], opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %s (%d tiers, %d items)\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(result.Seed.Name),
				result.TierCount, result.ItemCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "catalog name (defaults to the name in the file)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "import even if identical content is already catalogued")
	return cmd
}

func newSeedListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalogued seeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := app.Seeds.List(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(seeds) == 0 {
				fmt.Fprintln(out, "No seeds found.")
				return nil
			}

			now := time.Now()
			headers := []string{"Name", "Tiers", "Items", "Imported", "Checksum"}
			rows := make([][]string, 0, len(seeds))
			for _, s := range seeds {
				rows = append(rows, []string{
					s.Name,
					strconv.Itoa(s.TierCount),
					strconv.Itoa(s.ItemCount),
					formatter.HumanTimestampFrom(s.CreatedAt, now),
					formatter.Dim(formatter.TruncID(s.Checksum)),
				})
			}

			fmt.Fprint(out, formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newSeedShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a seed's tiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := app.Seeds.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Seed"))
			fmt.Fprintf(out, "  Name:     %s\n", formatter.Bold(seed.Name))
			fmt.Fprintf(out, "  Tiers:    %d\n", len(seed.Tiers))
			fmt.Fprintf(out, "  Items:    %d\n", seed.Tiers.ItemCount())
			if seed.Source != "" {
				fmt.Fprintf(out, "  Source:   %s\n", seed.Source)
			}
			fmt.Fprintf(out, "  Checksum: %s\n", formatter.Dim(seed.Checksum))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("Board"))
			fmt.Fprint(out, formatter.RenderBoard(seed.Tiers, formatter.Marks{}))
			return nil
		},
	}
}

func newSeedRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"remove"},
		Short:   "Remove a seed from the catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Seeds.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed seed %s\n", formatter.Bold(args[0]))
			return nil
		},
	}
}
