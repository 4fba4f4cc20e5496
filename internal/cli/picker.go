package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tierboard/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func tierboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// seedPickerForm builds a select over the catalog. It returns nil when the
// catalog is empty.
func seedPickerForm(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	seeds, err := app.Seeds.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], 0, len(seeds))
	for _, s := range seeds {
		label := fmt.Sprintf("%s — %d tiers, %d items", s.Name, s.TierCount, s.ItemCount)
		options = append(options, huh.NewOption(label, s.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which seed?").
				Options(options...).
				Value(result),
		),
	).WithTheme(tierboardHuhTheme()).WithShowHelp(false), nil
}
