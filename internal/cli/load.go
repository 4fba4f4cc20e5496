package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/importer"
)

// boardSource names where a board's starting tiers come from: a catalogued
// seed or a seed file read directly.
type boardSource struct {
	SeedName string
	File     string
}

func (s boardSource) validate() error {
	if s.SeedName != "" && s.File != "" {
		return errors.New("give either a seed name or --file, not both")
	}
	return nil
}

// loadBoard resolves src into a titled collection. A file is validated and
// converted in memory; it is never added to the catalog.
func loadBoard(ctx context.Context, app *App, src boardSource) (string, domain.Collection, error) {
	if err := src.validate(); err != nil {
		return "", nil, err
	}

	if src.File != "" {
		sf, err := importer.LoadSeedFile(src.File)
		if err != nil {
			return "", nil, fmt.Errorf("loading seed file: %w", err)
		}
		if errs := importer.ValidateSeedFile(sf); len(errs) > 0 {
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = "  - " + e.Error()
			}
			return "", nil, fmt.Errorf("%s is not a valid seed (%d errors):\n%s",
				filepath.Base(src.File), len(errs), strings.Join(msgs, "\n"))
		}
		seed, err := importer.Convert(sf, app.labelFallback())
		if err != nil {
			return "", nil, err
		}
		return seed.Name, seed.Tiers, nil
	}

	if app.Seeds == nil {
		return "", nil, errors.New("seed catalog is not available")
	}
	seed, err := app.Seeds.Get(ctx, src.SeedName)
	if err != nil {
		return "", nil, err
	}
	return seed.Name, seed.Tiers, nil
}
