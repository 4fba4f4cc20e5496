package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tierboard/internal/db"
	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/importer"
	"github.com/alexanderramin/tierboard/internal/repository"
)

type seedService struct {
	seeds        repository.SeedRepo
	uow          db.UnitOfWork
	defaultLabel domain.LabelPosition
	observer     UseCaseObserver
}

// NewSeedService wires the catalog service. defaultLabel applies to tiers
// whose seed file names no label position.
func NewSeedService(
	seeds repository.SeedRepo,
	uow db.UnitOfWork,
	defaultLabel domain.LabelPosition,
	observers ...UseCaseObserver,
) SeedService {
	return &seedService{
		seeds:        seeds,
		uow:          uow,
		defaultLabel: defaultLabel,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *seedService) Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	sf, err := importer.LoadSeedFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading seed file: %w", err)
	}
	return s.ImportSeedFile(ctx, sf, path, opts)
}

func (s *seedService) ImportSeedFile(ctx context.Context, sf *importer.SeedFile, source string, opts ImportOptions) (result *ImportResult, err error) {
	fields := map[string]any{"source": source}
	defer observe(ctx, s.observer, "import-seed", time.Now().UTC(), fields, &err)

	if opts.Name != "" {
		copied := *sf
		copied.Name = opts.Name
		sf = &copied
	}
	if errs := importer.ValidateSeedFile(sf); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	seed, err := importer.Convert(sf, s.defaultLabel)
	if err != nil {
		return nil, fmt.Errorf("converting seed file: %w", err)
	}
	seed.Source = source
	fields["seed"] = seed.Name

	if !opts.Force {
		existing, lookupErr := s.seeds.FindByChecksum(ctx, seed.Checksum)
		switch {
		case lookupErr == nil:
			return nil, fmt.Errorf("%w as %q (use --force to import a copy)", ErrDuplicateSeed, existing.Name)
		case !errors.Is(lookupErr, repository.ErrNotFound):
			return nil, lookupErr
		}
	}
	if _, lookupErr := s.seeds.GetByName(ctx, seed.Name); lookupErr == nil {
		return nil, fmt.Errorf("a seed named %q already exists (use --name to pick another)", seed.Name)
	} else if !errors.Is(lookupErr, repository.ErrNotFound) {
		return nil, lookupErr
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSeedRepo(tx).Create(ctx, seed)
	})
	if err != nil {
		return nil, fmt.Errorf("storing seed: %w", err)
	}

	result = &ImportResult{
		Seed:      seed,
		TierCount: len(seed.Tiers),
		ItemCount: seed.Tiers.ItemCount(),
	}
	fields["tier_count"] = result.TierCount
	fields["item_count"] = result.ItemCount
	return result, nil
}

// Get finds a seed by name, ignoring case. A miss names the closest
// catalogued seed when there is one.
func (s *seedService) Get(ctx context.Context, name string) (seed *domain.Seed, err error) {
	defer observe(ctx, s.observer, "get-seed", time.Now().UTC(), map[string]any{"seed": name}, &err)

	seed, err = s.seeds.GetByName(ctx, name)
	if err == nil {
		return seed, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return nil, s.notFound(ctx, name)
}

func (s *seedService) List(ctx context.Context) ([]repository.SeedSummary, error) {
	return s.seeds.List(ctx)
}

func (s *seedService) Remove(ctx context.Context, name string) (err error) {
	defer observe(ctx, s.observer, "remove-seed", time.Now().UTC(), map[string]any{"seed": name}, &err)

	seed, err := s.seeds.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.notFound(ctx, name)
		}
		return err
	}
	return s.seeds.Delete(ctx, seed.ID)
}

func (s *seedService) notFound(ctx context.Context, name string) error {
	summaries, err := s.seeds.List(ctx)
	if err != nil {
		return fmt.Errorf("seed %q: %w", name, repository.ErrNotFound)
	}
	names := make([]string, len(summaries))
	for i, sum := range summaries {
		names[i] = sum.Name
	}
	if hint := closestName(name, names); hint != "" {
		return fmt.Errorf("seed %q: %w (did you mean %q?)", name, repository.ErrNotFound, hint)
	}
	return fmt.Errorf("seed %q: %w", name, repository.ErrNotFound)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("seed validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return errors.New(msg)
}
