package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/importer"
	"github.com/alexanderramin/tierboard/internal/repository"
)

// ErrDuplicateSeed is returned by Import when the catalog already holds a
// seed with identical content and Force was not set.
var ErrDuplicateSeed = errors.New("seed already imported")

// ImportOptions adjusts a seed import.
type ImportOptions struct {
	Name  string // overrides the name in the file
	Force bool   // import even when identical content is already catalogued
}

// ImportResult summarizes an imported seed.
type ImportResult struct {
	Seed      *domain.Seed
	TierCount int
	ItemCount int
}

// SeedService manages the seed catalog. Seeds are read-only once imported;
// boards opened from them are never saved back.
type SeedService interface {
	Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error)
	ImportSeedFile(ctx context.Context, sf *importer.SeedFile, source string, opts ImportOptions) (*ImportResult, error)
	Get(ctx context.Context, name string) (*domain.Seed, error)
	List(ctx context.Context) ([]repository.SeedSummary, error)
	Remove(ctx context.Context, name string) error
}
