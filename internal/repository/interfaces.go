package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/tierboard/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// SeedSummary is a catalog listing row: a seed header plus its sizes.
type SeedSummary struct {
	ID        string
	Name      string
	Checksum  string
	Source    string
	TierCount int
	ItemCount int
	CreatedAt time.Time
}

type SeedRepo interface {
	Create(ctx context.Context, s *domain.Seed) error
	GetByID(ctx context.Context, id string) (*domain.Seed, error)
	GetByName(ctx context.Context, name string) (*domain.Seed, error)
	FindByChecksum(ctx context.Context, checksum string) (*domain.Seed, error)
	List(ctx context.Context) ([]SeedSummary, error)
	Delete(ctx context.Context, id string) error
}
