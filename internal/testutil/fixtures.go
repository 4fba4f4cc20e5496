package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/google/uuid"
)

var testSeedCounter atomic.Int64

// NewTestTier builds a tier whose id and name are both id, holding one item
// per itemID. Item content is the upper-cased id.
func NewTestTier(id string, itemIDs ...string) domain.Tier {
	t := domain.Tier{ID: id, Name: id}
	for _, itemID := range itemIDs {
		t.Items = append(t.Items, domain.Item{ID: itemID, Content: strings.ToUpper(itemID)})
	}
	return t
}

// SeedOption customizes a test seed.
type SeedOption func(*domain.Seed)

func WithSeedName(name string) SeedOption {
	return func(s *domain.Seed) {
		s.Name = name
	}
}

func WithSeedTiers(tiers ...domain.Tier) SeedOption {
	return func(s *domain.Seed) {
		s.Tiers = tiers
	}
}

func WithChecksum(sum string) SeedOption {
	return func(s *domain.Seed) {
		s.Checksum = sum
	}
}

// NewTestSeed returns a seed with three tiers (S, A, B) and a unique name and
// checksum. Tier and item ids are prefixed with the seed number so several
// test seeds can coexist in one catalog.
func NewTestSeed(opts ...SeedOption) *domain.Seed {
	n := testSeedCounter.Add(1)
	p := func(id string) string { return fmt.Sprintf("%s-%d", id, n) }

	s := &domain.Seed{
		ID:       uuid.New().String(),
		Name:     fmt.Sprintf("Seed %d", n),
		Checksum: fmt.Sprintf("checksum-%d", n),
		Tiers: domain.Collection{
			{ID: p("s"), Name: "S", LabelPosition: domain.LabelTop, Items: []domain.Item{
				{ID: p("apple"), Content: "Apple"},
				{ID: p("pear"), Content: "Pear"},
			}},
			{ID: p("a"), Name: "A", Items: []domain.Item{
				{ID: p("plum"), Content: "Plum"},
			}},
			{ID: p("b"), Name: "B", LabelPosition: domain.LabelRight},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
