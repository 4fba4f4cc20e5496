package importer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// Checksum returns the BLAKE3 digest of the canonical JSON encoding of sf.
// Two files with the same content in different formats share a checksum.
func Checksum(sf *SeedFile) (string, error) {
	data, err := json.Marshal(sf)
	if err != nil {
		return "", fmt.Errorf("encoding seed: %w", err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Convert turns a validated SeedFile into a domain seed. Missing tier and
// item ids are filled with fresh UUIDs; the tier label falls back to the
// file's default, then to fallback. Call ValidateSeedFile first.
func Convert(sf *SeedFile, fallback domain.LabelPosition) (*domain.Seed, error) {
	checksum, err := Checksum(sf)
	if err != nil {
		return nil, err
	}

	defaultLabel, err := domain.ParseLabelPosition(sf.DefaultLabelPosition)
	if err != nil {
		return nil, fmt.Errorf("default_label_position: %w", err)
	}
	if defaultLabel == "" {
		defaultLabel = fallback
	}

	tiers := make(domain.Collection, 0, len(sf.Tiers))
	for i, ti := range sf.Tiers {
		label, err := domain.ParseLabelPosition(ti.LabelPosition)
		if err != nil {
			return nil, fmt.Errorf("tiers[%d]: %w", i, err)
		}
		if label == "" {
			label = defaultLabel
		}

		tier := domain.Tier{
			ID:            orNewID(ti.ID),
			Name:          ti.Name,
			LabelPosition: label,
		}
		for _, it := range ti.Items {
			tier.Items = append(tier.Items, domain.Item{ID: orNewID(it.ID), Content: it.Content})
		}
		tiers = append(tiers, tier)
	}

	if err := tiers.Validate(); err != nil {
		return nil, fmt.Errorf("converted seed is inconsistent: %w", err)
	}

	return &domain.Seed{
		ID:        uuid.New().String(),
		Name:      sf.Name,
		Checksum:  checksum,
		Tiers:     tiers,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}, nil
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}
