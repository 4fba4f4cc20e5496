package importer

import (
	"testing"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_KeepsGivenIDsAndOrder(t *testing.T) {
	sf := &SeedFile{
		Name: "Fruit",
		Tiers: []TierImport{
			{ID: "s", Name: "S", LabelPosition: "top", Items: []ItemImport{
				{ID: "b", Content: "Banana"},
				{ID: "a", Content: "Apple"},
			}},
			{ID: "c", Name: "C"},
		},
	}

	seed, err := Convert(sf, domain.LabelLeft)
	require.NoError(t, err)

	assert.Equal(t, "Fruit", seed.Name)
	require.Len(t, seed.Tiers, 2)
	assert.Equal(t, "s", seed.Tiers[0].ID)
	assert.Equal(t, domain.LabelTop, seed.Tiers[0].LabelPosition)
	assert.Equal(t, []string{"b", "a"}, seed.Tiers.ItemIDs())
	assert.Equal(t, "Banana", seed.Tiers[0].Items[0].Content)
	assert.Empty(t, seed.Tiers[1].Items)
	assert.NotEmpty(t, seed.Checksum)
	assert.False(t, seed.CreatedAt.IsZero())
	_, err = uuid.Parse(seed.ID)
	assert.NoError(t, err)
}

func TestConvert_GeneratesMissingIDs(t *testing.T) {
	sf := &SeedFile{
		Name: "Anon",
		Tiers: []TierImport{
			{Name: "S", Items: []ItemImport{{Content: "x"}, {Content: "y"}}},
			{Name: "A", Items: []ItemImport{{Content: "z"}}},
		},
	}

	seed, err := Convert(sf, domain.LabelLeft)
	require.NoError(t, err)

	ids := append([]string{seed.Tiers[0].ID, seed.Tiers[1].ID}, seed.Tiers.ItemIDs()...)
	seen := map[string]bool{}
	for _, id := range ids {
		_, err := uuid.Parse(id)
		assert.NoError(t, err, id)
		assert.False(t, seen[id], "id %s reused", id)
		seen[id] = true
	}
}

func TestConvert_LabelFallbacks(t *testing.T) {
	sf := &SeedFile{
		Name:  "Labels",
		Tiers: []TierImport{{Name: "S"}, {Name: "A", LabelPosition: "right"}},
	}

	seed, err := Convert(sf, domain.LabelTop)
	require.NoError(t, err)
	assert.Equal(t, domain.LabelTop, seed.Tiers[0].LabelPosition)
	assert.Equal(t, domain.LabelRight, seed.Tiers[1].LabelPosition)

	sf.DefaultLabelPosition = "left"
	seed, err = Convert(sf, domain.LabelTop)
	require.NoError(t, err)
	assert.Equal(t, domain.LabelLeft, seed.Tiers[0].LabelPosition)
}

func TestConvert_EmptyFallbackLeavesLabelUnset(t *testing.T) {
	seed, err := Convert(&SeedFile{Name: "x", Tiers: []TierImport{{Name: "S"}}}, "")
	require.NoError(t, err)
	assert.Equal(t, domain.LabelPosition(""), seed.Tiers[0].LabelPosition)
	assert.Equal(t, domain.LabelLeft, seed.Tiers[0].Label())
}

func TestChecksum_StableAndContentSensitive(t *testing.T) {
	a := validMinimalSeed()
	b := validMinimalSeed()

	sumA, err := Checksum(a)
	require.NoError(t, err)
	sumB, err := Checksum(b)
	require.NoError(t, err)
	assert.Equal(t, sumA, sumB)
	assert.Len(t, sumA, 64)

	b.Tiers[0].Items[0].Content = "Green apple"
	sumC, err := Checksum(b)
	require.NoError(t, err)
	assert.NotEqual(t, sumA, sumC)
}
