package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSeedRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	seed := testutil.NewTestSeed(testutil.WithSeedName("Fruit"))
	seed.Source = "fruit.yaml"
	require.NoError(t, repo.Create(ctx, seed))

	fetched, err := repo.GetByID(ctx, seed.ID)
	require.NoError(t, err)
	assert.Equal(t, seed.ID, fetched.ID)
	assert.Equal(t, "Fruit", fetched.Name)
	assert.Equal(t, seed.Checksum, fetched.Checksum)
	assert.Equal(t, "fruit.yaml", fetched.Source)
	assert.True(t, seed.CreatedAt.Equal(fetched.CreatedAt))
	assert.Equal(t, seed.Tiers, fetched.Tiers)
}

func TestSeedRepo_PreservesOrderAndEmptyTiers(t *testing.T) {
	repo := NewSQLiteSeedRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	// Tier ids sort opposite to their positions.
	seed := testutil.NewTestSeed(testutil.WithSeedTiers(
		testutil.NewTestTier("z", "i3", "i1", "i2"),
		testutil.NewTestTier("m"),
		testutil.NewTestTier("a", "i9", "i0"),
	))
	require.NoError(t, repo.Create(ctx, seed))

	fetched, err := repo.GetByID(ctx, seed.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Tiers, 3)
	assert.Equal(t, []string{"z", "m", "a"}, []string{fetched.Tiers[0].ID, fetched.Tiers[1].ID, fetched.Tiers[2].ID})
	assert.Equal(t, []string{"i3", "i1", "i2", "i9", "i0"}, fetched.Tiers.ItemIDs())
	assert.Empty(t, fetched.Tiers[1].Items)
}

func TestSeedRepo_GetByNameIgnoresCase(t *testing.T) {
	repo := NewSQLiteSeedRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	seed := testutil.NewTestSeed(testutil.WithSeedName("Movies"))
	require.NoError(t, repo.Create(ctx, seed))

	fetched, err := repo.GetByName(ctx, "mOvIeS")
	require.NoError(t, err)
	assert.Equal(t, seed.ID, fetched.ID)
}

func TestSeedRepo_NotFound(t *testing.T) {
	repo := NewSQLiteSeedRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByName(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByChecksum(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "nope"), ErrNotFound)
}

func TestSeedRepo_DuplicateNameRejected(t *testing.T) {
	repo := NewSQLiteSeedRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSeed(testutil.WithSeedName("Games"))))
	err := repo.Create(ctx, testutil.NewTestSeed(testutil.WithSeedName("GAMES")))
	assert.Error(t, err)
}

func TestSeedRepo_FindByChecksum(t *testing.T) {
	repo := NewSQLiteSeedRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	seed := testutil.NewTestSeed(testutil.WithChecksum("abc123"))
	require.NoError(t, repo.Create(ctx, seed))

	fetched, err := repo.FindByChecksum(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, seed.ID, fetched.ID)
}

func TestSeedRepo_ListCountsTiersAndItems(t *testing.T) {
	repo := NewSQLiteSeedRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSeed(testutil.WithSeedName("beta"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSeed(
		testutil.WithSeedName("Alpha"),
		testutil.WithSeedTiers(testutil.NewTestTier("only", "x")),
	)))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, 1, list[0].TierCount)
	assert.Equal(t, 1, list[0].ItemCount)
	assert.Equal(t, "beta", list[1].Name)
	assert.Equal(t, 3, list[1].TierCount)
	assert.Equal(t, 3, list[1].ItemCount)
}

func TestSeedRepo_DeleteCascades(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSeedRepo(database)
	ctx := context.Background()

	seed := testutil.NewTestSeed()
	require.NoError(t, repo.Create(ctx, seed))
	require.NoError(t, repo.Delete(ctx, seed.ID))

	var tiers, items int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM seed_tiers WHERE seed_id = ?`, seed.ID).Scan(&tiers))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM seed_items WHERE seed_id = ?`, seed.ID).Scan(&items))
	assert.Zero(t, tiers)
	assert.Zero(t, items)
}

func TestSeedRepo_LabelPositionRoundTrip(t *testing.T) {
	repo := NewSQLiteSeedRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	seed := testutil.NewTestSeed()
	require.NoError(t, repo.Create(ctx, seed))

	fetched, err := repo.GetByID(ctx, seed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LabelTop, fetched.Tiers[0].LabelPosition)
	assert.Equal(t, domain.LabelPosition(""), fetched.Tiers[1].LabelPosition)
	assert.Equal(t, domain.LabelLeft, fetched.Tiers[1].Label())
	assert.Equal(t, domain.LabelRight, fetched.Tiers[2].LabelPosition)
}
