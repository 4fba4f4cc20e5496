package tierstore

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents(t domain.Tier) []string {
	var out []string
	for _, it := range t.Items {
		out = append(out, it.ID)
	}
	return out
}

func TestReorderWithinTier_MovesFirstToLast(t *testing.T) {
	c := domain.Collection{testutil.NewTestTier("T", "a", "b", "c")}

	next, ok := ReorderWithinTier(c, "T", 0, 2)

	require.True(t, ok)
	assert.Equal(t, []string{"b", "c", "a"}, contents(next[0]))
	assert.Equal(t, []string{"a", "b", "c"}, contents(c[0]), "input must not change")
}

func TestReorderWithinTier_MovesLastToFirst(t *testing.T) {
	c := domain.Collection{testutil.NewTestTier("T", "a", "b", "c")}

	next, ok := ReorderWithinTier(c, "T", 2, 0)

	require.True(t, ok)
	assert.Equal(t, []string{"c", "a", "b"}, contents(next[0]))
}

func TestReorderWithinTier_SameIndexKeepsOrder(t *testing.T) {
	c := domain.Collection{testutil.NewTestTier("T", "a", "b")}

	next, ok := ReorderWithinTier(c, "T", 1, 1)

	require.True(t, ok)
	assert.Equal(t, c, next)
}

func TestReorderWithinTier_RejectsBadInput(t *testing.T) {
	c := domain.Collection{testutil.NewTestTier("T", "a", "b", "c")}

	cases := []struct {
		name     string
		tier     string
		from, to int
	}{
		{"unknown tier", "nope", 0, 1},
		{"negative from", "T", -1, 1},
		{"from past end", "T", 3, 0},
		{"to past end", "T", 0, 3},
		{"negative to", "T", 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := ReorderWithinTier(c, tc.tier, tc.from, tc.to)
			assert.False(t, ok)
			assert.Equal(t, c, next)
		})
	}
}

func TestReorderWithinTier_LeavesOtherTiersIdentical(t *testing.T) {
	c := domain.Collection{
		testutil.NewTestTier("T1", "a", "b"),
		testutil.NewTestTier("T2", "c", "d"),
	}

	next, ok := ReorderWithinTier(c, "T1", 0, 1)

	require.True(t, ok)
	assert.Equal(t, c[1], next[1])
	// Untouched tiers are carried over, not rebuilt.
	assert.Same(t, &c[1].Items[0], &next[1].Items[0])
}

func TestMoveAcrossTiers_TransfersItem(t *testing.T) {
	c := domain.Collection{
		testutil.NewTestTier("T1", "a", "b"),
		testutil.NewTestTier("T2", "c"),
	}

	next, ok := MoveAcrossTiers(c, "T1", 1, "T2", 0)

	require.True(t, ok)
	assert.Equal(t, []string{"a"}, contents(next[0]))
	assert.Equal(t, []string{"b", "c"}, contents(next[1]))
	assert.Equal(t, []string{"a", "b"}, contents(c[0]))
	assert.Equal(t, []string{"c"}, contents(c[1]))
}

func TestMoveAcrossTiers_AppendsAtEnd(t *testing.T) {
	c := domain.Collection{
		testutil.NewTestTier("T1", "a"),
		testutil.NewTestTier("T2", "c", "d"),
	}

	next, ok := MoveAcrossTiers(c, "T1", 0, "T2", 2)

	require.True(t, ok)
	assert.Empty(t, next[0].Items)
	assert.Equal(t, []string{"c", "d", "a"}, contents(next[1]))
}

func TestMoveAcrossTiers_IntoEmptyTier(t *testing.T) {
	c := domain.Collection{
		testutil.NewTestTier("T1", "a", "b"),
		testutil.NewTestTier("T2"),
	}

	next, ok := MoveAcrossTiers(c, "T1", 0, "T2", 0)

	require.True(t, ok)
	assert.Equal(t, []string{"b"}, contents(next[0]))
	assert.Equal(t, []string{"a"}, contents(next[1]))
}

func TestMoveAcrossTiers_RejectsBadInput(t *testing.T) {
	c := domain.Collection{
		testutil.NewTestTier("T1", "a", "b"),
		testutil.NewTestTier("T2", "c"),
	}

	cases := []struct {
		name         string
		src, dst     string
		sIdx, dstIdx int
	}{
		{"unknown source", "X", "T2", 0, 0},
		{"unknown destination", "T1", "X", 0, 0},
		{"same tier", "T1", "T1", 0, 1},
		{"source index past end", "T1", "T2", 2, 0},
		{"negative source index", "T1", "T2", -1, 0},
		{"destination index past end", "T1", "T2", 0, 2},
		{"negative destination index", "T1", "T2", 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := MoveAcrossTiers(c, tc.src, tc.sIdx, tc.dst, tc.dstIdx)
			assert.False(t, ok)
			assert.Equal(t, c, next)
		})
	}
}

func TestSwapTierContents_ExchangesItemsOnly(t *testing.T) {
	c := domain.Collection{
		testutil.NewTestTier("T0", "x"),
		testutil.NewTestTier("T1", "m"),
		testutil.NewTestTier("T2", "y", "z"),
	}
	c[2].LabelPosition = domain.LabelTop

	next, ok := SwapTierContents(c, 0, 2)

	require.True(t, ok)
	assert.Equal(t, []string{"y", "z"}, contents(next[0]))
	assert.Equal(t, []string{"x"}, contents(next[2]))
	assert.Equal(t, c[1], next[1])
	for i := range c {
		assert.Equal(t, c[i].ID, next[i].ID)
		assert.Equal(t, c[i].Name, next[i].Name)
		assert.Equal(t, c[i].LabelPosition, next[i].LabelPosition)
	}
	assert.Equal(t, []string{"x"}, contents(c[0]), "input must not change")
}

func TestSwapTierContents_SameIndex(t *testing.T) {
	c := domain.Collection{testutil.NewTestTier("T0", "x")}

	next, ok := SwapTierContents(c, 0, 0)

	require.True(t, ok)
	assert.Equal(t, c, next)
}

func TestSwapTierContents_OutOfRange(t *testing.T) {
	c := domain.Collection{testutil.NewTestTier("T0", "x"), testutil.NewTestTier("T1")}

	for _, pair := range [][2]int{{-1, 0}, {0, 2}, {5, 1}} {
		next, ok := SwapTierContents(c, pair[0], pair[1])
		assert.False(t, ok)
		assert.Equal(t, c, next)
	}
}

func TestRenameTier_ChangesOnlyName(t *testing.T) {
	c := domain.Collection{
		testutil.NewTestTier("T0", "a"),
		testutil.NewTestTier("T1", "b"),
	}

	next, ok := RenameTier(c, 1, "New")

	require.True(t, ok)
	assert.Equal(t, "New", next[1].Name)
	assert.Equal(t, c[0], next[0])

	want := c[1]
	want.Name = "New"
	assert.Equal(t, want, next[1])
	assert.Equal(t, "T1", c[1].Name, "input must not change")
}

func TestRenameTier_OutOfRange(t *testing.T) {
	c := domain.Collection{testutil.NewTestTier("T0")}

	next, ok := RenameTier(c, 1, "New")
	assert.False(t, ok)
	assert.Equal(t, c, next)

	_, ok = RenameTier(c, -1, "New")
	assert.False(t, ok)
}

// Random sequences of operations never create, duplicate or lose items and
// never disturb tier identity or order.
func TestOperations_ConserveItemsAndTierIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := domain.Collection{
		testutil.NewTestTier("S", "a", "b", "c"),
		testutil.NewTestTier("A", "d"),
		testutil.NewTestTier("B"),
		testutil.NewTestTier("C", "e", "f"),
	}
	wantItems := slices.Sorted(slices.Values(c.ItemIDs()))
	tierIDs := func(c domain.Collection) []string {
		var ids []string
		for _, t := range c {
			ids = append(ids, t.ID)
		}
		return ids
	}
	wantTiers := tierIDs(c)

	for step := 0; step < 500; step++ {
		src := rng.Intn(len(c))
		dst := rng.Intn(len(c))
		switch rng.Intn(3) {
		case 0:
			n := len(c[src].Items) + 1
			c, _ = ReorderWithinTier(c, c[src].ID, rng.Intn(n)-1, rng.Intn(n))
		case 1:
			c, _ = MoveAcrossTiers(c, c[src].ID, rng.Intn(len(c[src].Items)+1), c[dst].ID, rng.Intn(len(c[dst].Items)+2))
		case 2:
			c, _ = SwapTierContents(c, src, dst)
		}

		require.Equal(t, wantItems, slices.Sorted(slices.Values(c.ItemIDs())), "step %d", step)
		require.Equal(t, wantTiers, tierIDs(c), "step %d", step)
		require.NoError(t, c.Validate(), "step %d", step)
	}
}
