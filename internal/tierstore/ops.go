// Package tierstore holds the tier collection and the pure transformations
// that rearrange it.
//
// Every transformation takes the current collection and returns the next
// one together with a flag reporting whether it applied. The input is never
// modified: touched tiers get freshly built item slices and untouched tiers
// are carried over as-is. When the flag is false the input is returned
// unchanged, so a caller can always commit the result.
package tierstore

import (
	"slices"

	"github.com/alexanderramin/tierboard/internal/domain"
)

// reorder moves list[from] to position to, where to is an index into the
// slice after removal. The result never aliases list.
func reorder[T any](list []T, from, to int) []T {
	moved := list[from]
	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	return slices.Insert(out, to, moved)
}

// ReorderWithinTier moves the item at from to to inside the tier with the
// given id. Both indices must be in [0, len).
func ReorderWithinTier(c domain.Collection, tierID string, from, to int) (domain.Collection, bool) {
	ti := c.IndexOf(tierID)
	if ti < 0 {
		return c, false
	}
	n := len(c[ti].Items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return c, false
	}

	items := reorder(c[ti].Items, from, to)
	return replaceTiers(c, map[int][]domain.Item{ti: items}), true
}

// MoveAcrossTiers transfers the item at srcIndex of tier srcID to dstIndex of
// tier dstID. dstIndex may equal the destination length to append. Moving
// within one tier is rejected here; use ReorderWithinTier.
func MoveAcrossTiers(c domain.Collection, srcID string, srcIndex int, dstID string, dstIndex int) (domain.Collection, bool) {
	si, di := c.IndexOf(srcID), c.IndexOf(dstID)
	if si < 0 || di < 0 || si == di {
		return c, false
	}
	src, dst := c[si].Items, c[di].Items
	if srcIndex < 0 || srcIndex >= len(src) || dstIndex < 0 || dstIndex > len(dst) {
		return c, false
	}

	moved := src[srcIndex]
	newSrc := slices.Delete(slices.Clone(src), srcIndex, srcIndex+1)
	newDst := slices.Insert(slices.Clone(dst), dstIndex, moved)
	return replaceTiers(c, map[int][]domain.Item{si: newSrc, di: newDst}), true
}

// SwapTierContents exchanges the item sequences of the tiers at positions a
// and b. Tier ids, names, label positions and order are left as they are.
func SwapTierContents(c domain.Collection, a, b int) (domain.Collection, bool) {
	if a < 0 || a >= len(c) || b < 0 || b >= len(c) {
		return c, false
	}
	if a == b {
		return c, true
	}
	return replaceTiers(c, map[int][]domain.Item{
		a: slices.Clone(c[b].Items),
		b: slices.Clone(c[a].Items),
	}), true
}

// RenameTier replaces the name of the tier at index.
func RenameTier(c domain.Collection, index int, name string) (domain.Collection, bool) {
	if index < 0 || index >= len(c) {
		return c, false
	}
	out := slices.Clone(c)
	out[index].Name = name
	return out, true
}

// replaceTiers rebuilds the tier sequence, substituting the item slices of
// the given positions.
func replaceTiers(c domain.Collection, items map[int][]domain.Item) domain.Collection {
	out := make(domain.Collection, len(c))
	for i, t := range c {
		if next, ok := items[i]; ok {
			t.Items = next
		}
		out[i] = t
	}
	return out
}
