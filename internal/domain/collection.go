package domain

import (
	"errors"
	"fmt"
)

// Collection is the ordered sequence of tiers; the root of the board state.
type Collection []Tier

// Clone returns a deep copy: no tier or item slice is shared with c.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, t := range c {
		out[i] = t.Clone()
	}
	return out
}

// IndexOf returns the position of the tier with the given id, or -1.
func (c Collection) IndexOf(tierID string) int {
	for i := range c {
		if c[i].ID == tierID {
			return i
		}
	}
	return -1
}

// TierByID returns the tier with the given id.
func (c Collection) TierByID(tierID string) (Tier, bool) {
	i := c.IndexOf(tierID)
	if i < 0 {
		return Tier{}, false
	}
	return c[i], true
}

// ItemIDs returns every item id in board order, tier by tier.
func (c Collection) ItemIDs() []string {
	var ids []string
	for _, t := range c {
		for _, it := range t.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// ItemCount returns the number of items across all tiers.
func (c Collection) ItemCount() int {
	n := 0
	for _, t := range c {
		n += len(t.Items)
	}
	return n
}

// Validate checks the structural invariants of a collection: non-empty,
// unique tier ids, item ids unique across the whole board, and known label
// positions. All problems are reported together.
func (c Collection) Validate() error {
	var errs []error
	tierIDs := make(map[string]bool, len(c))
	itemIDs := make(map[string]bool)
	for i, t := range c {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tier %d: id is required", i))
		} else if tierIDs[t.ID] {
			errs = append(errs, fmt.Errorf("tier %d: duplicate id %q", i, t.ID))
		} else {
			tierIDs[t.ID] = true
		}
		if t.LabelPosition != "" && !ValidLabelPositions[string(t.LabelPosition)] {
			errs = append(errs, fmt.Errorf("tier %d: invalid label position %q", i, t.LabelPosition))
		}
		for j, it := range t.Items {
			if it.ID == "" {
				errs = append(errs, fmt.Errorf("tier %d item %d: id is required", i, j))
			} else if itemIDs[it.ID] {
				errs = append(errs, fmt.Errorf("tier %d item %d: duplicate id %q", i, j, it.ID))
			} else {
				itemIDs[it.ID] = true
			}
		}
	}
	return errors.Join(errs...)
}
