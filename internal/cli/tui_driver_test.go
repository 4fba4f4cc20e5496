package cli

import (
	"testing"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/gesture"
	"github.com/alexanderramin/tierboard/internal/teatest"
	"github.com/alexanderramin/tierboard/internal/tierstore"
)

// BoardDriver wraps teatest.Driver with access to the board model's view
// state and the store behind it.
type BoardDriver struct {
	*teatest.Driver
}

// NewBoardDriver opens tiers on a board sized like a roomy terminal.
func NewBoardDriver(t *testing.T, tiers ...domain.Tier) *BoardDriver {
	t.Helper()
	interp := gesture.NewInterpreter(tierstore.New(domain.Collection(tiers)))
	d := teatest.New(t, newBoardModel("Test board", interp), teatest.WithSize(100, 30))
	d.DrainInit()
	return &BoardDriver{Driver: d}
}

func (d *BoardDriver) board() *boardModel {
	return d.Model.(*boardModel)
}

// Tiers returns a snapshot of the committed collection.
func (d *BoardDriver) Tiers() domain.Collection {
	return d.board().interp.Store().Snapshot()
}

// Version returns how many commits the store has seen.
func (d *BoardDriver) Version() uint64 {
	return d.board().interp.Store().Version()
}

// ItemIDs returns the item ids of tier i in order.
func (d *BoardDriver) ItemIDs(i int) []string {
	items := d.Tiers()[i].Items
	ids := make([]string, len(items))
	for j, it := range items {
		ids[j] = it.ID
	}
	return ids
}

// Cursor returns the browse cursor as (tier, item).
func (d *BoardDriver) Cursor() (int, int) {
	b := d.board()
	return b.tier, b.item
}

// Status returns the status line without styling.
func (d *BoardDriver) Status() string {
	return stripANSI(d.board().status)
}
