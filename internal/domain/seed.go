package domain

import "time"

// Seed is a named initial configuration for a board. Seeds are read-only
// inputs; an edited board is never written back into its seed.
type Seed struct {
	ID        string
	Name      string
	Checksum  string // BLAKE3 of the canonical seed encoding
	Source    string // file the seed was imported from, if any
	Tiers     Collection
	CreatedAt time.Time
}
