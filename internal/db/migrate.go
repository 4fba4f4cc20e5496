package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the catalog schema. Every statement is idempotent, so the
// whole list is re-run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS seeds (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		checksum    TEXT NOT NULL,
		source_path TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_seeds_name ON seeds(name COLLATE NOCASE)`,
	`CREATE INDEX IF NOT EXISTS idx_seeds_checksum ON seeds(checksum)`,

	`CREATE TABLE IF NOT EXISTS seed_tiers (
		seed_id        TEXT NOT NULL REFERENCES seeds(id) ON DELETE CASCADE,
		tier_id        TEXT NOT NULL,
		position       INTEGER NOT NULL,
		name           TEXT NOT NULL,
		label_position TEXT NOT NULL DEFAULT ''
		               CHECK(label_position IN ('','top','left','right')),
		PRIMARY KEY (seed_id, tier_id)
	)`,

	`CREATE TABLE IF NOT EXISTS seed_items (
		seed_id  TEXT NOT NULL,
		tier_id  TEXT NOT NULL,
		item_id  TEXT NOT NULL,
		position INTEGER NOT NULL,
		content  TEXT NOT NULL,
		PRIMARY KEY (seed_id, item_id),
		FOREIGN KEY (seed_id, tier_id) REFERENCES seed_tiers(seed_id, tier_id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_seed_items_tier ON seed_items(seed_id, tier_id, position)`,
}
