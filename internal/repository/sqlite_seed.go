package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tierboard/internal/db"
	"github.com/alexanderramin/tierboard/internal/domain"
)

// SQLiteSeedRepo implements SeedRepo over the seed catalog tables. Create
// writes several tables; run it inside a unit of work.
type SQLiteSeedRepo struct {
	db db.DBTX
}

// NewSQLiteSeedRepo creates a SQLiteSeedRepo on a *sql.DB or *sql.Tx.
func NewSQLiteSeedRepo(conn db.DBTX) *SQLiteSeedRepo {
	return &SQLiteSeedRepo{db: conn}
}

const seedColumns = `id, name, checksum, source_path, created_at`

func (r *SQLiteSeedRepo) Create(ctx context.Context, s *domain.Seed) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO seeds (`+seedColumns+`) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Checksum, s.Source, timeToString(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting seed: %w", err)
	}

	for pos, t := range s.Tiers {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO seed_tiers (seed_id, tier_id, position, name, label_position) VALUES (?, ?, ?, ?, ?)`,
			s.ID, t.ID, pos, t.Name, string(t.LabelPosition),
		)
		if err != nil {
			return fmt.Errorf("inserting tier %q: %w", t.ID, err)
		}
		for ipos, it := range t.Items {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO seed_items (seed_id, tier_id, item_id, position, content) VALUES (?, ?, ?, ?, ?)`,
				s.ID, t.ID, it.ID, ipos, it.Content,
			)
			if err != nil {
				return fmt.Errorf("inserting item %q: %w", it.ID, err)
			}
		}
	}
	return nil
}

func (r *SQLiteSeedRepo) GetByID(ctx context.Context, id string) (*domain.Seed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+seedColumns+` FROM seeds WHERE id = ?`, id)
	return r.load(ctx, row, fmt.Sprintf("seed %q", id))
}

// GetByName matches the seed name case-insensitively.
func (r *SQLiteSeedRepo) GetByName(ctx context.Context, name string) (*domain.Seed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+seedColumns+` FROM seeds WHERE name = ? COLLATE NOCASE`, name)
	return r.load(ctx, row, fmt.Sprintf("seed %q", name))
}

func (r *SQLiteSeedRepo) FindByChecksum(ctx context.Context, checksum string) (*domain.Seed, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+seedColumns+` FROM seeds WHERE checksum = ? ORDER BY created_at LIMIT 1`, checksum)
	return r.load(ctx, row, "seed with checksum "+checksum)
}

func (r *SQLiteSeedRepo) List(ctx context.Context) ([]SeedSummary, error) {
	query := `SELECT s.id, s.name, s.checksum, s.source_path, s.created_at,
			(SELECT COUNT(*) FROM seed_tiers t WHERE t.seed_id = s.id),
			(SELECT COUNT(*) FROM seed_items i WHERE i.seed_id = s.id)
		FROM seeds s ORDER BY s.name COLLATE NOCASE`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing seeds: %w", err)
	}
	defer rows.Close()

	var out []SeedSummary
	for rows.Next() {
		var s SeedSummary
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &s.Checksum, &s.Source, &createdAt, &s.TierCount, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("scanning seed summary: %w", err)
		}
		s.CreatedAt = parseTime(createdAt)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seeds: %w", err)
	}
	return out, nil
}

// Delete removes a seed and, through cascades, its tiers and items.
func (r *SQLiteSeedRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM seeds WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting seed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting seed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("seed %q: %w", id, ErrNotFound)
	}
	return nil
}

// load scans a seed header and then reads its tiers and items. Each query is
// drained before the next starts, so a single-connection pool never blocks.
func (r *SQLiteSeedRepo) load(ctx context.Context, row *sql.Row, what string) (*domain.Seed, error) {
	var s domain.Seed
	var createdAt string
	if err := row.Scan(&s.ID, &s.Name, &s.Checksum, &s.Source, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning seed: %w", err)
	}
	s.CreatedAt = parseTime(createdAt)

	tiers, err := r.loadTiers(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, s.ID, tiers); err != nil {
		return nil, err
	}
	s.Tiers = tiers
	return &s, nil
}

func (r *SQLiteSeedRepo) loadTiers(ctx context.Context, seedID string) (domain.Collection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tier_id, name, label_position FROM seed_tiers WHERE seed_id = ? ORDER BY position`, seedID)
	if err != nil {
		return nil, fmt.Errorf("listing seed tiers: %w", err)
	}
	defer rows.Close()

	var tiers domain.Collection
	for rows.Next() {
		var t domain.Tier
		var label string
		if err := rows.Scan(&t.ID, &t.Name, &label); err != nil {
			return nil, fmt.Errorf("scanning seed tier: %w", err)
		}
		t.LabelPosition = domain.LabelPosition(label)
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seed tiers: %w", err)
	}
	return tiers, nil
}

func (r *SQLiteSeedRepo) loadItems(ctx context.Context, seedID string, tiers domain.Collection) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tier_id, item_id, content FROM seed_items WHERE seed_id = ? ORDER BY tier_id, position`, seedID)
	if err != nil {
		return fmt.Errorf("listing seed items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tierID string
		var it domain.Item
		if err := rows.Scan(&tierID, &it.ID, &it.Content); err != nil {
			return fmt.Errorf("scanning seed item: %w", err)
		}
		i := tiers.IndexOf(tierID)
		if i < 0 {
			return fmt.Errorf("seed item %q references unknown tier %q", it.ID, tierID)
		}
		tiers[i].Items = append(tiers[i].Items, it)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating seed items: %w", err)
	}
	return nil
}
