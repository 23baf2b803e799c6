package postgres

import (
	"FaffinityBot/internal/core/ports"
	"context"

	"github.com/rs/zerolog"
)

// adSlotCount mirrors ads.SlotCount; the table never holds more rows.
const adSlotCount = 5

// Schema:
//
//	CREATE TABLE ads (
//	    slot SMALLINT PRIMARY KEY,
//	    body TEXT NOT NULL DEFAULT ''
//	)
type adRepository struct {
	db  *DB
	log zerolog.Logger
}

var _ ports.AdRepository = (*adRepository)(nil) // Ensure compliance

// NewAdRepository creates the repository backing the ad rotator.
func NewAdRepository(db *DB, baseLogger *zerolog.Logger) ports.AdRepository {
	return &adRepository{
		db:  db,
		log: baseLogger.With().Str("component", "ad_repo").Logger(),
	}
}

// List returns every slot body in slot order, padding missing rows with
// empty strings.
func (r *adRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.pool.Query(ctx, `SELECT slot, body FROM ads ORDER BY slot`)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to list ad slots")
		return nil, err
	}
	defer rows.Close()

	slots := make([]string, adSlotCount)
	for rows.Next() {
		var (
			slot int
			body string
		)
		if err := rows.Scan(&slot, &body); err != nil {
			return nil, err
		}
		if slot >= 0 && slot < adSlotCount {
			slots[slot] = body
		}
	}
	return slots, rows.Err()
}

// Set replaces one slot's body.
func (r *adRepository) Set(ctx context.Context, slot int, body string) error {
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO ads (slot, body) VALUES ($1, $2)
		ON CONFLICT (slot) DO UPDATE SET body = EXCLUDED.body
	`, slot, body)
	if err != nil {
		r.log.Error().Err(err).Int("slot", slot).Msg("Failed to upsert ad slot")
	}
	return err
}
