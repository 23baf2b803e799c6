package postgres

import (
	"FaffinityBot/internal/core/ports"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Schema:
//
//	CREATE TABLE users (
//	    tid  BIGINT      PRIMARY KEY,
//	    lang VARCHAR(2)  NOT NULL DEFAULT 'es'
//	)
type userRepository struct {
	db  *DB
	log zerolog.Logger
}

var _ ports.UserRepository = (*userRepository)(nil) // Ensure compliance

// NewUserRepository creates a new repository for user language preferences.
func NewUserRepository(db *DB, baseLogger *zerolog.Logger) ports.UserRepository {
	return &userRepository{
		db:  db,
		log: baseLogger.With().Str("component", "user_repo").Logger(),
	}
}

// GetLang returns the stored language for a telegram id.
func (r *userRepository) GetLang(ctx context.Context, telegramID int64) (string, bool, error) {
	var lang string
	err := r.db.pool.QueryRow(ctx,
		`SELECT lang FROM users WHERE tid = $1`, telegramID,
	).Scan(&lang)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		r.log.Error().Err(err).Int64("telegram_id", telegramID).Msg("Failed to read user language")
		return "", false, err
	}
	return lang, true, nil
}

// SetLang inserts or updates the user's language in a single statement, so
// interleaved writes for different users never conflict.
func (r *userRepository) SetLang(ctx context.Context, telegramID int64, lang string) error {
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO users (tid, lang) VALUES ($1, $2)
		ON CONFLICT (tid) DO UPDATE SET lang = EXCLUDED.lang
	`, telegramID, lang)
	if err != nil {
		r.log.Error().Err(err).Int64("telegram_id", telegramID).Str("lang", lang).Msg("Failed to upsert user language")
	}
	return err
}

// ListIDs snapshots the broadcast population, optionally filtered by
// language.
func (r *userRepository) ListIDs(ctx context.Context, lang string) ([]int64, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if lang == "" {
		rows, err = r.db.pool.Query(ctx, `SELECT tid FROM users ORDER BY tid`)
	} else {
		rows, err = r.db.pool.Query(ctx, `SELECT tid FROM users WHERE lang = $1 ORDER BY tid`, lang)
	}
	if err != nil {
		r.log.Error().Err(err).Str("lang", lang).Msg("Failed to list user ids")
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var tid int64
		if err := rows.Scan(&tid); err != nil {
			return nil, err
		}
		ids = append(ids, tid)
	}
	return ids, rows.Err()
}

// CountByLang returns the stored population per language code.
func (r *userRepository) CountByLang(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.pool.Query(ctx, `SELECT lang, COUNT(*) FROM users GROUP BY lang`)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to count users")
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			lang string
			n    int
		)
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, err
		}
		counts[lang] = n
	}
	return counts, rows.Err()
}
