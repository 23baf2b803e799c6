package ports

import "context"

// UserRepository defines the persistence operations for the per-user
// language preference. Writes are single-statement upserts scoped to one
// telegram id, so concurrent handlers interleave safely.
type UserRepository interface {
	// GetLang returns the stored language for a telegram id. The second
	// return is false when the user has never been seen.
	GetLang(ctx context.Context, telegramID int64) (string, bool, error)

	// SetLang inserts or updates the user's language in one statement.
	SetLang(ctx context.Context, telegramID int64, lang string) error

	// ListIDs returns the ids of every user with the given language, or of
	// all users when lang is empty. The snapshot is taken once; later
	// language changes are not reflected.
	ListIDs(ctx context.Context, lang string) ([]int64, error)

	// CountByLang returns the number of stored users per language code.
	CountByLang(ctx context.Context) (map[string]int, error)
}
