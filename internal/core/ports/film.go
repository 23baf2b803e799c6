package ports

import (
	"FaffinityBot/internal/core/domain"
	"context"
)

// SearchQuery selects exactly one search axis. Building one with more than
// one non-empty field is a programming error.
type SearchQuery struct {
	Title    string
	Cast     string
	Director string
}

// FilmProvider is the raw film-data provider client. Implementations own
// their HTTP timeouts; the gateway maps their failures to
// domain.ErrDataSourceUnavailable.
type FilmProvider interface {
	Search(ctx context.Context, lang string, limit int, q SearchQuery) ([]domain.MovieSummary, error)
	GetMovie(ctx context.Context, lang, id string, includeImages bool) (*domain.Movie, error)
	Top(ctx context.Context, lang, provider string, limit int) ([]domain.MovieSummary, error)
}

// FilmGateway is the language-bound view handlers receive in their event
// context. Same operations as FilmProvider with the language already fixed.
type FilmGateway interface {
	Search(ctx context.Context, limit int, q SearchQuery) ([]domain.MovieSummary, error)
	GetMovie(ctx context.Context, id string, includeImages bool) (*domain.Movie, error)
	Top(ctx context.Context, provider string, limit int) ([]domain.MovieSummary, error)
	// Lang returns the bound language code, used when templating provider
	// URLs into responses.
	Lang() string
}

// MovieCache is the read-through cache the gateway consults before hitting
// the provider. A miss is signalled with domain.ErrNotCached.
type MovieCache interface {
	Get(ctx context.Context, lang, id string) (*domain.Movie, error)
	Set(ctx context.Context, lang string, movie *domain.Movie) error
	// Size returns the number of cached entries, reported by /stats.
	Size(ctx context.Context) (int64, error)
}
