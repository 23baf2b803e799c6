// Package gateway adapts the raw film-data provider to the dispatcher:
// language-bound handles, a read-through detail cache, and a single failure
// mode (domain.ErrDataSourceUnavailable) handlers can recover from.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"

	"github.com/rs/zerolog"
)

// Gateway wraps the provider once; ForLang hands out cheap language-bound
// views for the event context.
type Gateway struct {
	provider ports.FilmProvider
	cache    ports.MovieCache // nil disables caching
	log      zerolog.Logger
}

// New creates the gateway. cache may be nil when no cache is configured.
func New(provider ports.FilmProvider, cache ports.MovieCache, baseLogger *zerolog.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		cache:    cache,
		log:      baseLogger.With().Str("component", "gateway").Logger(),
	}
}

// ForLang returns the gateway view bound to one language.
func (g *Gateway) ForLang(lang string) ports.FilmGateway {
	return &bound{g: g, lang: lang}
}

type bound struct {
	g    *Gateway
	lang string
}

var _ ports.FilmGateway = (*bound)(nil)

func (b *bound) Lang() string { return b.lang }

func (b *bound) Search(ctx context.Context, limit int, q ports.SearchQuery) ([]domain.MovieSummary, error) {
	result, err := b.g.provider.Search(ctx, b.lang, limit, q)
	if err != nil {
		b.g.log.Error().Err(err).Str("lang", b.lang).Msg("Provider search failed")
		return nil, unavailable(err)
	}
	return result, nil
}

func (b *bound) GetMovie(ctx context.Context, id string, includeImages bool) (*domain.Movie, error) {
	// Image requests skip the cache: cached entries are stored without
	// stills to keep them small.
	if b.g.cache != nil && !includeImages {
		movie, err := b.g.cache.Get(ctx, b.lang, id)
		if err == nil {
			return movie, nil
		}
		if !errors.Is(err, domain.ErrNotCached) {
			b.g.log.Warn().Err(err).Str("movie_id", id).Msg("Cache lookup failed")
		}
	}

	movie, err := b.g.provider.GetMovie(ctx, b.lang, id, includeImages)
	if err != nil {
		b.g.log.Error().Err(err).Str("movie_id", id).Str("lang", b.lang).Msg("Provider detail fetch failed")
		return nil, unavailable(err)
	}

	if b.g.cache != nil && !includeImages {
		go func(lang string, m domain.Movie) {
			if err := b.g.cache.Set(context.WithoutCancel(ctx), lang, &m); err != nil {
				b.g.log.Warn().Err(err).Str("movie_id", m.ID).Msg("Failed to cache movie")
			}
		}(b.lang, *movie)
	}

	return movie, nil
}

func (b *bound) Top(ctx context.Context, provider string, limit int) ([]domain.MovieSummary, error) {
	result, err := b.g.provider.Top(ctx, b.lang, provider, limit)
	if err != nil {
		b.g.log.Error().Err(err).Str("provider", provider).Msg("Provider top fetch failed")
		return nil, unavailable(err)
	}
	return result, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrDataSourceUnavailable, err)
}
