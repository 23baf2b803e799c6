// Package rediscache is the gateway's read-through movie detail cache.
// Entries expire on their own; the bot never invalidates explicitly.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const movieTTL = 6 * time.Hour

// MovieCache implements ports.MovieCache on redis.
type MovieCache struct {
	rdb *redis.Client
	log zerolog.Logger
}

var _ ports.MovieCache = (*MovieCache)(nil)

// New connects to redis and verifies the connection.
func New(ctx context.Context, redisURL string, baseLogger *zerolog.Logger) (*MovieCache, error) {
	log := baseLogger.With().Str("component", "movie_cache").Logger()

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().Msg("Redis connection established")
	return &MovieCache{rdb: rdb, log: log}, nil
}

func movieKey(lang, id string) string {
	return fmt.Sprintf("movie:%s:%s", lang, id)
}

// Get returns a cached movie or domain.ErrNotCached.
func (c *MovieCache) Get(ctx context.Context, lang, id string) (*domain.Movie, error) {
	data, err := c.rdb.Get(ctx, movieKey(lang, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotCached
		}
		return nil, err
	}

	var movie domain.Movie
	if err := json.Unmarshal(data, &movie); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		c.log.Warn().Err(err).Str("movie_id", id).Msg("Dropping corrupt cache entry")
		return nil, domain.ErrNotCached
	}
	return &movie, nil
}

// Set stores a movie with the fixed TTL.
func (c *MovieCache) Set(ctx context.Context, lang string, movie *domain.Movie) error {
	data, err := json.Marshal(movie)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, movieKey(lang, movie.ID), data, movieTTL).Err()
}

// Size returns the current number of cached entries.
func (c *MovieCache) Size(ctx context.Context) (int64, error) {
	return c.rdb.DBSize(ctx).Result()
}

// Close releases the redis connection.
func (c *MovieCache) Close() error {
	return c.rdb.Close()
}
