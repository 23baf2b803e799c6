package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Missing required keys
// are a startup-fatal configuration error.
type Config struct {
	AppEnv      string
	BotToken    string
	AdminID     int64
	DatabaseURL string
	// RedisURL is optional; empty disables the gateway's movie cache.
	RedisURL string
	// ProviderURL is the root of the FilmAffinity scraper service's API.
	ProviderURL string
	// Workers sizes the polling worker pool.
	Workers int
}

// Load loads configuration from environment variables, honoring a local
// .env file when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// A missing .env is fine in prod; OS-set env vars take over.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	bindings := map[string]string{
		"app.env":      "APP_ENV",
		"bot.token":    "BOT_TOKEN",
		"bot.admin":    "ADMIN_ID",
		"database.url": "DATABASE_URL",
		"redis.url":    "REDIS_URL",
		"provider.url": "FA_API_URL",
		"bot.workers":  "BOT_WORKERS",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	viper.SetDefault("app.env", "dev")
	viper.SetDefault("bot.workers", 8)

	cfg := Config{
		AppEnv:      viper.GetString("app.env"),
		BotToken:    viper.GetString("bot.token"),
		AdminID:     viper.GetInt64("bot.admin"),
		DatabaseURL: viper.GetString("database.url"),
		RedisURL:    viper.GetString("redis.url"),
		ProviderURL: viper.GetString("provider.url"),
		Workers:     viper.GetInt("bot.workers"),
	}

	if cfg.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is not set in environment or .env file")
	}
	if cfg.AdminID == 0 {
		return nil, errors.New("ADMIN_ID is not set or not a valid integer")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set in environment or .env file")
	}
	if cfg.ProviderURL == "" {
		return nil, errors.New("FA_API_URL is not set in environment or .env file")
	}

	return &cfg, nil
}
