package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FaffinityBot/internal/adapters/filmaffinity"
	"FaffinityBot/internal/adapters/postgres"
	"FaffinityBot/internal/adapters/rediscache"
	"FaffinityBot/internal/adapters/telegram"
	"FaffinityBot/internal/ads"
	"FaffinityBot/internal/bot"
	"FaffinityBot/internal/bot/handlers"
	"FaffinityBot/internal/broadcast"
	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
	"FaffinityBot/internal/gateway"
	"FaffinityBot/internal/i18n"
	"FaffinityBot/internal/shared/config"
	"FaffinityBot/internal/shared/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	isDevMode := cfg.AppEnv == "dev"
	baseLogger := logger.New(isDevMode)
	baseLogger.Info().
		Str("app_env", cfg.AppEnv).
		Int("workers", cfg.Workers).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Initialize Database
	db, err := postgres.NewDB(ctx, cfg.DatabaseURL, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// 4. Initialize Repositories
	userRepo := postgres.NewUserRepository(db, &baseLogger)
	adRepo := postgres.NewAdRepository(db, &baseLogger)

	// 5. Initialize the movie cache (optional) and the film gateway
	var cache ports.MovieCache
	if cfg.RedisURL != "" {
		redisCache, err := rediscache.New(ctx, cfg.RedisURL, &baseLogger)
		if err != nil {
			baseLogger.Fatal().Err(err).Msg("Failed to initialize redis cache")
		}
		defer redisCache.Close()
		cache = redisCache
	} else {
		baseLogger.Warn().Msg("REDIS_URL not set, movie caching disabled")
	}
	provider := filmaffinity.NewClient(cfg.ProviderURL, &baseLogger)
	films := gateway.New(provider, cache, &baseLogger)

	// 6. Initialize localization. A locale missing any message is fatal
	// here rather than a broken reply at 3am.
	loc, err := i18n.NewManager(&baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize localization")
	}

	// 7. Initialize the ad rotator from persisted slots
	rotator, err := ads.NewRotator(ctx, adRepo, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize ad rotator")
	}

	// 8. Connect to Telegram
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to connect to Telegram")
	}
	baseLogger.Info().Str("username", api.Self.UserName).Msg("Authorized on Telegram")
	botClient := telegram.NewClient(api, &baseLogger)

	broadcaster := broadcast.NewCoordinator(userRepo, botClient, telegram.IsRecipientGone, &baseLogger)

	// 9. Wire the dispatcher and mount the route table
	deps := &handlers.Deps{
		AdminID:     cfg.AdminID,
		BotName:     api.Self.UserName,
		Bot:         botClient,
		Users:       userRepo,
		Rotator:     rotator,
		Broadcaster: broadcaster,
		Cache:       cache,
		Stats:       &handlers.Stats{Start: time.Now()},
		Log:         baseLogger.With().Str("component", "handlers").Logger(),
	}
	dispatcher := dispatch.NewDispatcher(userRepo, loc, films, &baseLogger)
	bot.MountRoutes(dispatcher, deps, loc)

	// 10. Run the polling server until interrupted
	server := telegram.NewBotServer(api, dispatcher, cfg.Workers, &baseLogger)
	if err := server.Start(ctx); err != nil {
		baseLogger.Fatal().Err(err).Msg("Bot server stopped with error")
	}
	baseLogger.Info().Msg("Shutdown complete")
}
