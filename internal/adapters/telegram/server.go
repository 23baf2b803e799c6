package telegram

import (
	"FaffinityBot/internal/core/ports"
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// EventSink is where parsed updates go; satisfied by the dispatcher.
type EventSink interface {
	Dispatch(ctx context.Context, evt *ports.Event)
}

// BotServer runs long polling and feeds parsed events into the dispatcher
// through a worker pool, so one slow provider call never blocks delivery of
// other users' events.
type BotServer struct {
	api     *tgbotapi.BotAPI
	sink    EventSink
	workers int
	log     zerolog.Logger
}

// NewBotServer creates a new server instance.
func NewBotServer(api *tgbotapi.BotAPI, sink EventSink, workers int, baseLogger *zerolog.Logger) *BotServer {
	if workers < 1 {
		workers = 1
	}
	return &BotServer{
		api:     api,
		sink:    sink,
		workers: workers,
		log:     baseLogger.With().Str("component", "bot_server").Logger(),
	}
}

// Start blocks until the context is cancelled, then drains the worker pool.
func (s *BotServer) Start(ctx context.Context) error {
	s.log.Info().Int("workers", s.workers).Msg("Starting bot in POLLING mode")

	// Clear any existing webhook so polling receives updates.
	deleteWebhook := tgbotapi.DeleteWebhookConfig{DropPendingUpdates: false}
	if _, err := s.api.Request(deleteWebhook); err != nil {
		s.log.Warn().Err(err).Msg("Failed to delete webhook (continuing anyway)")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.api.GetUpdatesChan(u)

	jobs := make(chan tgbotapi.Update, 100)

	var wg sync.WaitGroup
	for w := 1; w <= s.workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			log := s.log.With().Int("worker_id", id).Logger()
			log.Info().Msg("Starting polling worker")
			for {
				select {
				case <-ctx.Done():
					log.Info().Msg("Stopping polling worker (context done)")
					return
				case job, ok := <-jobs:
					if !ok {
						log.Info().Msg("Stopping polling worker (channel closed)")
						return
					}
					evt, supported := ParseUpdate(&job)
					if !supported {
						log.Debug().Int("update_id", job.UpdateID).Msg("Skipping unsupported update type")
						continue
					}
					s.sink.Dispatch(context.Background(), evt)
				}
			}
		}(w)
	}

	s.log.Info().Msg("Polling update listener started")

	for {
		select {
		case <-ctx.Done():
			close(jobs)
			s.api.StopReceivingUpdates()
			wg.Wait()
			s.log.Info().Msg("Polling stopped gracefully")
			return nil
		case update := <-updates:
			jobs <- update
		}
	}
}
