package handlers

import (
	"context"
	"sync/atomic"
	"time"

	"FaffinityBot/internal/ads"
	"FaffinityBot/internal/broadcast"
	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"

	"github.com/rs/zerolog"
)

// searchLimit caps search result lists, topLimit caps top listings.
const (
	searchLimit = 20
	topLimit    = 40
	imagesLimit = 10
)

// Stats holds the runtime counters reported by /stats.
type Stats struct {
	Start      time.Time
	MoviesSeen atomic.Int64
}

// Deps carries everything a handler may need. Built once at startup and
// shared by every handler; no global state.
type Deps struct {
	AdminID     int64
	BotName     string
	Bot         ports.BotClientPort
	Users       ports.UserRepository
	Rotator     *ads.Rotator
	Broadcaster *broadcast.Coordinator
	// Cache is the gateway's movie cache, nil when caching is disabled.
	// Only read here for the /stats size figure.
	Cache ports.MovieCache
	Stats *Stats
	Log   zerolog.Logger
}

// sendError delivers the short localized provider-failure sentence. Raw
// diagnostic detail stays in the log stream.
func (d *Deps) sendError(ctx context.Context, chatID int64, ec *dispatch.EventContext) {
	if _, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
		ChatID: chatID,
		Text:   ec.T("fa_error"),
	}); err != nil {
		d.Log.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send error message")
	}
}

// ack answers a callback query so the client stops its spinner. Errors are
// logged only; the response itself already went out or will go out.
func (d *Deps) ack(ctx context.Context, evt *ports.Event) {
	if evt.Kind != ports.KindCallback {
		return
	}
	if err := d.Bot.AnswerCallback(ctx, ports.AnswerCallbackParams{CallbackID: evt.CallbackID}); err != nil {
		d.Log.Warn().Err(err).Msg("Failed to answer callback query")
	}
}
