package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
)

// ListAds shows every slot with the command that edits it.
func ListAds(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		slots := d.Rotator.List()
		rows := make([]string, 0, len(slots))
		for i, body := range slots {
			rows = append(rows, fmt.Sprintf("/change_ad_%d\n%s", i, body))
		}

		_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID: evt.ChatID,
			Text:   strings.Join(rows, "\n`---------------`\n"),
		})
		return dispatch.Handled, err
	}
}

// ChangeAd replaces one ad slot. A body of "-" clears the slot.
func ChangeAd(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		slot, err := strconv.Atoi(caps["index"])
		if err != nil {
			return dispatch.Handled, err
		}

		body := caps["ad"]
		if body == "-" {
			body = ""
		}

		if err := d.Rotator.Set(ctx, slot, body); err != nil {
			_, sendErr := d.Bot.SendMessage(ctx, ports.SendMessageParams{
				ChatID: evt.ChatID,
				Text:   fmt.Sprintf("⚠ Could not save ad: %v", err),
			})
			if sendErr != nil {
				return dispatch.Handled, sendErr
			}
			return dispatch.Handled, err
		}

		_, err = d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID: evt.ChatID,
			Text:   "Ad saved:\n" + body,
		})
		return dispatch.Handled, err
	}
}

// Session reports the bot's runtime identity and start time. The previous
// transport kept a session file worth downloading; the Bot API token setup
// has none, so this is informational only.
func Session(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID: evt.ChatID,
			Text: fmt.Sprintf(
				"`%s`\n🤖 @%s\n⏱ Started: `%s`",
				time.Now().Format("2006-01-02 15:04:05 MST"),
				d.BotName,
				d.Stats.Start.Format("2006-01-02 15:04:05 MST"),
			),
			ParseMode: "Markdown",
		})
		return dispatch.Handled, err
	}
}

// BotStats reports population counts, the movies-seen counter and uptime.
func BotStats(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		counts, err := d.Users.CountByLang(ctx)
		if err != nil {
			return dispatch.Handled, err
		}

		total := 0
		for _, n := range counts {
			total += n
		}

		var cached int64
		if d.Cache != nil {
			if n, err := d.Cache.Size(ctx); err != nil {
				d.Log.Warn().Err(err).Msg("Failed to read cache size")
			} else {
				cached = n
			}
		}
		uptime := time.Since(d.Stats.Start).Round(time.Second)

		_, err = d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID: evt.ChatID,
			Text: fmt.Sprintf(
				"📊 Stats of the bot:\n"+
					"👥 Total of users: `%d`\n"+
					"🇪🇸 Spanish language: `%d`\n"+
					"🇬🇧 English language: `%d`\n"+
					"👀 Movies seen: `%d`\n"+
					"🗃 Cached movies: `%d`\n"+
					"⏱ Bot uptime: `%s`\n",
				total,
				counts[domain.LangSpanish],
				counts[domain.LangEnglish],
				d.Stats.MoviesSeen.Load(),
				cached,
				uptime,
			),
			ParseMode: "Markdown",
		})
		return dispatch.Handled, err
	}
}

// Broadcast replicates the replied-to message to the filtered population.
// Runs synchronously on the event's worker; other events keep flowing on
// the remaining workers.
func Broadcast(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		if evt.ReplyToID == 0 {
			_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
				ChatID: evt.ChatID,
				Text:   "⚠ You must reply to a message with /broadcast command.",
			})
			return dispatch.Handled, err
		}

		langFilter := caps["lang"]
		if langFilter == "all" {
			langFilter = ""
		}

		_, err := d.Broadcaster.Run(ctx, evt.ChatID, evt.ChatID, evt.ReplyToID, langFilter)
		return dispatch.Handled, err
	}
}
