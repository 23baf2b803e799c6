package handlers

import (
	"context"

	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
	"FaffinityBot/internal/format"
)

// SelectTop fetches the chosen provider's ranked listing and renders it as
// a deep-linked list.
func SelectTop(d *Deps) dispatch.HandlerFunc {
	known := make(map[string]struct{}, len(format.TopProviders))
	for _, p := range format.TopProviders {
		known[p] = struct{}{}
	}

	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		provider := caps["provider"]
		if _, ok := known[provider]; !ok {
			// Stale button from an older keyboard layout.
			d.ack(ctx, evt)
			return dispatch.Handled, nil
		}

		result, err := ec.Films.Top(ctx, provider, topLimit)
		if err != nil {
			d.sendError(ctx, evt.ChatID, ec)
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		_, err = d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:            evt.ChatID,
			Text:              format.TopText(d.BotName, ec.Films.Lang(), provider, result),
			ParseMode:         "Markdown",
			ReplyMarkup:       format.HideKeyboard(ec.T),
			DisableWebPreview: true,
		})
		d.ack(ctx, evt)
		return dispatch.Handled, err
	}
}
