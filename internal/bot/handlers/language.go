package handlers

import (
	"context"

	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
)

// SelectLanguage persists the lang_ button choice and confirms it in the
// newly selected language by editing the keyboard message in place.
func SelectLanguage(d *Deps, loc dispatch.Localizer) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		lang := caps["lang"]

		if err := d.Users.SetLang(ctx, evt.SenderID, lang); err != nil {
			d.sendError(ctx, evt.ChatID, ec)
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		// The event context still carries the old language; confirm in the
		// new one.
		err := d.Bot.EditMessageText(ctx, ports.EditMessageParams{
			ChatID:    evt.ChatID,
			MessageID: evt.MessageID,
			Text:      loc.T(lang, "lang_selected"),
		})
		d.ack(ctx, evt)
		return dispatch.Handled, err
	}
}
