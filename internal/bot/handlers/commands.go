package handlers

import (
	"context"

	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
	"FaffinityBot/internal/format"
)

// Start greets the user. When the deep link carries a movie id the route
// yields so the detail route can claim the event; the language part of the
// deep link was already consumed by context resolution.
func Start(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		if _, hasSubject := caps["id"]; hasSubject {
			return dispatch.Continue, nil
		}

		_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:    evt.ChatID,
			Text:      ec.T("start"),
			ParseMode: "Markdown",
		})
		return dispatch.Handled, err
	}
}

const adminHelp = "\n\n##### Admin help #####\n" +
	"/session - runtime info of the bot.\n" +
	"/broadcast `<lang>|all` - broadcast the replied message to users of the bot.\n" +
	"/stats - stats of the bot.\n" +
	"/ads - list of active ads.\n"

// Help explains the search commands; the admin additionally sees the admin
// command list.
func Help(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		text := ec.T("help")
		if evt.SenderID == d.AdminID {
			text += adminHelp
		}

		_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:      evt.ChatID,
			Text:        text,
			ParseMode:   "Markdown",
			ReplyMarkup: format.HideKeyboard(ec.T),
		})
		return dispatch.Handled, err
	}
}

// Support shows the support/donation blurb.
func Support(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:            evt.ChatID,
			Text:              ec.T("support"),
			ParseMode:         "Markdown",
			ReplyMarkup:       format.HideKeyboard(ec.T),
			DisableWebPreview: true,
		})
		return dispatch.Handled, err
	}
}

// Language offers the language keyboard.
func Language(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:      evt.ChatID,
			Text:        ec.T("select_lang"),
			ReplyMarkup: format.SelectLangKeyboard(),
		})
		return dispatch.Handled, err
	}
}

// Top offers the provider top-list keyboard.
func Top(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:      evt.ChatID,
			Text:        ec.T("select_top"),
			ReplyMarkup: format.TopsKeyboard(ec.T),
		})
		return dispatch.Handled, err
	}
}
