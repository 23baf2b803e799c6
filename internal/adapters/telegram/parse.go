package telegram

import (
	"FaffinityBot/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ParseUpdate converts a tgbotapi.Update into our tagged event variant.
// Returns false for update types the bot does not consume (edits, channel
// posts, chosen inline results, ...).
func ParseUpdate(update *tgbotapi.Update) (*ports.Event, bool) {
	if cb := update.CallbackQuery; cb != nil {
		if cb.Message == nil {
			// Callback from an inline-sent message; those keyboards only
			// carry URL buttons, so nothing to route.
			return nil, false
		}
		return &ports.Event{
			Kind:       ports.KindCallback,
			SenderID:   cb.From.ID,
			ChatID:     cb.Message.Chat.ID,
			MessageID:  cb.Message.MessageID,
			Data:       cb.Data,
			IsPrivate:  cb.Message.Chat.IsPrivate(),
			CallbackID: cb.ID,
		}, true
	}

	if iq := update.InlineQuery; iq != nil {
		return &ports.Event{
			Kind:      ports.KindInline,
			SenderID:  iq.From.ID,
			Text:      iq.Query,
			IsPrivate: true,
			InlineID:  iq.ID,
		}, true
	}

	if msg := update.Message; msg != nil && msg.From != nil {
		evt := &ports.Event{
			Kind:      ports.KindMessage,
			SenderID:  msg.From.ID,
			ChatID:    msg.Chat.ID,
			MessageID: msg.MessageID,
			Text:      msg.Text,
			IsPrivate: msg.Chat.IsPrivate(),
		}
		if msg.ReplyToMessage != nil {
			evt.ReplyToID = msg.ReplyToMessage.MessageID
		}
		return evt, true
	}

	return nil, false
}
