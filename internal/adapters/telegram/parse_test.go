package telegram

import (
	"testing"

	"FaffinityBot/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func privateChat(id int64) *tgbotapi.Chat {
	return &tgbotapi.Chat{ID: id, Type: "private"}
}

func TestParseUpdate_Message(t *testing.T) {
	update := &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 33,
			From:      &tgbotapi.User{ID: 7},
			Chat:      privateChat(7),
			Text:      "/help",
		},
	}

	evt, ok := ParseUpdate(update)

	require.True(t, ok)
	assert.Equal(t, ports.KindMessage, evt.Kind)
	assert.Equal(t, int64(7), evt.SenderID)
	assert.Equal(t, int64(7), evt.ChatID)
	assert.Equal(t, 33, evt.MessageID)
	assert.Equal(t, "/help", evt.Text)
	assert.True(t, evt.IsPrivate)
	assert.Equal(t, "/help", evt.Payload())
}

func TestParseUpdate_MessageReply(t *testing.T) {
	update := &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID:      34,
			From:           &tgbotapi.User{ID: 7},
			Chat:           privateChat(7),
			Text:           "/broadcast all",
			ReplyToMessage: &tgbotapi.Message{MessageID: 30},
		},
	}

	evt, ok := ParseUpdate(update)

	require.True(t, ok)
	assert.Equal(t, 30, evt.ReplyToID)
}

func TestParseUpdate_GroupMessageNotPrivate(t *testing.T) {
	update := &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: 7},
			Chat:      &tgbotapi.Chat{ID: -100, Type: "supergroup"},
			Text:      "hola",
		},
	}

	evt, ok := ParseUpdate(update)

	require.True(t, ok)
	assert.False(t, evt.IsPrivate)
}

func TestParseUpdate_Callback(t *testing.T) {
	update := &tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: 9},
			Data: "film_555",
			Message: &tgbotapi.Message{
				MessageID: 40,
				Chat:      privateChat(9),
			},
		},
	}

	evt, ok := ParseUpdate(update)

	require.True(t, ok)
	assert.Equal(t, ports.KindCallback, evt.Kind)
	assert.Equal(t, "cb-1", evt.CallbackID)
	assert.Equal(t, "film_555", evt.Data)
	assert.Equal(t, "film_555", evt.Payload())
	assert.Equal(t, 40, evt.MessageID)
}

func TestParseUpdate_CallbackWithoutMessageDropped(t *testing.T) {
	update := &tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-2",
			From: &tgbotapi.User{ID: 9},
			Data: "film_555",
		},
	}

	_, ok := ParseUpdate(update)
	assert.False(t, ok)
}

func TestParseUpdate_InlineQuery(t *testing.T) {
	update := &tgbotapi.Update{
		InlineQuery: &tgbotapi.InlineQuery{
			ID:    "iq-1",
			From:  &tgbotapi.User{ID: 11},
			Query: "casa",
		},
	}

	evt, ok := ParseUpdate(update)

	require.True(t, ok)
	assert.Equal(t, ports.KindInline, evt.Kind)
	assert.Equal(t, "iq-1", evt.InlineID)
	assert.Equal(t, "casa", evt.Text)
	assert.True(t, evt.IsPrivate, "inline queries are always served")
}

func TestParseUpdate_UnsupportedUpdatesDropped(t *testing.T) {
	_, ok := ParseUpdate(&tgbotapi.Update{})
	assert.False(t, ok)

	_, ok = ParseUpdate(&tgbotapi.Update{
		EditedMessage: &tgbotapi.Message{MessageID: 1},
	})
	assert.False(t, ok)

	// Channel posts carry no From user.
	_, ok = ParseUpdate(&tgbotapi.Update{
		Message: &tgbotapi.Message{MessageID: 2, Chat: &tgbotapi.Chat{ID: -1, Type: "channel"}},
	})
	assert.False(t, ok)
}
