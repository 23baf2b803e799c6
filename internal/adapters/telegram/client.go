package telegram

import (
	"context"
	"fmt"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// tgClient implements the BotClientPort.
type tgClient struct {
	api *tgbotapi.BotAPI
	log zerolog.Logger
}

// NewClient creates a new Telegram client adapter.
func NewClient(api *tgbotapi.BotAPI, baseLogger *zerolog.Logger) ports.BotClientPort {
	log := baseLogger.With().Str("component", "tg_client").Logger()
	return &tgClient{api: api, log: log}
}

// SendMessage translates our params into a tgbotapi message and returns the
// created message's id.
func (c *tgClient) SendMessage(ctx context.Context, params ports.SendMessageParams) (int, error) {
	msg := tgbotapi.NewMessage(params.ChatID, params.Text)
	msg.ParseMode = params.ParseMode
	msg.DisableWebPagePreview = params.DisableWebPreview
	if params.ReplyToID != 0 {
		msg.ReplyToMessageID = params.ReplyToID
	}
	if params.ReplyMarkup != nil {
		msg.ReplyMarkup = buildInlineKeyboard(params.ReplyMarkup.Buttons)
	}

	sent, err := c.api.Send(msg)
	if err != nil {
		c.log.Error().Err(err).Int64("chat_id", params.ChatID).Msg("Failed to send message")
		return 0, err
	}
	return sent.MessageID, nil
}

// SendPhoto sends a photo by URL with an optional caption and keyboard.
func (c *tgClient) SendPhoto(ctx context.Context, params ports.SendPhotoParams) (int, error) {
	msg := tgbotapi.NewPhoto(params.ChatID, tgbotapi.FileURL(params.PhotoURL))
	msg.Caption = params.Caption
	msg.ParseMode = params.ParseMode
	if params.ReplyMarkup != nil {
		msg.ReplyMarkup = buildInlineKeyboard(params.ReplyMarkup.Buttons)
	}

	sent, err := c.api.Send(msg)
	if err != nil {
		c.log.Error().Err(err).Int64("chat_id", params.ChatID).Msg("Failed to send photo")
		return 0, err
	}
	return sent.MessageID, nil
}

// SendAlbum sends up to ten photos as one media group.
func (c *tgClient) SendAlbum(ctx context.Context, chatID int64, photoURLs []string) error {
	if len(photoURLs) > 10 {
		photoURLs = photoURLs[:10]
	}

	media := make([]interface{}, 0, len(photoURLs))
	for _, url := range photoURLs {
		media = append(media, tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(url)))
	}

	group := tgbotapi.NewMediaGroup(chatID, media)
	if _, err := c.api.SendMediaGroup(group); err != nil {
		c.log.Error().Err(err).Int64("chat_id", chatID).Int("photos", len(photoURLs)).Msg("Failed to send album")
		return err
	}
	return nil
}

// EditMessageText edits an existing message in place.
func (c *tgClient) EditMessageText(ctx context.Context, params ports.EditMessageParams) error {
	msg := tgbotapi.NewEditMessageText(params.ChatID, params.MessageID, params.Text)
	msg.ParseMode = params.ParseMode
	if params.ReplyMarkup != nil {
		markup := buildInlineKeyboard(params.ReplyMarkup.Buttons)
		msg.ReplyMarkup = &markup
	}

	if _, err := c.api.Send(msg); err != nil {
		c.log.Error().Err(err).
			Int64("chat_id", params.ChatID).
			Int("message_id", params.MessageID).
			Msg("Failed to edit message text")
		return err
	}
	return nil
}

// AnswerCallback acknowledges a callback query (stops the spinner).
func (c *tgClient) AnswerCallback(ctx context.Context, params ports.AnswerCallbackParams) error {
	callback := tgbotapi.NewCallback(params.CallbackID, params.Text)
	callback.ShowAlert = params.ShowAlert

	if _, err := c.api.Request(callback); err != nil {
		c.log.Error().Err(err).Str("callback_id", params.CallbackID).Msg("Failed to answer callback query")
		return err
	}
	return nil
}

// AnswerInline answers an inline query with article results.
func (c *tgClient) AnswerInline(ctx context.Context, params ports.AnswerInlineParams) error {
	results := make([]interface{}, 0, len(params.Results))
	for _, r := range params.Results {
		article := tgbotapi.NewInlineQueryResultArticle(r.ID, r.Title, r.Text)
		if r.ThumbURL != "" {
			article.ThumbURL = r.ThumbURL
		}
		if r.ReplyMarkup != nil {
			markup := buildInlineKeyboard(r.ReplyMarkup.Buttons)
			article.ReplyMarkup = &markup
		}
		results = append(results, article)
	}

	inline := tgbotapi.InlineConfig{
		InlineQueryID: params.InlineID,
		Results:       results,
		IsPersonal:    true,
	}
	if _, err := c.api.Request(inline); err != nil {
		c.log.Error().Err(err).Str("inline_id", params.InlineID).Msg("Failed to answer inline query")
		return err
	}
	return nil
}

// DeleteMessages removes messages one by one; the Bot API has no batch
// delete in this client version.
func (c *tgClient) DeleteMessages(ctx context.Context, chatID int64, messageIDs []int) error {
	for _, id := range messageIDs {
		del := tgbotapi.NewDeleteMessage(chatID, id)
		if _, err := c.api.Request(del); err != nil {
			c.log.Warn().Err(err).Int64("chat_id", chatID).Int("message_id", id).Msg("Failed to delete message")
			return err
		}
	}
	return nil
}

// CopyMessage replicates an existing message into another chat. Permanent
// recipient-side failures are wrapped in domain.ErrRecipientUnreachable so
// the broadcast coordinator can count and skip them.
func (c *tgClient) CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error {
	copyCfg := tgbotapi.NewCopyMessage(toChatID, fromChatID, messageID)
	if _, err := c.api.Request(copyCfg); err != nil {
		if IsRecipientGone(err) {
			return fmt.Errorf("%w: %v", domain.ErrRecipientUnreachable, err)
		}
		return err
	}
	return nil
}

// buildInlineKeyboard is a helper to create the inline keyboard.
func buildInlineKeyboard(buttons [][]ports.Button) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, buttonRow := range buttons {
		var row []tgbotapi.InlineKeyboardButton
		for _, btn := range buttonRow {
			if btn.URL != "" {
				row = append(row, tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL))
			} else {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Data))
			}
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
