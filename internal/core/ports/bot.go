package ports

import (
	"context"
)

// --- Event model (inbound) ---

// EventKind tags the inbound platform event variant.
type EventKind int

const (
	KindMessage EventKind = iota
	KindCallback
	KindInline
)

func (k EventKind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindCallback:
		return "callback"
	case KindInline:
		return "inline"
	}
	return "unknown"
}

// Event is our generic, platform-independent update. The telegram adapter
// builds exactly one of these per supported tgbotapi.Update.
type Event struct {
	Kind      EventKind
	SenderID  int64
	ChatID    int64
	MessageID int
	// Text carries the message text for KindMessage and the query string
	// for KindInline.
	Text string
	// Data carries the callback payload for KindCallback.
	Data string
	// IsPrivate is true for one-to-one chats. Group and channel events are
	// dropped early by the visibility filter.
	IsPrivate bool
	// CallbackID identifies the callback query to answer (KindCallback only).
	CallbackID string
	// InlineID identifies the inline query to answer (KindInline only).
	InlineID string
	// ReplyToID is the id of the message this one replies to, 0 if none.
	ReplyToID int
}

// Payload returns the text route patterns are matched against.
func (e *Event) Payload() string {
	if e.Kind == KindCallback {
		return e.Data
	}
	return e.Text
}

// --- Outbound message structures ---

// Button represents a single button in an inline keyboard.
type Button struct {
	Text string
	Data string // For callbacks
	URL  string // For URL buttons
}

// ReplyMarkup represents an inline keyboard grid.
type ReplyMarkup struct {
	Buttons [][]Button
}

// SendMessageParams holds all possible options for sending a text message.
type SendMessageParams struct {
	ChatID            int64
	Text              string
	ParseMode         string // e.g. "Markdown"
	ReplyMarkup       *ReplyMarkup
	DisableWebPreview bool
	ReplyToID         int
}

// SendPhotoParams holds the options for sending a photo by URL.
type SendPhotoParams struct {
	ChatID      int64
	PhotoURL    string
	Caption     string
	ParseMode   string
	ReplyMarkup *ReplyMarkup
}

// EditMessageParams holds the options for editing a sent message in place.
type EditMessageParams struct {
	ChatID      int64
	MessageID   int
	Text        string
	ParseMode   string
	ReplyMarkup *ReplyMarkup
}

// AnswerCallbackParams acknowledges a callback query (stops the spinner).
type AnswerCallbackParams struct {
	CallbackID string
	Text       string
	ShowAlert  bool
}

// InlineResult is one article shown in an inline-query popup.
type InlineResult struct {
	ID          string
	Title       string
	Text        string
	ThumbURL    string
	ReplyMarkup *ReplyMarkup
}

// AnswerInlineParams answers an inline query with a list of articles.
type AnswerInlineParams struct {
	InlineID string
	Results  []InlineResult
}

// --- Bot Client Port (outbound) ---

// BotClientPort defines the interface for sending responses back to the
// platform. Send operations return the id of the created message so callers
// can reference it later (progress edits, linked deletions).
type BotClientPort interface {
	SendMessage(ctx context.Context, params SendMessageParams) (int, error)
	SendPhoto(ctx context.Context, params SendPhotoParams) (int, error)
	// SendAlbum sends up to ten photos as one media group.
	SendAlbum(ctx context.Context, chatID int64, photoURLs []string) error
	EditMessageText(ctx context.Context, params EditMessageParams) error
	AnswerCallback(ctx context.Context, params AnswerCallbackParams) error
	AnswerInline(ctx context.Context, params AnswerInlineParams) error
	DeleteMessages(ctx context.Context, chatID int64, messageIDs []int) error
	// CopyMessage replicates an existing message to another chat. Used by
	// the broadcast coordinator to fan out the replied-to message.
	CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error
}
