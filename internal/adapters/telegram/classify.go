package telegram

import (
	"errors"
	"strings"

	"FaffinityBot/internal/core/domain"
)

// permanentDeliveryMarkers are the Bot API error strings for recipients the
// bot can never reach again. Broadcasts count these and move on.
var permanentDeliveryMarkers = []string{
	"bot was blocked by the user",
	"user is deactivated",
	"chat not found",
	"bot can't initiate conversation with a user",
	"user not found",
	"have no rights to send a message",
	"peer_id_invalid",
}

// IsRecipientGone reports whether a send failure is a permanent
// recipient-side condition rather than a transient platform error. The
// client wraps such failures in domain.ErrRecipientUnreachable; the raw
// marker strings are still recognized for errors from other paths.
func IsRecipientGone(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrRecipientUnreachable) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentDeliveryMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
