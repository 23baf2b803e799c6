package telegram

import (
	"errors"
	"fmt"
	"testing"

	"FaffinityBot/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestIsRecipientGone(t *testing.T) {
	permanent := []error{
		errors.New("Forbidden: bot was blocked by the user"),
		errors.New("Forbidden: user is deactivated"),
		errors.New("Bad Request: chat not found"),
		errors.New("Forbidden: bot can't initiate conversation with a user"),
		errors.New("Bad Request: user not found"),
		errors.New("Bad Request: have no rights to send a message"),
		errors.New("Bad Request: PEER_ID_INVALID"),
	}
	for _, err := range permanent {
		assert.True(t, IsRecipientGone(err), "expected permanent: %v", err)
	}

	transient := []error{
		errors.New("Too Many Requests: retry after 14"),
		errors.New("Bad Gateway"),
		errors.New("context deadline exceeded"),
	}
	for _, err := range transient {
		assert.False(t, IsRecipientGone(err), "expected transient: %v", err)
	}

	assert.False(t, IsRecipientGone(nil))
}

func TestIsRecipientGone_WrappedSentinel(t *testing.T) {
	// The client wraps classified failures before they reach the broadcast
	// coordinator; the wrapped form must classify the same way.
	wrapped := fmt.Errorf("%w: Forbidden: bot was blocked by the user", domain.ErrRecipientUnreachable)
	assert.True(t, IsRecipientGone(wrapped))
	assert.True(t, errors.Is(wrapped, domain.ErrRecipientUnreachable))
}
