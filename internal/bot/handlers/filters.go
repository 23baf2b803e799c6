package handlers

import (
	"context"

	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
)

// PrivateGate halts processing for any event not originating from a
// one-to-one private chat. Pure filter: no response is produced.
func PrivateGate() dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		if !evt.IsPrivate {
			return dispatch.Handled, nil
		}
		return dispatch.Continue, nil
	}
}

// AdminGate halts processing of admin-scoped commands for anyone but the
// configured administrator. Silent by design: no error message, no error
// log.
func AdminGate(adminID int64) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		if evt.SenderID != adminID {
			return dispatch.Handled, nil
		}
		return dispatch.Continue, nil
	}
}
