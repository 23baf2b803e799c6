package handlers

import (
	"context"
	"strconv"

	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
)

// Delete removes the message carrying the pressed button plus up to two
// linked messages encoded in the payload (a split detail's poster, the
// progress message's sibling, ...).
func Delete(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		ids := []int{evt.MessageID}
		for _, name := range []string{"msg1", "msg2"} {
			if raw, ok := caps[name]; ok {
				if id, err := strconv.Atoi(raw); err == nil {
					ids = append(ids, id)
				}
			}
		}

		err := d.Bot.DeleteMessages(ctx, evt.ChatID, ids)
		d.ack(ctx, evt)
		return dispatch.Handled, err
	}
}
