// Package broadcast fans an admin's message out to the stored user
// population with throttling, partial-failure tolerance and live progress.
package broadcast

import (
	"context"
	"fmt"
	"time"

	"FaffinityBot/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// sendDelay paces consecutive sends to respect platform rate limits.
	sendDelay = 250 * time.Millisecond
	// cooldown pauses the whole run after an unexpected delivery failure,
	// treating it as possibly rate-limit-induced.
	cooldown = 30 * time.Second
	// progressSegments bounds how many times the progress message is
	// edited: once every (total+segments)/segments sends.
	progressSegments = 50
)

// Progress is the per-run accounting. sent+errored always equals the number
// of attempts so far.
type Progress struct {
	Sent    int
	Errored int
	Total   int
}

// Coordinator owns one broadcast run at a time. No resume: a crash
// mid-broadcast loses progress and the admin restarts it.
type Coordinator struct {
	users ports.UserRepository
	bot   ports.BotClientPort
	// isPermanent classifies delivery errors; permanent ones are counted
	// and skipped, anything else also triggers the cooldown.
	isPermanent func(error) bool
	log         zerolog.Logger

	// sleep is swapped in tests to avoid real waiting.
	sleep func(time.Duration)
}

// NewCoordinator wires a coordinator.
func NewCoordinator(
	users ports.UserRepository,
	bot ports.BotClientPort,
	isPermanent func(error) bool,
	baseLogger *zerolog.Logger,
) *Coordinator {
	return &Coordinator{
		users:       users,
		bot:         bot,
		isPermanent: isPermanent,
		log:         baseLogger.With().Str("component", "broadcast").Logger(),
		sleep:       time.Sleep,
	}
}

// Run replicates the message (srcChatID, srcMessageID) to every user
// matching langFilter (empty means all), reporting progress to adminChatID.
// The target set and total are snapshotted up front; language changes during
// the run are not reflected.
func (c *Coordinator) Run(ctx context.Context, adminChatID, srcChatID int64, srcMessageID int, langFilter string) (Progress, error) {
	runID := uuid.New()
	log := c.log.With().Str("run_id", runID.String()).Str("filter", filterLabel(langFilter)).Logger()

	ids, err := c.users.ListIDs(ctx, langFilter)
	if err != nil {
		return Progress{}, err
	}

	progress := Progress{Total: len(ids)}
	log.Info().Int("total", progress.Total).Msg("Broadcast started")

	progressID, err := c.bot.SendMessage(ctx, ports.SendMessageParams{
		ChatID: adminChatID,
		Text:   progressText(langFilter, progress),
	})
	if err != nil {
		return progress, err
	}

	step := (progress.Total + progressSegments) / progressSegments
	if step < 1 {
		step = 1
	}

	for count, tid := range ids {
		if ctx.Err() != nil {
			log.Warn().Int("attempted", count).Msg("Broadcast abandoned (context cancelled)")
			return progress, ctx.Err()
		}

		if err := c.bot.CopyMessage(ctx, tid, srcChatID, srcMessageID); err != nil {
			progress.Errored++
			if !c.isPermanent(err) {
				log.Error().Err(err).Int64("recipient", tid).Msg("Unexpected delivery failure, cooling down")
				c.bot.SendMessage(ctx, ports.SendMessageParams{
					ChatID: adminChatID,
					Text: fmt.Sprintf(
						"Exception: `%v`\n\nAt user `%d`. Sleeping `%.0f` seconds...",
						err, count+1, cooldown.Seconds(),
					),
				})
				c.sleep(cooldown)
			}
		} else {
			progress.Sent++
		}

		c.sleep(sendDelay)

		attempted := count + 1
		if attempted%step == 0 || attempted == progress.Total {
			c.bot.EditMessageText(ctx, ports.EditMessageParams{
				ChatID:    adminChatID,
				MessageID: progressID,
				Text:      progressText(langFilter, progress),
			})
		}
	}

	c.bot.SendMessage(ctx, ports.SendMessageParams{
		ChatID:    adminChatID,
		Text:      "✅ Done!!!",
		ReplyToID: progressID,
	})

	log.Info().Int("sent", progress.Sent).Int("errored", progress.Errored).Msg("Broadcast finished")
	return progress, nil
}

func progressText(langFilter string, p Progress) string {
	return fmt.Sprintf(
		"📢 Broadcasting to `%s` users...\n🚫 Errors: `%d`\n✅ Broadcast: `%d/%d`",
		filterLabel(langFilter), p.Errored, p.Sent, p.Total,
	)
}

func filterLabel(langFilter string) string {
	if langFilter == "" {
		return "all"
	}
	return langFilter
}
