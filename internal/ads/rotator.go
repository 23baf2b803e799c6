// Package ads holds the small rotating promotional line shown under movie
// details. Five fixed slots, persisted through the AdRepository, editable at
// runtime by the admin.
package ads

import (
	"context"
	"math/rand"
	"sync"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"

	"github.com/rs/zerolog"
)

// SlotCount is the fixed size of the ad list.
const SlotCount = 5

// Rotator serves uniform-random ad picks over the slot list. Reads and
// admin edits interleave, so access is guarded.
type Rotator struct {
	mu    sync.RWMutex
	slots []string
	repo  ports.AdRepository
	log   zerolog.Logger

	// intn is swapped in tests to pin the slot choice.
	intn func(n int) int
}

// NewRotator loads the persisted slot list. Short lists are padded with
// empty slots so the size is always SlotCount.
func NewRotator(ctx context.Context, repo ports.AdRepository, baseLogger *zerolog.Logger) (*Rotator, error) {
	stored, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	slots := make([]string, SlotCount)
	copy(slots, stored)

	return &Rotator{
		slots: slots,
		repo:  repo,
		log:   baseLogger.With().Str("component", "ad_rotator").Logger(),
		intn:  rand.Intn,
	}, nil
}

// Pick returns a uniformly-random slot, or the localized default line when
// the chosen slot is empty.
func (r *Rotator) Pick(t func(messageID string) string) string {
	r.mu.RLock()
	ad := r.slots[r.intn(len(r.slots))]
	r.mu.RUnlock()

	if ad == "" {
		return t("default_ad")
	}
	return ad
}

// Set replaces one slot and persists it. The caller passes an empty body to
// clear a slot.
func (r *Rotator) Set(ctx context.Context, slot int, body string) error {
	if slot < 0 || slot >= SlotCount {
		return domain.ErrSlotOutOfRange
	}

	if err := r.repo.Set(ctx, slot, body); err != nil {
		r.log.Error().Err(err).Int("slot", slot).Msg("Failed to persist ad slot")
		return err
	}

	r.mu.Lock()
	r.slots[slot] = body
	r.mu.Unlock()

	r.log.Info().Int("slot", slot).Msg("Ad slot replaced")
	return nil
}

// List returns a copy of the current slots in order.
func (r *Rotator) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.slots))
	copy(out, r.slots)
	return out
}
