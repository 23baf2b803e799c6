package domain

import "errors"

var (
	// ErrDataSourceUnavailable is returned by the gateway when the film-data
	// provider cannot be reached or its response cannot be parsed. Handlers
	// recover from it with a localized error message; it is never fatal.
	ErrDataSourceUnavailable = errors.New("film data source unavailable")

	// ErrRecipientUnreachable marks permanent delivery failures during a
	// broadcast (blocked bot, deactivated account, invalid peer). Counted
	// and skipped, never surfaced per user.
	ErrRecipientUnreachable = errors.New("recipient unreachable")

	// ErrSlotOutOfRange is returned by the ad rotator when an admin edit
	// addresses a slot outside the fixed list.
	ErrSlotOutOfRange = errors.New("ad slot out of range")

	// ErrNotCached is the movie cache's miss signal.
	ErrNotCached = errors.New("movie not cached")
)
