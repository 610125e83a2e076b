package core

import "errors"

var (
	// ErrAlphabetTooSmall means fewer than two unique symbols survived
	// deduplication; no distinct counting is possible beyond a single tag.
	ErrAlphabetTooSmall = errors.New("alphabet needs at least 2 unique symbols")

	ErrNegativeCount    = errors.New("tag count must not be negative")
	ErrBadCapacity      = errors.New("page capacity must be at least 1")
	ErrProducerMismatch = errors.New("producer length mismatch")

	// ErrNoItems is a notice, not a fault: the producer had nothing to show.
	ErrNoItems = errors.New("no items")

	ErrRowOutOfRange   = errors.New("row outside current page")
	ErrSessionClosed   = errors.New("session is closed")
	ErrNavKeyCollision = errors.New("navigation key collides with a tag symbol")
)
