package location

import "errors"

// Location pipeline errors
var (
	// ErrNotSupported means no platform location capability is wired in.
	// Terminal: acquisition does not retry past it.
	ErrNotSupported = errors.New("location capability is not available")

	// ErrTimeout is returned by a provider when no position arrived within
	// the per-request timeout.
	ErrTimeout = errors.New("timed out waiting for a position")

	// ErrNoLastKnown means neither the in-memory nor the durable cache holds
	// a fresh fix.
	ErrNoLastKnown = errors.New("no recent location available")

	// ErrNoWatch is returned when stopping a watch that was never started.
	ErrNoWatch = errors.New("no active location watch")
)
