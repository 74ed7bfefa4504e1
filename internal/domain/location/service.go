package location

import "context"

// Acquirer orchestrates device-location requests with retries and fallback,
// and owns the bounded location history and last-known cache.
type Acquirer interface {
	// Acquire resolves a best-effort current position. All failure paths are
	// also recorded in the pipeline state; Acquire never panics.
	Acquire(ctx context.Context, opts AcquireOptions) (Fix, error)

	// Watch installs a continuous position subscription, replacing any
	// previous one. Updates take the regular accept path without retry or
	// accuracy rejection.
	Watch(ctx context.Context, opts PositionOptions) error

	// StopWatching cancels the active watch, if any.
	StopWatching() error

	// IsAccurate reports whether a fix meets the given accuracy threshold
	// (meters). A non-positive threshold means 100 meters.
	IsAccurate(fix Fix, thresholdMeters float64) bool

	// History returns a copy of the captured positions, newest first.
	History() []HistoryEntry

	// LastKnown returns the most recent accepted fix, falling back to the
	// durable cache when memory is empty. Entries older than CacheMaxAge
	// are not offered.
	LastKnown(ctx context.Context) (Fix, error)

	// State returns a snapshot of the pipeline state.
	State() State
}

// Validator gates a clock-in/clock-out attempt against an employee's
// authorized locations.
type Validator interface {
	// Validate applies the accuracy gate, then geofence membership. An empty
	// authorized set accepts unconditionally. A non-positive threshold means
	// DefaultAccuracyThreshold.
	Validate(fix Fix, authorized []AuthorizedLocation, accuracyThreshold float64) Decision
}
