package location

import "time"

const (
	// DefaultRadiusMeters is the geofence radius applied when an authorized
	// location does not carry its own.
	DefaultRadiusMeters = 100

	// DefaultAccuracyThreshold is the maximum reported accuracy (meters)
	// accepted when validating a clock-in or clock-out attempt.
	DefaultAccuracyThreshold = 50

	// AcquireAccuracyCeiling is the accuracy (meters) above which a device fix
	// is discarded and re-requested during acquisition.
	AcquireAccuracyCeiling = 1000

	// NetworkAccuracyMeters is the accuracy tag for coarse IP-based fixes.
	NetworkAccuracyMeters = 10000

	// CacheFallbackAccuracyMeters is assumed when a cached fix carries no
	// accuracy of its own.
	CacheFallbackAccuracyMeters = 1000

	// HistoryCapacity bounds the in-memory location history ring.
	HistoryCapacity = 10

	// CacheMaxAge is the freshness window for the durable last-known fix.
	CacheMaxAge = 24 * time.Hour
)

// Fix is a single resolved device position.
type Fix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"` // meters, 0 when unknown
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// HistoryEntry is one captured position in the acquisition history.
type HistoryEntry struct {
	Fix        Fix       `json:"fix"`
	CapturedAt time.Time `json:"captured_at"`
}

// AuthorizedLocation is a geofenced work location owned by an employee.
// The validation pipeline only ever reads these.
type AuthorizedLocation struct {
	Name         string  `json:"name,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters,omitempty"` // 0 means DefaultRadiusMeters
}

// PositionOptions mirror the options of a single platform position request.
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaxAge       time.Duration
}

// AcquireOptions control a full acquisition run including retries and
// fallback. Use DefaultAcquireOptions as a starting point; a zero Timeout or
// RetryAttempts is replaced with the default.
type AcquireOptions struct {
	HighAccuracy    bool
	Timeout         time.Duration
	MaxAge          time.Duration
	RetryAttempts   int
	NetworkFallback bool
}

// DefaultAcquireOptions returns the standard acquisition parameters.
func DefaultAcquireOptions() AcquireOptions {
	return AcquireOptions{
		HighAccuracy:    true,
		Timeout:         15 * time.Second,
		MaxAge:          5 * time.Minute,
		RetryAttempts:   3,
		NetworkFallback: true,
	}
}

// Normalized fills zero values with defaults.
func (o AcquireOptions) Normalized() AcquireOptions {
	def := DefaultAcquireOptions()
	if o.Timeout <= 0 {
		o.Timeout = def.Timeout
	}
	if o.RetryAttempts <= 0 {
		o.RetryAttempts = def.RetryAttempts
	}
	return o
}

// State is a snapshot of the acquisition pipeline.
type State struct {
	Acquiring  bool   `json:"acquiring"`
	LastResult *Fix   `json:"last_result,omitempty"`
	LastError  string `json:"last_error,omitempty"`
}

// Decision is the outcome of a geofence admission check.
type Decision struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}
