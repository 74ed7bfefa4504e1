package location

import "context"

// Provider is the platform location capability: the single non-deterministic
// external input of the acquisition pipeline.
type Provider interface {
	// CurrentPosition resolves one position or fails with ErrTimeout or a
	// platform error. A MaxAge > 0 allows a sufficiently fresh earlier
	// position to be returned immediately.
	CurrentPosition(ctx context.Context, opts PositionOptions) (Fix, error)

	// WatchPosition opens a continuous position subscription. The returned
	// cancel func tears the subscription down and closes the channel.
	WatchPosition(ctx context.Context, opts PositionOptions) (<-chan Fix, func(), error)
}

// NetworkLocator resolves a coarse IP-based position. Queried only when
// device location is fully exhausted.
type NetworkLocator interface {
	Locate(ctx context.Context) (Fix, error)
}

// LastKnownStore is the durable mirror of the most recent accepted fix.
type LastKnownStore interface {
	Save(ctx context.Context, fix Fix) error
	// Get returns the stored fix or ErrNoLastKnown. Staleness is judged by
	// the caller against the fix timestamp.
	Get(ctx context.Context) (Fix, error)
}
