package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

const (
	// retryTimeoutStep shortens the per-request timeout on every retry.
	retryTimeoutStep = 2 * time.Second

	// minRequestTimeout is the floor for a shortened per-request timeout.
	minRequestTimeout = 1 * time.Second

	// accuracyRejectPause sits between an accuracy-rejected fix and the next
	// attempt, giving the platform a chance to settle.
	accuracyRejectPause = 1 * time.Second

	// failureBackoff sits between a failed request and the next attempt.
	failureBackoff = 2 * time.Second
)

type acquirer struct {
	provider  location.Provider
	network   location.NetworkLocator
	lastKnown location.LastKnownStore
	logger    *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	acquireMu sync.Mutex // serializes Acquire runs

	mu         sync.RWMutex // guards everything below
	history    []location.HistoryEntry
	state      location.State
	watchStop  func()
	watchDone  chan struct{}
}

// NewAcquirer wires the acquisition pipeline. The network locator and the
// last-known store may be nil; the matching fallbacks are then skipped. A nil
// provider makes every acquisition report ErrNotSupported.
func NewAcquirer(provider location.Provider, network location.NetworkLocator, lastKnown location.LastKnownStore, logger *slog.Logger) location.Acquirer {
	return &acquirer{
		provider:  provider,
		network:   network,
		lastKnown: lastKnown,
		logger:    logger,
		now:       time.Now,
		sleep:     sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (a *acquirer) Acquire(ctx context.Context, opts location.AcquireOptions) (location.Fix, error) {
	if a.provider == nil {
		return location.Fix{}, location.ErrNotSupported
	}

	a.acquireMu.Lock()
	defer a.acquireMu.Unlock()

	opts = opts.Normalized()

	a.setAcquiring(true)
	defer a.setAcquiring(false)

	fix, err := a.acquireDevice(ctx, opts)
	if err == nil {
		a.accept(ctx, fix)
		return fix, nil
	}
	if ctx.Err() != nil {
		return location.Fix{}, ctx.Err()
	}

	a.logger.Warn("device location exhausted, trying fallbacks", "error", err)

	if fallback, ok := a.fallback(ctx, opts); ok {
		a.setResult(fallback)
		return fallback, nil
	}

	a.setError(err)
	return location.Fix{}, err
}

// acquireDevice runs the retry loop against the platform provider. Each retry
// drops high accuracy and cached positions and shortens the timeout.
func (a *acquirer) acquireDevice(ctx context.Context, opts location.AcquireOptions) (location.Fix, error) {
	var lastErr error

	for attempt := 0; attempt < opts.RetryAttempts; attempt++ {
		if ctx.Err() != nil {
			return location.Fix{}, ctx.Err()
		}

		req := location.PositionOptions{
			HighAccuracy: opts.HighAccuracy && attempt == 0,
			Timeout:      requestTimeout(opts.Timeout, attempt),
		}
		if attempt == 0 {
			req.MaxAge = opts.MaxAge
		}

		fix, err := a.provider.CurrentPosition(ctx, req)
		if err != nil {
			if errors.Is(err, location.ErrNotSupported) {
				return location.Fix{}, err
			}
			lastErr = err
			a.logger.Debug("position request failed", "attempt", attempt+1, "error", err)
			if attempt < opts.RetryAttempts-1 {
				if err := a.sleep(ctx, failureBackoff); err != nil {
					return location.Fix{}, err
				}
			}
			continue
		}

		// A coarse fix is only worth retrying while attempts remain; the last
		// one is returned as-is and left to the accuracy gate downstream.
		if fix.Accuracy > location.AcquireAccuracyCeiling && attempt < opts.RetryAttempts-1 {
			lastErr = fmt.Errorf("position too coarse: ±%.0fm", fix.Accuracy)
			a.logger.Debug("position rejected for accuracy", "attempt", attempt+1, "accuracy", fix.Accuracy)
			if err := a.sleep(ctx, accuracyRejectPause); err != nil {
				return location.Fix{}, err
			}
			continue
		}

		return fix, nil
	}

	if lastErr == nil {
		lastErr = location.ErrTimeout
	}
	return location.Fix{}, lastErr
}

// requestTimeout shortens the configured timeout by a step per retry, never
// dropping below the floor.
func requestTimeout(base time.Duration, attempt int) time.Duration {
	timeout := base - time.Duration(attempt)*retryTimeoutStep
	if timeout < minRequestTimeout {
		timeout = minRequestTimeout
	}
	return timeout
}

// fallback tries the durable cache, then the network locator. Fallback fixes
// become the last result but are kept out of the history and the cache.
func (a *acquirer) fallback(ctx context.Context, opts location.AcquireOptions) (location.Fix, bool) {
	if a.lastKnown != nil {
		cached, err := a.lastKnown.Get(ctx)
		if err == nil && a.now().Sub(cached.Timestamp) <= location.CacheMaxAge {
			if cached.Accuracy <= 0 {
				cached.Accuracy = location.CacheFallbackAccuracyMeters
			}
			a.logger.Info("using cached last-known location", "age", a.now().Sub(cached.Timestamp))
			return cached, true
		}
	}

	if opts.NetworkFallback && a.network != nil {
		fix, err := a.network.Locate(ctx)
		if err == nil {
			if fix.Accuracy <= 0 {
				fix.Accuracy = location.NetworkAccuracyMeters
			}
			a.logger.Info("using network-based location")
			return fix, true
		}
		a.logger.Warn("network location failed", "error", err)
	}

	return location.Fix{}, false
}

func (a *acquirer) Watch(ctx context.Context, opts location.PositionOptions) error {
	if a.provider == nil {
		return location.ErrNotSupported
	}

	updates, cancel, err := a.provider.WatchPosition(ctx, opts)
	if err != nil {
		return fmt.Errorf("start location watch: %w", err)
	}

	a.mu.Lock()
	if a.watchStop != nil {
		a.watchStop()
		<-a.watchDone
	}
	done := make(chan struct{})
	a.watchStop = cancel
	a.watchDone = done
	a.mu.Unlock()

	go func() {
		defer close(done)
		for fix := range updates {
			a.accept(ctx, fix)
		}
	}()

	return nil
}

func (a *acquirer) StopWatching() error {
	a.mu.Lock()
	stop := a.watchStop
	done := a.watchDone
	a.watchStop = nil
	a.watchDone = nil
	a.mu.Unlock()

	if stop == nil {
		return location.ErrNoWatch
	}

	stop()
	<-done
	return nil
}

func (a *acquirer) IsAccurate(fix location.Fix, thresholdMeters float64) bool {
	if thresholdMeters <= 0 {
		thresholdMeters = 100
	}
	return fix.Accuracy <= thresholdMeters
}

func (a *acquirer) History() []location.HistoryEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]location.HistoryEntry, len(a.history))
	copy(out, a.history)
	return out
}

func (a *acquirer) LastKnown(ctx context.Context) (location.Fix, error) {
	a.mu.RLock()
	last := a.state.LastResult
	a.mu.RUnlock()

	if last != nil {
		return *last, nil
	}

	if a.lastKnown != nil {
		cached, err := a.lastKnown.Get(ctx)
		if err == nil && a.now().Sub(cached.Timestamp) <= location.CacheMaxAge {
			return cached, nil
		}
	}

	return location.Fix{}, location.ErrNoLastKnown
}

func (a *acquirer) State() location.State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snapshot := a.state
	if a.state.LastResult != nil {
		fix := *a.state.LastResult
		snapshot.LastResult = &fix
	}
	return snapshot
}

// accept records a device fix: history ring, state, durable cache.
func (a *acquirer) accept(ctx context.Context, fix location.Fix) {
	if fix.Timestamp.IsZero() {
		fix.Timestamp = a.now()
	}

	a.mu.Lock()
	entry := location.HistoryEntry{Fix: fix, CapturedAt: a.now()}
	a.history = append([]location.HistoryEntry{entry}, a.history...)
	if len(a.history) > location.HistoryCapacity {
		a.history = a.history[:location.HistoryCapacity]
	}
	result := fix
	a.state.LastResult = &result
	a.state.LastError = ""
	a.mu.Unlock()

	if a.lastKnown != nil {
		if err := a.lastKnown.Save(ctx, fix); err != nil {
			a.logger.Warn("failed to persist last-known location", "error", err)
		}
	}
}

func (a *acquirer) setAcquiring(v bool) {
	a.mu.Lock()
	a.state.Acquiring = v
	a.mu.Unlock()
}

func (a *acquirer) setResult(fix location.Fix) {
	a.mu.Lock()
	result := fix
	a.state.LastResult = &result
	a.state.LastError = ""
	a.mu.Unlock()
}

func (a *acquirer) setError(err error) {
	a.mu.Lock()
	a.state.LastError = err.Error()
	a.mu.Unlock()
}
