package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

type positionResult struct {
	fix location.Fix
	err error
}

// fakeProvider replays scripted responses and records every request it saw.
type fakeProvider struct {
	script   []positionResult
	requests []location.PositionOptions
}

func (p *fakeProvider) CurrentPosition(_ context.Context, opts location.PositionOptions) (location.Fix, error) {
	p.requests = append(p.requests, opts)
	if len(p.script) == 0 {
		return location.Fix{}, location.ErrTimeout
	}
	next := p.script[0]
	p.script = p.script[1:]
	return next.fix, next.err
}

func (p *fakeProvider) WatchPosition(_ context.Context, _ location.PositionOptions) (<-chan location.Fix, func(), error) {
	ch := make(chan location.Fix)
	close(ch)
	return ch, func() {}, nil
}

type fakeStore struct {
	saved []location.Fix
	fix   location.Fix
	err   error
}

func (s *fakeStore) Save(_ context.Context, fix location.Fix) error {
	s.saved = append(s.saved, fix)
	return nil
}

func (s *fakeStore) Get(_ context.Context) (location.Fix, error) {
	return s.fix, s.err
}

type fakeNetwork struct {
	fix    location.Fix
	err    error
	called int
}

func (n *fakeNetwork) Locate(_ context.Context) (location.Fix, error) {
	n.called++
	return n.fix, n.err
}

func newTestAcquirer(provider location.Provider, network location.NetworkLocator, store location.LastKnownStore, now time.Time) (*acquirer, *[]time.Duration) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var pauses []time.Duration
	a := NewAcquirer(provider, network, store, logger).(*acquirer)
	a.now = func() time.Time { return now }
	a.sleep = func(_ context.Context, d time.Duration) error {
		pauses = append(pauses, d)
		return nil
	}
	return a, &pauses
}

func TestAcquirer_FirstAttemptSuccess(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{script: []positionResult{
		{fix: location.Fix{Latitude: 28.6139, Longitude: 77.2090, Accuracy: 15, Timestamp: now}},
	}}
	store := &fakeStore{err: location.ErrNoLastKnown}
	a, pauses := newTestAcquirer(provider, nil, store, now)

	// Act
	fix, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 28.6139, fix.Latitude)
	assert.Empty(t, *pauses)

	require.Len(t, provider.requests, 1)
	assert.True(t, provider.requests[0].HighAccuracy)
	assert.Equal(t, 15*time.Second, provider.requests[0].Timeout)
	assert.Equal(t, 5*time.Minute, provider.requests[0].MaxAge)

	require.Len(t, store.saved, 1)
	assert.Equal(t, fix, store.saved[0])

	state := a.State()
	require.NotNil(t, state.LastResult)
	assert.False(t, state.Acquiring)
	assert.Empty(t, state.LastError)
}

func TestAcquirer_RetriesDropAccuracyAndShortenTimeout(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{script: []positionResult{
		{err: location.ErrTimeout},
		{err: location.ErrTimeout},
		{fix: location.Fix{Latitude: 19.0760, Longitude: 72.8777, Accuracy: 40, Timestamp: now}},
	}}
	a, pauses := newTestAcquirer(provider, nil, nil, now)

	// Act
	_, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.NoError(t, err)
	require.Len(t, provider.requests, 3)

	assert.True(t, provider.requests[0].HighAccuracy)
	assert.False(t, provider.requests[1].HighAccuracy)
	assert.False(t, provider.requests[2].HighAccuracy)

	assert.Equal(t, 15*time.Second, provider.requests[0].Timeout)
	assert.Equal(t, 13*time.Second, provider.requests[1].Timeout)
	assert.Equal(t, 11*time.Second, provider.requests[2].Timeout)

	assert.Zero(t, provider.requests[1].MaxAge)
	assert.Zero(t, provider.requests[2].MaxAge)

	assert.Equal(t, []time.Duration{failureBackoff, failureBackoff}, *pauses)
}

func TestAcquirer_RejectsCoarseFixAndRetries(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{script: []positionResult{
		{fix: location.Fix{Latitude: 1, Longitude: 1, Accuracy: 5000, Timestamp: now}},
		{fix: location.Fix{Latitude: 2, Longitude: 2, Accuracy: 30, Timestamp: now}},
	}}
	a, pauses := newTestAcquirer(provider, nil, nil, now)

	// Act
	fix, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2.0, fix.Latitude)
	assert.Equal(t, []time.Duration{accuracyRejectPause}, *pauses)

	// The coarse fix never entered the history.
	history := a.History()
	require.Len(t, history, 1)
	assert.Equal(t, 30.0, history[0].Fix.Accuracy)
}

func TestAcquirer_KeepsCoarseFixOnFinalAttempt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{script: []positionResult{
		{fix: location.Fix{Latitude: 1, Longitude: 1, Accuracy: 2000, Timestamp: now}},
		{fix: location.Fix{Latitude: 2, Longitude: 2, Accuracy: 2000, Timestamp: now}},
		{fix: location.Fix{Latitude: 3, Longitude: 3, Accuracy: 2000, Timestamp: now}},
	}}
	a, pauses := newTestAcquirer(provider, nil, nil, now)

	// Act
	fix, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3.0, fix.Latitude)
	assert.Equal(t, 2000.0, fix.Accuracy)
	assert.Equal(t, []time.Duration{accuracyRejectPause, accuracyRejectPause}, *pauses)

	// The kept fix still fails the clock-in accuracy gate.
	assert.False(t, a.IsAccurate(fix, location.DefaultAccuracyThreshold))

	history := a.History()
	require.Len(t, history, 1)
	assert.Equal(t, 3.0, history[0].Fix.Latitude)
}

func TestAcquirer_NilProviderReportsNotSupported(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	a, _ := newTestAcquirer(nil, nil, nil, now)

	// Act
	_, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.ErrorIs(t, err, location.ErrNotSupported)
	assert.ErrorIs(t, a.Watch(context.Background(), location.PositionOptions{}), location.ErrNotSupported)
}

func TestAcquirer_NotSupportedIsTerminal(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{script: []positionResult{
		{err: location.ErrNotSupported},
	}}
	a, _ := newTestAcquirer(provider, nil, nil, now)

	// Act
	_, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.ErrorIs(t, err, location.ErrNotSupported)
	assert.Len(t, provider.requests, 1)
	assert.Equal(t, location.ErrNotSupported.Error(), a.State().LastError)
}

func TestAcquirer_FallsBackToFreshCache(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{} // every request times out
	network := &fakeNetwork{fix: location.Fix{Latitude: 50, Longitude: 50}}
	store := &fakeStore{fix: location.Fix{Latitude: 28.61, Longitude: 77.20, Timestamp: now.Add(-2 * time.Hour)}}
	a, _ := newTestAcquirer(provider, network, store, now)

	// Act
	fix, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 28.61, fix.Latitude)
	assert.Equal(t, float64(location.CacheFallbackAccuracyMeters), fix.Accuracy)

	// The cache answered first, the network was never asked.
	assert.Zero(t, network.called)

	// Fallback results stay out of the history and the durable cache.
	assert.Empty(t, a.History())
	assert.Empty(t, store.saved)
}

func TestAcquirer_StaleCacheFallsThroughToNetwork(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{}
	network := &fakeNetwork{fix: location.Fix{Latitude: 28.60, Longitude: 77.21, Timestamp: now}}
	store := &fakeStore{fix: location.Fix{Latitude: 1, Longitude: 1, Timestamp: now.Add(-25 * time.Hour)}}
	a, _ := newTestAcquirer(provider, network, store, now)

	// Act
	fix, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 28.60, fix.Latitude)
	assert.Equal(t, float64(location.NetworkAccuracyMeters), fix.Accuracy)
	assert.Equal(t, 1, network.called)
}

func TestAcquirer_ReturnsOriginalErrorWhenAllFallbacksFail(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	deviceErr := errors.New("position unavailable")
	provider := &fakeProvider{script: []positionResult{
		{err: deviceErr}, {err: deviceErr}, {err: deviceErr},
	}}
	network := &fakeNetwork{err: errors.New("endpoint unreachable")}
	store := &fakeStore{err: location.ErrNoLastKnown}
	a, _ := newTestAcquirer(provider, network, store, now)

	// Act
	_, err := a.Acquire(context.Background(), location.DefaultAcquireOptions())

	// Assert
	require.ErrorIs(t, err, deviceErr)
	assert.Equal(t, deviceErr.Error(), a.State().LastError)
}

func TestAcquirer_NetworkFallbackCanBeDisabled(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{}
	network := &fakeNetwork{fix: location.Fix{Latitude: 5, Longitude: 5}}
	a, _ := newTestAcquirer(provider, network, nil, now)

	opts := location.DefaultAcquireOptions()
	opts.NetworkFallback = false

	// Act
	_, err := a.Acquire(context.Background(), opts)

	// Assert
	require.Error(t, err)
	assert.Zero(t, network.called)
}

func TestAcquirer_HistoryIsBoundedNewestFirst(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	a, _ := newTestAcquirer(&fakeProvider{}, nil, nil, now)

	// Act
	for i := 0; i < location.HistoryCapacity+5; i++ {
		a.accept(context.Background(), location.Fix{Latitude: float64(i), Timestamp: now})
	}

	// Assert
	history := a.History()
	require.Len(t, history, location.HistoryCapacity)
	assert.Equal(t, float64(location.HistoryCapacity+4), history[0].Fix.Latitude)
	assert.Equal(t, float64(5), history[len(history)-1].Fix.Latitude)
}

func TestAcquirer_LastKnownPrefersMemoryThenCache(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	store := &fakeStore{fix: location.Fix{Latitude: 9, Longitude: 9, Timestamp: now.Add(-time.Hour)}}
	a, _ := newTestAcquirer(&fakeProvider{}, nil, store, now)

	// Cold start: only the durable cache can answer.
	fix, err := a.LastKnown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9.0, fix.Latitude)

	// After an accepted fix, memory wins.
	a.accept(context.Background(), location.Fix{Latitude: 3, Longitude: 3, Timestamp: now})

	fix, err = a.LastKnown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3.0, fix.Latitude)
}

func TestAcquirer_StopWatchingWithoutWatch(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	a, _ := newTestAcquirer(&fakeProvider{}, nil, nil, now)

	// Act
	err := a.StopWatching()

	// Assert
	assert.ErrorIs(t, err, location.ErrNoWatch)
}

func TestReportedProvider_PublishWakesPendingRequest(t *testing.T) {
	t.Parallel()

	provider := NewReportedProvider()

	type result struct {
		fix location.Fix
		err error
	}
	got := make(chan result, 1)

	go func() {
		fix, err := provider.CurrentPosition(context.Background(), location.PositionOptions{Timeout: 5 * time.Second})
		got <- result{fix, err}
	}()

	// Give the request a moment to register before publishing.
	time.Sleep(50 * time.Millisecond)
	provider.Publish(location.Fix{Latitude: 28.6139, Longitude: 77.2090, Accuracy: 25})

	select {
	case r := <-got:
		require.NoError(t, r.err)
		assert.Equal(t, 28.6139, r.fix.Latitude)
	case <-time.After(2 * time.Second):
		t.Fatal("CurrentPosition never returned")
	}
}

func TestReportedProvider_MaxAgeServesRecentFix(t *testing.T) {
	t.Parallel()

	provider := NewReportedProvider()
	provider.Publish(location.Fix{Latitude: 19.0760, Longitude: 72.8777, Accuracy: 30})

	// Act
	fix, err := provider.CurrentPosition(context.Background(), location.PositionOptions{
		Timeout: time.Second,
		MaxAge:  time.Minute,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 19.0760, fix.Latitude)
}

func TestReportedProvider_TimesOutWithoutFix(t *testing.T) {
	t.Parallel()

	provider := NewReportedProvider()

	// Act
	_, err := provider.CurrentPosition(context.Background(), location.PositionOptions{Timeout: 50 * time.Millisecond})

	// Assert
	assert.ErrorIs(t, err, location.ErrTimeout)
}

// pushProvider exposes the watch channel so tests can feed fixes directly.
type pushProvider struct {
	fakeProvider
	updates chan location.Fix
}

func (p *pushProvider) WatchPosition(_ context.Context, _ location.PositionOptions) (<-chan location.Fix, func(), error) {
	return p.updates, func() { close(p.updates) }, nil
}

func TestAcquirer_WatchRecordsUpdates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	provider := &pushProvider{updates: make(chan location.Fix)}
	store := &fakeStore{err: location.ErrNoLastKnown}
	a, _ := newTestAcquirer(provider, nil, store, now)

	// Act
	require.NoError(t, a.Watch(context.Background(), location.PositionOptions{
		HighAccuracy: true,
		Timeout:      15 * time.Second,
	}))
	provider.updates <- location.Fix{Latitude: 28.6139, Longitude: 77.2090, Accuracy: 20, Timestamp: now}
	provider.updates <- location.Fix{Latitude: 28.6140, Longitude: 77.2091, Accuracy: 18, Timestamp: now.Add(time.Minute)}
	require.NoError(t, a.StopWatching())

	// Assert
	history := a.History()
	require.Len(t, history, 2)
	assert.Equal(t, 28.6140, history[0].Fix.Latitude)

	last, err := a.LastKnown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 28.6140, last.Latitude)
	assert.Len(t, store.saved, 2)

	// Stopping again reports that no watch is active.
	assert.ErrorIs(t, a.StopWatching(), location.ErrNoWatch)
}
