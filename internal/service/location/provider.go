package location

import (
	"context"
	"sync"
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

// ReportedProvider is a pull/push bridge over client-reported positions.
// Devices publish fixes; CurrentPosition waits for the next one (or returns a
// fresh enough earlier one when MaxAge allows), and WatchPosition streams them.
type ReportedProvider struct {
	now func() time.Time

	mu       sync.Mutex
	latest   *location.Fix
	latestAt time.Time
	waiters  map[chan location.Fix]struct{}
}

// NewReportedProvider creates an empty provider. It satisfies
// location.Provider and never reports ErrNotSupported.
func NewReportedProvider() *ReportedProvider {
	return &ReportedProvider{
		now:     time.Now,
		waiters: make(map[chan location.Fix]struct{}),
	}
}

// Publish records a device-reported fix and wakes every pending request and
// watch subscription.
func (p *ReportedProvider) Publish(fix location.Fix) {
	if fix.Timestamp.IsZero() {
		fix.Timestamp = p.now()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	stored := fix
	p.latest = &stored
	p.latestAt = p.now()

	for ch := range p.waiters {
		select {
		case ch <- fix:
		default:
		}
	}
}

func (p *ReportedProvider) CurrentPosition(ctx context.Context, opts location.PositionOptions) (location.Fix, error) {
	p.mu.Lock()
	if opts.MaxAge > 0 && p.latest != nil && p.now().Sub(p.latestAt) <= opts.MaxAge {
		fix := *p.latest
		p.mu.Unlock()
		return fix, nil
	}

	ch := make(chan location.Fix, 1)
	p.waiters[ch] = struct{}{}
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		delete(p.waiters, ch)
		p.mu.Unlock()
	}()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case fix := <-ch:
		return fix, nil
	case <-timer.C:
		return location.Fix{}, location.ErrTimeout
	case <-ctx.Done():
		return location.Fix{}, ctx.Err()
	}
}

func (p *ReportedProvider) WatchPosition(ctx context.Context, opts location.PositionOptions) (<-chan location.Fix, func(), error) {
	source := make(chan location.Fix, 8)
	out := make(chan location.Fix)

	p.mu.Lock()
	p.waiters[source] = struct{}{}
	p.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.waiters, source)
			p.mu.Unlock()
			close(done)
		})
	}

	go func() {
		defer close(out)
		for {
			select {
			case fix := <-source:
				select {
				case out <- fix:
				case <-done:
					return
				case <-ctx.Done():
					return
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel, nil
}
