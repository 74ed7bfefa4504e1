package memory

import (
	"context"
	"sync"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

// LastKnownStore keeps the most recent accepted fix in memory only.
type LastKnownStore struct {
	mu  sync.RWMutex
	fix *location.Fix
}

func NewLastKnownStore() *LastKnownStore {
	return &LastKnownStore{}
}

func (s *LastKnownStore) Save(_ context.Context, fix location.Fix) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fix = &fix
	return nil
}

func (s *LastKnownStore) Get(_ context.Context) (location.Fix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.fix == nil {
		return location.Fix{}, location.ErrNoLastKnown
	}
	return *s.fix, nil
}
