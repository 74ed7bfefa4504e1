package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
)

// RegistrationRepository is an in-memory pending-registration store.
type RegistrationRepository struct {
	mu      sync.RWMutex
	pending map[string]registration.Pending // keyed by ID
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{pending: make(map[string]registration.Pending)}
}

func (r *RegistrationRepository) Create(_ context.Context, p registration.Pending) (registration.Pending, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[p.ID] = p
	return p, nil
}

func (r *RegistrationRepository) GetByEmail(_ context.Context, email string) (registration.Pending, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pending {
		if strings.EqualFold(p.Employee.Email, email) {
			return p, nil
		}
	}
	return registration.Pending{}, registration.ErrRegistrationNotFound
}

func (r *RegistrationRepository) Update(_ context.Context, p registration.Pending) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[p.ID]; !ok {
		return registration.ErrRegistrationNotFound
	}
	r.pending[p.ID] = p
	return nil
}

func (r *RegistrationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[id]; !ok {
		return registration.ErrRegistrationNotFound
	}
	delete(r.pending, id)
	return nil
}
