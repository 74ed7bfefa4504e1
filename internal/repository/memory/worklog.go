package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
)

// WorklogRepository is an in-memory work log store.
type WorklogRepository struct {
	mu      sync.RWMutex
	entries map[string]worklog.Entry
}

func NewWorklogRepository() *WorklogRepository {
	return &WorklogRepository{entries: make(map[string]worklog.Entry)}
}

func (r *WorklogRepository) Create(_ context.Context, entry worklog.Entry) (worklog.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *WorklogRepository) GetByID(_ context.Context, id string) (worklog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return worklog.Entry{}, worklog.ErrEntryNotFound
	}
	return entry, nil
}

func (r *WorklogRepository) Update(_ context.Context, entry worklog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return worklog.ErrEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *WorklogRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return worklog.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *WorklogRepository) List(_ context.Context, filter worklog.Filter) ([]worklog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []worklog.Entry
	for _, entry := range r.entries {
		if filter.EmployeeID != "" && entry.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Date != "" && entry.Date != filter.Date {
			continue
		}
		if filter.DateFrom != "" && entry.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && entry.Date > filter.DateTo {
			continue
		}
		if filter.Project != "" && (entry.Project == nil || *entry.Project != filter.Project) {
			continue
		}
		if filter.Completed != nil && entry.IsCompleted != *filter.Completed {
			continue
		}
		matched = append(matched, entry)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}
