package worklog

import "context"

// Repository defines data access for work log entries.
type Repository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	Update(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]Entry, error)
}
