package worklog

import "context"

// Service defines business logic for work logging.
type Service interface {
	// LogWork records a new work log entry.
	LogWork(ctx context.Context, req CreateRequest) (Response, error)

	// GetEntry retrieves a single entry by ID.
	GetEntry(ctx context.Context, id string) (Response, error)

	// UpdateEntry applies a partial edit, including marking the task complete.
	UpdateEntry(ctx context.Context, id string, req UpdateRequest) (Response, error)

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, id string) error

	// ListEntries retrieves entries with their combined hours.
	ListEntries(ctx context.Context, filter Filter) (ListResponse, error)
}
