package employee

import "context"

// Service defines business logic for the employee directory.
type Service interface {
	// CreateEmployee registers a new employee.
	CreateEmployee(ctx context.Context, req CreateRequest) (Response, error)

	// GetEmployee retrieves an employee by ID.
	GetEmployee(ctx context.Context, id string) (Response, error)

	// GetEmployeeByCode retrieves an employee by code.
	GetEmployeeByCode(ctx context.Context, code string) (Response, error)

	// UpdateEmployee applies a partial update.
	UpdateEmployee(ctx context.Context, req UpdateRequest) (Response, error)

	// DeactivateEmployee marks an employee terminated. Records are kept.
	DeactivateEmployee(ctx context.Context, id string) error

	// ListEmployees retrieves employees, optionally filtered.
	ListEmployees(ctx context.Context, department, status string) (ListResponse, error)

	// Login checks an employee code and password pair.
	Login(ctx context.Context, req LoginRequest) (Response, error)
}
