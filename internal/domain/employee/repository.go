package employee

import "context"

// Repository defines data access for employees.
type Repository interface {
	// Create stores a new employee.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves an employee by code or ErrEmployeeNotFound.
	GetByCode(ctx context.Context, code string) (Employee, error)

	// GetByEmail retrieves an employee by email or ErrEmployeeNotFound.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// Update replaces an existing employee.
	Update(ctx context.Context, emp Employee) error

	// List retrieves employees, optionally filtered by department and status.
	List(ctx context.Context, department, status string) ([]Employee, int64, error)
}
