package attendance

import "context"

// Repository defines data access for attendance records.
type Repository interface {
	// Create stores a new attendance record.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByID retrieves a record or ErrAttendanceNotFound.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetOpenByEmployeeAndDate retrieves the employee's open record for the
	// given date, or ErrAttendanceNotFound. Used to prevent double clock-in.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID, date string) (Attendance, error)

	// Update replaces an existing record.
	Update(ctx context.Context, record Attendance) error

	// List retrieves records matching the filter, newest first, with the
	// total count before pagination.
	List(ctx context.Context, filter Filter) ([]Attendance, int64, error)

	// ListOpenBefore retrieves every open record dated strictly before the
	// given date. Feeds the stale-shift auto-close job.
	ListOpenBefore(ctx context.Context, date string) ([]Attendance, error)
}
