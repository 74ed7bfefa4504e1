package attendance

import "context"

// Service defines business logic for attendance operations.
type Service interface {
	// ClockIn opens today's attendance record after the geofence check.
	ClockIn(ctx context.Context, req ClockInRequest) (Response, error)

	// ClockOut closes today's open record after the geofence check.
	ClockOut(ctx context.Context, req ClockOutRequest) (Response, error)

	// GetAttendance retrieves a single record by ID.
	GetAttendance(ctx context.Context, id string) (Response, error)

	// ListAttendance retrieves records with filters and pagination.
	ListAttendance(ctx context.Context, filter Filter) (ListResponse, error)

	// GetTodayStatus reports the employee's open record for today, if any.
	GetTodayStatus(ctx context.Context, employeeID string) (*Response, error)
}
