package attendance

import (
	"errors"
	"fmt"
)

// Attendance errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyClockedIn   = errors.New("employee already has an open attendance record for today")
	ErrNotClockedIn       = errors.New("employee has no open attendance record for today")
	ErrAlreadyClockedOut  = errors.New("attendance record is already closed")
	ErrClockOutBeforeIn   = errors.New("clock-out time cannot be before clock-in time")
)

// LocationRejectedError means the reported position failed the geofence or
// accuracy check. The reason is safe to show to the employee.
type LocationRejectedError struct {
	Reason string
}

func (e *LocationRejectedError) Error() string {
	return fmt.Sprintf("location rejected: %s", e.Reason)
}
