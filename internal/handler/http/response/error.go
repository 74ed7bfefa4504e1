package response

import (
	"errors"
	"net/http"

	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
	"github.com/trijoshh/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejections carry their own reason
	var rejected *attendance.LocationRejectedError
	if errors.As(err, &rejected) {
		BadRequest(w, rejected.Reason, nil)
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Not clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Attendance record is already closed")
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out time cannot be before clock-in time", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is not active")
	case errors.Is(err, employee.ErrCodeAlreadyUsed):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailAlreadyUsed):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidCredentials):
		Unauthorized(w, "Invalid employee code or password")

	// Work log domain errors
	case errors.Is(err, worklog.ErrEntryNotFound):
		NotFound(w, "Work log entry not found")

	// Registration domain errors
	case errors.Is(err, registration.ErrRegistrationNotFound):
		NotFound(w, "No pending registration for this email")
	case errors.Is(err, registration.ErrAlreadyPending):
		Conflict(w, "A registration is already pending for this email")
	case errors.Is(err, registration.ErrCodeExpired):
		BadRequest(w, "Verification code has expired", nil)
	case errors.Is(err, registration.ErrCodeMismatch):
		BadRequest(w, "Verification code does not match", nil)
	case errors.Is(err, registration.ErrTooManyAttempts):
		BadRequest(w, "Too many failed verification attempts", nil)

	// Location pipeline errors
	case errors.Is(err, location.ErrNotSupported):
		ServiceUnavailable(w, "Location capability is not available")
	case errors.Is(err, location.ErrTimeout):
		BadRequest(w, "Timed out waiting for a position", nil)
	case errors.Is(err, location.ErrNoLastKnown):
		NotFound(w, "No recent location available")
	case errors.Is(err, location.ErrNoWatch):
		Conflict(w, "No active location watch")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
