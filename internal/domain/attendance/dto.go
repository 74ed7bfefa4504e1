package attendance

import (
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
	"github.com/trijoshh/attendance-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string       `json:"employee_id"`
	Fix        location.Fix `json:"fix"`
	Notes      *string      `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Fix.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "fix.latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Fix.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "fix.longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Fix.Accuracy < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fix.accuracy",
			Message: "accuracy cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID string       `json:"employee_id"`
	Fix        location.Fix `json:"fix"`
	Notes      *string      `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Fix.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "fix.latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Fix.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "fix.longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Fix.Accuracy < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fix.accuracy",
			Message: "accuracy cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows an attendance listing. Zero values mean "any".
type Filter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Date       string `json:"date,omitempty"`     // 2006-01-02
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
	Status     string `json:"status,omitempty"`
	Page       int    `json:"page,omitempty"`
	PageSize   int    `json:"page_size,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	for _, field := range []struct {
		name  string
		value string
	}{
		{"date", f.Date},
		{"date_from", f.DateFrom},
		{"date_to", f.DateTo},
	} {
		if field.value != "" && !validator.IsValidDate(field.value) {
			errs = append(errs, validator.ValidationError{
				Field:   field.name,
				Message: field.name + " must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusLeave}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a known attendance status",
		})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page cannot be negative",
		})
	}

	if f.PageSize < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page_size",
			Message: "page_size cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID               string        `json:"id"`
	EmployeeID       string        `json:"employee_id"`
	EmployeeName     string        `json:"employee_name"`
	Date             string        `json:"date"`
	ClockInTime      string        `json:"clock_in_time"`
	ClockOutTime     *string       `json:"clock_out_time,omitempty"`
	ClockInLocation  *location.Fix `json:"clock_in_location,omitempty"`
	ClockOutLocation *location.Fix `json:"clock_out_location,omitempty"`
	Status           string        `json:"status"`
	WorkingHours     *float64      `json:"working_hours,omitempty"`
	LateMinutes      *int          `json:"late_minutes,omitempty"`
	Notes            *string       `json:"notes,omitempty"`
}

type ListResponse struct {
	Records  []Response `json:"records"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}
