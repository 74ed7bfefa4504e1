package employee

import (
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
	"github.com/trijoshh/attendance-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Code                string                        `json:"code"`
	Name                string                        `json:"name"`
	Email               string                        `json:"email"`
	Password            string                        `json:"password"`
	Phone               string                        `json:"phone,omitempty"`
	Department          string                        `json:"department"`
	Role                string                        `json:"role"`
	JoinDate            string                        `json:"join_date,omitempty"`
	WorkingHours        WorkingHours                  `json:"working_hours"`
	GracePeriodMinutes  int                           `json:"grace_period_minutes,omitempty"`
	AuthorizedLocations []location.AuthorizedLocation `json:"authorized_locations,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must look like TRJ001",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number is not valid",
		})
	}

	if !validator.IsInSlice(r.Role, []string{RoleAdmin, RoleEmployee, RoleManager, RoleHR}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is not a known role",
		})
	}

	if r.JoinDate != "" && !validator.IsValidDate(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.WorkingHours.Start) || !validator.IsValidClockTime(r.WorkingHours.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours",
			Message: "working hours must be in HH:MM format",
		})
	}

	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace period cannot be negative",
		})
	}

	for _, loc := range r.AuthorizedLocations {
		if !validator.IsValidLatitude(loc.Latitude) || !validator.IsValidLongitude(loc.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "authorized_locations",
				Message: "authorized location coordinates are out of range",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID                  string                         `json:"-"`
	Name                *string                        `json:"name,omitempty"`
	Email               *string                        `json:"email,omitempty"`
	Password            *string                        `json:"password,omitempty"`
	Phone               *string                        `json:"phone,omitempty"`
	Department          *string                        `json:"department,omitempty"`
	Role                *string                        `json:"role,omitempty"`
	Status              *string                        `json:"status,omitempty"`
	WorkingHours        *WorkingHours                  `json:"working_hours,omitempty"`
	GracePeriodMinutes  *int                           `json:"grace_period_minutes,omitempty"`
	AuthorizedLocations *[]location.AuthorizedLocation `json:"authorized_locations,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number is not valid",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{RoleAdmin, RoleEmployee, RoleManager, RoleHR}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is not a known role",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{StatusActive, StatusInactive, StatusOnLeave, StatusTerminated}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a known status",
		})
	}

	if r.WorkingHours != nil {
		if !validator.IsValidClockTime(r.WorkingHours.Start) || !validator.IsValidClockTime(r.WorkingHours.End) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_hours",
				Message: "working hours must be in HH:MM format",
			})
		}
	}

	if r.GracePeriodMinutes != nil && *r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace period cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID                  string                        `json:"id"`
	Code                string                        `json:"code"`
	Name                string                        `json:"name"`
	Email               string                        `json:"email"`
	Phone               string                        `json:"phone,omitempty"`
	Department          string                        `json:"department"`
	Role                string                        `json:"role"`
	Status              string                        `json:"status"`
	JoinDate            string                        `json:"join_date,omitempty"`
	WorkingHours        WorkingHours                  `json:"working_hours"`
	GracePeriodMinutes  int                           `json:"grace_period_minutes"`
	AuthorizedLocations []location.AuthorizedLocation `json:"authorized_locations,omitempty"`
}

type ListResponse struct {
	Employees []Response `json:"employees"`
	Total     int64      `json:"total"`
}
