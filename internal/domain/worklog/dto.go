package worklog

import "github.com/trijoshh/attendance-backend-go/internal/pkg/validator"

type CreateRequest struct {
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	TaskDescription string  `json:"task_description"`
	HoursSpent      float64 `json:"hours_spent"`
	Project         *string `json:"project,omitempty"`
	Priority        string  `json:"priority"`
	IsCompleted     bool    `json:"is_completed"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.TaskDescription) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_description",
			Message: "task_description is required",
		})
	}

	if r.HoursSpent <= 0 || r.HoursSpent > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_spent",
			Message: "hours_spent must be between 0 and 24",
		})
	}

	if !validator.IsInSlice(r.Priority, []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority is not a known priority",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest carries a partial edit of an entry. Nil fields keep their
// current value.
type UpdateRequest struct {
	Date            *string  `json:"date,omitempty"`
	TaskDescription *string  `json:"task_description,omitempty"`
	HoursSpent      *float64 `json:"hours_spent,omitempty"`
	Project         *string  `json:"project,omitempty"`
	Priority        *string  `json:"priority,omitempty"`
	IsCompleted     *bool    `json:"is_completed,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil && !validator.IsValidDate(*r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.TaskDescription != nil && validator.IsEmpty(*r.TaskDescription) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_description",
			Message: "task_description cannot be empty",
		})
	}

	if r.HoursSpent != nil && (*r.HoursSpent <= 0 || *r.HoursSpent > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_spent",
			Message: "hours_spent must be between 0 and 24",
		})
	}

	if r.Priority != nil && !validator.IsInSlice(*r.Priority, []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority is not a known priority",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows a work log listing. Zero values mean "any"; a non-nil
// Completed selects only finished or only pending entries.
type Filter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Date       string `json:"date,omitempty"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
	Project    string `json:"project,omitempty"`
	Completed  *bool  `json:"completed,omitempty"`
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	TaskDescription string  `json:"task_description"`
	HoursSpent      float64 `json:"hours_spent"`
	Project         *string `json:"project,omitempty"`
	Priority        string  `json:"priority"`
	IsCompleted     bool    `json:"is_completed"`
}

type ListResponse struct {
	Entries    []Response `json:"entries"`
	TotalHours float64    `json:"total_hours"`
}
