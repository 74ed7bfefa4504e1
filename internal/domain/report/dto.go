package report

import "github.com/trijoshh/attendance-backend-go/internal/pkg/validator"

// DashboardStats is the admin dashboard summary for one day.
type DashboardStats struct {
	Date                string  `json:"date"`
	TotalEmployees      int     `json:"total_employees"`
	PresentToday        int     `json:"present_today"`
	LateToday           int     `json:"late_today"`
	AbsentToday         int     `json:"absent_today"`
	AverageWorkingHours float64 `json:"average_working_hours"`
	OpenShifts          int     `json:"open_shifts"`
	TasksLoggedToday    int     `json:"tasks_logged_today"`
	PendingTasks        int     `json:"pending_tasks"`
}

// ExportRequest selects the attendance rows to export.
type ExportRequest struct {
	EmployeeID string `json:"employee_id,omitempty"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.DateFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidDate(r.DateTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be in YYYY-MM-DD format",
		})
	}

	// Lexicographic compare is safe for YYYY-MM-DD.
	if validator.IsValidDate(r.DateFrom) && validator.IsValidDate(r.DateTo) && r.DateFrom > r.DateTo {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not be before date_from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
