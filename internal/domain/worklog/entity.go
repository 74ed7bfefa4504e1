package worklog

import "time"

// Work log priorities
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Entry is one logged unit of work for a day.
type Entry struct {
	ID              string
	EmployeeID      string
	Date            string // 2006-01-02
	TaskDescription string
	HoursSpent      float64
	Project         *string
	Priority        string
	IsCompleted     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
