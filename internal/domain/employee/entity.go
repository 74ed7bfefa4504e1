package employee

import (
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

// Employee roles
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
	RoleHR       = "HR"
)

// Employee statuses
const (
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusOnLeave    = "ON_LEAVE"
	StatusTerminated = "TERMINATED"
)

// WorkingHours is an employee's scheduled shift window.
type WorkingHours struct {
	Start string `json:"start"` // 15:04
	End   string `json:"end"`
}

// Employee is a company staff member with a geofenced work schedule.
type Employee struct {
	ID                  string
	Code                string // e.g. TRJ001
	Name                string
	Email               string
	Password            string
	Phone               string
	Department          string
	Role                string
	Status              string
	JoinDate            string // 2006-01-02
	WorkingHours        WorkingHours
	GracePeriodMinutes  int
	AuthorizedLocations []location.AuthorizedLocation
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Active reports whether the employee may clock in.
func (e *Employee) Active() bool {
	return e.Status == StatusActive
}
