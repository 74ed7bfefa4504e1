package attendance

import (
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

// Attendance statuses
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
	StatusLeave   = "LEAVE"
)

// Attendance is one employee shift record. A record with no clock-out time is
// open; clocking out closes it permanently.
type Attendance struct {
	ID               string
	EmployeeID       string
	EmployeeName     string
	Date             string // 2006-01-02
	ClockInTime      string // 15:04:05
	ClockOutTime     *string
	ClockInLocation  *location.Fix
	ClockOutLocation *location.Fix
	Status           string
	WorkingHours     *float64
	LateMinutes      *int
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Open reports whether the shift is still running.
func (a *Attendance) Open() bool {
	return a.ClockOutTime == nil
}
