package cron

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
)

// DefaultAutoCloseTime closes shifts of employees with no scheduled end.
const DefaultAutoCloseTime = "18:00"

const autoCloseNote = "Automatically clocked out: shift left open"

type AttendanceJobs struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	now            func() time.Time
}

func NewAttendanceJobs(attendanceRepo attendance.Repository, employeeRepo employee.Repository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_shifts", 1*time.Hour, j.AutoCloseStaleShifts)
}

// AutoCloseStaleShifts closes every open record from a previous day at the
// employee's scheduled end time. Records from today stay open.
func (j *AttendanceJobs) AutoCloseStaleShifts(ctx context.Context) error {
	today := j.now().Format("2006-01-02")

	stale, err := j.attendanceRepo.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("list stale open records: %w", err)
	}

	for _, record := range stale {
		closeAt := DefaultAutoCloseTime
		if emp, err := j.employeeRepo.GetByID(ctx, record.EmployeeID); err == nil && emp.WorkingHours.End != "" {
			closeAt = emp.WorkingHours.End
		}

		clockOut := closeAt
		if len(clockOut) == 5 {
			clockOut += ":00"
		}
		// A shift opened after its scheduled end closes where it started.
		if clockOut < record.ClockInTime {
			clockOut = record.ClockInTime
		}

		hours := shiftHours(record.ClockInTime, clockOut)
		note := autoCloseNote
		now := j.now()

		record.ClockOutTime = &clockOut
		record.WorkingHours = &hours
		record.Notes = &note
		record.UpdatedAt = now

		if err := j.attendanceRepo.Update(ctx, record); err != nil {
			return fmt.Errorf("auto-close record %s: %w", record.ID, err)
		}
	}

	return nil
}

func shiftHours(clockIn, clockOut string) float64 {
	in, errIn := time.Parse("15:04:05", clockIn)
	out, errOut := time.Parse("15:04:05", clockOut)
	if errIn != nil || errOut != nil {
		return 0
	}

	minutes := (out.Hour()*60 + out.Minute()) - (in.Hour()*60 + in.Minute())
	if minutes < 0 {
		return 0
	}
	return math.Round(float64(minutes)/60*100) / 100
}
