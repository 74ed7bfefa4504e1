package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/report"
	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
)

type service struct {
	attendances attendance.Repository
	employees   employee.Repository
	worklogs    worklog.Repository
	logger      *slog.Logger
}

// NewService creates the reporting service.
func NewService(attendances attendance.Repository, employees employee.Repository, worklogs worklog.Repository, logger *slog.Logger) report.Service {
	return &service{
		attendances: attendances,
		employees:   employees,
		worklogs:    worklogs,
		logger:      logger,
	}
}

func (s *service) DashboardStats(ctx context.Context, date string) (report.DashboardStats, error) {
	_, total, err := s.employees.List(ctx, "", employee.StatusActive)
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("list active employees: %w", err)
	}

	records, _, err := s.attendances.List(ctx, attendance.Filter{Date: date})
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("list attendance for %s: %w", date, err)
	}

	stats := report.DashboardStats{
		Date:           date,
		TotalEmployees: int(total),
	}

	var closedHours float64
	var closedCount int
	seen := make(map[string]struct{})
	for _, record := range records {
		seen[record.EmployeeID] = struct{}{}
		switch record.Status {
		case attendance.StatusLate:
			stats.LateToday++
		case attendance.StatusPresent:
			stats.PresentToday++
		}
		if record.Open() {
			stats.OpenShifts++
		} else if record.WorkingHours != nil {
			closedHours += *record.WorkingHours
			closedCount++
		}
	}

	stats.AbsentToday = stats.TotalEmployees - len(seen)
	if stats.AbsentToday < 0 {
		stats.AbsentToday = 0
	}
	if closedCount > 0 {
		stats.AverageWorkingHours = closedHours / float64(closedCount)
	}

	entries, err := s.worklogs.List(ctx, worklog.Filter{Date: date})
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("list work logs for %s: %w", date, err)
	}
	stats.TasksLoggedToday = len(entries)

	pending := false
	open, err := s.worklogs.List(ctx, worklog.Filter{Completed: &pending})
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("list pending tasks: %w", err)
	}
	stats.PendingTasks = len(open)

	return stats, nil
}

var csvHeader = []string{
	"record_id", "employee_id", "employee_name", "date",
	"clock_in", "clock_out", "status", "working_hours", "late_minutes", "notes",
}

func (s *service) ExportAttendanceCSV(ctx context.Context, req report.ExportRequest, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	records, _, err := s.attendances.List(ctx, attendance.Filter{
		EmployeeID: req.EmployeeID,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
	})
	if err != nil {
		return fmt.Errorf("list attendance for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			record.EmployeeID,
			record.EmployeeName,
			record.Date,
			record.ClockInTime,
			stringOrEmpty(record.ClockOutTime),
			record.Status,
			floatOrEmpty(record.WorkingHours),
			intOrEmpty(record.LateMinutes),
			stringOrEmpty(record.Notes),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.logger.Info("attendance exported",
		"rows", len(records), "from", req.DateFrom, "to", req.DateTo)
	return nil
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
