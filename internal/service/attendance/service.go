package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

type service struct {
	repo      attendance.Repository
	employees employee.Repository
	validator location.Validator
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates the attendance service.
func NewService(repo attendance.Repository, employees employee.Repository, validator location.Validator, logger *slog.Logger) attendance.Service {
	return &service{
		repo:      repo,
		employees: employees,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Response{}, err
	}
	if !emp.Active() {
		return attendance.Response{}, employee.ErrEmployeeInactive
	}

	decision := s.validator.Validate(req.Fix, emp.AuthorizedLocations, location.DefaultAccuracyThreshold)
	if !decision.Accepted {
		s.logger.Info("clock-in rejected by geofence",
			"employee_id", emp.ID, "reason", decision.Reason)
		return attendance.Response{}, &attendance.LocationRejectedError{Reason: decision.Reason}
	}

	now := s.now()
	date := now.Format(dateLayout)

	_, err = s.repo.GetOpenByEmployeeAndDate(ctx, emp.ID, date)
	if err == nil {
		return attendance.Response{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Response{}, fmt.Errorf("check open attendance: %w", err)
	}

	status := attendance.StatusPresent
	var lateMinutes *int
	if minutes := minutesLate(now, emp.WorkingHours.Start, emp.GracePeriodMinutes); minutes > 0 {
		status = attendance.StatusLate
		lateMinutes = &minutes
	}

	fix := req.Fix
	if fix.Timestamp.IsZero() {
		fix.Timestamp = now
	}

	record := attendance.Attendance{
		ID:              now.UTC().Format(time.RFC3339Nano),
		EmployeeID:      emp.ID,
		EmployeeName:    emp.Name,
		Date:            date,
		ClockInTime:     now.Format(clockLayout),
		ClockInLocation: &fix,
		Status:          status,
		LateMinutes:     lateMinutes,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("create attendance record: %w", err)
	}

	s.logger.Info("employee clocked in",
		"employee_id", emp.ID, "date", date, "status", status)
	return mapToResponse(created), nil
}

func (s *service) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Response{}, err
	}

	decision := s.validator.Validate(req.Fix, emp.AuthorizedLocations, location.DefaultAccuracyThreshold)
	if !decision.Accepted {
		s.logger.Info("clock-out rejected by geofence",
			"employee_id", emp.ID, "reason", decision.Reason)
		return attendance.Response{}, &attendance.LocationRejectedError{Reason: decision.Reason}
	}

	now := s.now()
	date := now.Format(dateLayout)

	record, err := s.repo.GetOpenByEmployeeAndDate(ctx, emp.ID, date)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		// No open shift. A closed record for the day means they already
		// clocked out; none at all means they never clocked in.
		closed, _, listErr := s.repo.List(ctx, attendance.Filter{EmployeeID: emp.ID, Date: date})
		if listErr == nil && len(closed) > 0 {
			return attendance.Response{}, attendance.ErrAlreadyClockedOut
		}
		return attendance.Response{}, attendance.ErrNotClockedIn
	}
	if err != nil {
		return attendance.Response{}, fmt.Errorf("find open attendance: %w", err)
	}

	clockOut := now.Format(clockLayout)
	if clockOut < record.ClockInTime {
		return attendance.Response{}, attendance.ErrClockOutBeforeIn
	}

	fix := req.Fix
	if fix.Timestamp.IsZero() {
		fix.Timestamp = now
	}

	hours := workedHours(record.ClockInTime, clockOut)
	record.ClockOutTime = &clockOut
	record.ClockOutLocation = &fix
	record.WorkingHours = &hours
	record.UpdatedAt = now
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return attendance.Response{}, fmt.Errorf("close attendance record: %w", err)
	}

	s.logger.Info("employee clocked out",
		"employee_id", emp.ID, "date", date, "working_hours", hours)
	return mapToResponse(record), nil
}

func (s *service) GetAttendance(ctx context.Context, id string) (attendance.Response, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return attendance.Response{}, err
	}
	return mapToResponse(record), nil
}

func (s *service) ListAttendance(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("list attendance: %w", err)
	}

	resp := attendance.ListResponse{
		Records:  make([]attendance.Response, 0, len(records)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for _, record := range records {
		resp.Records = append(resp.Records, mapToResponse(record))
	}
	return resp, nil
}

func (s *service) GetTodayStatus(ctx context.Context, employeeID string) (*attendance.Response, error) {
	date := s.now().Format(dateLayout)

	record, err := s.repo.GetOpenByEmployeeAndDate(ctx, employeeID, date)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find open attendance: %w", err)
	}

	resp := mapToResponse(record)
	return &resp, nil
}

// minutesLate returns how many minutes past the scheduled start the employee
// arrived, or 0 when within the grace period. A missing schedule never counts
// as late.
func minutesLate(now time.Time, scheduledStart string, graceMinutes int) int {
	start, err := parseClock(scheduledStart)
	if err != nil {
		return 0
	}

	arrival := now.Hour()*60 + now.Minute()
	scheduled := start.Hour()*60 + start.Minute()

	late := arrival - scheduled
	if late <= graceMinutes {
		return 0
	}
	return late
}

// workedHours computes the shift length in hours, rounded to two decimals.
func workedHours(clockIn, clockOut string) float64 {
	in, errIn := parseClock(clockIn)
	out, errOut := parseClock(clockOut)
	if errIn != nil || errOut != nil {
		return 0
	}

	minutes := (out.Hour()*60 + out.Minute()) - (in.Hour()*60 + in.Minute())
	if minutes < 0 {
		return 0
	}
	return math.Round(float64(minutes)/60*100) / 100
}

func parseClock(value string) (time.Time, error) {
	if t, err := time.Parse(clockLayout, value); err == nil {
		return t, nil
	}
	return time.Parse("15:04", value)
}

func mapToResponse(record attendance.Attendance) attendance.Response {
	return attendance.Response{
		ID:               record.ID,
		EmployeeID:       record.EmployeeID,
		EmployeeName:     record.EmployeeName,
		Date:             record.Date,
		ClockInTime:      record.ClockInTime,
		ClockOutTime:     record.ClockOutTime,
		ClockInLocation:  record.ClockInLocation,
		ClockOutLocation: record.ClockOutLocation,
		Status:           record.Status,
		WorkingHours:     record.WorkingHours,
		LateMinutes:      record.LateMinutes,
		Notes:            record.Notes,
	}
}
