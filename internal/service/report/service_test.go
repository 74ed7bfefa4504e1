package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/report"
	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
	"github.com/trijoshh/attendance-backend-go/internal/repository/memory"
)

func seedData(t *testing.T) (*memory.AttendanceRepository, *memory.EmployeeRepository, *memory.WorklogRepository) {
	t.Helper()
	ctx := context.Background()

	employees := memory.NewEmployeeRepository()
	for i, name := range []string{"Rahul Sharma", "Priya Patel", "Amit Kumar"} {
		_, err := employees.Create(ctx, employee.Employee{
			ID:     string(rune('a' + i)),
			Code:   "TRJ00" + string(rune('1'+i)),
			Name:   name,
			Email:  name + "@trijoshh.com",
			Status: employee.StatusActive,
		})
		require.NoError(t, err)
	}

	attendances := memory.NewAttendanceRepository()
	closed := "18:00:00"
	eight := 8.0
	nine := 9.0
	records := []attendance.Attendance{
		{ID: "r1", EmployeeID: "a", EmployeeName: "Rahul Sharma", Date: "2025-06-02", ClockInTime: "09:00:00", ClockOutTime: &closed, WorkingHours: &nine, Status: attendance.StatusPresent},
		{ID: "r2", EmployeeID: "b", EmployeeName: "Priya Patel", Date: "2025-06-02", ClockInTime: "10:00:00", ClockOutTime: &closed, WorkingHours: &eight, Status: attendance.StatusLate},
		{ID: "r3", EmployeeID: "a", EmployeeName: "Rahul Sharma", Date: "2025-06-01", ClockInTime: "09:00:00", Status: attendance.StatusPresent},
	}
	for _, record := range records {
		_, err := attendances.Create(ctx, record)
		require.NoError(t, err)
	}

	worklogs := memory.NewWorklogRepository()
	_, err := worklogs.Create(ctx, worklog.Entry{
		ID: "w1", EmployeeID: "a", Date: "2025-06-02",
		TaskDescription: "sprint work", HoursSpent: 4, Priority: worklog.PriorityMedium,
	})
	require.NoError(t, err)
	_, err = worklogs.Create(ctx, worklog.Entry{
		ID: "w2", EmployeeID: "b", Date: "2025-06-01",
		TaskDescription: "quarterly review", HoursSpent: 2,
		Priority: worklog.PriorityLow, IsCompleted: true,
	})
	require.NoError(t, err)

	return attendances, employees, worklogs
}

func newTestService(t *testing.T) report.Service {
	t.Helper()

	attendances, employees, worklogs := seedData(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(attendances, employees, worklogs, logger)
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// Act
	stats, err := svc.DashboardStats(context.Background(), "2025-06-02")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, 1, stats.PresentToday)
	assert.Equal(t, 1, stats.LateToday)
	assert.Equal(t, 1, stats.AbsentToday)
	assert.InDelta(t, 8.5, stats.AverageWorkingHours, 0.001)
	assert.Equal(t, 0, stats.OpenShifts)
	assert.Equal(t, 1, stats.TasksLoggedToday)
	assert.Equal(t, 1, stats.PendingTasks)
}

func TestExportAttendanceCSV(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	var buf bytes.Buffer

	// Act
	err := svc.ExportAttendanceCSV(context.Background(), report.ExportRequest{
		DateFrom: "2025-06-01",
		DateTo:   "2025-06-02",
	}, &buf)

	// Assert
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 records

	assert.Equal(t, "record_id", rows[0][0])
	// Newest first.
	assert.Equal(t, "r2", rows[1][0])
	assert.Equal(t, "8.00", rows[1][7])
	assert.Equal(t, "r3", rows[3][0])
	assert.Equal(t, "", rows[3][5]) // still open, no clock-out
}

func TestExportAttendanceCSV_BadRange(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// Act
	err := svc.ExportAttendanceCSV(context.Background(), report.ExportRequest{
		DateFrom: "2025-06-02",
		DateTo:   "2025-06-01",
	}, io.Discard)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date_to")
}
