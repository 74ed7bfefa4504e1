package worklog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
	"github.com/trijoshh/attendance-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) worklog.Service {
	t.Helper()

	employees := memory.NewEmployeeRepository()
	_, err := employees.Create(context.Background(), employee.Employee{
		ID:     "emp-1",
		Code:   "TRJ001",
		Name:   "Rahul Sharma",
		Email:  "rahul.sharma@trijoshh.com",
		Status: employee.StatusActive,
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(memory.NewWorklogRepository(), employees, logger)
}

func TestLogWork(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// Act
	resp, err := svc.LogWork(context.Background(), worklog.CreateRequest{
		EmployeeID:      "emp-1",
		Date:            "2025-06-02",
		TaskDescription: "Reviewed geofence validation changes",
		HoursSpent:      2.5,
		Priority:        worklog.PriorityHigh,
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 2.5, resp.HoursSpent)
}

func TestLogWork_UnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// Act
	_, err := svc.LogWork(context.Background(), worklog.CreateRequest{
		EmployeeID:      "ghost",
		Date:            "2025-06-02",
		TaskDescription: "anything",
		HoursSpent:      1,
		Priority:        worklog.PriorityLow,
	})

	// Assert
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLogWork_RejectsBadHours(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// Act
	_, err := svc.LogWork(context.Background(), worklog.CreateRequest{
		EmployeeID:      "emp-1",
		Date:            "2025-06-02",
		TaskDescription: "time travel",
		HoursSpent:      30,
		Priority:        worklog.PriorityLow,
	})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hours_spent")
}

func TestListEntries_SumsHours(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	for _, hours := range []float64{2, 3.5, 1.25} {
		_, err := svc.LogWork(context.Background(), worklog.CreateRequest{
			EmployeeID:      "emp-1",
			Date:            "2025-06-02",
			TaskDescription: "task",
			HoursSpent:      hours,
			Priority:        worklog.PriorityMedium,
		})
		require.NoError(t, err)
	}

	// Act
	resp, err := svc.ListEntries(context.Background(), worklog.Filter{EmployeeID: "emp-1"})

	// Assert
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 3)
	assert.InDelta(t, 6.75, resp.TotalHours, 0.001)
}

func TestDeleteEntry(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	created, err := svc.LogWork(context.Background(), worklog.CreateRequest{
		EmployeeID:      "emp-1",
		Date:            "2025-06-02",
		TaskDescription: "short task",
		HoursSpent:      1,
		Priority:        worklog.PriorityLow,
	})
	require.NoError(t, err)

	// Act
	require.NoError(t, svc.DeleteEntry(context.Background(), created.ID))

	// Assert
	_, err = svc.GetEntry(context.Background(), created.ID)
	assert.ErrorIs(t, err, worklog.ErrEntryNotFound)
}

func TestUpdateEntry_MarksComplete(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	created, err := svc.LogWork(context.Background(), worklog.CreateRequest{
		EmployeeID:      "emp-1",
		Date:            "2025-06-02",
		TaskDescription: "draft report",
		HoursSpent:      2,
		Priority:        worklog.PriorityMedium,
	})
	require.NoError(t, err)
	require.False(t, created.IsCompleted)

	// Act
	completed := true
	hours := 3.0
	updated, err := svc.UpdateEntry(context.Background(), created.ID, worklog.UpdateRequest{
		IsCompleted: &completed,
		HoursSpent:  &hours,
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, 3.0, updated.HoursSpent)
	assert.Equal(t, "draft report", updated.TaskDescription)
}

func TestUpdateEntry_UnknownID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	completed := true

	// Act
	_, err := svc.UpdateEntry(context.Background(), "ghost", worklog.UpdateRequest{IsCompleted: &completed})

	// Assert
	assert.ErrorIs(t, err, worklog.ErrEntryNotFound)
}

func TestUpdateEntry_RejectsBadHours(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	bad := 30.0

	// Act
	_, err := svc.UpdateEntry(context.Background(), "any", worklog.UpdateRequest{HoursSpent: &bad})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hours_spent")
}

func TestListEntries_PendingOnly(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	for _, task := range []struct {
		desc string
		done bool
	}{
		{"finish onboarding deck", false},
		{"close sprint tickets", true},
		{"review geofence radii", false},
	} {
		_, err := svc.LogWork(context.Background(), worklog.CreateRequest{
			EmployeeID:      "emp-1",
			Date:            "2025-06-02",
			TaskDescription: task.desc,
			HoursSpent:      1,
			Priority:        worklog.PriorityMedium,
			IsCompleted:     task.done,
		})
		require.NoError(t, err)
	}

	pending := false

	// Act
	resp, err := svc.ListEntries(context.Background(), worklog.Filter{Completed: &pending})

	// Assert
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	for _, entry := range resp.Entries {
		assert.False(t, entry.IsCompleted)
	}
}
