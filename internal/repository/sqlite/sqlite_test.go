package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
	"github.com/trijoshh/attendance-backend-go/internal/pkg/database"
)

func TestSQLiteRepositories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	employees := NewEmployeeRepository(db)
	attendances := NewAttendanceRepository(db)
	worklogs := NewWorklogRepository(db)
	registrations := NewRegistrationRepository(db)
	lastKnown := NewLastKnownStore(db)

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("employee round trip", func(t *testing.T) {
		emp := employee.Employee{
			ID:         "emp-1",
			Code:       "TRJ001",
			Name:       "Rahul Sharma",
			Email:      "rahul.sharma@trijoshh.com",
			Password:   "password123",
			Department: "Engineering",
			Role:       employee.RoleEmployee,
			Status:     employee.StatusActive,
			WorkingHours: employee.WorkingHours{
				Start: "09:00", End: "18:00",
			},
			GracePeriodMinutes: 15,
			AuthorizedLocations: []location.AuthorizedLocation{
				{Name: "Delhi Office", Latitude: 28.6139, Longitude: 77.2090, RadiusMeters: 100},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		_, err := employees.Create(ctx, emp)
		require.NoError(t, err)

		got, err := employees.GetByCode(ctx, "trj001") // code lookup ignores case
		require.NoError(t, err)
		assert.Equal(t, emp.Name, got.Name)
		require.Len(t, got.AuthorizedLocations, 1)
		assert.Equal(t, 28.6139, got.AuthorizedLocations[0].Latitude)

		// Duplicate code is rejected by the unique index.
		dup := emp
		dup.ID = "emp-2"
		dup.Email = "other@trijoshh.com"
		_, err = employees.Create(ctx, dup)
		assert.ErrorIs(t, err, employee.ErrCodeAlreadyUsed)
	})

	t.Run("attendance open and close", func(t *testing.T) {
		record := attendance.Attendance{
			ID:           "rec-1",
			EmployeeID:   "emp-1",
			EmployeeName: "Rahul Sharma",
			Date:         "2025-06-02",
			ClockInTime:  "09:00:00",
			ClockInLocation: &location.Fix{
				Latitude: 28.6139, Longitude: 77.2090, Accuracy: 20, Timestamp: now,
			},
			Status:    attendance.StatusPresent,
			CreatedAt: now,
			UpdatedAt: now,
		}

		_, err := attendances.Create(ctx, record)
		require.NoError(t, err)

		open, err := attendances.GetOpenByEmployeeAndDate(ctx, "emp-1", "2025-06-02")
		require.NoError(t, err)
		require.NotNil(t, open.ClockInLocation)
		assert.Equal(t, 20.0, open.ClockInLocation.Accuracy)

		clockOut := "18:00:00"
		hours := 9.0
		open.ClockOutTime = &clockOut
		open.WorkingHours = &hours
		require.NoError(t, attendances.Update(ctx, open))

		// Closed records no longer match the open lookup.
		_, err = attendances.GetOpenByEmployeeAndDate(ctx, "emp-1", "2025-06-02")
		assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

		records, total, err := attendances.List(ctx, attendance.Filter{EmployeeID: "emp-1"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, records, 1)
		require.NotNil(t, records[0].WorkingHours)
		assert.Equal(t, 9.0, *records[0].WorkingHours)
	})

	t.Run("stale open records", func(t *testing.T) {
		stale := attendance.Attendance{
			ID: "rec-2", EmployeeID: "emp-1", EmployeeName: "Rahul Sharma",
			Date: "2025-05-30", ClockInTime: "09:00:00",
			Status: attendance.StatusPresent, CreatedAt: now, UpdatedAt: now,
		}
		_, err := attendances.Create(ctx, stale)
		require.NoError(t, err)

		open, err := attendances.ListOpenBefore(ctx, "2025-06-02")
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, "rec-2", open[0].ID)
	})

	t.Run("worklog round trip", func(t *testing.T) {
		project := "geofence"
		entry := worklog.Entry{
			ID: "w-1", EmployeeID: "emp-1", Date: "2025-06-02",
			TaskDescription: "tuning accuracy thresholds", HoursSpent: 3.5,
			Project: &project, Priority: worklog.PriorityHigh,
			CreatedAt: now, UpdatedAt: now,
		}
		_, err := worklogs.Create(ctx, entry)
		require.NoError(t, err)

		listed, err := worklogs.List(ctx, worklog.Filter{Project: "geofence"})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, 3.5, listed[0].HoursSpent)
		assert.False(t, listed[0].IsCompleted)

		done := listed[0]
		done.IsCompleted = true
		require.NoError(t, worklogs.Update(ctx, done))

		pending := false
		open, err := worklogs.List(ctx, worklog.Filter{Completed: &pending})
		require.NoError(t, err)
		assert.Empty(t, open)

		require.NoError(t, worklogs.Delete(ctx, "w-1"))
		_, err = worklogs.GetByID(ctx, "w-1")
		assert.ErrorIs(t, err, worklog.ErrEntryNotFound)
	})

	t.Run("pending registration round trip", func(t *testing.T) {
		pending := registration.Pending{
			ID: "reg-1",
			Employee: employee.CreateRequest{
				Code: "TRJ009", Name: "New Hire", Email: "new.hire@trijoshh.com",
				Password: "password123", Role: employee.RoleEmployee,
				WorkingHours: employee.WorkingHours{Start: "09:00", End: "18:00"},
			},
			Code:      "123456",
			ExpiresAt: now.Add(15 * time.Minute),
			CreatedAt: now,
		}
		_, err := registrations.Create(ctx, pending)
		require.NoError(t, err)

		got, err := registrations.GetByEmail(ctx, "NEW.HIRE@trijoshh.com")
		require.NoError(t, err)
		assert.Equal(t, "TRJ009", got.Employee.Code)
		assert.Equal(t, "123456", got.Code)

		got.Attempts = 2
		require.NoError(t, registrations.Update(ctx, got))

		require.NoError(t, registrations.Delete(ctx, "reg-1"))
		_, err = registrations.GetByEmail(ctx, "new.hire@trijoshh.com")
		assert.ErrorIs(t, err, registration.ErrRegistrationNotFound)
	})

	t.Run("last-known location", func(t *testing.T) {
		_, err := lastKnown.Get(ctx)
		assert.ErrorIs(t, err, location.ErrNoLastKnown)

		fix := location.Fix{Latitude: 28.6139, Longitude: 77.2090, Accuracy: 25, Timestamp: now}
		require.NoError(t, lastKnown.Save(ctx, fix))

		// A second save overwrites the single row.
		fix.Latitude = 19.0760
		require.NoError(t, lastKnown.Save(ctx, fix))

		got, err := lastKnown.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 19.0760, got.Latitude)
	})
}
