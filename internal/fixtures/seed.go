package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

// Company offices
var (
	DelhiOffice = location.AuthorizedLocation{
		Name: "Delhi Office", Latitude: 28.6139, Longitude: 77.2090, RadiusMeters: 100,
	}
	MumbaiOffice = location.AuthorizedLocation{
		Name: "Mumbai Office", Latitude: 19.0760, Longitude: 72.8777, RadiusMeters: 100,
	}
	BangaloreOffice = location.AuthorizedLocation{
		Name: "Bangalore Office", Latitude: 12.9716, Longitude: 77.5946, RadiusMeters: 100,
	}
)

// Employees is the starter roster loaded into an empty directory.
var Employees = []employee.Employee{
	{
		Code:       "TRJ001",
		Name:       "Rahul Sharma",
		Email:      "rahul.sharma@trijoshh.com",
		Password:   "password123",
		Department: "Engineering",
		Role:       employee.RoleEmployee,
		WorkingHours: employee.WorkingHours{
			Start: "09:00", End: "18:00",
		},
		AuthorizedLocations: []location.AuthorizedLocation{DelhiOffice, MumbaiOffice},
	},
	{
		Code:       "TRJ002",
		Name:       "Priya Patel",
		Email:      "priya.patel@trijoshh.com",
		Password:   "password123",
		Department: "Human Resources",
		Role:       employee.RoleHR,
		WorkingHours: employee.WorkingHours{
			Start: "09:30", End: "18:30",
		},
		AuthorizedLocations: []location.AuthorizedLocation{DelhiOffice},
	},
	{
		Code:       "TRJ003",
		Name:       "Amit Kumar",
		Email:      "amit.kumar@trijoshh.com",
		Password:   "password123",
		Department: "Engineering",
		Role:       employee.RoleManager,
		WorkingHours: employee.WorkingHours{
			Start: "08:30", End: "17:30",
		},
		AuthorizedLocations: []location.AuthorizedLocation{DelhiOffice, MumbaiOffice, BangaloreOffice},
	},
	{
		Code:       "TRJ004",
		Name:       "Admin User",
		Email:      "admin@trijoshh.com",
		Password:   "admin123",
		Department: "Administration",
		Role:       employee.RoleAdmin,
		WorkingHours: employee.WorkingHours{
			Start: "09:00", End: "18:00",
		},
		AuthorizedLocations: []location.AuthorizedLocation{DelhiOffice, MumbaiOffice, BangaloreOffice},
	},
	{
		Code:       "TRJ005",
		Name:       "Sneha Reddy",
		Email:      "sneha.reddy@trijoshh.com",
		Password:   "password123",
		Department: "Marketing",
		Role:       employee.RoleEmployee,
		WorkingHours: employee.WorkingHours{
			Start: "10:00", End: "19:00",
		},
		AuthorizedLocations: []location.AuthorizedLocation{DelhiOffice},
	},
}

// SeedEmployees inserts the starter roster, skipping codes that already
// exist. Safe to run on every start.
func SeedEmployees(ctx context.Context, repo employee.Repository) error {
	for _, emp := range Employees {
		_, err := repo.GetByCode(ctx, emp.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("check seed employee %s: %w", emp.Code, err)
		}

		now := time.Now()
		emp.ID = uuid.NewString()
		emp.Status = employee.StatusActive
		emp.GracePeriodMinutes = 15
		emp.CreatedAt = now
		emp.UpdatedAt = now

		if _, err := repo.Create(ctx, emp); err != nil {
			return fmt.Errorf("seed employee %s: %w", emp.Code, err)
		}
	}
	return nil
}
