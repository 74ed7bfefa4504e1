package report

import (
	"context"
	"io"
)

// Service defines reporting over attendance and work log data.
type Service interface {
	// DashboardStats summarizes attendance for the given date.
	DashboardStats(ctx context.Context, date string) (DashboardStats, error)

	// ExportAttendanceCSV streams matching attendance records as CSV.
	ExportAttendanceCSV(ctx context.Context, req ExportRequest, w io.Writer) error
}
