package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/report"
	"github.com/trijoshh/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
	logger        *slog.Logger
}

func NewReportHandler(reportService report.Service, logger *slog.Logger) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		logger:        logger,
	}
}

func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	stats, err := h.reportService.DashboardStats(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.ExportRequest{
		EmployeeID: q.Get("employee_id"),
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.csv"`)

	// Headers are already written; an error here cuts the stream, so all we
	// can do is record it.
	if err := h.reportService.ExportAttendanceCSV(r.Context(), req, w); err != nil {
		h.logger.Error("attendance csv export failed mid-stream", "error", err)
	}
}
