package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/trijoshh/attendance-backend-go/internal/handler/http/response"
)

type RouterConfig struct {
	AppName        string
	Env            string
	AllowedOrigins []string
}

type Handlers struct {
	Attendance   AttendanceHandler
	Employee     EmployeeHandler
	Worklog      WorklogHandler
	Location     LocationHandler
	Registration RegistrationHandler
	Report       ReportHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Employee.Login)
			r.Post("/register", h.Registration.Start)
			r.Post("/register/verify", h.Registration.Verify)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Post("/", h.Employee.Create)
			r.Get("/code/{code}", h.Employee.GetByCode)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.Get)
				r.Put("/", h.Employee.Update)
				r.Delete("/", h.Employee.Deactivate)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock-in", h.Attendance.ClockIn)
			r.Post("/clock-out", h.Attendance.ClockOut)
			r.Get("/", h.Attendance.List)
			r.Get("/{id}", h.Attendance.Get)
			r.Get("/today/{employeeID}", h.Attendance.TodayStatus)
		})

		r.Route("/worklogs", func(r chi.Router) {
			r.Get("/", h.Worklog.List)
			r.Post("/", h.Worklog.Create)
			r.Get("/{id}", h.Worklog.Get)
			r.Put("/{id}", h.Worklog.Update)
			r.Delete("/{id}", h.Worklog.Delete)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Post("/report", h.Location.Report)
			r.Post("/acquire", h.Location.Acquire)
			r.Post("/check", h.Location.Check)
			r.Get("/history", h.Location.History)
			r.Get("/last-known", h.Location.LastKnown)
			r.Get("/state", h.Location.State)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", h.Report.Dashboard)
			r.Get("/attendance.csv", h.Report.ExportCSV)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
