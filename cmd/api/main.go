package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/config"
	"github.com/trijoshh/attendance-backend-go/internal/domain/attendance"
	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
	"github.com/trijoshh/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/trijoshh/attendance-backend-go/internal/handler/http"
	"github.com/trijoshh/attendance-backend-go/internal/pkg/cron"
	"github.com/trijoshh/attendance-backend-go/internal/pkg/database"
	"github.com/trijoshh/attendance-backend-go/internal/repository/memory"
	"github.com/trijoshh/attendance-backend-go/internal/repository/sqlite"
	attendanceService "github.com/trijoshh/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/trijoshh/attendance-backend-go/internal/service/employee"
	locationService "github.com/trijoshh/attendance-backend-go/internal/service/location"
	registrationService "github.com/trijoshh/attendance-backend-go/internal/service/registration"
	reportService "github.com/trijoshh/attendance-backend-go/internal/service/report"
	worklogService "github.com/trijoshh/attendance-backend-go/internal/service/worklog"
)

type repositories struct {
	attendance   attendance.Repository
	employee     employee.Repository
	worklog      worklog.Repository
	registration registration.Repository
	lastKnown    location.LastKnownStore
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.App.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, cleanup, err := buildRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := fixtures.SeedEmployees(ctx, repos.employee); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}

	// Location pipeline
	provider := locationService.NewReportedProvider()
	var network location.NetworkLocator
	if cfg.Location.NetworkFallback {
		network = locationService.NewIPLocator(nil, cfg.Location.IPEndpoint)
	}
	acquirer := locationService.NewAcquirer(provider, network, repos.lastKnown, logger)
	validator := locationService.NewValidator()

	// Services
	employeeSvc := employeeService.NewService(repos.employee, logger)
	attendanceSvc := attendanceService.NewService(repos.attendance, repos.employee, validator, logger)
	worklogSvc := worklogService.NewService(repos.worklog, repos.employee, logger)
	registrationSvc := registrationService.NewService(
		repos.registration, employeeSvc, registrationService.NewLogSender(logger), logger)
	reportSvc := reportService.NewService(repos.attendance, repos.employee, repos.worklog, logger)

	// Background jobs
	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler(logger)
		cron.NewAttendanceJobs(repos.attendance, repos.employee).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppName:        cfg.App.Name,
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, appHTTP.Handlers{
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Worklog:      appHTTP.NewWorklogHandler(worklogSvc),
		Location:     appHTTP.NewLocationHandler(acquirer, provider, validator, repos.employee),
		Registration: appHTTP.NewRegistrationHandler(registrationSvc),
		Report:       appHTTP.NewReportHandler(reportSvc, logger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func buildRepositories(ctx context.Context, cfg *config.Config) (repositories, func(), error) {
	if cfg.Database.Engine == "memory" {
		return repositories{
			attendance:   memory.NewAttendanceRepository(),
			employee:     memory.NewEmployeeRepository(),
			worklog:      memory.NewWorklogRepository(),
			registration: memory.NewRegistrationRepository(),
			lastKnown:    memory.NewLastKnownStore(),
		}, func() {}, nil
	}

	db, err := database.OpenSQLite(ctx, cfg.Database.Path)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}

	return repositories{
		attendance:   sqlite.NewAttendanceRepository(db),
		employee:     sqlite.NewEmployeeRepository(db),
		worklog:      sqlite.NewWorklogRepository(db),
		registration: sqlite.NewRegistrationRepository(db),
		lastKnown:    sqlite.NewLastKnownStore(db),
	}, func() { db.Close() }, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
