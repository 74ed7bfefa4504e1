package worklog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
)

type service struct {
	repo      worklog.Repository
	employees employee.Repository
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates the work log service.
func NewService(repo worklog.Repository, employees employee.Repository, logger *slog.Logger) worklog.Service {
	return &service{
		repo:      repo,
		employees: employees,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) LogWork(ctx context.Context, req worklog.CreateRequest) (worklog.Response, error) {
	if err := req.Validate(); err != nil {
		return worklog.Response{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return worklog.Response{}, err
	}

	now := s.now()
	entry := worklog.Entry{
		ID:              uuid.NewString(),
		EmployeeID:      req.EmployeeID,
		Date:            req.Date,
		TaskDescription: req.TaskDescription,
		HoursSpent:      req.HoursSpent,
		Project:         req.Project,
		Priority:        req.Priority,
		IsCompleted:     req.IsCompleted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return worklog.Response{}, fmt.Errorf("create work log entry: %w", err)
	}

	s.logger.Info("work logged",
		"employee_id", req.EmployeeID, "date", req.Date, "hours", req.HoursSpent)
	return mapToResponse(created), nil
}

func (s *service) GetEntry(ctx context.Context, id string) (worklog.Response, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return worklog.Response{}, err
	}
	return mapToResponse(entry), nil
}

func (s *service) UpdateEntry(ctx context.Context, id string, req worklog.UpdateRequest) (worklog.Response, error) {
	if err := req.Validate(); err != nil {
		return worklog.Response{}, err
	}

	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return worklog.Response{}, err
	}

	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.TaskDescription != nil {
		entry.TaskDescription = *req.TaskDescription
	}
	if req.HoursSpent != nil {
		entry.HoursSpent = *req.HoursSpent
	}
	if req.Project != nil {
		entry.Project = req.Project
	}
	if req.Priority != nil {
		entry.Priority = *req.Priority
	}
	if req.IsCompleted != nil {
		entry.IsCompleted = *req.IsCompleted
	}
	entry.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, entry); err != nil {
		return worklog.Response{}, fmt.Errorf("update work log entry: %w", err)
	}

	s.logger.Info("work log entry updated", "id", id, "completed", entry.IsCompleted)
	return mapToResponse(entry), nil
}

func (s *service) DeleteEntry(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListEntries(ctx context.Context, filter worklog.Filter) (worklog.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return worklog.ListResponse{}, err
	}

	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return worklog.ListResponse{}, fmt.Errorf("list work log entries: %w", err)
	}

	resp := worklog.ListResponse{Entries: make([]worklog.Response, 0, len(entries))}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, mapToResponse(entry))
		resp.TotalHours += entry.HoursSpent
	}
	return resp, nil
}

func mapToResponse(entry worklog.Entry) worklog.Response {
	return worklog.Response{
		ID:              entry.ID,
		EmployeeID:      entry.EmployeeID,
		Date:            entry.Date,
		TaskDescription: entry.TaskDescription,
		HoursSpent:      entry.HoursSpent,
		Project:         entry.Project,
		Priority:        entry.Priority,
		IsCompleted:     entry.IsCompleted,
	}
}
