package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
)

type service struct {
	repo   employee.Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates the employee directory service.
func NewService(repo employee.Repository, logger *slog.Logger) employee.Service {
	return &service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) CreateEmployee(ctx context.Context, req employee.CreateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	if _, err := s.repo.GetByCode(ctx, req.Code); err == nil {
		return employee.Response{}, employee.ErrCodeAlreadyUsed
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Response{}, fmt.Errorf("check employee code: %w", err)
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return employee.Response{}, employee.ErrEmailAlreadyUsed
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Response{}, fmt.Errorf("check employee email: %w", err)
	}

	now := s.now()
	emp := employee.Employee{
		ID:                  uuid.NewString(),
		Code:                req.Code,
		Name:                req.Name,
		Email:               req.Email,
		Password:            req.Password,
		Phone:               req.Phone,
		Department:          req.Department,
		Role:                req.Role,
		Status:              employee.StatusActive,
		JoinDate:            req.JoinDate,
		WorkingHours:        req.WorkingHours,
		GracePeriodMinutes:  req.GracePeriodMinutes,
		AuthorizedLocations: req.AuthorizedLocations,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.Response{}, err
	}

	s.logger.Info("employee created", "employee_id", created.ID, "code", created.Code)
	return mapToResponse(created), nil
}

func (s *service) GetEmployee(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return mapToResponse(emp), nil
}

func (s *service) GetEmployeeByCode(ctx context.Context, code string) (employee.Response, error) {
	emp, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return employee.Response{}, err
	}
	return mapToResponse(emp), nil
}

func (s *service) UpdateEmployee(ctx context.Context, req employee.UpdateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Response{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Password != nil {
		emp.Password = *req.Password
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
	if req.WorkingHours != nil {
		emp.WorkingHours = *req.WorkingHours
	}
	if req.GracePeriodMinutes != nil {
		emp.GracePeriodMinutes = *req.GracePeriodMinutes
	}
	if req.AuthorizedLocations != nil {
		emp.AuthorizedLocations = *req.AuthorizedLocations
	}
	emp.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, emp); err != nil {
		return employee.Response{}, err
	}

	s.logger.Info("employee updated", "employee_id", emp.ID)
	return mapToResponse(emp), nil
}

func (s *service) DeactivateEmployee(ctx context.Context, id string) error {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	emp.Status = employee.StatusTerminated
	emp.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, emp); err != nil {
		return err
	}

	s.logger.Info("employee deactivated", "employee_id", id)
	return nil
}

func (s *service) ListEmployees(ctx context.Context, department, status string) (employee.ListResponse, error) {
	employees, total, err := s.repo.List(ctx, department, status)
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("list employees: %w", err)
	}

	resp := employee.ListResponse{
		Employees: make([]employee.Response, 0, len(employees)),
		Total:     total,
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, mapToResponse(emp))
	}
	return resp, nil
}

func (s *service) Login(ctx context.Context, req employee.LoginRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := s.repo.GetByCode(ctx, req.Code)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Response{}, employee.ErrInvalidCredentials
	}
	if err != nil {
		return employee.Response{}, err
	}

	if emp.Password != req.Password {
		return employee.Response{}, employee.ErrInvalidCredentials
	}
	if !emp.Active() {
		return employee.Response{}, employee.ErrEmployeeInactive
	}

	return mapToResponse(emp), nil
}

func mapToResponse(emp employee.Employee) employee.Response {
	return employee.Response{
		ID:                  emp.ID,
		Code:                emp.Code,
		Name:                emp.Name,
		Email:               emp.Email,
		Phone:               emp.Phone,
		Department:          emp.Department,
		Role:                emp.Role,
		Status:              emp.Status,
		JoinDate:            emp.JoinDate,
		WorkingHours:        emp.WorkingHours,
		GracePeriodMinutes:  emp.GracePeriodMinutes,
		AuthorizedLocations: emp.AuthorizedLocations,
	}
}
