package registration

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
)

type service struct {
	repo      registration.Repository
	employees employee.Service
	sender    registration.CodeSender
	logger    *slog.Logger
	now       func() time.Time
	generate  func() (string, error)
}

// NewService creates the registration service.
func NewService(repo registration.Repository, employees employee.Service, sender registration.CodeSender, logger *slog.Logger) registration.Service {
	return &service{
		repo:      repo,
		employees: employees,
		sender:    sender,
		logger:    logger,
		now:       time.Now,
		generate:  generateCode,
	}
}

func (s *service) Start(ctx context.Context, req employee.CreateRequest) (registration.StartResponse, error) {
	if err := req.Validate(); err != nil {
		return registration.StartResponse{}, err
	}

	if _, err := s.employees.GetEmployeeByCode(ctx, req.Code); err == nil {
		return registration.StartResponse{}, employee.ErrCodeAlreadyUsed
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return registration.StartResponse{}, fmt.Errorf("check employee code: %w", err)
	}

	now := s.now()

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil && !existing.Expired(now):
		return registration.StartResponse{}, registration.ErrAlreadyPending
	case err == nil:
		// Expired registrations are simply replaced.
		if err := s.repo.Delete(ctx, existing.ID); err != nil {
			return registration.StartResponse{}, fmt.Errorf("replace expired registration: %w", err)
		}
	case !errors.Is(err, registration.ErrRegistrationNotFound):
		return registration.StartResponse{}, fmt.Errorf("check pending registration: %w", err)
	}

	code, err := s.generate()
	if err != nil {
		return registration.StartResponse{}, fmt.Errorf("generate verification code: %w", err)
	}

	pending := registration.Pending{
		ID:        uuid.NewString(),
		Employee:  req,
		Code:      code,
		ExpiresAt: now.Add(registration.CodeTTL),
		CreatedAt: now,
	}
	if _, err := s.repo.Create(ctx, pending); err != nil {
		return registration.StartResponse{}, fmt.Errorf("store pending registration: %w", err)
	}

	if err := s.sender.Send(ctx, req.Email, code); err != nil {
		return registration.StartResponse{}, fmt.Errorf("send verification code: %w", err)
	}

	s.logger.Info("registration started", "email", req.Email, "expires_at", pending.ExpiresAt)
	return registration.StartResponse{Email: req.Email, ExpiresAt: pending.ExpiresAt}, nil
}

func (s *service) Verify(ctx context.Context, req registration.VerifyRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	pending, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.Response{}, err
	}

	if pending.Expired(s.now()) {
		if err := s.repo.Delete(ctx, pending.ID); err != nil {
			s.logger.Warn("failed to drop expired registration", "error", err)
		}
		return employee.Response{}, registration.ErrCodeExpired
	}

	if pending.Code != req.Code {
		pending.Attempts++
		if pending.Attempts >= registration.MaxAttempts {
			if err := s.repo.Delete(ctx, pending.ID); err != nil {
				s.logger.Warn("failed to drop exhausted registration", "error", err)
			}
			return employee.Response{}, registration.ErrTooManyAttempts
		}
		if err := s.repo.Update(ctx, pending); err != nil {
			return employee.Response{}, fmt.Errorf("record failed attempt: %w", err)
		}
		return employee.Response{}, registration.ErrCodeMismatch
	}

	created, err := s.employees.CreateEmployee(ctx, pending.Employee)
	if err != nil {
		return employee.Response{}, err
	}

	if err := s.repo.Delete(ctx, pending.ID); err != nil {
		s.logger.Warn("failed to drop verified registration", "error", err)
	}

	s.logger.Info("registration verified", "email", req.Email, "employee_id", created.ID)
	return created, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
