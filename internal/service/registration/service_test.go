package registration

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
	"github.com/trijoshh/attendance-backend-go/internal/repository/memory"
	employeesvc "github.com/trijoshh/attendance-backend-go/internal/service/employee"
)

type capturingSender struct {
	email string
	code  string
}

func (s *capturingSender) Send(_ context.Context, email, code string) error {
	s.email = email
	s.code = code
	return nil
}

func newTestService(t *testing.T, at time.Time) (*service, *capturingSender, employee.Service) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	employees := employeesvc.NewService(memory.NewEmployeeRepository(), logger)
	sender := &capturingSender{}

	svc := NewService(memory.NewRegistrationRepository(), employees, sender, logger).(*service)
	svc.now = func() time.Time { return at }
	svc.generate = func() (string, error) { return "123456", nil }

	return svc, sender, employees
}

func signupRequest() employee.CreateRequest {
	return employee.CreateRequest{
		Code:       "TRJ006",
		Name:       "Vikram Singh",
		Email:      "vikram.singh@trijoshh.com",
		Password:   "password123",
		Department: "Engineering",
		Role:       employee.RoleEmployee,
		WorkingHours: employee.WorkingHours{
			Start: "09:00",
			End:   "18:00",
		},
	}
}

func TestStart_SendsCode(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, sender, _ := newTestService(t, at)

	// Act
	resp, err := svc.Start(context.Background(), signupRequest())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "vikram.singh@trijoshh.com", sender.email)
	assert.Equal(t, "123456", sender.code)
	assert.Equal(t, at.Add(registration.CodeTTL), resp.ExpiresAt)
}

func TestStart_SecondStartWhilePendingFails(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	_, err := svc.Start(context.Background(), signupRequest())
	require.NoError(t, err)

	// Act
	_, err = svc.Start(context.Background(), signupRequest())

	// Assert
	assert.ErrorIs(t, err, registration.ErrAlreadyPending)
}

func TestStart_ReplacesExpiredRegistration(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	_, err := svc.Start(context.Background(), signupRequest())
	require.NoError(t, err)

	// Move past the code window and start again.
	svc.now = func() time.Time { return at.Add(registration.CodeTTL + time.Minute) }

	// Act
	_, err = svc.Start(context.Background(), signupRequest())

	// Assert
	require.NoError(t, err)
}

func TestVerify_CreatesEmployee(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, _, employees := newTestService(t, at)

	_, err := svc.Start(context.Background(), signupRequest())
	require.NoError(t, err)

	// Act
	created, err := svc.Verify(context.Background(), registration.VerifyRequest{
		Email: "vikram.singh@trijoshh.com",
		Code:  "123456",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "TRJ006", created.Code)
	assert.Equal(t, employee.StatusActive, created.Status)

	got, err := employees.GetEmployeeByCode(context.Background(), "TRJ006")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// The pending registration is consumed.
	_, err = svc.Verify(context.Background(), registration.VerifyRequest{
		Email: "vikram.singh@trijoshh.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, registration.ErrRegistrationNotFound)
}

func TestVerify_WrongCodeThenLockout(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	_, err := svc.Start(context.Background(), signupRequest())
	require.NoError(t, err)

	wrong := registration.VerifyRequest{Email: "vikram.singh@trijoshh.com", Code: "000000"}

	_, err = svc.Verify(context.Background(), wrong)
	assert.ErrorIs(t, err, registration.ErrCodeMismatch)

	_, err = svc.Verify(context.Background(), wrong)
	assert.ErrorIs(t, err, registration.ErrCodeMismatch)

	// Third failure burns the registration.
	_, err = svc.Verify(context.Background(), wrong)
	assert.ErrorIs(t, err, registration.ErrTooManyAttempts)

	// Even the right code no longer works.
	_, err = svc.Verify(context.Background(), registration.VerifyRequest{
		Email: "vikram.singh@trijoshh.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, registration.ErrRegistrationNotFound)
}

func TestVerify_ExpiredCode(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	_, err := svc.Start(context.Background(), signupRequest())
	require.NoError(t, err)

	svc.now = func() time.Time { return at.Add(registration.CodeTTL + time.Second) }

	// Act
	_, err = svc.Verify(context.Background(), registration.VerifyRequest{
		Email: "vikram.singh@trijoshh.com",
		Code:  "123456",
	})

	// Assert
	assert.ErrorIs(t, err, registration.ErrCodeExpired)
}
