package registration

import (
	"context"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
)

// Service defines business logic for email-verified registration.
type Service interface {
	// Start opens a pending registration and sends the verification code.
	// Restarting an expired registration replaces it.
	Start(ctx context.Context, req employee.CreateRequest) (StartResponse, error)

	// Verify consumes a pending registration and creates the employee.
	Verify(ctx context.Context, req VerifyRequest) (employee.Response, error)
}
