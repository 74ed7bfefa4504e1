package registration

import "context"

// Repository defines data access for pending registrations.
type Repository interface {
	// Create stores a pending registration.
	Create(ctx context.Context, pending Pending) (Pending, error)

	// GetByEmail retrieves a pending registration or ErrRegistrationNotFound.
	GetByEmail(ctx context.Context, email string) (Pending, error)

	// Update replaces a pending registration.
	Update(ctx context.Context, pending Pending) error

	// Delete removes a pending registration.
	Delete(ctx context.Context, id string) error
}

// CodeSender delivers a verification code to the given address.
type CodeSender interface {
	Send(ctx context.Context, email, code string) error
}
