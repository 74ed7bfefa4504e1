package registration

import (
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
)

const (
	// CodeLength is the number of digits in a verification code.
	CodeLength = 6

	// CodeTTL is how long a verification code stays usable.
	CodeTTL = 15 * time.Minute

	// MaxAttempts bounds wrong-code guesses per pending registration.
	MaxAttempts = 3
)

// Pending is a registration awaiting email verification. Verifying it
// promotes the held employee data to an active directory entry.
type Pending struct {
	ID        string
	Employee  employee.CreateRequest
	Code      string
	ExpiresAt time.Time
	Attempts  int
	CreatedAt time.Time
}

// Expired reports whether the code is past its window.
func (p *Pending) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
