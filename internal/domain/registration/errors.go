package registration

import "errors"

// Registration errors
var (
	ErrRegistrationNotFound = errors.New("no pending registration for this email")
	ErrAlreadyPending       = errors.New("a registration is already pending for this email")
	ErrCodeExpired          = errors.New("verification code has expired")
	ErrCodeMismatch         = errors.New("verification code does not match")
	ErrTooManyAttempts      = errors.New("too many failed verification attempts")
)
