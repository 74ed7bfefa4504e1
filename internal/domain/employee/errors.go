package employee

import "errors"

// Employee errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeInactive   = errors.New("employee is not active")
	ErrCodeAlreadyUsed    = errors.New("employee code is already in use")
	ErrEmailAlreadyUsed   = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid employee code or password")
)
