package registration

import (
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/pkg/validator"
)

type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (r *VerifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if len(r.Code) != CodeLength || !validator.IsNumeric(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 6 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StartResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
