package auth

import (
	"strings"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Normalize trims the username. The password is used as given.
func (i LoginInput) Normalize() LoginInput {
	i.Username = strings.TrimSpace(i.Username)
	return i
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 255 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
