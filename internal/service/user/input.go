package user

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// CreateUserInput holds parameters for creating an account.
// A nil or blank BhagCode creates an administrator.
type CreateUserInput struct {
	Username string
	Password string
	BhagCode *string
}

// Normalize trims the username and bhag code.
func (i CreateUserInput) Normalize() CreateUserInput {
	i.Username = strings.TrimSpace(i.Username)
	i.BhagCode = normalizeBhag(i.BhagCode)
	return i
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) > 64:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	case strings.IndexFunc(i.Username, unicode.IsSpace) >= 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain spaces"})
	}

	switch {
	case len(i.Password) < 8:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(i.Password) > 72:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.BhagCode != nil && len(*i.BhagCode) > 64 {
		errs = append(errs, domain.FieldError{Field: "bhag_code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func normalizeBhag(bhag *string) *string {
	if bhag == nil {
		return nil
	}
	code := strings.TrimSpace(*bhag)
	if code == "" {
		return nil
	}
	return &code
}
