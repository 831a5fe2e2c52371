package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// CreateUser registers a new account with a bcrypt-hashed password.
// Returns ErrAlreadyExists if the username is taken.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		BhagCode:     input.BhagCode,
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("username", created.Username),
		slog.String("role", created.Role().Kind.String()))

	return created, nil
}

// SetBhag reassigns a user's organizational code. A nil or blank code
// makes the user an administrator. Existing sessions keep the role they
// were opened with.
func (s *Service) SetBhag(ctx context.Context, username string, bhag *string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "required")
	}
	bhag = normalizeBhag(bhag)
	if bhag != nil && len(*bhag) > 64 {
		return nil, domain.NewValidationError("bhag_code", "too long")
	}

	updated, err := s.users.UpdateBhag(ctx, username, bhag)
	if err != nil {
		return nil, fmt.Errorf("user.SetBhag: %w", err)
	}

	s.log.InfoContext(ctx, "user bhag updated",
		slog.String("username", updated.Username),
		slog.String("role", updated.Role().Kind.String()))

	return updated, nil
}
