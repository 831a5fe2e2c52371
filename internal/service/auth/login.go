package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// Login authenticates a user by username and password and opens a session.
// The role is derived once here from the user's bhag code and frozen into
// the session. Returns ErrUnauthorized for unknown users or wrong passwords.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	session := domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("auth.Login store session: %w", err)
	}

	token, err := s.jwt.GenerateToken(session)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("username", user.Username),
		slog.String("role", session.Role.Kind.String()))

	return &AuthResult{Token: token, Session: session, User: user}, nil
}
