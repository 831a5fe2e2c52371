package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/pkg/ctxutil"
)

// ValidateToken resolves a bearer token to its live session.
// Returns ErrUnauthorized if the token is invalid, or the session is
// unknown, revoked or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Session, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return domain.Session{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, domain.ErrUnauthorized
		}
		return domain.Session{}, fmt.Errorf("auth.ValidateToken get session: %w", err)
	}

	if !session.IsActive(s.now()) || session.UserID != claims.UserID {
		return domain.Session{}, domain.ErrUnauthorized
	}

	return *session, nil
}

// CurrentSession returns the session carried by the request context.
func (s *Service) CurrentSession(ctx context.Context) (domain.Session, error) {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return session, nil
}

// Logout revokes the session carried by the context. Revoking an already
// deleted session is not an error.
func (s *Service) Logout(ctx context.Context) error {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Revoke(ctx, session.ID, s.now().UTC()); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("username", session.Username))
	return nil
}

// CleanupSessions removes expired and revoked sessions.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteInactive(ctx, s.now().UTC())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up sessions", slog.Int("count", count))
	}

	return count, nil
}
