package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated sign-in. It is created at login, carried in the
// request context and revoked at logout.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	Role      Role
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the session has been closed by logout.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// IsActive returns true if the session may still authorize requests.
func (s *Session) IsActive(now time.Time) bool {
	return !s.IsRevoked() && !s.IsExpired(now)
}
