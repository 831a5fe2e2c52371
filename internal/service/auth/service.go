package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/joinrss-backend/internal/auth"
	"github.com/heartmarshall/joinrss-backend/internal/config"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, s domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteInactive(ctx context.Context, now time.Time) (int, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateToken(s domain.Session) (string, error)
	ValidateToken(token string) (auth.Claims, error)
}

// Service implements sign-in, session validation and sign-out.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	jwt      jwtManager
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		jwt:      jwt,
		cfg:      cfg,
		now:      time.Now,
	}
}
