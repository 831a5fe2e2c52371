package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateBhag(ctx context.Context, username string, bhag *string) (*domain.User, error)
}

// Service implements account administration used by the operator CLI.
type Service struct {
	log        *slog.Logger
	users      userRepo
	bcryptCost int
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, bcryptCost int) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		bcryptCost: bcryptCost,
	}
}
