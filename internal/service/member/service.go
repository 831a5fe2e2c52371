// Package member implements the member registry operations: scoped listing
// and search, detail view, registration, partial edits, deletion and export.
//
// Every operation requires a session in the context. Admin sessions see all
// members; member sessions see only members whose bhag code equals their own.
package member

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/joinrss-backend/internal/config"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/pkg/ctxutil"
)

// memberRepo defines the member repository interface needed by member service.
type memberRepo interface {
	ListAll(ctx context.Context, scope *string) ([]domain.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	Create(ctx context.Context, m domain.Member) (*domain.Member, error)
	Update(ctx context.Context, id uuid.UUID, p domain.MemberPatch) (*domain.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by member service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements member registry operations.
type Service struct {
	log     *slog.Logger
	members memberRepo
	tx      txManager
	cfg     config.ExportConfig
	now     func() time.Time
}

// NewService creates a new member service instance.
func NewService(
	logger *slog.Logger,
	members memberRepo,
	tx txManager,
	cfg config.ExportConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "member"),
		members: members,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
	}
}

func sessionFrom(ctx context.Context) (domain.Session, error) {
	s, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return s, nil
}

// visible loads a member and hides it from sessions that may not see it.
func (s *Service) visible(ctx context.Context, role domain.Role, id uuid.UUID) (*domain.Member, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !role.CanSee(*m) {
		return nil, domain.ErrNotFound
	}
	return m, nil
}
