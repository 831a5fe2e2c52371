package member

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/internal/service/member/search"
)

// List returns the members visible to the session that match every
// criterion, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Member, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	criteria, err := parseCriteria(input.Criteria)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, session, criteria)
}

func (s *Service) list(ctx context.Context, session domain.Session, criteria []search.Criterion) ([]domain.Member, error) {
	all, err := s.members.ListAll(ctx, session.Role.Scope())
	if err != nil {
		return nil, fmt.Errorf("member.List: %w", err)
	}
	return search.Filter(all, criteria), nil
}

// Get returns one member. Members outside the session's scope are
// reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	m, err := s.visible(ctx, session.Role, id)
	if err != nil {
		return nil, fmt.Errorf("member.Get: %w", err)
	}
	return m, nil
}
