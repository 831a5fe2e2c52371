package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// Update applies a partial edit. Only admins may reassign the bhag code.
// Setting the status to Contacted stamps the activation time; setting it
// back to Pending clears it. The visibility check and the write run in one
// transaction.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Member, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.BhagCode != nil && !session.Role.IsAdmin() {
		return nil, fmt.Errorf("member.Update: only admins may change bhag_code: %w", domain.ErrForbidden)
	}

	patch := domain.MemberPatch{
		BhagCode:  input.BhagCode,
		NagarCode: input.NagarCode,
		BastiCode: input.BastiCode,
	}
	if input.Activation != nil {
		activation, _ := domain.ParseActivation(*input.Activation)
		patch.Activation = &activation
		switch activation {
		case domain.ActivationContacted:
			stamp := s.now().Truncate(time.Minute)
			patch.ActivationAt = &stamp
		case domain.ActivationPending:
			patch.ClearActivationAt = true
		}
	}

	var updated *domain.Member
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.visible(ctx, session.Role, id); err != nil {
			return err
		}
		updated, err = s.members.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("member.Update: %w", err)
	}

	s.log.InfoContext(ctx, "member updated",
		slog.String("member_id", id.String()),
		slog.String("activation", updated.Activation.String()),
		slog.String("username", session.Username))

	return updated, nil
}
