package member

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a member permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.visible(ctx, session.Role, id); err != nil {
			return err
		}
		return s.members.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("member.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "member deleted",
		slog.String("member_id", id.String()),
		slog.String("username", session.Username))

	return nil
}
