package member

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/internal/service/member/export"
)

// Export renders the members the session would see for the same criteria.
// Returns ErrNothingToExport when the filtered list is empty.
func (s *Service) Export(ctx context.Context, input ExportInput) (*export.Document, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	format, err := input.format(s.cfg.DefaultFormat)
	if err != nil {
		return nil, err
	}
	criteria, err := parseCriteria(input.Criteria)
	if err != nil {
		return nil, err
	}

	members, err := s.list(ctx, session, criteria)
	if err != nil {
		return nil, fmt.Errorf("member.Export: %w", err)
	}
	if len(members) == 0 {
		return nil, domain.ErrNothingToExport
	}
	if s.cfg.MaxRows > 0 && len(members) > s.cfg.MaxRows {
		return nil, domain.NewValidationError("criteria",
			fmt.Sprintf("%d members match, export is limited to %d; narrow the search", len(members), s.cfg.MaxRows))
	}

	doc, err := export.Render(format, members, s.now())
	if err != nil {
		return nil, fmt.Errorf("member.Export render: %w", err)
	}

	s.log.InfoContext(ctx, "members exported",
		slog.String("format", format.String()),
		slog.Int("rows", doc.Rows),
		slog.String("username", session.Username))

	return doc, nil
}
