package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// Create registers a member. Input is validated before any store call.
// Member sessions always register into their own bhag.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Member, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	activation, _ := domain.ParseActivation(input.Activation)

	m := domain.Member{
		MemberID:   input.MemberID,
		RegDate:    input.RegDate,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Gender:     input.Gender,
		Email:      input.Email,
		Phone:      input.Phone,
		Age:        input.Age,
		Address:    input.Address,
		City:       input.City,
		BhagCode:   input.BhagCode,
		NagarCode:  input.NagarCode,
		BastiCode:  input.BastiCode,
		Occupation: input.Occupation,
		Activation: activation,
		Remark:     input.Remark,
		ReferredBy: input.ReferredBy,
	}
	if m.RegDate == "" {
		m.RegDate = now.Format(domain.RegDateLayout)
	}
	if !session.Role.IsAdmin() {
		m.BhagCode = session.Role.OrgCode
	}
	if activation == domain.ActivationContacted {
		stamp := now.Truncate(time.Minute)
		m.ActivationAt = &stamp
	}

	created, err := s.members.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("member.Create: %w", err)
	}

	s.log.InfoContext(ctx, "member created",
		slog.String("member_id", created.ID.String()),
		slog.String("bhag_code", created.BhagCode),
		slog.String("username", session.Username))

	return created, nil
}
