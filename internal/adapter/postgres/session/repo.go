// Package session persists login sessions. A session row is created at login,
// revoked at logout and removed by the cleanup job once inactive.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/joinrss-backend/internal/adapter/postgres"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

const table = "sessions"

var columns = []string{"id", "user_id", "username", "role", "org_code", "created_at", "expires_at", "revoked_at"}

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Username  string     `db:"username"`
	Role      string     `db:"role"`
	OrgCode   string     `db:"org_code"`
	CreatedAt time.Time  `db:"created_at"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// toDomain rebuilds the session role. Unknown kinds and member rows without
// an org code are rejected rather than widened to admin.
func toDomain(r row) (domain.Session, error) {
	var role domain.Role
	switch domain.RoleKind(r.Role) {
	case domain.RoleAdmin:
		role = domain.AdminRole()
	case domain.RoleMember:
		if strings.TrimSpace(r.OrgCode) == "" {
			return domain.Session{}, fmt.Errorf("session %s: member role without org code", r.ID)
		}
		role = domain.MemberRole(r.OrgCode)
	default:
		return domain.Session{}, fmt.Errorf("session %s: unknown role %q", r.ID, r.Role)
	}

	return domain.Session{
		ID:        r.ID,
		UserID:    r.UserID,
		Username:  r.Username,
		Role:      role,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
		RevokedAt: r.RevokedAt,
	}, nil
}

// Create stores a new session.
func (r *Repo) Create(ctx context.Context, s domain.Session) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "username", "role", "org_code", "created_at", "expires_at").
		Values(s.ID, s.UserID, s.Username, s.Role.Kind.String(), s.Role.OrgCode, s.CreatedAt, s.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert session query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session", s.ID)
	}
	return nil
}

// GetByID returns a session by primary key, including revoked and expired ones.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get session query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	s, err := toDomain(rw)
	if err != nil {
		return nil, fmt.Errorf("session.GetByID: %w", err)
	}
	return &s, nil
}

// Revoke marks a session as closed. Revoking an already revoked session is a no-op.
// Returns domain.ErrNotFound if the session does not exist.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("COALESCE(revoked_at, ?)", at)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke session query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "session", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteInactive removes sessions that expired or were revoked before now.
// Returns the number of deleted rows.
func (r *Repo) DeleteInactive(ctx context.Context, now time.Time) (int, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.LtOrEq{"expires_at": now},
			squirrel.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete sessions query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete inactive sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
