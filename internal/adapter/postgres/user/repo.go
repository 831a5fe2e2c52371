// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "username", "password_hash", "bhag_code", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	BhagCode     *string   `db:"bhag_code"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func toDomain(r row) domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		BhagCode:     r.BhagCode,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// normalizeBhag stores blank codes as NULL so admins have one representation.
func normalizeBhag(bhag *string) *string {
	if bhag == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*bhag)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by username, compared case-insensitively.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Expr("lower(username) = lower(?)", username), username)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.User, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := toDomain(rw)
	return &u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user. Duplicate usernames map to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, normalizeBhag(u.BhagCode), now, now).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	created := toDomain(rw)
	return &created, nil
}

// UpdateBhag sets the user's organizational code. Nil or blank makes the
// user an administrator.
func (r *Repo) UpdateBhag(ctx context.Context, username string, bhag *string) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("bhag_code", normalizeBhag(bhag)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Expr("lower(username) = lower(?)", username)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	u := toDomain(rw)
	return &u, nil
}
