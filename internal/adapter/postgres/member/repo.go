// Package member implements the member record store on PostgreSQL.
// Rows are reconciled into domain.Member before they leave this package, so
// legacy columns never reach callers.
package member

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

const table = "members"

// Repo provides member persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new member repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

var columns = []string{
	"id", "member_id", "reg_date", "first_name", "last_name", "gender",
	"email", "phone", "age", "address", "city", "bhag_code", "nagar_code",
	"basti_code", "occupation", "activation", "activation_at", "remark",
	"referred_by", "created_at",
	"name", "profession", "contact_number", "area", "notes",
}

type row struct {
	ID            uuid.UUID  `db:"id"`
	MemberID      *string    `db:"member_id"`
	RegDate       string     `db:"reg_date"`
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	Gender        string     `db:"gender"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	Age           *int       `db:"age"`
	Address       string     `db:"address"`
	City          string     `db:"city"`
	BhagCode      string     `db:"bhag_code"`
	NagarCode     string     `db:"nagar_code"`
	BastiCode     string     `db:"basti_code"`
	Occupation    string     `db:"occupation"`
	Activation    string     `db:"activation"`
	ActivationAt  *time.Time `db:"activation_at"`
	Remark        string     `db:"remark"`
	ReferredBy    string     `db:"referred_by"`
	CreatedAt     time.Time  `db:"created_at"`
	Name          string     `db:"name"`
	Profession    string     `db:"profession"`
	ContactNumber string     `db:"contact_number"`
	Area          string     `db:"area"`
	Notes         string     `db:"notes"`
}

func (r row) toStored() domain.StoredMember {
	s := domain.StoredMember{
		ID:            r.ID,
		RegDate:       r.RegDate,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Gender:        r.Gender,
		Email:         r.Email,
		Phone:         r.Phone,
		Age:           r.Age,
		Address:       r.Address,
		City:          r.City,
		BhagCode:      r.BhagCode,
		NagarCode:     r.NagarCode,
		BastiCode:     r.BastiCode,
		Occupation:    r.Occupation,
		Activation:    r.Activation,
		ActivationAt:  r.ActivationAt,
		Remark:        r.Remark,
		ReferredBy:    r.ReferredBy,
		CreatedAt:     r.CreatedAt,
		Name:          r.Name,
		Profession:    r.Profession,
		ContactNumber: r.ContactNumber,
		Area:          r.Area,
		Notes:         r.Notes,
	}
	if r.MemberID != nil {
		s.MemberID = *r.MemberID
	}
	return s
}

func toDomain(r row) domain.Member {
	return domain.Reconcile(r.toStored())
}

func nullIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListAll returns every member, newest first. A non-nil scope restricts the
// result to members whose bhag code equals *scope exactly.
func (r *Repo) ListAll(ctx context.Context, scope *string) ([]domain.Member, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id")
	if scope != nil {
		q = q.Where(squirrel.Eq{"bhag_code": *scope})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list members query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out := make([]domain.Member, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// GetByID returns a member by primary key.
// Returns domain.ErrNotFound if the member does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get member query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "member", id)
	}

	m := toDomain(rw)
	return &m, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new member and returns the stored record.
// A blank MemberID is stored as NULL. Duplicate member ids map to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, m domain.Member) (*domain.Member, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "member_id", "reg_date", "first_name", "last_name", "gender",
			"email", "phone", "age", "address", "city", "bhag_code", "nagar_code",
			"basti_code", "occupation", "activation", "activation_at", "remark",
			"referred_by", "created_at",
		).
		Values(
			m.ID, nullIfBlank(m.MemberID), m.RegDate, m.FirstName, m.LastName, m.Gender,
			m.Email, m.Phone, m.Age, m.Address, m.City, m.BhagCode, m.NagarCode,
			m.BastiCode, m.Occupation, m.Activation.String(), m.ActivationAt, m.Remark,
			m.ReferredBy, m.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert member query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "member", m.ID)
	}

	created := toDomain(rw)
	return &created, nil
}

// Update applies a partial update and returns the updated record.
// Returns domain.ErrNotFound if the member does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.MemberPatch) (*domain.Member, error) {
	if p.IsEmpty() {
		return nil, domain.NewValidationError("patch", "no fields to update")
	}

	q := postgres.Builder().Update(table)
	if p.BhagCode != nil {
		q = q.Set("bhag_code", *p.BhagCode)
	}
	if p.NagarCode != nil {
		q = q.Set("nagar_code", *p.NagarCode)
	}
	if p.BastiCode != nil {
		q = q.Set("basti_code", *p.BastiCode)
	}
	if p.Activation != nil {
		q = q.Set("activation", p.Activation.String())
	}
	switch {
	case p.ActivationAt != nil:
		q = q.Set("activation_at", *p.ActivationAt)
	case p.ClearActivationAt:
		q = q.Set("activation_at", nil)
	}

	sql, args, err := q.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update member query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "member", id)
	}

	updated := toDomain(rw)
	return &updated, nil
}

// Delete removes a member permanently.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete member query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "member", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
