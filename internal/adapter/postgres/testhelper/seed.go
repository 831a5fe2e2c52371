package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueCode returns a bhag code that no other test uses, so scoped
// listings stay isolated on the shared database.
func UniqueCode(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedUser creates a user with the given password and organizational code.
// A nil bhag creates an administrator.
func SeedUser(t *testing.T, pool *pgxpool.Pool, password string, bhag *string) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("testhelper: SeedUser hash password: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: string(hash),
		BhagCode:     bhag,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, bhag_code, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.PasswordHash, user.BhagCode, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedMember inserts a member in the current schema with the required fields
// filled in. It returns the member ID.
func SeedMember(t *testing.T, pool *pgxpool.Pool, bhag, firstName, city string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO members (id, first_name, last_name, phone, city, occupation, bhag_code)
		 VALUES ($1, $2, 'Test', '9000000000', $3, 'Volunteer', $4)`,
		id, firstName, city, bhag,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember insert: %v", err)
	}
	return id
}

// SeedLegacyMember inserts a row populated only through the legacy columns.
func SeedLegacyMember(t *testing.T, pool *pgxpool.Pool, bhag, name, profession, area, contact string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO members (id, bhag_code, name, profession, area, contact_number, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, 'imported')`,
		id, bhag, name, profession, area, contact,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLegacyMember insert: %v", err)
	}
	return id
}
