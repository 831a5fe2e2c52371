package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account allowed to sign in and manage members.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	BhagCode     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role returns the role derived from the user's organizational code.
func (u User) Role() Role {
	return RoleFor(u.BhagCode)
}

// Role is the access variant carried by a session: Admin, or Member scoped
// to OrgCode.
type Role struct {
	Kind    RoleKind
	OrgCode string
}

// AdminRole returns the unscoped administrator role.
func AdminRole() Role { return Role{Kind: RoleAdmin} }

// MemberRole returns a role scoped to the given organizational code.
func MemberRole(orgCode string) Role { return Role{Kind: RoleMember, OrgCode: orgCode} }

// RoleFor derives the role from a user's organizational code.
// A nil or blank code means administrator.
func RoleFor(bhag *string) Role {
	if bhag == nil || strings.TrimSpace(*bhag) == "" {
		return AdminRole()
	}
	return MemberRole(*bhag)
}

// IsAdmin reports whether the role sees every record.
func (r Role) IsAdmin() bool { return r.Kind == RoleAdmin }

// Scope returns the organizational code to filter by, or nil for admins.
func (r Role) Scope() *string {
	if r.IsAdmin() {
		return nil
	}
	code := r.OrgCode
	return &code
}

// CanSee reports whether a member is visible under this role.
// Non-admin visibility is exact string equality on the bhag code.
func (r Role) CanSee(m Member) bool {
	return r.IsAdmin() || m.BhagCode == r.OrgCode
}
