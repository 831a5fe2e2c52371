package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Date layouts used for member timestamps in API and export output.
const (
	RegDateLayout      = "2006-01-02"
	ActivationAtLayout = "2006-01-02 15:04"
)

// Member is the canonical in-memory shape of a roster entry.
// Legacy storage columns are resolved into it by Reconcile.
type Member struct {
	ID           uuid.UUID
	MemberID     string
	RegDate      string
	FirstName    string
	LastName     string
	Gender       string
	Email        string
	Phone        string
	Age          *int
	Address      string
	City         string
	BhagCode     string
	NagarCode    string
	BastiCode    string
	Occupation   string
	Activation   Activation
	ActivationAt *time.Time
	Remark       string
	ReferredBy   string
	CreatedAt    time.Time
}

// FullName joins first and last name with a single space.
func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// ActivationDate formats ActivationAt, or returns "" when unset.
func (m Member) ActivationDate() string {
	if m.ActivationAt == nil {
		return ""
	}
	return m.ActivationAt.Format(ActivationAtLayout)
}

// MemberPatch carries the independently editable fields of a member.
// Nil fields are left unchanged. ClearActivationAt resets the timestamp.
type MemberPatch struct {
	BhagCode          *string
	NagarCode         *string
	BastiCode         *string
	Activation        *Activation
	ActivationAt      *time.Time
	ClearActivationAt bool
}

// IsEmpty reports whether the patch changes nothing.
func (p MemberPatch) IsEmpty() bool {
	return p.BhagCode == nil && p.NagarCode == nil && p.BastiCode == nil &&
		p.Activation == nil && p.ActivationAt == nil && !p.ClearActivationAt
}
