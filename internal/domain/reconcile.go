package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StoredMember is a member row as persisted. Rows written before the schema
// split first/last name carry the legacy columns (Name, Profession,
// ContactNumber, Area, Notes) instead of, or alongside, the current ones.
type StoredMember struct {
	ID            uuid.UUID
	MemberID      string
	RegDate       string
	FirstName     string
	LastName      string
	Gender        string
	Email         string
	Phone         string
	Age           *int
	Address       string
	City          string
	BhagCode      string
	NagarCode     string
	BastiCode     string
	Occupation    string
	Activation    string
	ActivationAt  *time.Time
	Remark        string
	ReferredBy    string
	CreatedAt     time.Time
	Name          string
	Profession    string
	ContactNumber string
	Area          string
	Notes         string
}

// Reconcile resolves a stored row into the canonical Member. Current columns
// win; a legacy column is used only when its current counterpart is blank.
func Reconcile(s StoredMember) Member {
	m := Member{
		ID:           s.ID,
		MemberID:     s.MemberID,
		RegDate:      s.RegDate,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Gender:       s.Gender,
		Email:        s.Email,
		Age:          s.Age,
		Address:      s.Address,
		BhagCode:     s.BhagCode,
		NagarCode:    s.NagarCode,
		BastiCode:    s.BastiCode,
		ActivationAt: s.ActivationAt,
		ReferredBy:   s.ReferredBy,
		CreatedAt:    s.CreatedAt,

		Occupation: prefer(s.Occupation, s.Profession),
		City:       prefer(s.City, s.Area),
		Phone:      prefer(s.Phone, s.ContactNumber),
		Remark:     prefer(s.Remark, s.Notes),
	}

	if isBlank(m.FirstName) && isBlank(m.LastName) && !isBlank(s.Name) {
		m.FirstName, m.LastName = splitName(s.Name)
	}

	if a, ok := ParseActivation(s.Activation); ok {
		m.Activation = a
	} else {
		m.Activation = ActivationPending
	}

	return m
}

// ReconcileAll applies Reconcile to every row, preserving order.
func ReconcileAll(rows []StoredMember) []Member {
	out := make([]Member, len(rows))
	for i, r := range rows {
		out[i] = Reconcile(r)
	}
	return out
}

func prefer(current, legacy string) string {
	if isBlank(current) {
		return legacy
	}
	return current
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// splitName breaks a legacy single-field name at the first whitespace run.
func splitName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	first = fields[0]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), first))
	return first, rest
}
