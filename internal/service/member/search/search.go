// Package search implements the in-memory multi-criteria member filter.
//
// The engine is pure: it never performs I/O, never mutates its inputs and
// always returns members in their input order. Criteria are AND-combined;
// a criterion with a blank query matches everything.
package search

import (
	"strings"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// Criterion is a single (field, query) pair.
type Criterion struct {
	Field FieldKey
	Query string
}

// IsBlank reports whether the criterion filters nothing.
func (c Criterion) IsBlank() bool {
	return strings.TrimSpace(c.Query) == ""
}

// Filter returns the members matching every criterion, in input order.
func Filter(members []domain.Member, criteria []Criterion) []domain.Member {
	active := make([]Criterion, 0, len(criteria))
	for _, c := range criteria {
		if !c.IsBlank() {
			active = append(active, c)
		}
	}

	out := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if matchesAll(m, active) {
			out = append(out, m)
		}
	}
	return out
}

// Matches reports whether a single member satisfies a single criterion.
func Matches(m domain.Member, c Criterion) bool {
	if c.IsBlank() {
		return true
	}

	q := strings.ToLower(strings.TrimSpace(c.Query))

	switch c.Field {
	case FieldAll:
		return matchAny(m, q, c.Query)
	case FieldName:
		return contains(m.FullName(), q) || contains(m.FirstName, q) || contains(m.LastName, q)
	case FieldAge:
		return matchAge(m.Age, c.Query)
	}

	if get, ok := accessors[c.Field]; ok {
		return contains(get(m), q)
	}

	// Unknown keys are rejected before filtering; treat them as vacuous here.
	return true
}

func matchesAll(m domain.Member, criteria []Criterion) bool {
	for _, c := range criteria {
		if !Matches(m, c) {
			return false
		}
	}
	return true
}

// matchAny checks every text attribute with the lowered query and the age
// with the raw one.
func matchAny(m domain.Member, q, raw string) bool {
	if contains(m.FullName(), q) {
		return true
	}
	for _, f := range allFields {
		if contains(accessors[f](m), q) {
			return true
		}
	}
	return matchAge(m.Age, raw)
}

func contains(value, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(value), loweredQuery)
}

var accessors = map[FieldKey]func(domain.Member) string{
	FieldFirstName:  func(m domain.Member) string { return m.FirstName },
	FieldLastName:   func(m domain.Member) string { return m.LastName },
	FieldMemberID:   func(m domain.Member) string { return m.MemberID },
	FieldPhone:      func(m domain.Member) string { return m.Phone },
	FieldEmail:      func(m domain.Member) string { return m.Email },
	FieldOccupation: func(m domain.Member) string { return m.Occupation },
	FieldCity:       func(m domain.Member) string { return m.City },
	FieldAddress:    func(m domain.Member) string { return m.Address },
	FieldBhagCode:   func(m domain.Member) string { return m.BhagCode },
	FieldNagarCode:  func(m domain.Member) string { return m.NagarCode },
	FieldBastiCode:  func(m domain.Member) string { return m.BastiCode },
	FieldGender:     func(m domain.Member) string { return m.Gender },
	FieldActivation: func(m domain.Member) string { return m.Activation.String() },
	FieldReferredBy: func(m domain.Member) string { return m.ReferredBy },
	FieldRemark:     func(m domain.Member) string { return m.Remark },
	FieldRegDate:    func(m domain.Member) string { return m.RegDate },
}

// allFields are the text attributes consulted by FieldAll besides full name and age.
var allFields = []FieldKey{
	FieldFirstName, FieldLastName, FieldMemberID, FieldOccupation, FieldCity,
	FieldReferredBy, FieldPhone, FieldEmail, FieldGender, FieldAddress,
	FieldBhagCode, FieldNagarCode, FieldBastiCode, FieldActivation, FieldRemark,
	FieldRegDate,
}
