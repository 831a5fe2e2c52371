package domain

import "strings"

// Activation is the engagement workflow state of a member.
type Activation string

const (
	ActivationPending   Activation = "Pending"
	ActivationContacted Activation = "Contacted"
	ActivationActive    Activation = "Active"
	ActivationInactive  Activation = "Inactive"
)

func (a Activation) String() string { return string(a) }

func (a Activation) IsValid() bool {
	switch a {
	case ActivationPending, ActivationContacted, ActivationActive, ActivationInactive:
		return true
	}
	return false
}

// ParseActivation resolves a status case-insensitively. An empty value yields
// Pending; an unknown value returns false.
func ParseActivation(s string) (Activation, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ActivationPending, true
	}
	for _, a := range []Activation{ActivationPending, ActivationContacted, ActivationActive, ActivationInactive} {
		if strings.EqualFold(s, string(a)) {
			return a, true
		}
	}
	return "", false
}

// RoleKind tags the variant carried by Role.
type RoleKind string

const (
	RoleAdmin  RoleKind = "admin"
	RoleMember RoleKind = "member"
)

func (k RoleKind) String() string { return string(k) }

func (k RoleKind) IsValid() bool {
	switch k {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}
