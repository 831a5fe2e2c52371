package member

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/internal/service/member/export"
	"github.com/heartmarshall/joinrss-backend/internal/service/member/search"
)

const (
	maxTextLen    = 255
	maxRemarkLen  = 4000
	maxCriteria   = 20
	maxQueryLen   = 200
	maxMemberAge  = 150
	maxAddressLen = 1000
)

// CriterionInput is one raw (field, query) pair as received from a caller.
type CriterionInput struct {
	Field string
	Query string
}

// ListInput holds parameters for the list operation.
type ListInput struct {
	Criteria []CriterionInput
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	_, err := parseCriteria(i.Criteria)
	return err
}

// parseCriteria resolves field keys. An empty field means all fields.
func parseCriteria(in []CriterionInput) ([]search.Criterion, error) {
	if len(in) > maxCriteria {
		return nil, domain.NewValidationError("criteria", fmt.Sprintf("at most %d criteria", maxCriteria))
	}

	var errs []domain.FieldError
	out := make([]search.Criterion, 0, len(in))
	for idx, c := range in {
		field, err := search.ParseField(strings.TrimSpace(c.Field))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("criteria[%d].field", idx), Message: "unknown search field"})
			continue
		}
		if len(c.Query) > maxQueryLen {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("criteria[%d].query", idx), Message: "too long"})
			continue
		}
		out = append(out, search.Criterion{Field: field, Query: c.Query})
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return out, nil
}

// CreateInput holds parameters for registering a member.
type CreateInput struct {
	MemberID   string
	RegDate    string
	FirstName  string
	LastName   string
	Gender     string
	Email      string
	Phone      string
	Age        *int
	Address    string
	City       string
	BhagCode   string
	NagarCode  string
	BastiCode  string
	Occupation string
	Activation string
	Remark     string
	ReferredBy string
}

// Normalize trims every text field.
func (i CreateInput) Normalize() CreateInput {
	for _, p := range []*string{
		&i.MemberID, &i.RegDate, &i.FirstName, &i.LastName, &i.Gender, &i.Email,
		&i.Phone, &i.Address, &i.City, &i.BhagCode, &i.NagarCode, &i.BastiCode,
		&i.Occupation, &i.Activation, &i.Remark, &i.ReferredBy,
	} {
		*p = strings.TrimSpace(*p)
	}
	return i
}

// Validate validates the create input. Call Normalize first.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	required := []struct {
		field string
		value string
	}{
		{"first_name", i.FirstName},
		{"last_name", i.LastName},
		{"occupation", i.Occupation},
		{"phone", i.Phone},
		{"city", i.City},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}

	limited := []struct {
		field string
		value string
		max   int
	}{
		{"member_id", i.MemberID, maxTextLen},
		{"first_name", i.FirstName, maxTextLen},
		{"last_name", i.LastName, maxTextLen},
		{"gender", i.Gender, maxTextLen},
		{"email", i.Email, maxTextLen},
		{"phone", i.Phone, maxTextLen},
		{"city", i.City, maxTextLen},
		{"bhag_code", i.BhagCode, maxTextLen},
		{"nagar_code", i.NagarCode, maxTextLen},
		{"basti_code", i.BastiCode, maxTextLen},
		{"occupation", i.Occupation, maxTextLen},
		{"referred_by", i.ReferredBy, maxTextLen},
		{"address", i.Address, maxAddressLen},
		{"remark", i.Remark, maxRemarkLen},
	}
	for _, l := range limited {
		if len(l.value) > l.max {
			errs = append(errs, domain.FieldError{Field: l.field, Message: "too long"})
		}
	}

	if i.Age != nil && (*i.Age <= 0 || *i.Age > maxMemberAge) {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be between 1 and 150"})
	}

	if i.RegDate != "" {
		if _, err := time.Parse(domain.RegDateLayout, i.RegDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "reg_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if _, ok := domain.ParseActivation(i.Activation); !ok {
		errs = append(errs, domain.FieldError{Field: "activation", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the independently editable fields of a member.
// Nil fields are left unchanged.
type UpdateInput struct {
	BhagCode   *string
	NagarCode  *string
	BastiCode  *string
	Activation *string
}

// Normalize trims every present field.
func (i UpdateInput) Normalize() UpdateInput {
	for _, p := range []**string{&i.BhagCode, &i.NagarCode, &i.BastiCode, &i.Activation} {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	return i
}

// Validate validates the update input. Call Normalize first.
func (i UpdateInput) Validate() error {
	if i.BhagCode == nil && i.NagarCode == nil && i.BastiCode == nil && i.Activation == nil {
		return domain.NewValidationError("input", "no fields to update")
	}

	var errs []domain.FieldError

	for _, f := range []struct {
		field string
		value *string
	}{
		{"bhag_code", i.BhagCode},
		{"nagar_code", i.NagarCode},
		{"basti_code", i.BastiCode},
	} {
		if f.value != nil && len(*f.value) > maxTextLen {
			errs = append(errs, domain.FieldError{Field: f.field, Message: "too long"})
		}
	}

	if i.Activation != nil {
		if _, ok := domain.ParseActivation(*i.Activation); !ok || *i.Activation == "" {
			errs = append(errs, domain.FieldError{Field: "activation", Message: "invalid value"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ExportInput holds parameters for the export operation.
// An empty Format uses the configured default.
type ExportInput struct {
	Criteria []CriterionInput
	Format   string
}

func (i ExportInput) format(fallback string) (export.Format, error) {
	raw := strings.ToLower(strings.TrimSpace(i.Format))
	if raw == "" {
		raw = fallback
	}
	f := export.Format(raw)
	if !f.IsValid() {
		return "", domain.NewValidationError("format", "must be csv or xlsx")
	}
	return f, nil
}
