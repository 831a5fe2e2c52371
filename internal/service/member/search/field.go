package search

import "fmt"

// FieldKey names the member attribute a criterion is matched against.
type FieldKey string

const (
	FieldAll        FieldKey = "all"
	FieldName       FieldKey = "name"
	FieldFirstName  FieldKey = "firstName"
	FieldLastName   FieldKey = "lastName"
	FieldMemberID   FieldKey = "memberId"
	FieldPhone      FieldKey = "phone"
	FieldEmail      FieldKey = "email"
	FieldOccupation FieldKey = "occupation"
	FieldCity       FieldKey = "city"
	FieldAddress    FieldKey = "address"
	FieldBhagCode   FieldKey = "bhagCode"
	FieldNagarCode  FieldKey = "nagarCode"
	FieldBastiCode  FieldKey = "bastiCode"
	FieldGender     FieldKey = "gender"
	FieldAge        FieldKey = "age"
	FieldActivation FieldKey = "activation"
	FieldReferredBy FieldKey = "referredBy"
	FieldRemark     FieldKey = "remark"
	FieldRegDate    FieldKey = "regDate"
)

var labels = map[FieldKey]string{
	FieldAll:        "All Fields",
	FieldName:       "Name",
	FieldFirstName:  "First Name",
	FieldLastName:   "Last Name",
	FieldMemberID:   "Member ID",
	FieldPhone:      "Phone",
	FieldEmail:      "Email",
	FieldOccupation: "Occupation",
	FieldCity:       "City",
	FieldAddress:    "Address",
	FieldBhagCode:   "BHAG Code",
	FieldNagarCode:  "Nagar Code",
	FieldBastiCode:  "Basti Code",
	FieldGender:     "Gender",
	FieldAge:        "Age",
	FieldActivation: "Activation",
	FieldReferredBy: "Referred By",
	FieldRemark:     "Remark",
	FieldRegDate:    "Registration Date",
}

// Fields lists every searchable key in display order.
func Fields() []FieldKey {
	return []FieldKey{
		FieldAll, FieldName, FieldFirstName, FieldLastName, FieldMemberID,
		FieldPhone, FieldEmail, FieldOccupation, FieldCity, FieldAddress,
		FieldBhagCode, FieldNagarCode, FieldBastiCode, FieldGender, FieldAge,
		FieldActivation, FieldReferredBy, FieldRemark, FieldRegDate,
	}
}

func (f FieldKey) String() string { return string(f) }

func (f FieldKey) IsValid() bool {
	_, ok := labels[f]
	return ok
}

// Label returns the human-readable name of the field.
func (f FieldKey) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// ParseField validates a raw field key. An empty key means FieldAll.
func ParseField(s string) (FieldKey, error) {
	if s == "" {
		return FieldAll, nil
	}
	f := FieldKey(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown search field %q", s)
	}
	return f, nil
}
