// Package export renders member lists as downloadable spreadsheets.
package export

import (
	"strconv"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// Format selects the export document type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func (f Format) String() string { return string(f) }

func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatXLSX:
		return true
	}
	return false
}

// ContentType returns the MIME type of the rendered document.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

type column struct {
	header string
	width  float64
	value  func(domain.Member) string
}

// columns is the fixed export layout. Order and header text are part of the
// download contract.
var columns = []column{
	{"Member ID", 12, func(m domain.Member) string { return m.MemberID }},
	{"Registration Date", 18, func(m domain.Member) string { return m.RegDate }},
	{"First Name", 16, func(m domain.Member) string { return m.FirstName }},
	{"Last Name", 16, func(m domain.Member) string { return m.LastName }},
	{"Gender", 10, func(m domain.Member) string { return m.Gender }},
	{"Address", 30, func(m domain.Member) string { return m.Address }},
	{"City", 16, func(m domain.Member) string { return m.City }},
	{"BHAG Code", 12, func(m domain.Member) string { return m.BhagCode }},
	{"Email", 26, func(m domain.Member) string { return m.Email }},
	{"Phone", 16, func(m domain.Member) string { return m.Phone }},
	{"Age", 6, ageValue},
	{"Occupation", 18, func(m domain.Member) string { return m.Occupation }},
	{"Nagar Code", 12, func(m domain.Member) string { return m.NagarCode }},
	{"Basti Code", 12, func(m domain.Member) string { return m.BastiCode }},
	{"Activation", 12, func(m domain.Member) string { return m.Activation.String() }},
	{"Activation Date", 18, func(m domain.Member) string { return m.ActivationDate() }},
	{"Remark", 30, func(m domain.Member) string { return m.Remark }},
	{"Referred By", 18, func(m domain.Member) string { return m.ReferredBy }},
}

// Headers returns the export header row.
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}

// Row returns the export cell values of one member in column order.
func Row(m domain.Member) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.value(m)
	}
	return out
}

func ageValue(m domain.Member) string {
	if m.Age == nil {
		return ""
	}
	return strconv.Itoa(*m.Age)
}
