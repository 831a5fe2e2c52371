package export

import (
	"bytes"
	"io"
	"strings"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// bom is the UTF-8 byte-order mark prefixed to CSV output.
const bom = "\ufeff"

// WriteCSV writes members as a BOM-prefixed CSV document with "\n" line
// separators. It returns ErrNothingToExport for an empty list and writes nothing.
func WriteCSV(w io.Writer, members []domain.Member) error {
	if len(members) == 0 {
		return domain.ErrNothingToExport
	}

	var b strings.Builder
	b.WriteString(bom)
	writeRecord(&b, Headers())
	for _, m := range members {
		b.WriteByte('\n')
		writeRecord(&b, Row(m))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CSV renders members to a byte slice.
func CSV(members []domain.Member) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, members); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Escape(f))
	}
}

// Escape quotes a cell iff it contains a comma, a double quote or a line
// break, doubling embedded quotes.
func Escape(value string) string {
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
