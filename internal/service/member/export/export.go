package export

import (
	"fmt"
	"time"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

// Document is a rendered export ready to be served or written to disk.
type Document struct {
	Filename    string
	ContentType string
	Rows        int
	Body        []byte
}

// Render serializes members in the requested format. The filename carries
// the date of now.
func Render(format Format, members []domain.Member, now time.Time) (*Document, error) {
	var (
		body []byte
		err  error
	)

	switch format {
	case FormatCSV:
		body, err = CSV(members)
	case FormatXLSX:
		body, err = XLSX(members)
	default:
		return nil, fmt.Errorf("export: unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}

	return &Document{
		Filename:    Filename(format, now),
		ContentType: format.ContentType(),
		Rows:        len(members),
		Body:        body,
	}, nil
}

// Filename returns "members_YYYY-MM-DD.<ext>".
func Filename(format Format, now time.Time) string {
	return fmt.Sprintf("members_%s.%s", now.Format(domain.RegDateLayout), format)
}
