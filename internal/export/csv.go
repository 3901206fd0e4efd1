// Package export renders the full entry list as downloadable files.
package export

import (
	"strings"

	"github.com/carson-networks/finance-notebook/internal/service"
)

const (
	CSVContentType  = "text/csv;charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Columns is the header shared by every export format.
var Columns = []string{"id", "date", "type", "amount", "description"}

// ToCSV writes one row per entry in list order under the header row. The
// description is always quoted with inner quotes doubled; the other fields
// never contain a delimiter and go out bare. Rows are joined by "\n" with no
// trailing newline.
func ToCSV(entries []service.Entry) string {
	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, strings.Join(Columns, ","))
	for _, e := range entries {
		rows = append(rows, strings.Join([]string{
			e.ID,
			e.Date,
			string(e.Type),
			e.Amount.String(),
			quote(e.Description),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
