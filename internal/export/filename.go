package export

import (
	"time"

	"github.com/carson-networks/finance-notebook/internal/service"
)

// Filename names an export taken at now, e.g. finance-notebook-2024-01-02.csv.
func Filename(now time.Time, ext string) string {
	return "finance-notebook-" + now.UTC().Format(service.DateLayout) + "." + ext
}
