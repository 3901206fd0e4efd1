package export

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	fileexport "github.com/carson-networks/finance-notebook/internal/export"
	"github.com/carson-networks/finance-notebook/internal/logging"
	"github.com/carson-networks/finance-notebook/internal/service"
)

// FileOutput is the Huma output for a downloaded export.
type FileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// entryLister is the read side of the entry store.
type entryLister interface {
	List() []service.Entry
}

// Handler serves the full entry list as CSV and XLSX downloads.
type Handler struct {
	Entries entryLister
	Now     func() time.Time
}

// NewHandler creates a new export Handler.
func NewHandler(entries entryLister) *Handler {
	return &Handler{Entries: entries, Now: time.Now}
}

// Register registers both export endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-csv",
		Method:      http.MethodGet,
		Path:        "/v1/export/csv",
		Summary:     "Export CSV",
		Description: "Downloads every entry, newest first, as CSV.",
		Tags:        []string{"Export"},
	}, h.handleCSV)

	huma.Register(api, huma.Operation{
		OperationID: "export-xlsx",
		Method:      http.MethodGet,
		Path:        "/v1/export/xlsx",
		Summary:     "Export XLSX",
		Description: "Downloads every entry, newest first, as a spreadsheet.",
		Tags:        []string{"Export"},
	}, h.handleXLSX)
}

func (h *Handler) handleCSV(ctx context.Context, _ *struct{}) (*FileOutput, error) {
	entries := h.Entries.List()
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("entryCount", len(entries))
	}

	return &FileOutput{
		ContentType:        fileexport.CSVContentType,
		ContentDisposition: attachment(fileexport.Filename(h.Now(), "csv")),
		Body:               []byte(fileexport.ToCSV(entries)),
	}, nil
}

func (h *Handler) handleXLSX(ctx context.Context, _ *struct{}) (*FileOutput, error) {
	entries := h.Entries.List()
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		logData.AddData("entryCount", len(entries))
		stopTimer = logData.AddTiming("buildXlsxMs")
	}
	data, err := fileexport.ToXLSX(entries)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build spreadsheet", err)
	}

	return &FileOutput{
		ContentType:        fileexport.XLSXContentType,
		ContentDisposition: attachment(fileexport.Filename(h.Now(), "xlsx")),
		Body:               data,
	}, nil
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
