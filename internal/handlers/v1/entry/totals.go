package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-notebook/internal/view"
)

// TotalsOutput is the Huma output for the totals endpoint.
type TotalsOutput struct {
	Body Totals
}

// TotalsHandler handles GET /v1/totals.
type TotalsHandler struct {
	Entries entryLister
}

// NewTotalsHandler creates a new TotalsHandler.
func NewTotalsHandler(entries entryLister) *TotalsHandler {
	return &TotalsHandler{Entries: entries}
}

// Register registers the totals endpoint with the Huma API.
func (h *TotalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-totals",
		Method:      http.MethodGet,
		Path:        "/v1/totals",
		Summary:     "Get totals",
		Description: "Returns income, expense and balance over every entry.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *TotalsHandler) handle(ctx context.Context, _ *struct{}) (*TotalsOutput, error) {
	return &TotalsOutput{Body: toAPITotals(view.ComputeTotals(h.Entries.List()))}, nil
}
