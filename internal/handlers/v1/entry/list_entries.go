package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-notebook/internal/logging"
	"github.com/carson-networks/finance-notebook/internal/view"
)

// ListEntriesInput is the Huma input for listing entries.
type ListEntriesInput struct {
	Filter string `query:"filter" default:"all" doc:"Type filter: all, income or expense (case-insensitive)"`
	Query  string `query:"query" doc:"Case-insensitive search over description, amount and date"`
}

// ListEntriesResponseBody is the response body for listing entries.
type ListEntriesResponseBody struct {
	Entries []Entry `json:"entries" doc:"Matching entries, newest first"`
	Count   int     `json:"count" doc:"Number of matching entries"`
	Totals  Totals  `json:"totals" doc:"Totals over every entry, ignoring the filter"`
}

// ListEntriesOutput is the Huma output for listing entries.
type ListEntriesOutput struct {
	Body ListEntriesResponseBody
}

// ListEntriesHandler handles GET /v1/entries.
type ListEntriesHandler struct {
	Entries entryLister
}

// NewListEntriesHandler creates a new ListEntriesHandler.
func NewListEntriesHandler(entries entryLister) *ListEntriesHandler {
	return &ListEntriesHandler{Entries: entries}
}

// Register registers the list entries endpoint with the Huma API.
func (h *ListEntriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-entries",
		Method:      http.MethodGet,
		Path:        "/v1/entries",
		Summary:     "List entries",
		Description: "Returns the entries matching the type filter and search query, with totals over the full list.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *ListEntriesHandler) handle(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	filter, err := view.ParseTypeFilter(input.Filter)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid filter", err)
	}

	all := h.Entries.List()
	matched := view.ApplyFilters(all, filter, input.Query)

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("entryCount", len(all))
		logData.AddData("matchCount", len(matched))
	}

	resp := ListEntriesResponseBody{
		Entries: make([]Entry, len(matched)),
		Count:   len(matched),
		Totals:  toAPITotals(view.ComputeTotals(all)),
	}
	for i, e := range matched {
		resp.Entries[i] = toAPIEntry(e)
	}

	return &ListEntriesOutput{Body: resp}, nil
}
