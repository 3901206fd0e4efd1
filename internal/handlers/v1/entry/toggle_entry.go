package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ToggleEntryInput is the Huma input for toggling an entry's type.
type ToggleEntryInput struct {
	ID string `path:"id" doc:"Entry id"`
}

// entryToggler queues type flips.
type entryToggler interface {
	ToggleEntryType(ctx context.Context, id string) error
}

// ToggleEntryHandler handles POST /v1/entry/{id}/toggle.
type ToggleEntryHandler struct {
	Toggler entryToggler
}

// NewToggleEntryHandler creates a new ToggleEntryHandler.
func NewToggleEntryHandler(toggler entryToggler) *ToggleEntryHandler {
	return &ToggleEntryHandler{Toggler: toggler}
}

// Register registers the toggle entry endpoint with the Huma API.
func (h *ToggleEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "toggle-entry",
		Method:        http.MethodPost,
		Path:          "/v1/entry/{id}/toggle",
		Summary:       "Toggle entry type",
		Description:   "Flips an entry between income and expense. Unknown ids are ignored.",
		Tags:          []string{"Entries"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *ToggleEntryHandler) handle(ctx context.Context, input *ToggleEntryInput) (*struct{}, error) {
	if err := h.Toggler.ToggleEntryType(ctx, input.ID); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to toggle entry", err)
	}
	return nil, nil
}
