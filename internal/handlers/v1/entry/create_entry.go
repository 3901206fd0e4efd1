package entry

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-notebook/internal/logging"
	"github.com/carson-networks/finance-notebook/internal/service"
)

// CreateEntryBody is the request body for creating an entry.
type CreateEntryBody struct {
	Type        string `json:"type" enum:"income,expense" doc:"Entry type"`
	Amount      string `json:"amount" doc:"Amount as typed, e.g. \"1 234,50\""`
	Description string `json:"description,omitempty" doc:"Free text description"`
	Date        string `json:"date,omitempty" doc:"Calendar date YYYY-MM-DD, defaults to today"`
}

// CreateEntryInput is the Huma input for creating an entry.
type CreateEntryInput struct {
	Body CreateEntryBody
}

// CreateEntryOutput is the Huma output for creating an entry.
type CreateEntryOutput struct {
	Status int
	Body   Entry
}

// entryCreator queues new entries.
type entryCreator interface {
	AddEntry(ctx context.Context, input service.EntryInput) (service.Entry, error)
}

// CreateEntryHandler handles POST /v1/entry.
type CreateEntryHandler struct {
	Creator entryCreator
}

// NewCreateEntryHandler creates a new CreateEntryHandler.
func NewCreateEntryHandler(creator entryCreator) *CreateEntryHandler {
	return &CreateEntryHandler{Creator: creator}
}

// Register registers the create entry endpoint with the Huma API.
func (h *CreateEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-entry",
		Method:        http.MethodPost,
		Path:          "/v1/entry",
		Summary:       "Create entry",
		Description:   "Validates the amount and prepends a new entry to the notebook.",
		Tags:          []string{"Entries"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateEntryHandler) handle(ctx context.Context, input *CreateEntryInput) (*CreateEntryOutput, error) {
	entryType, err := service.ParseEntryType(input.Body.Type)
	if err != nil {
		return nil, validationProblem(err)
	}

	var stopTimer func()
	logData := logging.GetLogData(ctx)
	if logData != nil {
		stopTimer = logData.AddTiming("addEntryMs")
	}
	created, err := h.Creator.AddEntry(ctx, service.EntryInput{
		Type:        entryType,
		RawAmount:   input.Body.Amount,
		Description: input.Body.Description,
		Date:        input.Body.Date,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return nil, validationProblem(err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create entry", err)
	}

	if logData != nil {
		logData.AddData("entryID", created.ID)
	}

	return &CreateEntryOutput{Status: http.StatusCreated, Body: toAPIEntry(created)}, nil
}

// validationProblem turns a *service.ValidationError into a 400 naming the
// rejected field.
func validationProblem(err error) error {
	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) {
		return huma.NewError(http.StatusBadRequest, err.Error())
	}

	location := "body.amount"
	switch validationErr.Kind {
	case service.ValidationInvalidType:
		location = "body.type"
	case service.ValidationInvalidDate:
		location = "body.date"
	}

	return huma.NewError(http.StatusBadRequest, validationErr.Unwrap().Error(), &huma.ErrorDetail{
		Message:  string(validationErr.Kind),
		Location: location,
		Value:    validationErr.Input,
	})
}
