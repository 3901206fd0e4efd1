package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/finance-notebook/internal/logging"
)

// entryCounter reports how many entries the store holds.
type entryCounter interface {
	Len() int
}

type Handler struct {
	Entries entryCounter
}

func NewHandler(entries entryCounter) Handler {
	return Handler{Entries: entries}
}

type statusBody struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	count := h.Entries.Len()
	logData.AddData("entryCount", count)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(statusBody{Status: "ok", Entries: count})
}
