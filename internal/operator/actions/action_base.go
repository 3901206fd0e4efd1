package actions

import (
	"context"

	"github.com/carson-networks/finance-notebook/internal/service"
)

// IAction is one mutation of the entry list, run by an operator worker.
type IAction interface {
	Perform(ctx context.Context, store *service.EntryStore) error
}
