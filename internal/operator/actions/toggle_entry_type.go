package actions

import (
	"context"

	"github.com/carson-networks/finance-notebook/internal/service"
)

// ToggleEntryType flips income and expense on one entry. Unknown ids are
// tolerated.
type ToggleEntryType struct {
	ID string

	IAction
}

func (t *ToggleEntryType) Perform(ctx context.Context, store *service.EntryStore) error {
	store.ToggleType(ctx, t.ID)
	return nil
}
